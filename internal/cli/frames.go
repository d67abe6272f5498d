package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ytget/download-check/internal/export"
	"github.com/ytget/download-check/internal/platform"
	"github.com/ytget/download-check/internal/render"
)

type framesOptions struct {
	export.Options
	OutDir string
	Open   bool
}

func newFramesCommand(app *AppContext) *cobra.Command {
	opts := framesOptions{Options: export.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Write one press cycle as numbered PNG frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runFrames(ctx, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "frames", "Output directory; frames go to <out>/<variant>")
	cmd.Flags().IntVar(&opts.FPS, "fps", opts.FPS, "Frames per second")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "Frame width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "Frame height in pixels")
	cmd.Flags().DurationVar(&opts.Hold, "hold", 0, "Keep rendering the finished checkmark for this long")
	cmd.Flags().DurationVar(&opts.MaxDuration, "max-duration", opts.MaxDuration, "Stop a cycle that never finishes after this long")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Open the output directory when done")

	return cmd
}

func runFrames(ctx context.Context, app *AppContext, opts framesOptions) error {
	if err := opts.Validate(); err != nil {
		return withExitCode(ExitInvalidUsage, err)
	}

	ctrl, variant, err := selectedController(app)
	if err != nil {
		return err
	}
	renderer, err := render.NewRenderer(render.DefaultStyle())
	if err != nil {
		return err
	}

	dir := filepath.Join(opts.OutDir, variant.Name)
	res, err := export.WritePNGs(ctx, ctrl, renderer, opts.Options, dir)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return withExitCode(ExitInterrupted, err)
		}
		return err
	}

	fmt.Fprintf(app.IO.Out, "Wrote %d frames (%s, final state %s) to %s\n", res.Frames, res.Duration, res.Final, dir)

	if opts.Open {
		if err := platform.OpenDirectory(dir); err != nil {
			fmt.Fprintln(app.IO.ErrOut, "WARN:", err)
		}
	}
	return nil
}
