package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute(build BuildInfo, streams IOStreams, args []string) int {
	app := &AppContext{Build: build, IO: streams}
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.ErrOut)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(streams.ErrOut, "ERROR:", err)
		return mapExitCode(err)
	}
	return ExitSuccess
}

func newRootCommand(app *AppContext) *cobra.Command {
	showVersion := false

	root := &cobra.Command{
		Use:   "download-check",
		Short: "Play the download to checkmark transition outside the app",
		Long:  "download-check renders the download icon transition headlessly: as PNG frames, as a terminal preview, or as a list of timing variants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(app)
				return nil
			}
			return cmd.Help()
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.PersistentFlags().StringVar(&app.Opts.VariantsPath, "variants", os.Getenv("DOWNLOAD_CHECK_VARIANTS"), "Path to a YAML file with extra variants")
	root.PersistentFlags().StringVarP(&app.Opts.Variant, "variant", "V", "classic", "Variant to play")
	root.Flags().BoolVar(&showVersion, "version", false, "Print version info")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	root.AddCommand(newFramesCommand(app))
	root.AddCommand(newPreviewCommand(app))
	root.AddCommand(newVariantsCommand(app))
	root.AddCommand(newVersionCommand(app))

	return root
}

func printVersion(app *AppContext) {
	version := app.Build.Version
	if version == "" {
		version = "dev"
	}
	commit := app.Build.Commit
	if commit == "" {
		commit = "unknown"
	}
	date := app.Build.Date
	if date == "" {
		date = "unknown"
	}
	fmt.Fprintf(app.IO.Out, "download-check %s (commit %s, built %s)\n", version, commit, date)
}

func newVersionCommand(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersion(app)
			return nil
		},
	}
}
