package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ytget/download-check/internal/tui"
)

func newPreviewCommand(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Play the transition in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, variant, err := selectedController(app)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("download-check · %s", variant.Name)
			program := tea.NewProgram(
				tui.New(ctrl, title),
				tea.WithContext(cmd.Context()),
				tea.WithInput(app.IO.In),
				tea.WithOutput(app.IO.Out),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		},
	}
}
