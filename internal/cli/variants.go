package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newVariantsCommand(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the available timing variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			variants, err := loadVariants(app)
			if err != nil {
				return withExitCode(ExitInvalidConfig, err)
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "DOWNLOAD", "CHECKMARK", "EASING", "REENTRY", "LOOP").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, v := range variants {
				t.Row(
					v.Name,
					v.DownloadDuration().String(),
					v.CheckmarkDuration().String(),
					v.DownloadEasing+" / "+v.CheckmarkEasing,
					v.Reentry,
					strconv.FormatBool(v.LoopCheckmark),
				)
			}
			fmt.Fprintln(app.IO.Out, t.Render())
			return nil
		},
	}
}
