package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plannerkit/pkg/presets"
)

func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in planner styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, p := range presets.List() {
				name := p.Name
				if name == presets.Default {
					name += " *"
				}
				rows = append(rows, []string{name, p.Style.StyleName, bundleSwatches(p.Style), p.Description})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Preset", "Style", "Colors", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					if col == 0 {
						return lipgloss.NewStyle().Foreground(colorCyan)
					}
					return lipgloss.NewStyle()
				})

			fmt.Println(t.Render())
			printDetail("* used when no API key is configured")
			printNextStep("Render one", appName+" generate --preset boho")
			return nil
		},
	}
}
