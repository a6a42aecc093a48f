package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plannerkit/pkg/history"
	"github.com/matzehuels/plannerkit/pkg/style"
)

func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past generations",
	}
	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyShowCommand())
	return cmd
}

func (c *CLI) historyListCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent generations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := openHistory(cmd.Context(), cfg.History)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				printInfo("No generations recorded yet")
				return nil
			}
			fmt.Println(historyTable(records, time.Now()))
			printNextStep("Show one", appName+" history show <id>")
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "maximum number of records")
	return cmd
}

func historyTable(records []history.Record, now time.Time) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		name, _ := r.Style[style.KeyStyleName].(string)
		prompt := r.Prompt
		if prompt == "" {
			prompt = "(surprise)"
		}
		if rs := []rune(prompt); len(rs) > 40 {
			prompt = string(rs[:37]) + "..."
		}
		sizes := make([]string, len(r.Artifacts))
		for i, a := range r.Artifacts {
			sizes[i] = a.Size
		}
		rows = append(rows, []string{
			r.ID,
			formatRelativeTime(r.CreatedAt, now),
			prompt,
			name,
			strings.Join(sizes, ","),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "When", "Prompt", "Style", "Sizes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0 || col == 1:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func (c *CLI) historyShowCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := openHistory(cmd.Context(), cfg.History)
			if err != nil {
				return err
			}
			defer store.Close()

			rec, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			printKeyValue("ID", rec.ID)
			printKeyValue("Created", rec.CreatedAt.Local().Format(time.DateTime))
			printKeyValue("Prompt", rec.Prompt)
			printKeyValue("Source", rec.Source)
			printKeyValue("Variant", rec.Variant)
			if name, ok := rec.Style[style.KeyStyleName].(string); ok {
				printKeyValue("Style", name+"  "+swatches(styleColors(rec.Style)...))
			}
			printKeyValue("Duration", strconv.FormatInt(rec.DurationMS, 10)+"ms")
			for _, a := range rec.Artifacts {
				printInfo("%s", StyleHighlight.Render(a.Size))
				printFile(a.PDF)
				printFile(a.Preview)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return cmd
}
