package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/plannerkit/pkg/presets"
	"github.com/matzehuels/plannerkit/pkg/style"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// PresetListModel is the bubbletea model for interactive preset selection.
type PresetListModel struct {
	Presets  []presets.Preset
	Cursor   int
	Selected *presets.Preset
}

// NewPresetListModel creates a picker over ps.
func NewPresetListModel(ps []presets.Preset) PresetListModel {
	return PresetListModel{Presets: ps}
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Presets)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Presets) == 0 {
			return m, tea.Quit
		}
		p := m.Presets[m.Cursor]
		m.Selected = &p
		return m, tea.Quit
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select a planner style"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Presets))
	for i, p := range m.Presets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, p.Name, bundleSwatches(p.Style), p.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Preset", "Colors", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case row == m.Cursor && col != 2:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case col == 3:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Presets) > 0 {
		p := m.Presets[m.Cursor]
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s · %s", p.Style.CollectionName, p.Style.Quote)))
	}
	return b.String()
}

// pickPreset runs the picker and returns the chosen name, or "" when the
// user quit without choosing.
func pickPreset() (string, error) {
	final, err := tea.NewProgram(NewPresetListModel(presets.List())).Run()
	if err != nil {
		return "", fmt.Errorf("preset picker: %w", err)
	}
	m, ok := final.(PresetListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Name, nil
}

func bundleSwatches(b style.Bundle) string {
	return swatches(b.Background.Hex(), b.Accent.Hex(), b.Accent2.Hex(), b.Text.Hex())
}

// formatRelativeTime renders t relative to now for listings.
func formatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}
