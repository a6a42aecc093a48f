// Package presets holds named planner styles that render without an AI key.
package presets

import (
	"slices"
	"strings"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/style"
	"github.com/matzehuels/plannerkit/pkg/stylegen"
)

// Preset is a named bundle style.
type Preset struct {
	Name        string
	Description string
	Style       style.Bundle
}

// Default is the name of the preset equal to the default style table.
const Default = "soft-minimal"

var all = []Preset{
	{
		Name:        Default,
		Description: "Warm off-white with blush and butter accents",
		Style:       style.DefaultBundle,
	},
	{
		Name:        "boho",
		Description: "Terracotta, sand and sage with earthy labels",
		Style: style.Bundle{
			CollectionName:  "Desert Bloom Bundle",
			Title:           "Weekly Planner",
			StyleName:       "Boho Earth",
			Quote:           "Grow through what you go through.",
			NotesTitle:      "Field Notes",
			Background:      style.MustHex("#FAF3E8"),
			Accent:          style.MustHex("#C97B5A"),
			Accent2:         style.MustHex("#DCC7A1"),
			Text:            style.MustHex("#4A3B30"),
			DailySections:   []string{"Intentions", "Schedule", "Tasks", "Gratitude", "Meals", "Reflection"},
			WeeklySections:  style.Weekdays,
			MonthlySections: []string{"Goals", "Dates", "Habits", "Budget"},
			YearlySections:  []string{"Winter", "Spring", "Summer", "Autumn"},
			Decorations:     []string{"plants", "suns", "arches"},
		},
	},
	{
		Name:        "retro",
		Description: "Seventies orange and teal on cream",
		Style: style.Bundle{
			CollectionName:  "Groovy Days Bundle",
			Title:           "Weekly Planner",
			StyleName:       "Retro Pop",
			Quote:           "Keep on keeping on.",
			NotesTitle:      "Jot It Down",
			Background:      style.MustHex("#FFF4DC"),
			Accent:          style.MustHex("#E07A3F"),
			Accent2:         style.MustHex("#5FA8A0"),
			Text:            style.MustHex("#3B2A1E"),
			DailySections:   []string{"Must Do", "Schedule", "Calls", "Errands", "Notes"},
			WeeklySections:  style.Weekdays,
			MonthlySections: []string{"Big Goals", "Events", "Bills", "To-Do"},
			YearlySections:  []string{"Q1", "Q2", "Q3", "Q4"},
			Decorations:     []string{"flowers", "rainbows"},
		},
	},
	{
		Name:        "kawaii",
		Description: "Candy pastels with playful section names",
		Style: style.Bundle{
			CollectionName:  "Sweet Mochi Bundle",
			Title:           "My Cute Week",
			StyleName:       "Kawaii Pastel",
			Quote:           "You are doing amazing, sweetie!",
			NotesTitle:      "Doodles & Notes",
			Background:      style.MustHex("#FFF7FB"),
			Accent:          style.MustHex("#F7A8C8"),
			Accent2:         style.MustHex("#B8E3F5"),
			Text:            style.MustHex("#5A4660"),
			DailySections:   []string{"Top 3", "Today", "Snacks", "Water", "Mood", "Happy Things", "Notes"},
			WeeklySections:  style.Weekdays,
			MonthlySections: []string{"Wishes", "Birthdays", "Treats", "To-Do"},
			YearlySections:  []string{"Q1", "Q2", "Q3", "Q4"},
			Decorations:     []string{"hearts", "stars", "clouds"},
		},
	},
	{
		Name:        "modern-neutral",
		Description: "Greige and charcoal for a clean office look",
		Style: style.Bundle{
			CollectionName:  "Studio Neutral Bundle",
			Title:           "Weekly Planner",
			StyleName:       "Modern Neutral",
			Quote:           "Focus on what matters.",
			NotesTitle:      "Notes",
			Background:      style.MustHex("#FFFFFF"),
			Accent:          style.MustHex("#8C8781"),
			Accent2:         style.MustHex("#D9D4CE"),
			Text:            style.MustHex("#2B2B2B"),
			DailySections:   []string{"Priorities", "Schedule", "Meetings", "Follow-ups"},
			WeeklySections:  style.Weekdays,
			MonthlySections: []string{"Objectives", "Deadlines", "Reviews", "Notes"},
			YearlySections:  []string{"H1 Goals", "H2 Goals", "Projects", "Learning"},
			Decorations:     []string{"lines"},
		},
	},
}

// List returns all presets in display order.
func List() []Preset {
	out := make([]Preset, len(all))
	for i, p := range all {
		p.Style = p.Style.Clone()
		out[i] = p
	}
	return out
}

// Names returns the preset names in display order.
func Names() []string {
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

// Get looks a preset up by name, case-insensitively.
func Get(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	i := slices.IndexFunc(all, func(p Preset) bool { return p.Name == name })
	if i < 0 {
		return Preset{}, perrors.New(perrors.ErrCodeNotFound,
			"unknown preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	p := all[i]
	p.Style = p.Style.Clone()
	return p, nil
}

// Generator returns a static generator answering with p's style.
func (p Preset) Generator() *stylegen.Static {
	return stylegen.NewStatic("preset:"+p.Name, p.Style.Raw())
}
