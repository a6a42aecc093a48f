package style

import (
	"slices"
	"strings"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
)

// Variant tags which descriptor shape a raw style resolves into.
type Variant int

const (
	// VariantBundle is the six-page collection descriptor.
	VariantBundle Variant = iota
	// VariantSingle is the single weekly page descriptor.
	VariantSingle
)

// String returns the wire name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantBundle:
		return "bundle"
	case VariantSingle:
		return "single"
	default:
		return "unknown"
	}
}

// ParseVariant parses a variant wire name.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bundle":
		return VariantBundle, nil
	case "single":
		return VariantSingle, nil
	default:
		return 0, perrors.New(perrors.ErrCodeInvalidStyle, "unknown style variant %q (want bundle or single)", s)
	}
}

// Descriptor is implemented by [Bundle] and [Single].
type Descriptor interface {
	Variant() Variant
	// Raw converts the resolved descriptor back to its wire shape.
	Raw() Raw
}

// Bundle is the fully resolved style of a six-page planner collection.
// Values are never mutated after resolution; slices are private copies.
type Bundle struct {
	CollectionName string
	Title          string
	StyleName      string
	Quote          string
	NotesTitle     string

	Background RGB
	Accent     RGB
	Accent2    RGB
	Text       RGB

	DailySections   []string
	WeeklySections  []string
	MonthlySections []string
	YearlySections  []string
	Decorations     []string
}

// Variant implements Descriptor.
func (Bundle) Variant() Variant { return VariantBundle }

// Single is the fully resolved style of a single weekly planner page.
type Single struct {
	Title     string
	StyleName string
	Quote     string

	Background RGB
	Accent     RGB
	Accent2    RGB
	Text       RGB

	Days        []string
	Decorations []string
}

// Variant implements Descriptor.
func (Single) Variant() Variant { return VariantSingle }

// Weekdays is the canonical seven-day list.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DefaultDecoration replaces an empty decoration set.
const DefaultDecoration = "dots"

// DefaultBundle is the default table for bundle styles.
var DefaultBundle = Bundle{
	CollectionName:  "Pastel Weekly Bundle",
	Title:           "Weekly Planner",
	StyleName:       "Soft Minimal",
	Quote:           "Small steps every day.",
	NotesTitle:      "Notes",
	Background:      MustHex("#FFFDF8"),
	Accent:          MustHex("#FFB7B2"),
	Accent2:         MustHex("#FFE6A7"),
	Text:            MustHex("#333333"),
	DailySections:   []string{"Top Priorities", "Schedule", "To-Do", "Self-care", "Notes"},
	WeeklySections:  Weekdays,
	MonthlySections: []string{"Goals", "Important Dates", "Bills", "To-Do", "Notes"},
	YearlySections:  []string{"Q1", "Q2", "Q3", "Q4"},
	Decorations:     []string{"stars", "hearts", "dots"},
}

// DefaultSingle is the default table for single-page styles.
var DefaultSingle = Single{
	Title:       "Weekly Planner",
	StyleName:   "Soft Minimal",
	Quote:       "Small steps every day.",
	Background:  MustHex("#FFFDF8"),
	Accent:      MustHex("#FFB7B2"),
	Accent2:     MustHex("#FFE6A7"),
	Text:        MustHex("#333333"),
	Days:        Weekdays,
	Decorations: []string{"dots"},
}

// Clone returns a deep copy of b.
func (b Bundle) Clone() Bundle {
	b.DailySections = slices.Clone(b.DailySections)
	b.WeeklySections = slices.Clone(b.WeeklySections)
	b.MonthlySections = slices.Clone(b.MonthlySections)
	b.YearlySections = slices.Clone(b.YearlySections)
	b.Decorations = slices.Clone(b.Decorations)
	return b
}

// Clone returns a deep copy of s.
func (s Single) Clone() Single {
	s.Days = slices.Clone(s.Days)
	s.Decorations = slices.Clone(s.Decorations)
	return s
}

// Raw converts b back to its wire shape.
func (b Bundle) Raw() Raw {
	return Raw{
		KeyCollectionName:  b.CollectionName,
		KeyTitle:           b.Title,
		KeyStyleName:       b.StyleName,
		KeyQuote:           b.Quote,
		KeyNotesTitle:      b.NotesTitle,
		KeyBackgroundColor: b.Background.Hex(),
		KeyAccentColor:     b.Accent.Hex(),
		KeyAccentColor2:    b.Accent2.Hex(),
		KeyTextColor:       b.Text.Hex(),
		KeyDailySections:   slices.Clone(b.DailySections),
		KeyWeeklySections:  slices.Clone(b.WeeklySections),
		KeyMonthlySections: slices.Clone(b.MonthlySections),
		KeyYearlySections:  slices.Clone(b.YearlySections),
		KeyDecorations:     slices.Clone(b.Decorations),
	}
}

// Raw converts s back to its wire shape.
func (s Single) Raw() Raw {
	return Raw{
		KeyTitle:           s.Title,
		KeyStyleName:       s.StyleName,
		KeyQuote:           s.Quote,
		KeyBackgroundColor: s.Background.Hex(),
		KeyAccentColor:     s.Accent.Hex(),
		KeyAccentColor2:    s.Accent2.Hex(),
		KeyTextColor:       s.Text.Hex(),
		KeyDays:            slices.Clone(s.Days),
		KeyDecorations:     slices.Clone(s.Decorations),
	}
}
