package style

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// DiagnosticKind classifies a recovered style defect.
type DiagnosticKind string

const (
	// MissingField means the field was absent.
	MissingField DiagnosticKind = "missing_field"
	// InvalidType means the field had the wrong JSON type.
	InvalidType DiagnosticKind = "invalid_type"
	// InvalidColor means a color string was not 6 hex digits.
	InvalidColor DiagnosticKind = "invalid_color"
	// InsufficientSections means a section list was too short or too long.
	InsufficientSections DiagnosticKind = "insufficient_sections"
)

// Diagnostic records one substitution made during resolution.
type Diagnostic struct {
	Kind   DiagnosticKind
	Field  string
	Detail string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Kind, d.Field, d.Detail)
}

// Diagnostics is the list of substitutions made for one style.
type Diagnostics []Diagnostic

// Has reports whether a diagnostic of kind was recorded for field.
func (ds Diagnostics) Has(kind DiagnosticKind, field string) bool {
	return slices.ContainsFunc(ds, func(d Diagnostic) bool {
		return d.Kind == kind && d.Field == field
	})
}

// Log writes every diagnostic at debug level, except invalid colors and
// types which indicate a misbehaving style source and are warnings.
func (ds Diagnostics) Log(logger *log.Logger) {
	if logger == nil {
		return
	}
	for _, d := range ds {
		switch d.Kind {
		case InvalidColor, InvalidType:
			logger.Warn("style field replaced by default", "kind", d.Kind, "field", d.Field, "detail", d.Detail)
		default:
			logger.Debug("style field replaced by default", "kind", d.Kind, "field", d.Field, "detail", d.Detail)
		}
	}
}

// resolver accumulates diagnostics while resolving fields.
type resolver struct {
	raw   Raw
	diags Diagnostics
}

func (r *resolver) note(kind DiagnosticKind, field, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{Kind: kind, Field: field, Detail: fmt.Sprintf(format, args...)})
}

func (r *resolver) text(key, def string, blankIsMissing bool) string {
	v, ok := r.raw[key]
	if !ok || v == nil {
		r.note(MissingField, key, "using %q", def)
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.note(InvalidType, key, "got %T, using %q", v, def)
		return def
	}
	if blankIsMissing && strings.TrimSpace(s) == "" {
		r.note(MissingField, key, "blank, using %q", def)
		return def
	}
	return s
}

func (r *resolver) color(key string, def RGB) RGB {
	v, ok := r.raw[key]
	if !ok || v == nil {
		r.note(MissingField, key, "using %s", def.Hex())
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.note(InvalidType, key, "got %T, using %s", v, def.Hex())
		return def
	}
	c, err := ParseHex(s)
	if err != nil {
		r.note(InvalidColor, key, "%q, using %s", s, def.Hex())
		return def
	}
	return c
}

// list resolves a string sequence. Non-string elements are dropped. When
// emptyIsMissing is set, an empty result takes the default list.
func (r *resolver) list(key string, def []string, emptyIsMissing bool) []string {
	v, ok := r.raw[key]
	if !ok || v == nil {
		r.note(MissingField, key, "using %d default entries", len(def))
		return slices.Clone(def)
	}
	var out []string
	switch items := v.(type) {
	case []string:
		out = slices.Clone(items)
	case []any:
		out = make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				r.note(InvalidType, key, "entry %d is %T, dropped", i, item)
				continue
			}
			out = append(out, s)
		}
	default:
		r.note(InvalidType, key, "got %T, using %d default entries", v, len(def))
		return slices.Clone(def)
	}
	if len(out) == 0 && emptyIsMissing {
		r.note(InsufficientSections, key, "empty, using %d default entries", len(def))
		return slices.Clone(def)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// week resolves a day list that must hold exactly seven entries.
func (r *resolver) week(key string) []string {
	days := r.list(key, Weekdays, true)
	switch {
	case len(days) < len(Weekdays):
		r.note(InsufficientSections, key, "%d entries, using canonical week", len(days))
		return slices.Clone(Weekdays)
	case len(days) > len(Weekdays):
		r.note(InsufficientSections, key, "%d entries, keeping first %d", len(days), len(Weekdays))
		return days[:len(Weekdays):len(Weekdays)]
	}
	return days
}

// ResolveBundle resolves raw against [DefaultBundle].
func ResolveBundle(raw Raw) (Bundle, Diagnostics) {
	return ResolveBundleWith(raw, DefaultBundle)
}

// ResolveBundleWith resolves raw against a caller-supplied default table.
func ResolveBundleWith(raw Raw, def Bundle) (Bundle, Diagnostics) {
	r := &resolver{raw: raw}
	b := Bundle{
		CollectionName:  r.text(KeyCollectionName, def.CollectionName, false),
		Title:           r.text(KeyTitle, def.Title, false),
		StyleName:       r.text(KeyStyleName, def.StyleName, false),
		Quote:           r.text(KeyQuote, def.Quote, false),
		NotesTitle:      r.text(KeyNotesTitle, def.NotesTitle, true),
		Background:      r.color(KeyBackgroundColor, def.Background),
		Accent:          r.color(KeyAccentColor, def.Accent),
		Accent2:         r.color(KeyAccentColor2, def.Accent2),
		Text:            r.color(KeyTextColor, def.Text),
		DailySections:   r.list(KeyDailySections, def.DailySections, true),
		WeeklySections:  r.week(KeyWeeklySections),
		MonthlySections: r.list(KeyMonthlySections, def.MonthlySections, true),
		YearlySections:  r.list(KeyYearlySections, def.YearlySections, true),
		Decorations:     r.list(KeyDecorations, def.Decorations, false),
	}
	return b, r.diags
}

// ResolveSingle resolves raw against [DefaultSingle].
func ResolveSingle(raw Raw) (Single, Diagnostics) {
	r := &resolver{raw: raw}
	def := DefaultSingle
	s := Single{
		Title:       r.text(KeyTitle, def.Title, false),
		StyleName:   r.text(KeyStyleName, def.StyleName, false),
		Quote:       r.text(KeyQuote, def.Quote, false),
		Background:  r.color(KeyBackgroundColor, def.Background),
		Accent:      r.color(KeyAccentColor, def.Accent),
		Accent2:     r.color(KeyAccentColor2, def.Accent2),
		Text:        r.color(KeyTextColor, def.Text),
		Days:        r.week(KeyDays),
		Decorations: r.list(KeyDecorations, def.Decorations, false),
	}
	return s, r.diags
}

// Resolve resolves raw into the descriptor shape tagged by v.
func Resolve(raw Raw, v Variant) (Descriptor, Diagnostics) {
	if v == VariantSingle {
		return ResolveSingle(raw)
	}
	return ResolveBundle(raw)
}
