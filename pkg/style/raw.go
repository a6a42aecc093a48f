package style

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire keys of a raw style structure.
const (
	KeyCollectionName  = "collection_name"
	KeyTitle           = "title"
	KeyStyleName       = "style_name"
	KeyQuote           = "quote"
	KeyNotesTitle      = "notes_title"
	KeyBackgroundColor = "background_color"
	KeyAccentColor     = "accent_color"
	KeyAccentColor2    = "accent_color_2"
	KeyTextColor       = "text_color"
	KeyDailySections   = "daily_sections"
	KeyWeeklySections  = "weekly_sections"
	KeyMonthlySections = "monthly_sections"
	KeyYearlySections  = "yearly_sections"
	KeyDecorations     = "decorations"
	KeyDays            = "days"
)

// Raw is an unvalidated style structure as produced by a style source.
// Values are whatever JSON decoding produced; nothing is trusted.
type Raw map[string]any

// Decode parses a JSON object into a Raw style. Any other JSON value, or
// malformed input, returns an empty Raw together with the error so callers
// can fall back to defaults field by field.
func Decode(data []byte) (Raw, error) {
	data = bytes.TrimSpace(data)
	var raw Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return Raw{}, fmt.Errorf("decode style: %w", err)
	}
	if raw == nil {
		return Raw{}, fmt.Errorf("decode style: not a JSON object")
	}
	return raw, nil
}

// Encode serializes r as indented JSON.
func (r Raw) Encode() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Detect guesses the descriptor variant of r. Bundle-only keys win; a raw
// style with a "days" list and none of them is a single-page style.
func Detect(r Raw) Variant {
	for _, k := range []string{KeyCollectionName, KeyDailySections, KeyMonthlySections, KeyYearlySections, KeyNotesTitle, KeyWeeklySections} {
		if _, ok := r[k]; ok {
			return VariantBundle
		}
	}
	if _, ok := r[KeyDays]; ok {
		return VariantSingle
	}
	return VariantBundle
}
