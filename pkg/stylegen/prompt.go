package stylegen

import (
	"strings"

	"github.com/matzehuels/plannerkit/pkg/style"
)

const bundleInstruction = `You are a graphic designer specialized in printable planner bundles for Etsy.
Design a coordinated planner collection with a clear, aesthetically pleasing style.

Return ONLY valid JSON (no markdown, no explanation).
Schema:

{
  "collection_name": "Name of the set, e.g. 'Cozy Pastel Week'",
  "title": "Main title for weekly planner cover, e.g. 'Weekly Planner'",
  "style_name": "Short style name, e.g. 'Boho Pastel', 'Minimal Neutral'",
  "background_color": "#RRGGBB",
  "accent_color": "#RRGGBB",
  "accent_color_2": "#RRGGBB",
  "text_color": "#RRGGBB",
  "quote": "Short motivational quote (max 80 chars)",
  "daily_sections": ["Section title for daily page 1", "Section title for daily page 2", "..."],
  "weekly_sections": ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"],
  "monthly_sections": ["Goals", "Important Dates", "Bills", "To-Do"],
  "yearly_sections": ["Q1", "Q2", "Q3", "Q4"],
  "decorations": ["short words describing doodles, e.g. 'stars', 'plants', 'hearts'"],
  "notes_title": "Title for notes page, e.g. 'Notes' or 'Brain Dump'"
}

Rules:
- Use soft, print-friendly colors that look good when printed.
- Create a coherent aesthetic across all pages (same palette and vibe).
- daily_sections should have between 4 and 8 items.
- Keep all text in English.
- Make the overall style clearly different every time (e.g. kawaii pastel, boho, modern minimal, retro).`

const singleInstruction = `You are a graphic designer specialized in printable weekly planners.
Design one weekly planner page with a clear, aesthetically pleasing style.

Return ONLY valid JSON (no markdown, no explanation).
Schema:

{
  "title": "Page title, e.g. 'Weekly Planner'",
  "style_name": "Short style name, e.g. 'Boho Pastel'",
  "background_color": "#RRGGBB",
  "accent_color": "#RRGGBB",
  "accent_color_2": "#RRGGBB",
  "text_color": "#RRGGBB",
  "quote": "Short motivational quote (max 80 chars)",
  "days": ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"],
  "decorations": ["short words describing doodles"]
}

Rules:
- Use soft, print-friendly colors that look good when printed.
- Keep all text in English.`

// SurprisePrompt is sent in place of an empty user prompt.
const SurprisePrompt = "Surprise me with a unique planner bundle style with fun decorations."

func instruction(v style.Variant) string {
	if v == style.VariantSingle {
		return singleInstruction
	}
	return bundleInstruction
}

func userContent(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = SurprisePrompt
	}
	return "User style prompt: " + prompt
}

// stripFences removes a surrounding markdown code fence, which models add
// despite being told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
