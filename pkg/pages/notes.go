package pages

import (
	"strings"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// Notes draws a titled header over evenly spaced guide lines.
func (r *Renderer) Notes(b style.Bundle, size canvas.PageSize) (*Page, error) {
	p, err := r.begin(Notes, size, b.Background)
	if err != nil {
		return nil, err
	}
	f := p.Frame()

	title := b.NotesTitle
	if strings.TrimSpace(title) == "" {
		title = style.DefaultBundle.NotesTitle
	}
	p.header(b.Accent)
	p.headerTitle(title, 0.40, f.MarginX+layout.Pct(f.W, 0.03), style.White)
	p.rule(f.MarginX, f.W-f.MarginX, layout.Notes(f), 1, style.Gray(210))

	return p.finish(b.Decorations, b.Accent, b.Accent2), nil
}
