package pages

import (
	"strings"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// Single draws the standalone weekly planner: a title band, one row per
// day and the quote centered in a footer.
func (r *Renderer) Single(s style.Single, size canvas.PageSize) (*Page, error) {
	p, err := r.begin(SinglePage, size, s.Background)
	if err != nil {
		return nil, err
	}
	f := p.Frame()

	p.header(s.Accent)
	p.headerTitle(s.Title, 0.40, -1, style.White)

	rows, footer := layout.Single(f, len(s.Days))
	p.dayRows(rows, s.Days, s.Accent, s.Accent2)

	if quote := strings.TrimSpace(s.Quote); quote != "" {
		face := p.face(layout.Pct(footer.Height(), 0.45))
		qW, qH := p.measure(face, quote)
		p.DrawText(quote, layout.Centered(f.W, qW), footer.Top+layout.Centered(footer.Height(), qH), face, s.Text)
	}

	return p.finish(s.Decorations, s.Accent, s.Accent2), nil
}
