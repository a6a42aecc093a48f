package pages

import (
	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

const (
	weeklyStripeRadius = 16
	weeklyLines        = 3
)

// Weekly draws one row per day: a colored stripe holding the day name and
// a ruled region for free text.
func (r *Renderer) Weekly(b style.Bundle, size canvas.PageSize) (*Page, error) {
	p, err := r.begin(Weekly, size, b.Background)
	if err != nil {
		return nil, err
	}

	p.header(b.Accent2)
	p.headerTitle("Week at a Glance", 0.40, -1, b.Text)
	p.dayRows(layout.Weekly(p.Frame(), len(b.WeeklySections)), b.WeeklySections, b.Accent, b.Accent2)

	return p.finish(b.Decorations, b.Accent, b.Accent2), nil
}

// dayRows paints one stripe and ruled region per day. Stripes alternate
// accent and accent2 by index parity.
func (p *painter) dayRows(w layout.WeeklyLayout, days []string, accent, accent2 style.RGB) {
	if len(w.Rows) == 0 {
		return
	}
	f := p.Frame()
	rowH := w.Rows[0].Height()
	face := p.face(layout.Pct(rowH, 0.40))

	for i, day := range days {
		if i >= len(w.Rows) {
			break
		}
		row := w.Rows[i]
		stripe := w.Stripe(i)
		fill := accent
		if i%2 != 0 {
			fill = accent2
		}
		p.FillRoundedRect(stripe, weeklyStripeRadius, fill)

		dW, dH := p.measure(face, day)
		p.DrawText(day, stripe.Left+layout.Centered(w.StripeW, dW), row.Top+layout.Centered(rowH, dH), face, style.White)

		inset := layout.Pct(rowH, 0.15)
		p.rule(w.LinesLeft, f.W-f.MarginX, layout.RuledLines(row.Top+inset, row.Bottom-inset, weeklyLines), 2, style.Gray(190))
	}
}
