package pages

import (
	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

var monthlyBlock = blockSpec{
	radius:      18,
	labelX:      0.07,
	labelY:      0.12,
	linesTop:    0.08,
	linesBottom: 0.12,
	lineMargin:  0.07,
	lines:       5,
	lineColor:   style.Gray(200),
}

// Monthly draws an empty 5x7 month grid beside up to four labeled blocks.
func (r *Renderer) Monthly(b style.Bundle, size canvas.PageSize) (*Page, error) {
	p, err := r.begin(Monthly, size, b.Background)
	if err != nil {
		return nil, err
	}
	f := p.Frame()

	p.header(b.Accent)
	p.headerTitle("Monthly Overview", 0.40, -1, style.White)

	m := layout.Monthly(f, len(b.MonthlySections))
	cellFill := b.Background.Tint(8)
	for _, cell := range m.Cells {
		p.FillRect(cell, cellFill)
		p.StrokeRect(cell, 2, style.Gray(210))
	}

	if len(m.Blocks) > 0 {
		face := p.face(layout.Pct(m.Blocks[0].Height(), 0.22))
		for i, rect := range m.Blocks {
			fill := b.Accent2
			if i%2 != 0 {
				fill = b.Background
			}
			p.block(rect, fill, b.MonthlySections[i], face, b.Text, monthlyBlock)
		}
	}

	return p.finish(b.Decorations, b.Accent, b.Accent2), nil
}
