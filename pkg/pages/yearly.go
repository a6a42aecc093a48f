package pages

import (
	"fmt"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

var yearlyBlock = blockSpec{
	radius:      24,
	labelX:      0.07,
	labelY:      0.10,
	linesTop:    0.08,
	linesBottom: 0.12,
	lineMargin:  0.07,
	lines:       7,
	lineColor:   style.Gray(230),
}

// YearlyLabels returns the four quarter labels, synthesizing "Q{n}" for
// missing sections.
func YearlyLabels(sections []string) []string {
	labels := make([]string, layout.YearlyCapacity)
	for i := range labels {
		if i < len(sections) {
			labels[i] = sections[i]
		} else {
			labels[i] = fmt.Sprintf("Q%d", i+1)
		}
	}
	return labels
}

// Yearly draws a 2x2 grid of quarter blocks.
func (r *Renderer) Yearly(b style.Bundle, size canvas.PageSize) (*Page, error) {
	p, err := r.begin(Yearly, size, b.Background)
	if err != nil {
		return nil, err
	}
	f := p.Frame()

	p.header(b.Accent2)
	p.headerTitle("Yearly Planner", 0.40, -1, b.Text)

	cells := layout.Yearly(f)
	face := p.face(layout.Pct(cells[0].Height(), 0.18))
	for i, label := range YearlyLabels(b.YearlySections) {
		fill := b.Accent
		if i%2 != 0 {
			fill = b.Accent2
		}
		p.block(cells[i], fill, label, face, b.Text, yearlyBlock)
	}

	return p.finish(b.Decorations, b.Accent, b.Accent2), nil
}
