package pages

import (
	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// DailyPadLabel fills daily blocks beyond the supplied sections.
const DailyPadLabel = "Notes"

var (
	dailyUpper = blockSpec{
		radius:      24,
		labelX:      0.06,
		labelY:      0.18,
		linesTop:    0.10,
		linesBottom: 0.10,
		lineMargin:  0.08,
		lines:       8,
		lineColor:   style.Gray(190),
	}
	dailyLower = blockSpec{
		radius:      20,
		labelX:      0.06,
		labelY:      0.12,
		linesTop:    0.08,
		linesBottom: 0.12,
		lineMargin:  0.08,
		lines:       6,
		lineColor:   style.Gray(200),
	}
)

// DailyLabels returns exactly six block labels: the first six sections,
// padded with DailyPadLabel.
func DailyLabels(sections []string) []string {
	labels := make([]string, layout.DailyCapacity)
	for i := range labels {
		if i < len(sections) {
			labels[i] = sections[i]
		} else {
			labels[i] = DailyPadLabel
		}
	}
	return labels
}

// Daily draws the daily planner page.
func (r *Renderer) Daily(b style.Bundle, size canvas.PageSize) (*Page, error) {
	p, err := r.begin(Daily, size, b.Background)
	if err != nil {
		return nil, err
	}
	f := p.Frame()

	p.header(b.Accent)
	p.headerTitle("Daily Planner", 0.45, f.MarginX+layout.Pct(f.W, 0.02), style.White)

	dateFace := p.face(layout.Pct(f.HeaderH, 0.28))
	dW, dH := p.measure(dateFace, "Date:")
	dX := f.W - f.MarginX - dW - layout.Pct(f.W, 0.08)
	dY := f.HeaderTextY(dH)
	p.DrawText("Date:", dX, dY, dateFace, style.White)
	p.HLine(dX+dW+10, f.W-f.MarginX-10, dY+dH/2, 2, style.White)

	if len(b.DailySections) > layout.DailyCapacity {
		p.logger.Debug("daily sections truncated", "have", len(b.DailySections), "capacity", layout.DailyCapacity)
	}
	labels := DailyLabels(b.DailySections)
	sectionFace := p.face(layout.Pct(f.H, 0.03))
	d := layout.Daily(f)

	for i, rect := range d.Upper {
		fill := b.Accent2
		if i == 1 {
			fill = b.Background.Tint(10)
		}
		p.block(rect, fill, labels[i], sectionFace, b.Text, dailyUpper)
	}
	for i, rect := range d.Lower {
		row, col := i/2, i%2
		fill := b.Background
		if (row+col)%2 != 0 {
			fill = b.Accent2
		}
		p.block(rect, fill, labels[2+i], sectionFace, b.Text, dailyLower)
	}

	return p.finish(b.Decorations, b.Accent, b.Accent2), nil
}
