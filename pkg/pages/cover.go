package pages

import (
	"strings"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// CoverFooter lists the pages included in a bundle.
const CoverFooter = "Includes: Daily • Weekly • Monthly • Yearly • Notes"

// Cover draws the bundle cover: a bordered frame holding a centered stack
// of collection name, title, separator, optional quote and footer.
func (r *Renderer) Cover(b style.Bundle, size canvas.PageSize) (*Page, error) {
	p, err := r.begin(Cover, size, b.Background)
	if err != nil {
		return nil, err
	}
	f := p.Frame()

	p.StrokeRoundedRect(f.Inner(), layout.Pct(f.MinDim(), layout.CoverBorderPct), 6, b.Accent)

	titleFace := p.face(layout.Pct(f.H, 0.07))
	subtitleFace := p.face(layout.Pct(f.H, 0.035))
	quoteFace := p.face(layout.Pct(f.H, 0.03))

	cnW, cnH := p.measure(subtitleFace, b.CollectionName)
	cnY := f.MarginY + layout.Pct(f.H, 0.10)
	p.DrawText(b.CollectionName, layout.Centered(f.W, cnW), cnY, subtitleFace, b.Text)

	tW, tH := p.measure(titleFace, b.Title)
	tY := cnY + cnH + layout.Pct(f.H, 0.03)
	p.DrawText(b.Title, layout.Centered(f.W, tW), tY, titleFace, b.Text)

	lineY := tY + tH + layout.Pct(f.H, 0.02)
	lineMargin := layout.Pct(f.W, 0.25)
	p.HLine(lineMargin, f.W-lineMargin, lineY, 5, b.Accent)

	if quote := strings.TrimSpace(b.Quote); quote != "" {
		qW, _ := p.measure(quoteFace, quote)
		p.DrawText(quote, layout.Centered(f.W, qW), lineY+layout.Pct(f.H, 0.03), quoteFace, b.Text)
	}

	footerFace := p.face(layout.Pct(f.H, 0.03))
	fW, _ := p.measure(footerFace, CoverFooter)
	p.DrawText(CoverFooter, layout.Centered(f.W, fW), f.H-f.MarginY-layout.Pct(f.H, 0.10), footerFace, b.Text)

	return p.finish(b.Decorations, b.Accent, b.Accent2), nil
}
