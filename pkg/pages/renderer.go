package pages

import (
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/decor"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/fonts"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// Page is one rendered page. The image is never modified after the
// renderer returns it.
type Page struct {
	Kind  Kind
	Size  canvas.PageSize
	Image *image.RGBA
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFontOptions sets the options of the per-render font loader.
func WithFontOptions(opts ...fonts.Option) Option {
	return func(r *Renderer) { r.fontOpts = opts }
}

// WithMetrics sets the text measurer.
func WithMetrics(m *fonts.Metrics) Option {
	return func(r *Renderer) { r.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// Renderer draws planner pages.
type Renderer struct {
	fontOpts []fonts.Option
	metrics  *fonts.Metrics
	logger   *log.Logger
}

// New returns a Renderer. Without options it looks up the system font,
// falls back to the embedded one, and discards logs.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if r.metrics == nil {
		r.metrics = fonts.NewMetrics(fonts.WithMetricsLogger(r.logger))
	}
	return r
}

// Render draws one bundle page by kind.
func (r *Renderer) Render(kind Kind, b style.Bundle, size canvas.PageSize) (*Page, error) {
	switch kind {
	case Cover:
		return r.Cover(b, size)
	case Daily:
		return r.Daily(b, size)
	case Weekly:
		return r.Weekly(b, size)
	case Monthly:
		return r.Monthly(b, size)
	case Yearly:
		return r.Yearly(b, size)
	case Notes:
		return r.Notes(b, size)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "page kind %s is not part of a bundle", kind)
	}
}

// painter is the per-render drawing state.
type painter struct {
	*canvas.Canvas
	kind    Kind
	start   time.Time
	fonts   *fonts.Loader
	metrics *fonts.Metrics
	logger  *log.Logger
}

func (r *Renderer) begin(kind Kind, size canvas.PageSize, bg style.RGB) (*painter, error) {
	start := time.Now()
	c, err := canvas.New(size, bg)
	if err != nil {
		return nil, err
	}
	opts := append([]fonts.Option{fonts.WithLogger(r.logger)}, r.fontOpts...)
	return &painter{
		Canvas:  c,
		kind:    kind,
		start:   start,
		fonts:   fonts.NewLoader(opts...),
		metrics: r.metrics,
		logger:  r.logger,
	}, nil
}

func (p *painter) face(px int) font.Face {
	return p.fonts.Face(px)
}

func (p *painter) measure(face font.Face, s string) (int, int) {
	return p.metrics.Measure(face, s)
}

// header fills the top band.
func (p *painter) header(fill style.RGB) {
	p.FillRoundedRect(p.Frame().Header(), layout.HeaderRadius, fill)
}

// headerTitle draws title vertically centered in the header band at x, or
// horizontally centered when x is negative.
func (p *painter) headerTitle(title string, sizeRatio float64, x int, col style.RGB) {
	f := p.Frame()
	face := p.face(layout.Pct(f.HeaderH, sizeRatio))
	tw, th := p.measure(face, title)
	if x < 0 {
		x = layout.Centered(f.W, tw)
	}
	p.DrawText(title, x, f.HeaderTextY(th), face, col)
}

// rule draws a horizontal line at each y between left and right.
func (p *painter) rule(left, right int, ys []int, width int, col style.RGB) {
	for _, y := range ys {
		p.HLine(left, right, y, width, col)
	}
}

// blockSpec describes a labeled ruled block. Ratios are relative to the
// block's own width or height.
type blockSpec struct {
	radius      int
	labelX      float64
	labelY      float64
	linesTop    float64
	linesBottom float64
	lineMargin  float64
	lines       int
	lineColor   style.RGB
}

// block fills r, writes label at its top-left and rules the remainder.
func (p *painter) block(r layout.Rect, fill style.RGB, label string, face font.Face, textColor style.RGB, spec blockSpec) {
	p.FillRoundedRect(r, spec.radius, fill)

	w, h := r.Width(), r.Height()
	_, sh := p.measure(face, label)
	sx := r.Left + layout.Pct(w, spec.labelX)
	sy := r.Top + layout.Pct(h, spec.labelY)
	p.DrawText(label, sx, sy, face, textColor)

	top := sy + sh + layout.Pct(h, spec.linesTop)
	bottom := r.Bottom - layout.Pct(h, spec.linesBottom)
	margin := layout.Pct(w, spec.lineMargin)
	p.rule(r.Left+margin, r.Right-margin, layout.RuledLines(top, bottom, spec.lines), 2, spec.lineColor)
}

// finish paints the decorations and hands the pixel buffer over.
func (p *painter) finish(hints []string, accent, accent2 style.RGB) *Page {
	effective := decor.Paint(p.Canvas, hints, accent, accent2)
	if len(hints) == 0 {
		p.logger.Debug("decorations missing, using default", "field", style.KeyDecorations, "fallback", effective)
	}
	p.logger.Debug("page rendered", "kind", p.kind, "size", p.Size(), "decorations", effective, "font", p.fonts.Source(), "elapsed", time.Since(p.start))
	return &Page{Kind: p.kind, Size: p.Size(), Image: p.Image()}
}
