package layout

// Proportions shared by the banded page archetypes.
const (
	HeaderRatio    = 0.10
	HeaderRadius   = 30
	BodyGapRatio   = 0.03
	NotesGapRatio  = 0.04
	DecorRatio     = 0.02
	CoverBorderPct = 0.03
)

// Frame is the outer geometry of one canvas.
type Frame struct {
	W, H    int
	MarginX int
	MarginY int
	HeaderH int
}

// NewFrame derives margins and header height for a w x h canvas.
func NewFrame(w, h int) Frame {
	mx, my := Margins(w, h)
	return Frame{W: w, H: h, MarginX: mx, MarginY: my, HeaderH: Pct(h, HeaderRatio)}
}

// Inner is the region inside the margins.
func (f Frame) Inner() Rect {
	return Rect{Left: f.MarginX, Top: f.MarginY, Right: f.W - f.MarginX, Bottom: f.H - f.MarginY}
}

// Header is the colored band at the top of the inner region.
func (f Frame) Header() Rect {
	return Rect{Left: f.MarginX, Top: f.MarginY, Right: f.W - f.MarginX, Bottom: f.MarginY + f.HeaderH}
}

// Body is the region below the header, separated from it by gap*H.
func (f Frame) Body(gap float64) Rect {
	return Rect{
		Left:   f.MarginX,
		Top:    f.MarginY + f.HeaderH + Pct(f.H, gap),
		Right:  f.W - f.MarginX,
		Bottom: f.H - f.MarginY,
	}
}

// InnerWidth is the width between the horizontal margins.
func (f Frame) InnerWidth() int { return f.W - 2*f.MarginX }

// MinDim returns the shorter canvas dimension.
func (f Frame) MinDim() int { return min(f.W, f.H) }

// HeaderTextY returns the top offset that vertically centers text of
// height th inside the header band.
func (f Frame) HeaderTextY(th int) int {
	return f.MarginY + floorDiv(f.HeaderH-th, 2)
}
