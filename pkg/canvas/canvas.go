package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/layout"
)

// Canvas is a background-filled drawing surface for one page.
type Canvas struct {
	size  PageSize
	frame layout.Frame
	dc    *gg.Context
}

// New allocates a canvas for size and fills it with bg.
func New(size PageSize, bg color.Color) (c *Canvas, err error) {
	w, h, err := size.Dimensions()
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			c = nil
			err = perrors.Wrap(perrors.ErrCodeRenderFailed, fmt.Errorf("%v", r), "allocate %dx%d canvas", w, h)
		}
	}()

	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{size: size, frame: layout.NewFrame(w, h), dc: dc}, nil
}

// Size returns the page size the canvas was created for.
func (c *Canvas) Size() PageSize { return c.size }

// Frame returns the margin and header geometry of the canvas.
func (c *Canvas) Frame() layout.Frame { return c.frame }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.frame.W }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.frame.H }

// Image returns the pixel buffer. Callers must not draw on the canvas
// afterwards.
func (c *Canvas) Image() *image.RGBA {
	if rgba, ok := c.dc.Image().(*image.RGBA); ok {
		return rgba
	}
	src := c.dc.Image()
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba
}

// FillRoundedRect fills r with corners of the given radius.
func (c *Canvas) FillRoundedRect(r layout.Rect, radius int, col color.Color) {
	if r.Empty() {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(r.Left), float64(r.Top), float64(r.Width()+1), float64(r.Height()+1), clampRadius(r, radius))
	c.dc.Fill()
}

// StrokeRoundedRect outlines r inside its edges.
func (c *Canvas) StrokeRoundedRect(r layout.Rect, radius, width int, col color.Color) {
	if r.Empty() || width <= 0 {
		return
	}
	half := float64(width) / 2
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawRoundedRectangle(float64(r.Left)+half, float64(r.Top)+half,
		float64(r.Width()+1)-float64(width), float64(r.Height()+1)-float64(width),
		max(0, clampRadius(r, radius)-half))
	c.dc.Stroke()
}

// FillRect fills r.
func (c *Canvas) FillRect(r layout.Rect, col color.Color) {
	if r.Empty() {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(r.Left), float64(r.Top), float64(r.Width()+1), float64(r.Height()+1))
	c.dc.Fill()
}

// StrokeRect outlines r inside its edges.
func (c *Canvas) StrokeRect(r layout.Rect, width int, col color.Color) {
	if r.Empty() || width <= 0 {
		return
	}
	half := float64(width) / 2
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawRectangle(float64(r.Left)+half, float64(r.Top)+half, float64(r.Width()+1)-float64(width), float64(r.Height()+1)-float64(width))
	c.dc.Stroke()
}

// HLine draws a horizontal line from x1 to x2 whose pixel rows straddle y.
func (c *Canvas) HLine(x1, x2, y, width int, col color.Color) {
	if width <= 0 || x2 < x1 {
		return
	}
	// Odd widths sit on a pixel center so the rows are fully covered.
	fy := float64(y)
	if width%2 == 1 {
		fy += 0.5
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawLine(float64(x1), fy, float64(x2+1), fy)
	c.dc.Stroke()
}

// FillCircle fills a circle centered on (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int, col color.Color) {
	if r <= 0 {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawCircle(float64(cx)+0.5, float64(cy)+0.5, float64(r))
	c.dc.Fill()
}

// DrawText paints s with its ascender line at y and its origin at x.
func (c *Canvas) DrawText(s string, x, y int, face font.Face, col color.Color) {
	if s == "" || face == nil {
		return
	}
	ascent := face.Metrics().Ascent.Ceil()
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, float64(x), float64(y+ascent))
}

func clampRadius(r layout.Rect, radius int) float64 {
	limit := min(r.Width(), r.Height()) / 2
	return float64(max(0, min(radius, limit)))
}
