package layout

import "math"

// Rect is an axis-aligned region with inclusive edges, matching how the
// painter treats [left, top, right, bottom] boxes.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no positive area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Contains reports whether (x, y) lies within r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Center returns the integer midpoint of r.
func (r Rect) Center() (x, y int) {
	return r.Left + r.Width()/2, r.Top + r.Height()/2
}

// Pct returns v*p truncated toward zero.
func Pct(v int, p float64) int {
	return int(float64(v) * p)
}

// MarginRatio is the share of each canvas dimension reserved as margin.
const MarginRatio = 0.06

// Margins returns the horizontal and vertical margins of a w x h canvas,
// rounded to the nearest pixel.
func Margins(w, h int) (mx, my int) {
	return int(math.Round(float64(w) * MarginRatio)), int(math.Round(float64(h) * MarginRatio))
}

// Centered returns the offset that centers an extent of size inside span.
// Unknown extents (zero) center on the span's midpoint.
func Centered(span, size int) int {
	return floorDiv(span-size, 2)
}

// RuledLines returns the y coordinates of n evenly spaced lines from top
// toward bottom. Spacing is the integer share of the span over n-1
// intervals, so the last line may sit slightly above bottom. No lines are
// returned when n < 2 or when the span is too small to keep them strictly
// increasing.
func RuledLines(top, bottom, n int) []int {
	if n < 2 {
		return nil
	}
	spacing := floorDiv(bottom-top, n-1)
	if spacing <= 0 {
		return nil
	}
	ys := make([]int, n)
	for j := range ys {
		ys[j] = top + j*spacing
	}
	return ys
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
