// Package decor paints the corner motifs shared by every planner page.
//
// Decoration hints such as "stars" or "hearts" are accepted but only act as
// a presence signal: every page gets the same four filled circles,
// alternating the two accent colors. An empty hint set is replaced by
// [style.DefaultDecoration].
package decor

import (
	"image/color"
	"slices"

	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// Surface is the part of a canvas the painter needs.
type Surface interface {
	Frame() layout.Frame
	FillCircle(cx, cy, r int, col color.Color)
}

// Normalize returns the effective hint set.
func Normalize(hints []string) []string {
	if len(hints) == 0 {
		return []string{style.DefaultDecoration}
	}
	return slices.Clone(hints)
}

// Paint draws the motifs onto s and returns the effective hints.
func Paint(s Surface, hints []string, accent, accent2 style.RGB) []string {
	for _, m := range layout.Motifs(s.Frame()) {
		col := accent2
		if m.Primary {
			col = accent
		}
		s.FillCircle(m.CX, m.CY, m.R, col)
	}
	return Normalize(hints)
}
