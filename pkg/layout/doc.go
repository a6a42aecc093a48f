// Package layout computes the page geometry shared by every planner page.
//
// All values are integer pixel coordinates derived as truncated proportions
// of the canvas or of a parent region, so two calls with the same inputs
// always produce the same regions. Nothing here draws; the pages package
// paints into the rectangles returned by these functions.
//
// A [Frame] describes one canvas: its dimensions, margins, and the header
// band every archetype except the cover places at the top. The per-archetype
// helpers ([Daily], [Weekly], [Monthly], [Yearly], [Notes]) partition the
// body below the header, and [RuledLines] spaces guide lines inside a region.
package layout
