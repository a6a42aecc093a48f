// Package canvas maps page sizes to pixel canvases and wraps the drawing
// surface every planner page paints onto.
//
// Page sizes form a closed set. [ParsePageSize] accepts the wire
// identifiers "a4" and "us_letter"; anything else fails with an error whose
// code is INVALID_PAGE_SIZE and which matches [ErrInvalidPageSize] under
// errors.Is. There is no default canvas.
//
// A [Canvas] is allocated per page, filled with the background color, and
// owned by exactly one renderer. Drawing primitives take integer pixel
// boxes from the layout package and mirror the conventions of a raster
// painter: rectangles are inclusive of their right and bottom edges and
// outlines are drawn inside the box.
package canvas
