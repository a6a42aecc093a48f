// Package sink encodes planner collections into files.
//
// # Formats
//
//   - [EncodePNG]: one page as a lossless PNG.
//   - [EncodePreview]: the preview page, optionally scaled down to a
//     thumbnail width.
//   - [EncodePDF]: every page of a collection as one PDF page at 300 DPI,
//     so the physical page size matches the canvas exactly.
//
// # Artifacts
//
// A [Writer] stores a collection under a directory using the names
//
//	planner_{size}_{id}.pdf
//	planner_{size}_{id}_preview.png
//
// plus, when enabled, one PNG per page. Ids are random 32-digit hex
// strings unless the caller supplies one, which lets the A4 and US Letter
// renders of one request share an id.
package sink
