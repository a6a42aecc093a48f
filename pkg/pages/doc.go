// Package pages draws the planner page archetypes.
//
// Each archetype is a method on [Renderer] taking a resolved style and a
// page size and returning a freshly allocated [Page]:
//
//   - Cover: bordered frame, collection name, title, separator, quote and
//     the list of included pages.
//   - Daily: two tall blocks above a 2x2 grid, six labeled ruled blocks.
//   - Weekly: one row per day with a colored day stripe and three lines.
//   - Monthly: a 5x7 calendar grid beside up to four labeled blocks.
//   - Yearly: a 2x2 grid of quarter blocks.
//   - Notes: a titled header over 24 guide lines.
//
// [Renderer.Single] draws the one-page weekly planner from a
// [style.Single] descriptor.
//
// Rendering is deterministic: the same style, page size and font
// configuration always produce identical pixels. A Renderer holds only
// configuration, so one value can serve concurrent renders; every call
// creates its own canvas and font loader.
package pages
