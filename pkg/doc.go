// Package pkg provides the libraries behind plannerkit, a generator of
// printable planner bundles.
//
// # Overview
//
// A planner bundle is six pages (cover, daily, weekly, monthly, yearly,
// notes) drawn at 300 DPI in one visual style. The style is a small JSON
// structure, usually written by an AI model from a free-text prompt, that
// names the collection, picks four colors and lists the section headings of
// each page. Every field is optional: missing or malformed values are
// replaced one by one from a default table, so a bundle always renders.
//
// The data flow:
//
//	prompt
//	   ↓
//	[stylegen] Generator (OpenAI, preset, cache)  → style.Raw
//	   ↓
//	[style] Resolve                               → style.Bundle / style.Single
//	   ↓
//	[bundle] Assembler, per [canvas] page size    → bundle.Collection
//	   ↓
//	[sink] Writer                                 → PDF + PNG preview
//	   ↓
//	[history] Store                               → history.Record
//
// [pipeline] runs all of it and is shared by the CLI and [server].
//
// # Quick Start
//
//	preset, _ := presets.Get("boho")    // or stylegen.NewOpenAI(key)
//	runner := pipeline.NewRunner(preset.Generator(), sink.NewWriter("out"))
//	result, err := runner.Execute(ctx, pipeline.Options{Sizes: []string{"a4"}})
//
// # Main Packages
//
// ## Drawing
//
// [canvas] - Page sizes (A4, US Letter) and the white 300 DPI drawing
// surface.
//
// [fonts] - Font resolution (configured file, system font, embedded Go font,
// fixed bitmap face) and text measurement with fallbacks.
//
// [layout] - Proportional page geometry: margins, header bands, ruled lines,
// section grids, calendar cells.
//
// [decor] - The four corner motif circles painted on every page; decoration
// hints are accepted as a presence signal only.
//
// [pages] - One renderer per page kind plus the single-page weekly planner.
//
// [bundle] - Assembles pages into a collection in bundle order.
//
// ## Styles
//
// [style] - Raw style decoding, variant detection and field-by-field
// resolution with diagnostics.
//
// [stylegen] - Style sources: the OpenAI chat client, static styles, a
// caching wrapper and a fallback chain.
//
// [presets] - Named built-in styles that work without an API key.
//
// ## Output and infrastructure
//
// [sink] - PNG, preview thumbnail and multi-page PDF encoding, and the
// artifact writer.
//
// [cache] - Byte caches (null, file, Redis) used for generated styles.
//
// [history] - Generation records (null, file, MongoDB).
//
// [config] - TOML configuration with environment overrides.
//
// [server] - chi-based web front end and JSON API.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [errors] - Coded errors and input validation.
//
// [httputil] - Retry with exponential backoff for outgoing requests.
//
// [buildinfo] - Version information set at link time.
//
// # Testing
//
//	go test ./...                 # everything
//	go test ./pkg/pages/...       # one package
//	go test -run Example ./pkg/...
//
// [canvas]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/canvas
// [fonts]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/fonts
// [layout]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/layout
// [decor]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/decor
// [pages]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/pages
// [bundle]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/bundle
// [style]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/style
// [stylegen]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/stylegen
// [presets]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/presets
// [sink]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/sink
// [cache]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/cache
// [history]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/history
// [config]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/httputil
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/buildinfo
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/plannerkit/pkg/pipeline
package pkg
