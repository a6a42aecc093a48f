// Package pipeline runs a planner generation end to end.
//
// One run has three stages, shared by the CLI and the HTTP server:
//
//  1. Style: ask a [stylegen.Generator] for a raw style (or take an inline
//     one) and resolve it into a descriptor, defaulting field by field.
//  2. Render: assemble the pages for every requested page size.
//  3. Save: encode each collection to a PDF and a preview PNG, then append
//     a history record.
//
// Usage:
//
//	runner := pipeline.NewRunner(gen, sink.NewWriter(dir))
//	result, err := runner.Execute(ctx, pipeline.Options{Prompt: "boho"})
//	for _, a := range result.Artifacts {
//	    fmt.Println(a.Size, a.PDF)
//	}
package pipeline

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/pages"
	"github.com/matzehuels/plannerkit/pkg/sink"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// DefaultSizes are rendered when Options.Sizes is empty.
var DefaultSizes = []string{canvas.A4.String(), canvas.USLetter.String()}

// Options describes one generation request. It doubles as the JSON body
// of the HTTP API.
type Options struct {
	// Prompt is the free-text style request. Empty means "surprise me".
	Prompt string `json:"prompt"`

	// Style, when set, is used instead of calling the generator.
	Style style.Raw `json:"style,omitempty"`

	// Variant forces "bundle" or "single". Empty detects it from the style.
	Variant string `json:"variant,omitempty"`

	// Sizes lists page-size identifiers. Empty means DefaultSizes.
	Sizes []string `json:"sizes,omitempty"`

	// Pages restricts a bundle to some page kinds. Empty means all six.
	Pages []string `json:"pages,omitempty"`

	// ID fixes the artifact id. Empty generates one.
	ID string `json:"-"`

	// Logger overrides the runner logger for this request.
	Logger *log.Logger `json:"-"`

	sizes     []canvas.PageSize
	kinds     []pages.Kind
	variant   *style.Variant
	validated bool
}

// ValidateAndSetDefaults checks the options and parses identifiers. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := perrors.ValidatePrompt(o.Prompt); err != nil {
		return err
	}

	ids := o.Sizes
	if len(ids) == 0 {
		ids = DefaultSizes
	}
	sizes, err := canvas.ParsePageSizes(ids)
	if err != nil {
		return err
	}
	o.sizes = sizes

	o.kinds = o.kinds[:0]
	for _, name := range o.Pages {
		k, err := pages.ParseKind(name)
		if err != nil {
			return err
		}
		if !slices.Contains(pages.BundleOrder, k) {
			return perrors.New(perrors.ErrCodeInvalidInput, "page kind %q is not part of a bundle; use variant single instead", name)
		}
		if !slices.Contains(o.kinds, k) {
			o.kinds = append(o.kinds, k)
		}
	}

	if o.Variant != "" {
		v, err := style.ParseVariant(o.Variant)
		if err != nil {
			return err
		}
		o.variant = &v
	}
	if o.ID != "" {
		if err := perrors.ValidateArtifactName("planner_" + o.ID + ".pdf"); err != nil {
			return perrors.New(perrors.ErrCodeInvalidInput, "invalid artifact id %q", o.ID)
		}
	}
	o.validated = true
	return nil
}

// PageSizes returns the parsed sizes. Valid after ValidateAndSetDefaults.
func (o *Options) PageSizes() []canvas.PageSize { return o.sizes }

// Result is the outcome of a run.
type Result struct {
	// ID is the artifact id shared by all sizes.
	ID string `json:"id"`

	// HistoryID identifies the history record, if one was written.
	HistoryID string `json:"history_id,omitempty"`

	Prompt  string `json:"prompt"`
	Source  string `json:"source"`
	Variant string `json:"variant"`

	// Style is the resolved style in wire form.
	Style style.Raw `json:"style"`

	// Diagnostics lists the defaults substituted while resolving.
	Diagnostics style.Diagnostics `json:"-"`

	// Artifacts holds one entry per page size, in request order.
	Artifacts []*sink.Artifacts `json:"artifacts"`

	Stats Stats `json:"stats"`
}

// Artifact returns the artifacts for size, or nil.
func (r *Result) Artifact(size canvas.PageSize) *sink.Artifacts {
	for _, a := range r.Artifacts {
		if a.Size == size.String() {
			return a
		}
	}
	return nil
}

// Stats holds stage timings summed over all sizes.
type Stats struct {
	StyleTime  time.Duration
	RenderTime time.Duration
	SaveTime   time.Duration
	Pages      int
}

// MarshalJSON reports durations in milliseconds.
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		StyleMS  int64 `json:"style_ms"`
		RenderMS int64 `json:"render_ms"`
		SaveMS   int64 `json:"save_ms"`
		Pages    int   `json:"pages"`
	}{s.StyleTime.Milliseconds(), s.RenderTime.Milliseconds(), s.SaveTime.Milliseconds(), s.Pages})
}
