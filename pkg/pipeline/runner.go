package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannerkit/pkg/bundle"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/history"
	"github.com/matzehuels/plannerkit/pkg/observability"
	"github.com/matzehuels/plannerkit/pkg/pages"
	"github.com/matzehuels/plannerkit/pkg/sink"
	"github.com/matzehuels/plannerkit/pkg/style"
	"github.com/matzehuels/plannerkit/pkg/stylegen"
)

// Runner executes generations. It holds no per-run state and is safe for
// concurrent use.
type Runner struct {
	Generator stylegen.Generator
	Renderer  *pages.Renderer
	Writer    *sink.Writer
	History   history.Store
	Logger    *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithRenderer sets the page renderer.
func WithRenderer(r *pages.Renderer) Option {
	return func(rn *Runner) { rn.Renderer = r }
}

// WithHistory sets the history store.
func WithHistory(s history.Store) Option {
	return func(rn *Runner) { rn.History = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(rn *Runner) { rn.Logger = l }
}

// NewRunner returns a runner. A nil generator answers every prompt with
// the default style; a nil history store records nothing.
func NewRunner(gen stylegen.Generator, w *sink.Writer, opts ...Option) *Runner {
	r := &Runner{Generator: gen, Writer: w}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if r.Generator == nil {
		r.Generator = stylegen.NewStatic("default", style.DefaultBundle.Raw())
	}
	if r.Renderer == nil {
		r.Renderer = pages.New(pages.WithLogger(r.Logger))
	}
	if r.History == nil {
		r.History = history.NullStore{}
	}
	return r
}

// Execute runs style, render and save for every requested size.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if r.Writer == nil {
		return nil, perrors.New(perrors.ErrCodeInvalidConfig, "pipeline has no artifact writer")
	}
	logger := r.logger(&opts)

	result := &Result{Prompt: opts.Prompt, ID: opts.ID}
	if result.ID == "" {
		result.ID = sink.NewID()
	}

	desc, err := r.Style(ctx, &opts, result)
	if err != nil {
		return nil, err
	}
	logger.Info("style ready",
		"source", result.Source,
		"style", styleName(desc),
		"defaults", len(result.Diagnostics),
		"duration", result.Stats.StyleTime)

	asm := bundle.NewAssembler(r.Renderer, bundle.WithLogger(logger), bundle.WithKinds(opts.kinds...))
	hooks := observability.Pipeline()

	for _, size := range opts.sizes {
		renderStart := time.Now()
		hooks.OnRenderStart(ctx, size.String(), pageCount(desc, opts.kinds))
		coll, err := asm.AssembleDescriptor(ctx, desc, size)
		elapsed := time.Since(renderStart)
		hooks.OnRenderComplete(ctx, size.String(), elapsed, err)
		if err != nil {
			return nil, err
		}
		result.Stats.RenderTime += elapsed
		result.Stats.Pages += len(coll.Pages)

		saveStart := time.Now()
		art, err := r.Writer.Save(ctx, coll, result.ID)
		elapsed = time.Since(saveStart)
		hooks.OnSaveComplete(ctx, size.String(), fileCount(art), elapsed, err)
		if err != nil {
			return nil, err
		}
		result.Stats.SaveTime += elapsed
		result.Artifacts = append(result.Artifacts, art)

		logger.Info("planner saved", "size", size, "pdf", art.PDF, "pages", len(coll.Pages))
	}

	r.record(ctx, result, logger)
	return result, nil
}

// Style runs only the style stage and fills the style fields of result.
func (r *Runner) Style(ctx context.Context, opts *Options, result *Result) (style.Descriptor, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	start := time.Now()
	raw := opts.Style
	result.Source = "inline"

	if raw == nil {
		hooks := observability.Pipeline()
		hooks.OnStyleStart(ctx, opts.Prompt)
		result.Source = stylegen.Name(r.Generator)

		var err error
		raw, err = r.Generator.Generate(ctx, opts.Prompt)
		hooks.OnStyleComplete(ctx, result.Source, time.Since(start), err)
		if err != nil {
			if perrors.GetCode(err) == "" {
				err = perrors.Wrap(perrors.ErrCodeStyleGeneration, err, "generate style")
			}
			return nil, err
		}
	}

	variant := style.Detect(raw)
	if opts.variant != nil {
		variant = *opts.variant
	}
	desc, diags := style.Resolve(raw, variant)
	diags.Log(r.logger(opts))

	result.Variant = variant.String()
	result.Style = desc.Raw()
	result.Diagnostics = diags
	result.Stats.StyleTime = time.Since(start)
	return desc, nil
}

// record appends a history entry. Failures are logged, not returned: the
// artifacts already exist.
func (r *Runner) record(ctx context.Context, result *Result, logger *log.Logger) {
	rec := history.NewRecord(result.Prompt)
	rec.Source = result.Source
	rec.Variant = result.Variant
	rec.Style = result.Style
	rec.DurationMS = (result.Stats.StyleTime + result.Stats.RenderTime + result.Stats.SaveTime).Milliseconds()
	for _, a := range result.Artifacts {
		rec.Artifacts = append(rec.Artifacts, history.Artifact{Size: a.Size, PDF: a.PDF, Preview: a.Preview})
	}
	if err := r.History.Add(ctx, rec); err != nil {
		logger.Warn("history record not saved", "err", err)
		return
	}
	result.HistoryID = rec.ID
}

func (r *Runner) logger(o *Options) *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return r.Logger
}

func styleName(d style.Descriptor) string {
	switch v := d.(type) {
	case style.Bundle:
		return v.StyleName
	case style.Single:
		return v.StyleName
	}
	return ""
}

func pageCount(d style.Descriptor, kinds []pages.Kind) int {
	if d.Variant() == style.VariantSingle {
		return 1
	}
	if len(kinds) == 0 {
		return len(pages.BundleOrder)
	}
	return len(kinds)
}

func fileCount(a *sink.Artifacts) int {
	if a == nil {
		return 0
	}
	return 2 + len(a.Pages)
}
