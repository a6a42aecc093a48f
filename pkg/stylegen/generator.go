package stylegen

import (
	"context"
	"io"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannerkit/pkg/style"
)

// Generator produces a raw style from a user prompt. An empty prompt asks
// the generator to pick something on its own.
type Generator interface {
	Generate(ctx context.Context, prompt string) (style.Raw, error)
}

// Namer is implemented by generators with a stable source name, reported
// to observability hooks and stored in history records.
type Namer interface {
	Name() string
}

// Name returns g's name, or "custom" for generators without one.
func Name(g Generator) string {
	if n, ok := g.(Namer); ok {
		return n.Name()
	}
	return "custom"
}

// Func adapts a function to the Generator interface.
type Func func(ctx context.Context, prompt string) (style.Raw, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, prompt string) (style.Raw, error) { return f(ctx, prompt) }

// Static always returns the same raw style and ignores the prompt.
type Static struct {
	name string
	raw  style.Raw
}

// NewStatic returns a generator answering with a copy of raw.
func NewStatic(name string, raw style.Raw) *Static {
	return &Static{name: name, raw: maps.Clone(raw)}
}

// Generate returns a shallow copy of the static style.
func (s *Static) Generate(context.Context, string) (style.Raw, error) {
	return maps.Clone(s.raw), nil
}

// Name implements Namer.
func (s *Static) Name() string { return s.name }

// Fallback answers from a secondary generator whenever the primary fails.
// Context cancellation is not masked.
type Fallback struct {
	primary   Generator
	secondary Generator
	logger    *log.Logger
}

// FallbackOption configures a Fallback.
type FallbackOption func(*Fallback)

// WithFallbackLogger sets the logger that reports primary failures.
func WithFallbackLogger(l *log.Logger) FallbackOption {
	return func(f *Fallback) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFallback wraps primary so that its errors are replaced by the answer
// of secondary.
func NewFallback(primary, secondary Generator, opts ...FallbackOption) *Fallback {
	f := &Fallback{
		primary:   primary,
		secondary: secondary,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Generate implements Generator.
func (f *Fallback) Generate(ctx context.Context, prompt string) (style.Raw, error) {
	raw, err := f.primary.Generate(ctx, prompt)
	if err == nil {
		return raw, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	f.logger.Warn("style generation failed, using fallback style",
		"source", Name(f.primary), "fallback", Name(f.secondary), "err", err)
	return f.secondary.Generate(ctx, prompt)
}

// Name implements Namer.
func (f *Fallback) Name() string { return Name(f.primary) }
