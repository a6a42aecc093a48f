// Package bundle assembles planner pages into collections.
//
// [Assembler.Assemble] renders the six bundle pages for one style and page
// size in the fixed order cover, daily, weekly, monthly, yearly, notes and
// designates the cover as the preview. [Assembler.AssembleSingle] wraps the
// one-page planner in the same shape. Neither performs I/O; encoding is
// left to the sink package.
package bundle

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/pages"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// Collection is the ordered page sequence for one style and page size.
type Collection struct {
	Size    canvas.PageSize
	Variant style.Variant
	Pages   []*pages.Page
}

// Preview returns the page shown as the single-image preview, which is
// always the first page.
func (c *Collection) Preview() *pages.Page {
	if c == nil || len(c.Pages) == 0 {
		return nil
	}
	return c.Pages[0]
}

// Kinds lists the kinds of the pages in order.
func (c *Collection) Kinds() []pages.Kind {
	kinds := make([]pages.Kind, len(c.Pages))
	for i, p := range c.Pages {
		kinds[i] = p.Kind
	}
	return kinds
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(a *Assembler) { a.logger = logger }
}

// WithKinds restricts a bundle to a subset of its pages. Order is always
// the bundle order regardless of the order given.
func WithKinds(kinds ...pages.Kind) Option {
	return func(a *Assembler) { a.only = kinds }
}

// Assembler renders collections with a page renderer.
type Assembler struct {
	renderer *pages.Renderer
	logger   *log.Logger
	only     []pages.Kind
}

// NewAssembler returns an Assembler drawing with r. A nil r uses
// pages.New().
func NewAssembler(r *pages.Renderer, opts ...Option) *Assembler {
	a := &Assembler{renderer: r}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if a.renderer == nil {
		a.renderer = pages.New(pages.WithLogger(a.logger))
	}
	return a
}

func (a *Assembler) kinds() []pages.Kind {
	if len(a.only) == 0 {
		return pages.BundleOrder
	}
	var out []pages.Kind
	for _, k := range pages.BundleOrder {
		for _, want := range a.only {
			if k == want {
				out = append(out, k)
				break
			}
		}
	}
	return out
}

// Assemble renders the bundle pages of b at size. The context is checked
// between pages so an abandoned request stops early.
func (a *Assembler) Assemble(ctx context.Context, b style.Bundle, size canvas.PageSize) (*Collection, error) {
	if !size.Valid() {
		_, _, err := size.Dimensions()
		return nil, err
	}
	kinds := a.kinds()
	if len(kinds) == 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "no bundle pages selected")
	}

	start := time.Now()
	c := &Collection{Size: size, Variant: style.VariantBundle, Pages: make([]*pages.Page, 0, len(kinds))}
	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeTimeout, err, "assemble %s bundle", size)
		}
		p, err := a.renderer.Render(kind, b, size)
		if err != nil {
			return nil, err
		}
		c.Pages = append(c.Pages, p)
	}
	a.logger.Debug("bundle assembled", "size", size, "pages", len(c.Pages), "elapsed", time.Since(start))
	return c, nil
}

// AssembleSingle renders the one-page planner of s at size.
func (a *Assembler) AssembleSingle(ctx context.Context, s style.Single, size canvas.PageSize) (*Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeTimeout, err, "assemble %s single page", size)
	}
	p, err := a.renderer.Single(s, size)
	if err != nil {
		return nil, err
	}
	return &Collection{Size: size, Variant: style.VariantSingle, Pages: []*pages.Page{p}}, nil
}

// AssembleDescriptor dispatches on the descriptor variant.
func (a *Assembler) AssembleDescriptor(ctx context.Context, d style.Descriptor, size canvas.PageSize) (*Collection, error) {
	switch v := d.(type) {
	case style.Bundle:
		return a.Assemble(ctx, v, size)
	case style.Single:
		return a.AssembleSingle(ctx, v, size)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidStyle, "unsupported style descriptor %T", d)
	}
}
