package bundle

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/fonts"
	"github.com/matzehuels/plannerkit/pkg/pages"
	"github.com/matzehuels/plannerkit/pkg/style"
)

func newTestAssembler(opts ...Option) *Assembler {
	return NewAssembler(pages.New(pages.WithFontOptions(fonts.WithSystemLookup(false))), opts...)
}

func TestAssemble(t *testing.T) {
	a := newTestAssembler()
	for _, size := range canvas.PageSizes() {
		t.Run(size.String(), func(t *testing.T) {
			b, _ := style.ResolveBundle(style.Raw{})
			c, err := a.Assemble(context.Background(), b, size)
			if err != nil {
				t.Fatal(err)
			}
			if len(c.Pages) != 6 {
				t.Fatalf("pages = %d, want 6", len(c.Pages))
			}
			if !slices.Equal(c.Kinds(), pages.BundleOrder) {
				t.Errorf("Kinds() = %v, want %v", c.Kinds(), pages.BundleOrder)
			}
			w, h, _ := size.Dimensions()
			for _, p := range c.Pages {
				if b := p.Image.Bounds(); b.Dx() != w || b.Dy() != h {
					t.Errorf("%v bounds = %v, want %dx%d", p.Kind, b, w, h)
				}
			}
			if c.Preview() != c.Pages[0] || c.Preview().Kind != pages.Cover {
				t.Error("preview must be the cover page")
			}
		})
	}
}

func TestAssemblePartialStyle(t *testing.T) {
	raw := style.Raw{
		style.KeyTitle:          "Only a title",
		style.KeyAccentColor:    "#12345",
		style.KeyYearlySections: []any{"H1"},
	}
	b, _ := style.ResolveBundle(raw)
	c, err := newTestAssembler().Assemble(context.Background(), b, canvas.A4)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Pages) != 6 {
		t.Errorf("pages = %d, want 6", len(c.Pages))
	}
}

func TestAssembleInvalidSize(t *testing.T) {
	c, err := newTestAssembler().Assemble(context.Background(), style.DefaultBundle, canvas.PageSize(42))
	if err == nil || c != nil {
		t.Fatalf("Assemble(invalid) = %v, %v", c, err)
	}
	if !errors.Is(err, canvas.ErrInvalidPageSize) {
		t.Errorf("error = %v, want ErrInvalidPageSize", err)
	}
}

func TestAssembleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestAssembler().Assemble(ctx, style.DefaultBundle, canvas.A4); err == nil {
		t.Error("Assemble with canceled context should fail")
	}
}

func TestWithKinds(t *testing.T) {
	a := newTestAssembler(WithKinds(pages.Notes, pages.Cover))
	c, err := a.Assemble(context.Background(), style.DefaultBundle, canvas.USLetter)
	if err != nil {
		t.Fatal(err)
	}
	if want := []pages.Kind{pages.Cover, pages.Notes}; !slices.Equal(c.Kinds(), want) {
		t.Errorf("Kinds() = %v, want %v", c.Kinds(), want)
	}
}

func TestAssembleDescriptor(t *testing.T) {
	a := newTestAssembler()
	c, err := a.AssembleDescriptor(context.Background(), style.DefaultSingle, canvas.A4)
	if err != nil {
		t.Fatal(err)
	}
	if c.Variant != style.VariantSingle || len(c.Pages) != 1 || c.Preview().Kind != pages.SinglePage {
		t.Errorf("single collection = %+v", c)
	}
}

func TestPreviewEmpty(t *testing.T) {
	var c *Collection
	if c.Preview() != nil {
		t.Error("nil collection preview should be nil")
	}
}
