package pages

import (
	"bytes"
	"image"
	"image/color"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/fonts"
	"github.com/matzehuels/plannerkit/pkg/layout"
	"github.com/matzehuels/plannerkit/pkg/style"
)

func newTestRenderer(opts ...Option) *Renderer {
	base := []Option{WithFontOptions(fonts.WithSystemLookup(false))}
	return New(append(base, opts...)...)
}

func rgba(c style.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 0xff}
}

func samePixels(a, b *image.RGBA) bool {
	return a.Bounds() == b.Bounds() && bytes.Equal(a.Pix, b.Pix)
}

func render(t *testing.T, r *Renderer, kind Kind, b style.Bundle, size canvas.PageSize) *Page {
	t.Helper()
	p, err := r.Render(kind, b, size)
	if err != nil {
		t.Fatalf("Render(%v, %v) error = %v", kind, size, err)
	}
	return p
}

func TestRenderDimensions(t *testing.T) {
	r := newTestRenderer()
	b := style.DefaultBundle.Clone()
	for _, size := range canvas.PageSizes() {
		w, h, _ := size.Dimensions()
		for _, kind := range BundleOrder {
			t.Run(size.String()+"/"+kind.String(), func(t *testing.T) {
				p := render(t, r, kind, b, size)
				if p.Kind != kind || p.Size != size {
					t.Errorf("page = %v/%v, want %v/%v", p.Kind, p.Size, kind, size)
				}
				if got := p.Image.Bounds(); got.Dx() != w || got.Dy() != h {
					t.Errorf("bounds = %v, want %dx%d", got, w, h)
				}
			})
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	r := newTestRenderer()
	if p, err := r.Cover(style.DefaultBundle, canvas.PageSize(0)); err == nil || p != nil {
		t.Errorf("Cover(invalid) = %v, %v; want nil, error", p, err)
	}
	if _, err := r.Render(SinglePage, style.DefaultBundle, canvas.A4); err == nil {
		t.Error("Render(SinglePage) should fail for a bundle")
	}
}

func TestRenderIdempotent(t *testing.T) {
	r := newTestRenderer()
	for _, kind := range []Kind{Cover, Daily, Notes} {
		a := render(t, r, kind, style.DefaultBundle, canvas.A4)
		b := render(t, r, kind, style.DefaultBundle, canvas.A4)
		if !samePixels(a.Image, b.Image) {
			t.Errorf("%v rendered twice differs", kind)
		}
	}
}

func TestWeeklyRows(t *testing.T) {
	b := style.DefaultBundle.Clone()
	b.WeeklySections = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	p := render(t, newTestRenderer(), Weekly, b, canvas.A4)

	f := layout.NewFrame(2480, 3508)
	w := layout.Weekly(f, 7)
	bg := rgba(b.Background)
	line := rgba(style.Gray(190))

	for i, row := range w.Rows {
		stripe := w.Stripe(i)
		want := rgba(b.Accent)
		if i%2 != 0 {
			want = rgba(b.Accent2)
		}
		if got := p.Image.RGBAAt(stripe.Left+30, row.Top+5); got != want {
			t.Errorf("row %d stripe = %v, want %v", i, got, want)
		}
		if h := row.Height(); h != w.Rows[0].Height() {
			t.Errorf("row %d height = %d, want %d", i, h, w.Rows[0].Height())
		}

		x := w.LinesLeft + 100
		runs, in := 0, false
		for y := row.Top; y <= row.Bottom; y++ {
			px := p.Image.RGBAAt(x, y)
			if px == line && !in {
				runs++
			}
			in = px == line
			if px != line && px != bg {
				t.Fatalf("row %d: unexpected pixel %v at (%d, %d)", i, px, x, y)
			}
		}
		if runs != 3 {
			t.Errorf("row %d has %d ruled lines, want 3", i, runs)
		}
	}
}

func TestWeeklyShortListUsesCanonicalDays(t *testing.T) {
	r := newTestRenderer()
	short, _ := style.ResolveBundle(style.Raw{style.KeyWeeklySections: []any{"Mon", "Tue"}})
	canonical, _ := style.ResolveBundle(style.Raw{style.KeyWeeklySections: []any{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}})

	a := render(t, r, Weekly, short, canvas.USLetter)
	b := render(t, r, Weekly, canonical, canvas.USLetter)
	if !samePixels(a.Image, b.Image) {
		t.Error("weekly page for a short day list differs from the canonical week")
	}
}

func TestDailyCapacity(t *testing.T) {
	r := newTestRenderer()
	render6 := func(sections []string) *image.RGBA {
		b := style.DefaultBundle.Clone()
		b.DailySections = sections
		return render(t, r, Daily, b, canvas.A4).Image
	}

	padded := render6([]string{"A", "B", "C"})
	explicit := render6([]string{"A", "B", "C", "Notes", "Notes", "Notes"})
	if !samePixels(padded, explicit) {
		t.Error("three sections should render as three labels plus three Notes blocks")
	}

	long := render6([]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"})
	firstSix := render6([]string{"1", "2", "3", "4", "5", "6"})
	if !samePixels(long, firstSix) {
		t.Error("ten sections should render only the first six")
	}
}

func TestDailyLabels(t *testing.T) {
	got := DailyLabels([]string{"A"})
	want := []string{"A", "Notes", "Notes", "Notes", "Notes", "Notes"}
	if !slices.Equal(got, want) {
		t.Errorf("DailyLabels() = %v, want %v", got, want)
	}
	if got := DailyLabels(make([]string, 9)); len(got) != 6 {
		t.Errorf("len(DailyLabels(9)) = %d, want 6", len(got))
	}
}

func TestDailyHeaderAndBlocks(t *testing.T) {
	b := style.DefaultBundle.Clone()
	p := render(t, newTestRenderer(), Daily, b, canvas.A4)
	f := layout.NewFrame(2480, 3508)

	if got := p.Image.RGBAAt(f.W/2, f.MarginY+10); got != rgba(b.Accent) {
		t.Errorf("header pixel = %v, want accent %v", got, rgba(b.Accent))
	}
	d := layout.Daily(f)
	upper := d.Upper[0]
	if got := p.Image.RGBAAt(upper.Right-40, upper.Top+10); got != rgba(b.Accent2) {
		t.Errorf("first upper block = %v, want accent2", got)
	}
	second := d.Upper[1]
	if got := p.Image.RGBAAt(second.Right-40, second.Top+10); got != rgba(b.Background.Tint(10)) {
		t.Errorf("second upper block = %v, want tinted background", got)
	}
	odd := d.Lower[1]
	if got := p.Image.RGBAAt(odd.Right-40, odd.Top+10); got != rgba(b.Accent2) {
		t.Errorf("lower block 1 = %v, want accent2", got)
	}
}

func TestYearlySynthesizesQuarters(t *testing.T) {
	if got, want := YearlyLabels([]string{"Q1", "Q2"}), []string{"Q1", "Q2", "Q3", "Q4"}; !slices.Equal(got, want) {
		t.Errorf("YearlyLabels() = %v, want %v", got, want)
	}

	r := newTestRenderer()
	two := style.DefaultBundle.Clone()
	two.YearlySections = []string{"Q1", "Q2"}
	four := style.DefaultBundle.Clone()
	four.YearlySections = []string{"Q1", "Q2", "Q3", "Q4"}

	a := render(t, r, Yearly, two, canvas.A4)
	b := render(t, r, Yearly, four, canvas.A4)
	if !samePixels(a.Image, b.Image) {
		t.Error("yearly page with two sections should synthesize Q3 and Q4")
	}

	cells := layout.Yearly(layout.NewFrame(2480, 3508))
	for i, c := range cells {
		want := rgba(four.Accent)
		if i%2 != 0 {
			want = rgba(four.Accent2)
		}
		if got := a.Image.RGBAAt(c.Right-40, c.Top+10); got != want {
			t.Errorf("yearly block %d = %v, want %v", i, got, want)
		}
	}
}

func TestMonthlyGrid(t *testing.T) {
	b := style.DefaultBundle.Clone()
	p := render(t, newTestRenderer(), Monthly, b, canvas.A4)
	m := layout.Monthly(layout.NewFrame(2480, 3508), len(b.MonthlySections))

	if len(m.Blocks) != 4 {
		t.Fatalf("blocks = %d, want 4", len(m.Blocks))
	}
	cx, cy := m.Cells[0].Center()
	if got := p.Image.RGBAAt(cx, cy); got != rgba(b.Background.Tint(8)) {
		t.Errorf("calendar cell = %v, want %v", got, rgba(b.Background.Tint(8)))
	}
	if got := p.Image.RGBAAt(m.Cells[0].Left, cy); got != rgba(style.Gray(210)) {
		t.Errorf("calendar cell border = %v, want gray 210", got)
	}
	if got := p.Image.RGBAAt(m.Blocks[0].Right-40, m.Blocks[0].Top+10); got != rgba(b.Accent2) {
		t.Errorf("block 0 = %v, want accent2", got)
	}
}

func TestNotesLines(t *testing.T) {
	b := style.DefaultBundle.Clone()
	p := render(t, newTestRenderer(), Notes, b, canvas.A4)
	f := layout.NewFrame(2480, 3508)
	for _, y := range layout.Notes(f) {
		if got := p.Image.RGBAAt(f.W/2, y); got != rgba(style.Gray(210)) {
			t.Errorf("notes line at y=%d = %v, want gray 210", y, got)
		}
	}
}

func TestCoverBorder(t *testing.T) {
	b := style.DefaultBundle.Clone()
	p := render(t, newTestRenderer(), Cover, b, canvas.USLetter)
	f := layout.NewFrame(2550, 3300)
	if got := p.Image.RGBAAt(f.MarginX+2, f.H/2); got != rgba(b.Accent) {
		t.Errorf("border pixel = %v, want accent", got)
	}
	if got := p.Image.RGBAAt(f.MarginX-5, f.H/2); got != rgba(b.Background) {
		t.Errorf("margin pixel = %v, want background", got)
	}
}

func TestMalformedColorsRenderWithDefaults(t *testing.T) {
	r := newTestRenderer()
	broken, _ := style.ResolveBundle(style.Raw{
		style.KeyBackgroundColor: "#12",
		style.KeyAccentColor:     "not a color",
	})
	defaults, _ := style.ResolveBundle(style.Raw{})

	a := render(t, r, Cover, broken, canvas.A4)
	b := render(t, r, Cover, defaults, canvas.A4)
	if !samePixels(a.Image, b.Image) {
		t.Error("malformed colors should render like the defaults")
	}
}

func TestDegradedFontsStillRender(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"fixed face", []Option{WithFontOptions(fonts.WithSystemLookup(false), fonts.WithEmbedded(false))}},
		{"no metrics", []Option{WithMetrics(fonts.NewMetrics(fonts.WithStrategies()))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(tt.opts...)
			for _, kind := range BundleOrder {
				p := render(t, r, kind, style.DefaultBundle, canvas.USLetter)
				if p.Image.Bounds().Dx() != 2550 {
					t.Errorf("%v width = %d, want 2550", kind, p.Image.Bounds().Dx())
				}
			}
		})
	}
}

func TestSingle(t *testing.T) {
	s := style.DefaultSingle.Clone()
	p, err := newTestRenderer().Single(s, canvas.A4)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != SinglePage {
		t.Errorf("Kind = %v, want single", p.Kind)
	}
	rows, _ := layout.Single(layout.NewFrame(2480, 3508), 7)
	if got := p.Image.RGBAAt(rows.Stripe(1).Left+30, rows.Rows[1].Top+5); got != rgba(s.Accent2) {
		t.Errorf("second stripe = %v, want accent2", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range KindNames() {
		k, err := ParseKind(name)
		if err != nil {
			t.Errorf("ParseKind(%q) error = %v", name, err)
		}
		if k.String() != name {
			t.Errorf("ParseKind(%q) = %v", name, k)
		}
	}
	if _, err := ParseKind("agenda"); err == nil {
		t.Error("ParseKind(agenda) should fail")
	}
}

func TestEmptyDecorationsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	r := newTestRenderer(WithLogger(logger))

	b := style.DefaultBundle.Clone()
	b.Decorations = nil
	render(t, r, Cover, b, canvas.A4)

	out := buf.String()
	if !strings.Contains(out, "decorations missing") || !strings.Contains(out, style.DefaultDecoration) {
		t.Errorf("log = %q, want default decoration diagnostic", out)
	}

	buf.Reset()
	render(t, r, Cover, style.DefaultBundle, canvas.A4)
	if strings.Contains(buf.String(), "decorations missing") {
		t.Errorf("diagnostic logged for explicit decorations: %q", buf.String())
	}
}
