package sink

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/matzehuels/plannerkit/pkg/bundle"
	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/pages"
	"github.com/matzehuels/plannerkit/pkg/style"
)

// testCollection builds a collection of small solid pages; encoders do not
// depend on the pixel size matching the page format.
func testCollection(size canvas.PageSize, n int) *bundle.Collection {
	c := &bundle.Collection{Size: size, Variant: style.VariantBundle}
	for i := range n {
		img := image.NewRGBA(image.Rect(0, 0, 120, 170))
		fill := color.RGBA{uint8(40 * i), 180, 200, 255}
		for y := range 170 {
			for x := range 120 {
				img.SetRGBA(x, y, fill)
			}
		}
		c.Pages = append(c.Pages, &pages.Page{Kind: pages.BundleOrder[i%len(pages.BundleOrder)], Size: size, Image: img})
	}
	return c
}

func TestEncodePNG(t *testing.T) {
	c := testCollection(canvas.A4, 1)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, c.Pages[0]); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != c.Pages[0].Image.Bounds() {
		t.Errorf("bounds = %v, want %v", img.Bounds(), c.Pages[0].Image.Bounds())
	}
	if err := EncodePNG(&buf, nil); err == nil {
		t.Error("EncodePNG(nil) should fail")
	}
}

func TestEncodePreviewScales(t *testing.T) {
	c := testCollection(canvas.A4, 1)
	tests := []struct {
		width int
		wantW int
		wantH int
	}{
		{0, 120, 170},
		{60, 60, 85},
		{500, 120, 170},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := EncodePreview(&buf, c.Preview(), tt.width); err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("EncodePreview(width=%d) = %dx%d, want %dx%d", tt.width, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}

func TestEncodePDF(t *testing.T) {
	tests := []struct {
		name string
		size canvas.PageSize
		box  string
		opts []PDFOption
	}{
		{"a4 png", canvas.A4, "595.20 841.92", nil},
		{"letter jpeg", canvas.USLetter, "612.00 792.00", []PDFOption{WithJPEG(85), WithTitle("Cozy")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodePDF(&buf, testCollection(tt.size, 6), tt.opts...); err != nil {
				t.Fatal(err)
			}
			out := buf.Bytes()
			if !bytes.HasPrefix(out, []byte("%PDF-")) {
				t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
			}
			if got := bytes.Count(out, []byte("/Type /Page")) - 1; got != 6 {
				t.Errorf("pages = %d, want 6", got)
			}
			if !bytes.Contains(out, []byte(tt.box)) {
				t.Errorf("PDF does not declare media box %s", tt.box)
			}
		})
	}
}

func TestEncodePDFReproducible(t *testing.T) {
	when := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	encode := func() []byte {
		var buf bytes.Buffer
		if err := EncodePDF(&buf, testCollection(canvas.A4, 2), WithCreationDate(when)); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(encode(), encode()) {
		t.Error("PDF output with a fixed creation date should be identical")
	}
}

func TestEncodePDFEmpty(t *testing.T) {
	if err := EncodePDF(&bytes.Buffer{}, &bundle.Collection{Size: canvas.A4}); err == nil {
		t.Error("EncodePDF(empty) should fail")
	}
}

func TestWriterSave(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, WithPreviewWidth(60))

	a, err := w.Save(context.Background(), testCollection(canvas.USLetter, 6), "")
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(a.ID) {
		t.Errorf("ID = %q, want 32 hex digits", a.ID)
	}
	if want := "planner_us_letter_" + a.ID + ".pdf"; a.PDF != want {
		t.Errorf("PDF = %q, want %q", a.PDF, want)
	}
	if want := "planner_us_letter_" + a.ID + "_preview.png"; a.Preview != want {
		t.Errorf("Preview = %q, want %q", a.Preview, want)
	}
	for _, name := range []string{a.PDF, a.Preview} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
	if len(a.Pages) != 0 {
		t.Errorf("Pages = %v, want none", a.Pages)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestWriterSavePagePNGs(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, WithPagePNGs(true))
	a, err := w.Save(context.Background(), testCollection(canvas.A4, 6), "fixedid")
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Pages) != 6 {
		t.Fatalf("Pages = %d, want 6", len(a.Pages))
	}
	if a.Pages[0] != "planner_a4_fixedid_01_cover.png" {
		t.Errorf("Pages[0] = %q", a.Pages[0])
	}
	for _, name := range a.Pages {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing page %s: %v", name, err)
		}
	}
}

func TestWriterPath(t *testing.T) {
	w := NewWriter("/srv/generated")
	if p, err := w.Path("planner_a4_abc.pdf"); err != nil || p != filepath.Join("/srv/generated", "planner_a4_abc.pdf") {
		t.Errorf("Path() = %q, %v", p, err)
	}
	for _, bad := range []string{"../etc/passwd", "a/b.pdf", "planner.exe", ""} {
		if _, err := w.Path(bad); err == nil {
			t.Errorf("Path(%q) should fail", bad)
		}
	}
}
