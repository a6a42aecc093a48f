package sink

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/plannerkit/pkg/bundle"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
)

// PDFOption configures PDF encoding.
type PDFOption func(*pdfEncoder)

type pdfEncoder struct {
	title   string
	jpeg    bool
	quality int
	created time.Time
}

// WithTitle sets the document title.
func WithTitle(title string) PDFOption {
	return func(e *pdfEncoder) { e.title = title }
}

// WithJPEG embeds pages as JPEG at the given quality instead of PNG.
func WithJPEG(quality int) PDFOption {
	return func(e *pdfEncoder) { e.jpeg, e.quality = true, quality }
}

// WithCreationDate fixes the document timestamps, making output
// reproducible.
func WithCreationDate(t time.Time) PDFOption {
	return func(e *pdfEncoder) { e.created = t }
}

// EncodePDF writes every page of c as one PDF page sized to the page
// format.
func EncodePDF(w io.Writer, c *bundle.Collection, opts ...PDFOption) error {
	if c == nil || len(c.Pages) == 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "no pages to encode")
	}
	e := pdfEncoder{title: "Planner", quality: 90}
	for _, opt := range opts {
		opt(&e)
	}

	wd, ht, err := c.Size.Points()
	if err != nil {
		return err
	}
	pageSize := fpdf.SizeType{Wd: wd, Ht: ht}
	pdf := fpdf.NewCustom(&fpdf.InitType{OrientationStr: "P", UnitStr: "pt", Size: pageSize})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(e.title, true)
	pdf.SetCreator("plannerkit", true)
	pdf.SetCatalogSort(true)
	if !e.created.IsZero() {
		pdf.SetCreationDate(e.created)
		pdf.SetModificationDate(e.created)
	}

	format, imageType := imaging.PNG, "PNG"
	var encOpts []imaging.EncodeOption
	if e.jpeg {
		format, imageType = imaging.JPEG, "JPEG"
		encOpts = append(encOpts, imaging.JPEGQuality(e.quality))
	}
	imgOpts := fpdf.ImageOptions{ImageType: imageType}

	for i, p := range c.Pages {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, p.Image, format, encOpts...); err != nil {
			return perrors.Wrap(perrors.ErrCodeRenderFailed, err, "encode page %d", i+1)
		}
		name := fmt.Sprintf("page-%d-%s", i+1, p.Kind)
		pdf.RegisterImageOptionsReader(name, imgOpts, &buf)
		pdf.AddPageFormat("P", pageSize)
		pdf.ImageOptions(name, 0, 0, wd, ht, false, imgOpts, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return perrors.Wrap(perrors.ErrCodeRenderFailed, err, "write %s PDF", c.Size)
	}
	return nil
}
