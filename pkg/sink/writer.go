package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/plannerkit/pkg/bundle"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
)

// Artifacts lists the files written for one collection. Paths are
// relative to the writer directory.
type Artifacts struct {
	ID      string   `json:"id"`
	Size    string   `json:"size"`
	PDF     string   `json:"pdf"`
	Preview string   `json:"preview"`
	Pages   []string `json:"pages,omitempty"`
}

// NewID returns a random 32-digit hex artifact id.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPreviewWidth scales the preview to width pixels.
func WithPreviewWidth(width int) WriterOption {
	return func(w *Writer) { w.previewWidth = width }
}

// WithPagePNGs also writes one PNG per page.
func WithPagePNGs(enabled bool) WriterOption {
	return func(w *Writer) { w.pagePNGs = enabled }
}

// WithPDFOptions passes options to the PDF encoder.
func WithPDFOptions(opts ...PDFOption) WriterOption {
	return func(w *Writer) { w.pdfOpts = opts }
}

// WithWriterLogger sets the logger.
func WithWriterLogger(logger *log.Logger) WriterOption {
	return func(w *Writer) { w.logger = logger }
}

// Writer saves collections under a directory.
type Writer struct {
	dir          string
	previewWidth int
	pagePNGs     bool
	pdfOpts      []PDFOption
	logger       *log.Logger
}

// NewWriter returns a Writer storing files under dir.
func NewWriter(dir string, opts ...WriterOption) *Writer {
	w := &Writer{dir: dir}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return w
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Save writes c. An empty id is replaced by [NewID].
func (w *Writer) Save(ctx context.Context, c *bundle.Collection, id string) (*Artifacts, error) {
	if c == nil || len(c.Pages) == 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "no pages to save")
	}
	if id == "" {
		id = NewID()
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "create output directory %s", w.dir)
	}

	base := fmt.Sprintf("planner_%s_%s", c.Size, id)
	a := &Artifacts{ID: id, Size: c.Size.String(), PDF: base + ".pdf", Preview: base + "_preview.png"}

	if err := w.writeFile(a.Preview, func(f io.Writer) error {
		return EncodePreview(f, c.Preview(), w.previewWidth)
	}); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeTimeout, err, "save %s", base)
	}
	if err := w.writeFile(a.PDF, func(f io.Writer) error {
		return EncodePDF(f, c, w.pdfOpts...)
	}); err != nil {
		return nil, err
	}

	if w.pagePNGs {
		for i, p := range c.Pages {
			name := fmt.Sprintf("%s_%02d_%s.png", base, i+1, p.Kind)
			page := p
			if err := w.writeFile(name, func(f io.Writer) error { return EncodePNG(f, page) }); err != nil {
				return nil, err
			}
			a.Pages = append(a.Pages, name)
		}
	}

	w.logger.Debug("artifacts saved", "dir", w.dir, "pdf", a.PDF, "preview", a.Preview)
	return a, nil
}

// Path joins name onto the writer directory after validating it as a bare
// artifact file name.
func (w *Writer) Path(name string) (string, error) {
	if err := perrors.ValidateArtifactName(name); err != nil {
		return "", err
	}
	return filepath.Join(w.dir, name), nil
}

// writeFile writes through a temporary file so readers never observe a
// partial artifact.
func (w *Writer) writeFile(name string, encode func(io.Writer) error) error {
	path := filepath.Join(w.dir, name)
	tmp, err := os.CreateTemp(w.dir, ".tmp-*")
	if err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "create %s", name)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "write %s", name)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "rename %s", name)
	}
	return nil
}
