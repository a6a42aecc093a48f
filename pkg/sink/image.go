package sink

import (
	"image"
	"io"

	"github.com/disintegration/imaging"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/pages"
)

// EncodePNG writes page as PNG.
func EncodePNG(w io.Writer, p *pages.Page) error {
	if p == nil || p.Image == nil {
		return perrors.New(perrors.ErrCodeInvalidInput, "no page to encode")
	}
	if err := imaging.Encode(w, p.Image, imaging.PNG); err != nil {
		return perrors.Wrap(perrors.ErrCodeRenderFailed, err, "encode %s page", p.Kind)
	}
	return nil
}

// Thumbnail scales img to width, keeping the aspect ratio. Non-positive or
// larger widths return img unchanged.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || width >= img.Bounds().Dx() {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// EncodePreview writes p as PNG, scaled to width when width is positive.
func EncodePreview(w io.Writer, p *pages.Page, width int) error {
	if p == nil || p.Image == nil {
		return perrors.New(perrors.ErrCodeInvalidInput, "no preview page")
	}
	if err := imaging.Encode(w, Thumbnail(p.Image, width), imaging.PNG); err != nil {
		return perrors.Wrap(perrors.ErrCodeRenderFailed, err, "encode preview")
	}
	return nil
}
