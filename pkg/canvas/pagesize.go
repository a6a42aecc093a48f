package canvas

import (
	"errors"
	"strings"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
)

// DPI is the print resolution implied by every canvas.
const DPI = 300

// ErrInvalidPageSize is matched by every page-size failure.
var ErrInvalidPageSize = errors.New("invalid page size")

// PageSize is a supported physical page format.
type PageSize int

const (
	// A4 is 210 x 297 mm.
	A4 PageSize = iota + 1
	// USLetter is 8.5 x 11 in.
	USLetter
)

// PageSizes lists every supported size in canonical order.
func PageSizes() []PageSize {
	return []PageSize{A4, USLetter}
}

// String returns the wire identifier of p.
func (p PageSize) String() string {
	switch p {
	case A4:
		return "a4"
	case USLetter:
		return "us_letter"
	default:
		return "invalid"
	}
}

// Label is a human readable name.
func (p PageSize) Label() string {
	switch p {
	case A4:
		return "A4"
	case USLetter:
		return "US Letter"
	default:
		return "invalid"
	}
}

// Valid reports whether p is one of the supported sizes.
func (p PageSize) Valid() bool {
	return p == A4 || p == USLetter
}

// Dimensions returns the pixel size of p at [DPI].
func (p PageSize) Dimensions() (width, height int, err error) {
	switch p {
	case A4:
		return 2480, 3508, nil
	case USLetter:
		return 2550, 3300, nil
	default:
		return 0, 0, perrors.Wrap(perrors.ErrCodeInvalidPageSize, ErrInvalidPageSize, "page size %d is not supported", int(p))
	}
}

// Points returns the physical page size in PDF points (1/72 in).
func (p PageSize) Points() (width, height float64, err error) {
	w, h, err := p.Dimensions()
	if err != nil {
		return 0, 0, err
	}
	return float64(w) * 72 / DPI, float64(h) * 72 / DPI, nil
}

// ParsePageSize resolves a wire identifier. Matching ignores case and
// surrounding whitespace.
func ParsePageSize(s string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a4":
		return A4, nil
	case "us_letter":
		return USLetter, nil
	}
	return 0, perrors.Wrap(perrors.ErrCodeInvalidPageSize, ErrInvalidPageSize, "unknown page size %q (want a4 or us_letter)", s)
}

// ParsePageSizes resolves a list of identifiers, failing on the first
// unknown one. Duplicates are dropped.
func ParsePageSizes(ids []string) ([]PageSize, error) {
	out := make([]PageSize, 0, len(ids))
	seen := make(map[PageSize]bool, len(ids))
	for _, id := range ids {
		p, err := ParsePageSize(id)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PageSize) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidPageSize, ErrInvalidPageSize, "page size %d is not supported", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PageSize) UnmarshalText(b []byte) error {
	v, err := ParsePageSize(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
