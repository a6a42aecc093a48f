// Package fonts resolves the typeface used for planner text and measures
// rendered strings.
//
// A [Loader] tries, in order: an explicitly configured TrueType file, a
// system font located by file name (arial.ttf by default), and the Go
// Regular font compiled into the binary. If no scalable font can be parsed,
// or a non-positive size is requested, the fixed 7x13 bitmap face is used.
// Each substitution is logged once per loader and never returned as an
// error.
//
// [Metrics] measures text with a preferred ink-bounds strategy and falls
// back to advance width and line height. When both fail the result is
// (0, 0), which layout code treats as an unknown extent.
package fonts

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSystemFont is the file name looked up in the system font
// directories.
const DefaultSystemFont = "arial.ttf"

// Source tells which link of the fallback chain produced a face.
type Source int

const (
	SourceNone Source = iota
	SourceConfigured
	SourceSystem
	SourceEmbedded
	SourceFixed
)

func (s Source) String() string {
	switch s {
	case SourceConfigured:
		return "configured"
	case SourceSystem:
		return "system"
	case SourceEmbedded:
		return "embedded"
	case SourceFixed:
		return "fixed"
	default:
		return "none"
	}
}

// Option configures a Loader.
type Option func(*Loader)

// WithPath sets a TrueType file tried before any other source.
func WithPath(path string) Option {
	return func(l *Loader) { l.path = path }
}

// WithSystemFont sets the file name looked up in system font directories.
// An empty name keeps DefaultSystemFont.
func WithSystemFont(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.systemName = name
		}
	}
}

// WithSystemLookup enables or disables the system font lookup.
func WithSystemLookup(enabled bool) Option {
	return func(l *Loader) { l.systemLookup = enabled }
}

// WithEmbedded enables or disables the built-in scalable font.
func WithEmbedded(enabled bool) Option {
	return func(l *Loader) { l.embedded = enabled }
}

// WithLogger sets the logger used to report substitutions.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// Loader produces sized faces. A Loader and the faces it returns belong to
// a single render and are not safe for concurrent use.
type Loader struct {
	path         string
	systemName   string
	systemLookup bool
	embedded     bool
	logger       *log.Logger

	resolved bool
	font     *truetype.Font
	source   Source
}

// NewLoader returns a loader with system lookup and the embedded font
// enabled.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		systemName:   DefaultSystemFont,
		systemLookup: true,
		embedded:     true,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return l
}

// Source reports which source the scalable font was loaded from, resolving
// it if needed. SourceFixed means every face is the bitmap fallback.
func (l *Loader) Source() Source {
	l.resolve()
	return l.source
}

// Face returns a face whose em size is px pixels.
func (l *Loader) Face(px int) font.Face {
	l.resolve()
	if l.font == nil || px <= 0 {
		if l.font != nil {
			l.logger.Debug("font size not positive, using fixed face", "size", px)
		}
		return basicfont.Face7x13
	}
	return truetype.NewFace(l.font, &truetype.Options{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (l *Loader) resolve() {
	if l.resolved {
		return
	}
	l.resolved = true

	if l.path != "" {
		f, err := parseFile(l.path)
		if err == nil {
			l.font, l.source = f, SourceConfigured
			return
		}
		l.logger.Warn("configured font unavailable", "path", l.path, "err", err)
	}
	if l.systemLookup && l.systemName != "" {
		path, err := findfont.Find(l.systemName)
		if err == nil {
			var f *truetype.Font
			if f, err = parseFile(path); err == nil {
				l.font, l.source = f, SourceSystem
				return
			}
		}
		l.logger.Debug("system font unavailable", "name", l.systemName, "err", err)
	}
	if l.embedded {
		f, err := truetype.Parse(goregular.TTF)
		if err == nil {
			l.font, l.source = f, SourceEmbedded
			return
		}
		l.logger.Warn("embedded font unavailable", "err", err)
	}
	l.logger.Warn("no scalable font available, using fixed 7x13 face")
	l.source = SourceFixed
}

func parseFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}
