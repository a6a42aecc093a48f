package fonts

import (
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestLoaderEmbedded(t *testing.T) {
	l := NewLoader(WithSystemLookup(false))
	if got := l.Source(); got != SourceEmbedded {
		t.Fatalf("Source() = %v, want embedded", got)
	}
	face := l.Face(48)
	if face == basicfont.Face7x13 {
		t.Fatal("Face(48) returned the fixed face")
	}
	if h := face.Metrics().Height.Ceil(); h < 40 {
		t.Errorf("line height = %d, want about 48", h)
	}
}

func TestLoaderMissingPathFallsBack(t *testing.T) {
	l := NewLoader(WithPath(filepath.Join(t.TempDir(), "missing.ttf")), WithSystemLookup(false))
	if got := l.Source(); got != SourceEmbedded {
		t.Errorf("Source() = %v, want embedded", got)
	}
}

func TestLoaderFixedFallback(t *testing.T) {
	l := NewLoader(WithSystemLookup(false), WithEmbedded(false))
	if got := l.Source(); got != SourceFixed {
		t.Errorf("Source() = %v, want fixed", got)
	}
	if face := l.Face(120); face != basicfont.Face7x13 {
		t.Errorf("Face(120) = %T, want fixed face", face)
	}
}

func TestLoaderNonPositiveSize(t *testing.T) {
	l := NewLoader(WithSystemLookup(false))
	if face := l.Face(0); face != basicfont.Face7x13 {
		t.Errorf("Face(0) = %T, want fixed face", face)
	}
}

func TestMetricsMeasure(t *testing.T) {
	l := NewLoader(WithSystemLookup(false))
	m := NewMetrics()
	face := l.Face(64)

	wShort, hShort := m.Measure(face, "Notes")
	wLong, _ := m.Measure(face, "Notes and more notes")
	if wShort <= 0 || hShort <= 0 {
		t.Fatalf("Measure(Notes) = (%d, %d), want positive", wShort, hShort)
	}
	if wLong <= wShort {
		t.Errorf("longer text measured %d, not wider than %d", wLong, wShort)
	}
	if w, _ := m.Measure(face, ""); w != 0 {
		t.Errorf("Measure(\"\") width = %d, want 0", w)
	}
}

func TestMetricsFallbackChain(t *testing.T) {
	failing := Strategy{Name: "fail", Measure: func(font.Face, string) (int, int, error) {
		return 0, 0, errors.New("boom")
	}}
	panicking := Strategy{Name: "panic", Measure: func(font.Face, string) (int, int, error) {
		panic("broken face")
	}}
	fixed := Strategy{Name: "fixed", Measure: func(font.Face, string) (int, int, error) {
		return 7, 13, nil
	}}

	tests := []struct {
		name       string
		strategies []Strategy
		w, h       int
	}{
		{"first fails", []Strategy{failing, fixed}, 7, 13},
		{"first panics", []Strategy{panicking, fixed}, 7, 13},
		{"all fail", []Strategy{failing, panicking}, 0, 0},
		{"none", nil, 0, 0},
		{"nil measure", []Strategy{{Name: "empty"}}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetrics(WithStrategies(tt.strategies...))
			w, h := m.Measure(basicfont.Face7x13, "text")
			if w != tt.w || h != tt.h {
				t.Errorf("Measure() = (%d, %d), want (%d, %d)", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestMetricsNilFace(t *testing.T) {
	if w, h := NewMetrics().Measure(nil, "x"); w != 0 || h != 0 {
		t.Errorf("Measure(nil) = (%d, %d), want (0, 0)", w, h)
	}
}
