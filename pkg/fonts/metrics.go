package fonts

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
)

// Strategy measures text rendered with face.
type Strategy struct {
	Name    string
	Measure func(face font.Face, text string) (w, h int, err error)
}

// BoundsStrategy measures the ink bounding box of the text.
var BoundsStrategy = Strategy{
	Name: "bounds",
	Measure: func(face font.Face, text string) (int, int, error) {
		b, _ := font.BoundString(face, text)
		w, h := (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
		if w < 0 || h < 0 {
			return 0, 0, errors.New("inverted bounds")
		}
		return w, h, nil
	},
}

// AdvanceStrategy measures the advance width and the face line height.
var AdvanceStrategy = Strategy{
	Name: "advance",
	Measure: func(face font.Face, text string) (int, int, error) {
		w := font.MeasureString(face, text).Ceil()
		h := face.Metrics().Height.Ceil()
		if w < 0 || h < 0 {
			return 0, 0, errors.New("negative extent")
		}
		return w, h, nil
	},
}

// MetricsOption configures Metrics.
type MetricsOption func(*Metrics)

// WithStrategies replaces the measurement strategies, tried in order.
func WithStrategies(s ...Strategy) MetricsOption {
	return func(m *Metrics) { m.strategies = s }
}

// WithMetricsLogger sets the logger used to report failed strategies.
func WithMetricsLogger(logger *log.Logger) MetricsOption {
	return func(m *Metrics) { m.logger = logger }
}

// Metrics measures text extents with a chain of strategies.
type Metrics struct {
	strategies []Strategy
	logger     *log.Logger
}

// NewMetrics returns Metrics using BoundsStrategy then AdvanceStrategy.
func NewMetrics(opts ...MetricsOption) *Metrics {
	m := &Metrics{strategies: []Strategy{BoundsStrategy, AdvanceStrategy}}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return m
}

// Measure returns the width and height of text. It returns (0, 0) when no
// strategy succeeds.
func (m *Metrics) Measure(face font.Face, text string) (w, h int) {
	if face == nil {
		m.logger.Debug("text measurement unavailable", "text", text, "err", "nil face")
		return 0, 0
	}
	for _, s := range m.strategies {
		w, h, err := try(s, face, text)
		if err == nil {
			return w, h
		}
		m.logger.Debug("text measurement strategy failed", "strategy", s.Name, "err", err)
	}
	m.logger.Debug("text measurement unavailable", "text", text)
	return 0, 0
}

func try(s Strategy, face font.Face, text string) (w, h int, err error) {
	defer func() {
		if r := recover(); r != nil {
			w, h, err = 0, 0, fmt.Errorf("panic: %v", r)
		}
	}()
	if s.Measure == nil {
		return 0, 0, errors.New("no measure function")
	}
	return s.Measure(face, text)
}
