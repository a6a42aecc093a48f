package style

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a resolved 24-bit color.
type RGB struct {
	R, G, B uint8
}

// White is used for text painted on accent-filled header bands.
var White = RGB{255, 255, 255}

var hexColorRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ParseHex parses a 6-hex-digit color with an optional leading '#'.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexColorRegex.MatchString(digits) {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustHex is ParseHex for package-level default tables.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Tint adds delta to every channel, clamping to [0, 255].
func (c RGB) Tint(delta int) RGB {
	return RGB{R: clampChannel(int(c.R) + delta), G: clampChannel(int(c.G) + delta), B: clampChannel(int(c.B) + delta)}
}

// Gray returns a neutral color with all channels set to v.
func Gray(v uint8) RGB { return RGB{v, v, v} }

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
