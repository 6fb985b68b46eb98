package objects

import (
	"fmt"
	"image/color"
)

var (
	ColorBackground = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	ColorTrack      = color.RGBA{R: 51, G: 65, B: 85, A: 255}
	ColorSafeZone   = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	ColorIndicator  = color.RGBA{R: 248, G: 250, B: 252, A: 255}
	ColorMuted      = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	ColorSuccess    = color.RGBA{R: 134, G: 239, B: 172, A: 255}
	ColorFailure    = color.RGBA{R: 252, G: 165, B: 165, A: 255}
)

// ParseHexColor parses a "#rrggbb" color.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid hex color: %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex color %q: %v", s, err)
	}
	return c, nil
}
