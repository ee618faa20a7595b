package scale

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color maps a value to a color
type Color interface {
	Map(v float64) drawing.Color
}

// Hex formats c as an SVG color ignoring alpha
func Hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MustColor parses a named or hex color, falling back to black
func MustColor(s string) drawing.Color {
	if c, ok := Named[s]; ok {
		return c
	}
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 3 {
		return drawing.Color{A: 255}
	}
	return drawing.ColorFromHex(s)
}

// Named holds the color names used in configurations
var Named = map[string]drawing.Color{
	"black":     {R: 0, G: 0, B: 0, A: 255},
	"blue":      {R: 0, G: 0, B: 255, A: 255},
	"red":       {R: 255, G: 0, B: 0, A: 255},
	"pink":      {R: 255, G: 192, B: 203, A: 255},
	"deeppink":  {R: 255, G: 20, B: 147, A: 255},
	"steelblue": {R: 70, G: 130, B: 180, A: 255},
	"tomato":    {R: 255, G: 99, B: 71, A: 255},
	"gray":      {R: 128, G: 128, B: 128, A: 255},
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Interpolate mixes a and b in RGB space, t is clamped to [0, 1]
func Interpolate(a, b drawing.Color, t float64) drawing.Color {
	t = clamp(t)
	return drawing.Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

func clamp(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ColorLinear interpolates between From and To over [D0, D1]
type ColorLinear struct {
	D0, D1   float64
	From, To drawing.Color
}

func (s ColorLinear) Map(v float64) drawing.Color {
	t := Linear{D0: s.D0, D1: s.D1, R0: 0, R1: 1}.Map(v)
	return Interpolate(s.From, s.To, t)
}

// Sequential maps [D0, D1] onto an interpolator taking values in [0, 1]
type Sequential struct {
	D0, D1 float64
	Interp func(t float64) drawing.Color
}

func (s Sequential) Map(v float64) drawing.Color {
	t := Linear{D0: s.D0, D1: s.D1, R0: 0, R1: 1}.Map(v)
	return s.Interp(clamp(t))
}

// Ramp returns an interpolator passing through stops at equal distances
func Ramp(stops ...drawing.Color) func(t float64) drawing.Color {
	return func(t float64) drawing.Color {
		t = clamp(t)
		if len(stops) == 1 {
			return stops[0]
		}
		n := float64(len(stops) - 1)
		i := int(math.Min(math.Floor(t*n), n-1))
		return Interpolate(stops[i], stops[i+1], t*n-float64(i))
	}
}

// YlOrRd is the sequential yellow-orange-red color scheme
var YlOrRd = Ramp(
	drawing.ColorFromHex("ffffcc"),
	drawing.ColorFromHex("ffeda0"),
	drawing.ColorFromHex("fed976"),
	drawing.ColorFromHex("feb24c"),
	drawing.ColorFromHex("fd8d3c"),
	drawing.ColorFromHex("fc4e2a"),
	drawing.ColorFromHex("e31a1c"),
	drawing.ColorFromHex("bd0026"),
	drawing.ColorFromHex("800026"),
)

// Tableau10 is a categorical scheme for subject lines
var Tableau10 = []drawing.Color{
	drawing.ColorFromHex("4e79a7"),
	drawing.ColorFromHex("f28e2c"),
	drawing.ColorFromHex("e15759"),
	drawing.ColorFromHex("76b7b2"),
	drawing.ColorFromHex("59a14f"),
	drawing.ColorFromHex("edc949"),
	drawing.ColorFromHex("af7aa1"),
	drawing.ColorFromHex("ff9da7"),
	drawing.ColorFromHex("9c755f"),
	drawing.ColorFromHex("bab0ab"),
}

// Category returns the Tableau10 color for index i
func Category(i int) drawing.Color {
	return Tableau10[i%len(Tableau10)]
}
