package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA colour, straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

var (
	White    = Color{255, 255, 255, 255}
	Black    = Color{0, 0, 0, 255}
	Red      = Color{255, 0, 0, 255}
	Green    = Color{0, 255, 0, 255}
	Blue     = Color{0, 0, 255, 255}
	Magenta  = Color{255, 0, 255, 255}
	Cyan     = Color{0, 255, 255, 255}
	Yellow   = Color{255, 255, 0, 255}
	Gray     = Color{128, 128, 128, 255}
	DarkGray = Color{20, 26, 31, 255}
	SkyBlue  = FromStd(colornames.Skyblue)
)

func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// Floats returns the colour as shader uniform components in [0,1].
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{c.R, c.G, c.B, c.A}.RGBA()
}

// FromStd converts any image/color value.
func FromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// Named looks up an SVG 1.1 colour name such as "skyblue".
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return FromStd(c), true
}

// Parse accepts a colour name, #rrggbb or #rrggbbaa.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := Named(s); ok {
			return c, nil
		}
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
