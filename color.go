package nightglow

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA8 builds a Color from 8-bit channels and a [0, 1] alpha.
func RGBA8(r, g, b float64, a float64) Color {
	return Color{R: r / 255, G: g / 255, B: b / 255, A: a}
}

// Hsla builds a Color from a hue in degrees, saturation and lightness in
// [0, 1], and an alpha.
func Hsla(h, s, l, a float64) Color {
	c := colorful.Hsl(math.Mod(h, 360), s, l).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// ParseColor accepts "#rgb", "#rrggbb", "rgb(r, g, b)" and
// "rgba(r, g, b, a)" with 0-255 channels and a [0, 1] alpha.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}

	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[5:len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[4:len(s)-1], 3
	default:
		return Color{}, fmt.Errorf("parse color %q: unsupported format", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("parse color %q: want %d channels, got %d", s, want, len(parts))
	}
	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		ch[i] = v
	}
	return RGBA8(ch[0], ch[1], ch[2], clamp01(ch[3])), nil
}

// mustParseColor is for package-level palette tables.
func mustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Scaled returns c with its alpha multiplied by intensity and clamped to
// [0, 1]. This is the effective center alpha of every glow.
func (c Color) Scaled(intensity float64) Color {
	c.A = clamp01(c.A * intensity)
	return c
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp blends the RGB channels of c toward o in linear RGB and the alpha
// linearly. t is clamped to [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	t = clamp01(t)
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: o.R, G: o.G, B: o.B}
	m := a.BlendLinearRgb(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (o.A-c.A)*t}
}

// toRGBA converts a Color to a premultiplied color.Color for ebiten.
func (c Color) toRGBA() colorRGBA {
	a := clamp01(c.A)
	return colorRGBA{
		r: uint8(clamp01(c.R)*a*255 + 0.5),
		g: uint8(clamp01(c.G)*a*255 + 0.5),
		b: uint8(clamp01(c.B)*a*255 + 0.5),
		a: uint8(a*255 + 0.5),
	}
}

// colorRGBA is a premultiplied 8-bit color implementing color.Color.
type colorRGBA struct {
	r, g, b, a uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	b = uint32(c.b) * 0x101
	a = uint32(c.a) * 0x101
	return
}
