package nightglow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorFormats(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#ffffff", Color{1, 1, 1, 1}},
		{"#000", Color{0, 0, 0, 1}},
		{"rgb(255, 0, 0)", Color{1, 0, 0, 1}},
		{"rgba(0, 0, 255, 0.5)", Color{0, 0, 1, 0.5}},
		{"  rgba(255,255,255,2)  ", Color{1, 1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want.R, got.R, 1e-9)
			assert.InDelta(t, tc.want.G, got.G, 1e-9)
			assert.InDelta(t, tc.want.B, got.B, 1e-9)
			assert.InDelta(t, tc.want.A, got.A, 1e-9)
		})
	}
}

func TestParseColorRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "rgb(1, 2)", "rgba(1, 2, 3)", "rgb(a, b, c)"} {
		_, err := ParseColor(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestColorScaledClampsAlpha(t *testing.T) {
	c := RGBA8(255, 160, 0, 0.5)
	assert.InDelta(t, 0.6, c.Scaled(1.2).A, 1e-9)
	assert.Equal(t, 1.0, c.Scaled(3).A)
	assert.Equal(t, 0.0, c.Scaled(-1).A)
	// Channels are untouched.
	assert.Equal(t, c.R, c.Scaled(2).R)
}

func TestHslaPrimaries(t *testing.T) {
	red := Hsla(0, 1, 0.5, 1)
	assert.InDelta(t, 1, red.R, 1e-6)
	assert.InDelta(t, 0, red.G, 1e-6)

	// Hue wraps.
	wrapped := Hsla(480, 1, 0.5, 0.3)
	green := Hsla(120, 1, 0.5, 0.3)
	assert.InDelta(t, green.G, wrapped.G, 1e-6)
	assert.Equal(t, 0.3, wrapped.A)
}

func TestColorLerpEndpoints(t *testing.T) {
	a := mustParseColor("#1a1a00")
	b := mustParseColor("#556B2F")
	assert.InDelta(t, a.R, a.Lerp(b, 0).R, 1e-9)
	assert.InDelta(t, b.G, a.Lerp(b, 1).G, 1e-9)
	assert.InDelta(t, b.B, a.Lerp(b, 5).B, 1e-9)
}

func TestToRGBAPremultiplies(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.toRGBA()
	assert.Equal(t, uint8(128), c.a)
	assert.Equal(t, uint8(128), c.r)
	assert.Equal(t, uint8(64), c.g)
	assert.Equal(t, uint8(0), c.b)
}
