package nightglow

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// lightSink receives one frame's light contributions. LightMask is the
// rendering implementation.
type lightSink interface {
	// Radial adds a round glow whose center alpha is c.A*intensity.
	Radial(center Vec2, radius float64, c Color, intensity float64)
	// Cone adds a wedge of glow from origin between two angles in radians.
	Cone(origin Vec2, startAngle, endAngle, radius float64, c Color, intensity float64)
	// Flame adds an elliptical glow fading from c at the center to nothing.
	Flame(center Vec2, rx, ry float64, c Color)
	// Spark adds a small solid disc.
	Spark(center Vec2, radius float64, c Color)
}

// Falloff profiles. Radial glows keep most of their light near the source;
// cones fall off later and faster.
var (
	radialStops = []gradientStop{{T: 0, Alpha: 1}, {T: 0.7, Alpha: 0.3}, {T: 1, Alpha: 0}}
	coneStops   = []gradientStop{{T: 0, Alpha: 1}, {T: 0.8, Alpha: 0.2}, {T: 1, Alpha: 0}}
	flameStops  = []gradientStop{{T: 0, Alpha: 1}, {T: 1, Alpha: 0}}
	sparkStops  = []gradientStop{{T: 1, Alpha: 1}}
)

const (
	radialInner = 0.05
	coneInner   = 0.02
)

// LightMask is the offscreen buffer that accumulates additive glow. Each
// frame it is cleared to opaque black, lights are added with lighter
// blending, and the result is added onto the surface. Black adds nothing,
// so only lit areas brighten the scene.
type LightMask struct {
	rt    *RenderTexture
	p     painter
	glows int
}

// NewLightMask creates a mask covering (w x h) pixels.
func NewLightMask(w, h int) *LightMask {
	return &LightMask{rt: NewRenderTexture(w, h)}
}

// RenderTexture returns the underlying buffer.
func (m *LightMask) RenderTexture() *RenderTexture {
	return m.rt
}

// Begin clears the mask to opaque black and resets the contribution count.
// Nothing from the previous frame survives.
func (m *LightMask) Begin() {
	m.rt.Clear()
	m.rt.Fill(ColorBlack)
	m.glows = 0
}

// Glows returns the number of contributions added since Begin.
func (m *LightMask) Glows() int {
	return m.glows
}

func (m *LightMask) Radial(center Vec2, radius float64, c Color, intensity float64) {
	c = c.Scaled(intensity)
	if radius <= 0 || c.A <= 0 {
		return
	}
	m.p.fillGradient(m.rt.Image(), center, radius, radius, radialInner, 0, 2*math.Pi, c, radialStops, BlendAdd)
	m.glows++
}

func (m *LightMask) Cone(origin Vec2, startAngle, endAngle, radius float64, c Color, intensity float64) {
	c = c.Scaled(intensity)
	if radius <= 0 || c.A <= 0 {
		return
	}
	for endAngle < startAngle {
		endAngle += 2 * math.Pi
	}
	m.p.fillGradient(m.rt.Image(), origin, radius, radius, coneInner, startAngle, endAngle, c, coneStops, BlendAdd)
	m.glows++
}

func (m *LightMask) Flame(center Vec2, rx, ry float64, c Color) {
	if rx <= 0 || ry <= 0 || c.A <= 0 {
		return
	}
	m.p.fillGradient(m.rt.Image(), center, rx, ry, 0, 0, 2*math.Pi, c, flameStops, BlendAdd)
	m.glows++
}

func (m *LightMask) Spark(center Vec2, radius float64, c Color) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	m.p.fillGradient(m.rt.Image(), center, radius, radius, 0, 0, 2*math.Pi, c, sparkStops, BlendAdd)
	m.glows++
}

// CompositeOnto adds the mask onto dst.
func (m *LightMask) CompositeOnto(dst *ebiten.Image) {
	m.rt.DrawOnto(dst, 0, 0, BlendAdd)
}

// Resize matches the mask to a new surface size.
func (m *LightMask) Resize(w, h int) {
	m.rt.Resize(w, h)
}

// Dispose releases the mask buffer.
func (m *LightMask) Dispose() {
	if m.rt != nil {
		m.rt.Dispose()
		m.rt = nil
	}
}
