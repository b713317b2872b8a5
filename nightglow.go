package nightglow

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black, the base of the light mask.
var ColorBlack = Color{0, 0, 0, 1}

// Vec2 is a 2D point in surface coordinates. The origin is the top-left
// corner with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// WhitePixel is a 1x1 white image used as the source for untextured triangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle. The
// left and top edges are inside, the right and bottom edges are not, so a
// surface's bounds hold exactly its pixels.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendNone                    // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// TimeOfDay selects the sky palette. It tints the background only and never
// changes how lights behave.
type TimeOfDay uint8

const (
	Midnight TimeOfDay = iota
	Dawn
)

func (t TimeOfDay) String() string {
	switch t {
	case Midnight:
		return "midnight"
	case Dawn:
		return "dawn"
	default:
		return "unknown"
	}
}

// ParseTimeOfDay maps the literal command values "midnight" and "dawn".
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	switch s {
	case "midnight":
		return Midnight, true
	case "dawn":
		return Dawn, true
	}
	return 0, false
}
