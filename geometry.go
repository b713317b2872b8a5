package nightglow

import "github.com/go-gl/mathgl/mgl64"

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return mgl64.Vec2{b.X - a.X, b.Y - a.Y}.Len()
}

// DistSq returns the squared distance between a and b.
func DistSq(a, b Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

// LerpVec returns the point at fraction t along the segment a→b.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t)}
}

// Rotate returns p rotated by angle radians about the origin, clockwise on
// screen since Y grows downward.
func Rotate(p Vec2, angle float64) Vec2 {
	r := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{p.X, p.Y})
	return Vec2{r[0], r[1]}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
