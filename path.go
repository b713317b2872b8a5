package nightglow

import "math"

const (
	// StripSpacing is the arc length between neighboring ornaments.
	StripSpacing = 30
	// minSegmentLength is the shortest segment positions are interpolated on.
	minSegmentLength = 1

	hueFrameStep = 1.5
	hueIndexStep = 20
)

// Ornament is one bell along a strip light.
type Ornament struct {
	Pos   Vec2
	Hue   float64 // degrees in [0, 360)
	Index int
}

// OrnamentHue returns the traveling-rainbow hue for the index-th ornament
// on the given frame.
func OrnamentHue(frame uint64, index int) float64 {
	return math.Mod(float64(frame)*hueFrameStep+float64(index)*hueIndexStep, 360)
}

// SampleStrip walks the polyline's cumulative arc length and emits an
// ornament every spacing units starting at the first point. Positions depend
// only on points and spacing; frame only feeds the hue. Paths with fewer
// than two points, or a non-positive spacing, yield nothing.
func SampleStrip(points []Vec2, spacing float64, frame uint64) []Ornament {
	return appendOrnaments(nil, points, spacing, frame)
}

// appendOrnaments is SampleStrip writing into a caller-owned buffer.
func appendOrnaments(dst []Ornament, points []Vec2, spacing float64, frame uint64) []Ornament {
	if len(points) < 2 || spacing <= 0 {
		return dst
	}

	next := 0.0 // arc length of the next ornament
	base := 0.0 // arc length at the start of the current segment
	idx := 0
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		segLen := Dist(a, b)
		for next < base+segLen {
			// Segments too short to interpolate hold their ornaments at the start.
			t := 0.0
			if segLen > minSegmentLength {
				t = (next - base) / segLen
			}
			dst = append(dst, Ornament{
				Pos:   LerpVec(a, b, t),
				Hue:   OrnamentHue(frame, idx),
				Index: idx,
			})
			idx++
			next += spacing
		}
		base += segLen
	}
	return dst
}

// PathLength returns the total arc length of a polyline.
func PathLength(points []Vec2) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Dist(points[i-1], points[i])
	}
	return total
}
