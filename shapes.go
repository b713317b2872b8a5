package nightglow

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// gradientStop is one ring of a radial falloff. T is the fraction of the
// way from the inner to the outer radius; Alpha multiplies the base color's
// alpha at that ring.
type gradientStop struct {
	T, Alpha float64
}

// painter fills untextured triangle meshes on a shared white pixel. It keeps
// scratch buffers so steady-state frames do not allocate.
type painter struct {
	verts []ebiten.Vertex
	inds  []uint16
	triOp ebiten.DrawTrianglesOptions
}

// arcSegments picks an angular tessellation for a sweep of the given radius.
func arcSegments(radius, sweep float64) int {
	n := int(math.Ceil(radius * math.Abs(sweep) / 6))
	return min(max(n, 12), 256)
}

func (p *painter) reset() {
	p.verts = p.verts[:0]
	p.inds = p.inds[:0]
}

func (p *painter) vertex(x, y float64, c Color, alpha float64) uint16 {
	p.verts = append(p.verts, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(alpha),
	})
	return uint16(len(p.verts) - 1)
}

func (p *painter) flush(dst *ebiten.Image, blend BlendMode) {
	if len(p.inds) == 0 {
		return
	}
	p.triOp.Blend = blend.EbitenBlend()
	p.triOp.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	p.triOp.AntiAlias = true
	dst.DrawTriangles(p.verts, p.inds, WhitePixel, &p.triOp)
	p.reset()
}

// fillPolygon fills a convex polygon using fan triangulation.
func (p *painter) fillPolygon(dst *ebiten.Image, pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	p.reset()
	for _, pt := range pts {
		p.vertex(pt.X, pt.Y, c, c.A)
	}
	for i := 1; i < len(pts)-1; i++ {
		p.inds = append(p.inds, 0, uint16(i), uint16(i+1))
	}
	p.flush(dst, BlendNormal)
}

// fillEllipse fills an axis-aligned ellipse.
func (p *painter) fillEllipse(dst *ebiten.Image, center Vec2, rx, ry float64, c Color) {
	p.fillSector(dst, center, rx, ry, 0, 2*math.Pi, c)
}

// fillSector fills the region between the arc from a0 to a1 and its chord.
// Angles are in radians, increasing clockwise on screen.
func (p *painter) fillSector(dst *ebiten.Image, center Vec2, rx, ry, a0, a1 float64, c Color) {
	n := arcSegments(max(rx, ry), a1-a0)
	p.reset()
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		p.vertex(center.X+math.Cos(a)*rx, center.Y+math.Sin(a)*ry, c, c.A)
	}
	for i := 1; i < n; i++ {
		p.inds = append(p.inds, 0, uint16(i), uint16(i+1))
	}
	p.flush(dst, BlendNormal)
}

// fillRotatedRect fills the rectangle (x, y, w, h) given in a frame that is
// rotated by angle about origin and then translated to origin.
func (p *painter) fillRotatedRect(dst *ebiten.Image, origin Vec2, angle, x, y, w, h float64, c Color) {
	corners := [4]Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	pts := make([]Vec2, 4)
	for i, pt := range corners {
		pts[i] = Rotate(pt, angle).Add(origin)
	}
	p.fillPolygon(dst, pts, c)
}

// fillGradient accumulates a radial falloff over the sweep a0..a1. Every
// ring fans back to the center, so a partial sweep is a wedge. rx and ry
// allow an elliptical footprint; inner is the radius fraction at which
// stops[0] begins and everything inside it takes stops[0]'s alpha.
func (p *painter) fillGradient(dst *ebiten.Image, center Vec2, rx, ry, inner, a0, a1 float64, c Color, stops []gradientStop, blend BlendMode) {
	if rx <= 0 || ry <= 0 || len(stops) == 0 {
		return
	}
	n := arcSegments(max(rx, ry), a1-a0)
	p.reset()

	hub := p.vertex(center.X, center.Y, c, c.A*stops[0].Alpha)

	prev := -1 // first vertex of the previous ring
	for _, st := range stops {
		f := inner + (1-inner)*st.T
		if f <= 0 {
			continue
		}
		alpha := c.A * st.Alpha
		first := uint16(len(p.verts))
		for i := 0; i <= n; i++ {
			a := a0 + (a1-a0)*float64(i)/float64(n)
			p.vertex(center.X+math.Cos(a)*rx*f, center.Y+math.Sin(a)*ry*f, c, alpha)
		}
		if prev < 0 {
			for i := 0; i < n; i++ {
				p.inds = append(p.inds, hub, first+uint16(i), first+uint16(i+1))
			}
		} else {
			pf := uint16(prev)
			for i := 0; i < n; i++ {
				a, b := pf+uint16(i), pf+uint16(i+1)
				cc, d := first+uint16(i), first+uint16(i+1)
				p.inds = append(p.inds, a, cc, b, b, cc, d)
			}
		}
		prev = int(first)
	}
	p.flush(dst, blend)
}

// strokePolyline strokes consecutive segments of pts.
func strokePolyline(dst *ebiten.Image, pts []Vec2, width float64, c Color) {
	clr := c.toRGBA()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
}

// strokeDashed strokes pts with an on/off dash pattern that carries across
// segment boundaries.
func strokeDashed(dst *ebiten.Image, pts []Vec2, width, dash, gap float64, c Color) {
	clr := c.toRGBA()
	period := dash + gap
	phase := 0.0 // distance into the current period
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := Dist(a, b)
		if segLen == 0 {
			continue
		}
		pos := 0.0
		for pos < segLen {
			var step float64
			if phase < dash {
				step = min(dash-phase, segLen-pos)
				s := LerpVec(a, b, pos/segLen)
				e := LerpVec(a, b, (pos+step)/segLen)
				vector.StrokeLine(dst, float32(s.X), float32(s.Y), float32(e.X), float32(e.Y), float32(width), clr, true)
			} else {
				step = min(period-phase, segLen-pos)
			}
			pos += step
			phase = math.Mod(phase+step, period)
		}
	}
}

// strokeArc strokes the arc from a0 to a1.
func strokeArc(dst *ebiten.Image, center Vec2, r, a0, a1, width float64, c Color) {
	n := arcSegments(r, a1-a0)
	pts := make([]Vec2, n+1)
	for i := range pts {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts[i] = Vec2{center.X + math.Cos(a)*r, center.Y + math.Sin(a)*r}
	}
	strokePolyline(dst, pts, width, c)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c.toRGBA(), false)
}

func fillCircle(dst *ebiten.Image, center Vec2, r float64, c Color) {
	vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(r), c.toRGBA(), true)
}

// captionFace is the shared bitmap face for in-scene captions.
var captionFace = text.NewGoXFace(basicfont.Face7x13)

// drawCaption draws s horizontally centered on x with its baseline near y.
func drawCaption(dst *ebiten.Image, s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	text.Draw(dst, s, captionFace, op)
}
