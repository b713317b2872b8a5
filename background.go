package nightglow

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Background layout as fractions of the surface height.
const (
	skyBottom   = 0.85
	groundTop   = 0.80
	treeBase    = 0.80
	starCeiling = 0.75

	starSpeed = 0.01
	treeSpeed = 0.03

	// The star and tree layers are laid out over a band this many times the
	// surface width and wrap within it.
	parallaxSpan = 1.5

	treesPerView = 15
	treeCount    = treesPerView * 3 / 2
	starCount    = 120
)

var starColor = RGBA8(255, 255, 255, 0.6)

// star is a fixed star in normalized layout coordinates.
type star struct {
	X, Y, R float64
}

// starField is generated once from a fixed seed so the sky is the same on
// every run and every frame.
var starField = newStarField(starCount, 1)

func newStarField(n int, seed uint64) []star {
	rng := rand.New(rand.NewPCG(seed, seed))
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			X: rng.Float64(),
			Y: rng.Float64() * starCeiling,
			R: 0.3 + rng.Float64()*0.9,
		}
	}
	return stars
}

// wrap returns v modulo m in [0, m).
func wrap(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

// drawBackground paints the sky, stars and ground for the current palette,
// cross-fading when a time of day change is in progress.
func (s *Scene) drawBackground(dst *ebiten.Image) {
	w, h := float64(s.w), float64(s.h)
	from, to := palettes[s.sky.from], palettes[s.sky.to]

	s.painter.fillSky(dst, w, h, from, 1)
	if s.sky.fading() {
		s.painter.fillSky(dst, w, h, to, s.sky.progress)
	}

	if a := s.sky.starAlpha(); a > 0 {
		drawStars(dst, w, h, s.starOffset, starColor.Scaled(a))
	}

	fillRect(dst, 0, h*groundTop, w, h*(1-groundTop), s.sky.ground())
}

// fillSky fills the sky band with pal's vertical gradient at the given
// opacity. Below the gradient span the last stop's color continues.
func (p *painter) fillSky(dst *ebiten.Image, w, h float64, pal palette, alpha float64) {
	if len(pal.sky) == 0 || alpha <= 0 {
		return
	}
	p.reset()
	row := func(y float64, c Color) {
		p.vertex(0, y, c, c.A*alpha)
		p.vertex(w, y, c, c.A*alpha)
	}
	bottom := h * skyBottom
	for _, st := range pal.sky {
		row(min(st.T*pal.span*h, bottom), st.C)
	}
	last := pal.sky[len(pal.sky)-1]
	if last.T*pal.span*h < bottom {
		row(bottom, last.C)
	}
	for i := uint16(0); i+3 < uint16(len(p.verts)); i += 2 {
		p.inds = append(p.inds, i, i+1, i+2, i+1, i+3, i+2)
	}
	p.flush(dst, BlendNormal)
}

func drawStars(dst *ebiten.Image, w, h, offset float64, c Color) {
	span := w * parallaxSpan
	shift := (span - w) / 2
	for _, st := range starField {
		x := wrap(st.X*span+offset, span) - shift
		if x <= -10 || x >= w+10 {
			continue
		}
		fillCircle(dst, Vec2{x, st.Y * h}, st.R, c)
	}
}

// drawForest paints the scrolling tree line. Tree shapes depend only on
// their index, so the silhouette is stable as it scrolls.
func (s *Scene) drawForest(dst *ebiten.Image) {
	w, h := float64(s.w), float64(s.h)
	span := w * parallaxSpan
	shift := (span - w) / 2
	base := h * treeBase
	c := s.sky.forest()

	var tri [3]Vec2
	for i := range treeCount {
		x := wrap(span/treeCount*float64(i)+s.treeOffset, span) - shift
		f := float64((i%treesPerView)*37%13) / 13
		height := 50 + f*50
		width := 20 + f*15
		x += (f - 0.5) * 10
		if x <= -width || x >= w+width {
			continue
		}
		tri[0] = Vec2{x - width/2, base + 5}
		tri[1] = Vec2{x, base - height}
		tri[2] = Vec2{x + width/2, base + 5}
		s.painter.fillPolygon(dst, tri[:], c)
	}
}
