package nightglow

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// skyStop is a color stop of the vertical sky gradient. T is relative to the
// gradient span.
type skyStop struct {
	T float64
	C Color
}

// palette is the background look for one time of day.
type palette struct {
	span   float64 // gradient runs from 0 to span*height
	sky    []skyStop
	ground Color
	forest Color
	stars  bool
}

var palettes = map[TimeOfDay]palette{
	Midnight: {
		span: 0.7,
		sky: []skyStop{
			{0, mustParseColor("#00001a")},
			{1, mustParseColor("#1a1a4d")},
		},
		ground: mustParseColor("#1a1a00"),
		forest: mustParseColor("#0d0d0d"),
		stars:  true,
	},
	Dawn: {
		span: 0.8,
		sky: []skyStop{
			{0, mustParseColor("#4d4dff")},
			{0.5, mustParseColor("#ffa500")},
			{1, mustParseColor("#ffcc66")},
		},
		ground: mustParseColor("#556B2F"),
		forest: mustParseColor("#2F4F4F"),
	},
}

// skyFade cross-fades the background from one palette to another. At rest
// from == to and progress is 1.
type skyFade struct {
	from, to TimeOfDay
	tween    *gween.Tween
	progress float64
}

// settle jumps straight to t.
func (f *skyFade) settle(t TimeOfDay) {
	f.from, f.to = t, t
	f.tween = nil
	f.progress = 1
}

// start begins a fade from the currently shown palette to t over seconds.
// A fade already in flight restarts from its target.
func (f *skyFade) start(from, to TimeOfDay, seconds float64) {
	if seconds <= 0 {
		f.settle(to)
		return
	}
	f.from, f.to = from, to
	f.progress = 0
	f.tween = gween.New(0, 1, float32(seconds), ease.InOutQuad)
}

// advance moves the fade forward by dt seconds.
func (f *skyFade) advance(dt float64) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(float32(dt))
	f.progress = clamp01(float64(v))
	if done {
		f.settle(f.to)
	}
}

// fading reports whether a cross-fade is in progress.
func (f *skyFade) fading() bool {
	return f.tween != nil
}

// ground and forest return the blended solid colors.
func (f *skyFade) ground() Color {
	return palettes[f.from].ground.Lerp(palettes[f.to].ground, f.progress)
}

func (f *skyFade) forest() Color {
	return palettes[f.from].forest.Lerp(palettes[f.to].forest, f.progress)
}

// starAlpha is how visible the starfield is, 1 at midnight and 0 at dawn.
func (f *skyFade) starAlpha() float64 {
	a := 0.0
	if palettes[f.from].stars {
		a += 1 - f.progress
	}
	if palettes[f.to].stars {
		a += f.progress
	}
	return a
}
