package nightglow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkyFadeSettle(t *testing.T) {
	var f skyFade
	f.settle(Dawn)
	assert.False(t, f.fading())
	assert.Equal(t, 1.0, f.progress)
	assert.Equal(t, palettes[Dawn].ground, f.ground())
	assert.Equal(t, 0.0, f.starAlpha())

	f.settle(Midnight)
	assert.Equal(t, 1.0, f.starAlpha())
	assert.Equal(t, palettes[Midnight].forest, f.forest())
}

func TestSkyFadeZeroDurationSettles(t *testing.T) {
	var f skyFade
	f.settle(Midnight)
	f.start(Midnight, Dawn, 0)
	assert.False(t, f.fading())
	assert.Equal(t, Dawn, f.to)
	assert.Equal(t, Dawn, f.from)
}

func TestSkyFadeAdvance(t *testing.T) {
	var f skyFade
	f.settle(Midnight)
	f.start(Midnight, Dawn, 1)
	assert.True(t, f.fading())
	assert.Equal(t, 0.0, f.progress)
	assert.Equal(t, 1.0, f.starAlpha())

	f.advance(0.5)
	assert.True(t, f.fading())
	assert.InDelta(t, 0.5, f.progress, 0.01)
	assert.InDelta(t, 0.5, f.starAlpha(), 0.01)

	f.advance(0.6)
	assert.False(t, f.fading())
	assert.Equal(t, Dawn, f.from)
	assert.Equal(t, palettes[Dawn].ground, f.ground())
}

func TestSkyFadeAdvanceAtRestIsNoop(t *testing.T) {
	var f skyFade
	f.settle(Dawn)
	f.advance(10)
	assert.Equal(t, 1.0, f.progress)
	assert.Equal(t, Dawn, f.to)
}

func TestPalettesCoverEveryTimeOfDay(t *testing.T) {
	for _, tod := range []TimeOfDay{Midnight, Dawn} {
		p, ok := palettes[tod]
		assert.True(t, ok, tod.String())
		assert.GreaterOrEqual(t, len(p.sky), 2)
		assert.Equal(t, 0.0, p.sky[0].T)
		assert.Equal(t, 1.0, p.sky[len(p.sky)-1].T)
	}
}
