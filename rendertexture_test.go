package nightglow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderTextureDimensions(t *testing.T) {
	rt := NewRenderTexture(128, 64)
	defer rt.Dispose()

	assert.Equal(t, 128, rt.Width())
	assert.Equal(t, 64, rt.Height())
	require.NotNil(t, rt.Image())
	assert.Equal(t, Rect{Width: 128, Height: 64}, rt.Bounds())
}

func TestRenderTextureResize(t *testing.T) {
	rt := NewRenderTexture(32, 32)
	defer rt.Dispose()

	img := rt.Image()
	rt.Resize(32, 32)
	assert.Same(t, img, rt.Image(), "same size keeps the image")

	rt.Resize(64, 16)
	assert.NotSame(t, img, rt.Image())
	assert.Equal(t, 64, rt.Width())
	assert.Equal(t, 16, rt.Height())
	b := rt.Image().Bounds()
	assert.Equal(t, 64, b.Dx())
	assert.Equal(t, 16, b.Dy())
}

func TestRenderTextureDisposeTwice(t *testing.T) {
	rt := NewRenderTexture(8, 8)
	rt.Dispose()
	assert.Nil(t, rt.Image())
	assert.NotPanics(t, rt.Dispose)
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{Width: 400, Height: 300}
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(399.5, 299.5))
	assert.False(t, r.Contains(400, 10))
	assert.False(t, r.Contains(10, 300))
	assert.False(t, r.Contains(-0.1, 10))
}
