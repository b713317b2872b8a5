package nightglow

import "github.com/hajimehoshi/ebiten/v2"

// RenderTexture is a persistent offscreen canvas owned by the caller. The
// scene keeps two: the visible surface and the light mask.
type RenderTexture struct {
	image *ebiten.Image
	w, h  int
}

// NewRenderTexture creates a persistent offscreen canvas of the given size.
func NewRenderTexture(w, h int) *RenderTexture {
	return &RenderTexture{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (rt *RenderTexture) Image() *ebiten.Image {
	return rt.image
}

// Width returns the texture width in pixels.
func (rt *RenderTexture) Width() int {
	return rt.w
}

// Height returns the texture height in pixels.
func (rt *RenderTexture) Height() int {
	return rt.h
}

// Bounds returns the texture area in its own coordinates.
func (rt *RenderTexture) Bounds() Rect {
	return Rect{Width: float64(rt.w), Height: float64(rt.h)}
}

// Clear fills the texture with transparent black.
func (rt *RenderTexture) Clear() {
	rt.image.Clear()
}

// Fill fills the entire texture with the given color.
func (rt *RenderTexture) Fill(c Color) {
	rt.image.Fill(c.toRGBA())
}

// DrawOnto draws this texture onto dst at (x, y) with the given blend mode.
func (rt *RenderTexture) DrawOnto(dst *ebiten.Image, x, y float64, blend BlendMode) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.Blend = blend.EbitenBlend()
	dst.DrawImage(rt.image, &op)
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. Resizing to the current size is a no-op.
func (rt *RenderTexture) Resize(width, height int) {
	if rt.image != nil && width == rt.w && height == rt.h {
		return
	}
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.image = ebiten.NewImage(width, height)
	rt.w = width
	rt.h = height
}

// Dispose deallocates the underlying image. The RenderTexture should not be
// used after calling Dispose.
func (rt *RenderTexture) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
}
