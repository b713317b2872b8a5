package nightglow

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneState is everything the user has built: the time of day, placed
// lights in draw order, the optional moon, and the interaction mode.
type SceneState struct {
	TimeOfDay TimeOfDay
	Lights    []*LightEntity
	Moon      *Moon
	Mode      Mode
}

// Reset empties the scene and returns the interaction machine to Idle.
// The time of day is kept.
func (st *SceneState) Reset() {
	st.Lights = nil
	st.Moon = nil
	st.Mode = Idle{}
}

// Scene owns the scene state, the visible surface and the light mask, and
// drives them from ebiten's game loop. Scene implements ebiten.Game.
type Scene struct {
	cfg   Config
	log   Logger
	state SceneState

	w, h    int
	surface *RenderTexture
	mask    *LightMask
	sink    lightSink // receives emitted light; the mask outside tests
	painter painter
	rng     *rand.Rand
	now     func() time.Time

	frame      uint64
	drawn      []Kind // sprite draw order of the last frame
	starOffset float64
	treeOffset float64
	sky        skyFade
	ornaments  []Ornament

	// forced is set by a forced redraw and cancels the next scheduled render.
	forced bool
	stats  FrameStats

	pointer         pointerTracker
	injectQueue     []inputEvent
	script          *ScriptRunner
	drawer          *drawer
	hud             *hud
	screenshotQueue []string
}

// NewScene validates cfg and creates an empty scene of cfg.Width x cfg.Height.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NewDefaultLogger("nightglow", cfg.Debug)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Scene{
		cfg:     cfg,
		log:     logger,
		w:       cfg.Width,
		h:       cfg.Height,
		surface: NewRenderTexture(cfg.Width, cfg.Height),
		mask:    NewLightMask(cfg.Width, cfg.Height),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:     time.Now,
		drawer:  newDrawer(),
		hud:     newHUD(),
	}
	s.sink = s.mask
	s.hud.visible = cfg.ShowHUD
	s.state.TimeOfDay = cfg.TimeOfDay
	s.state.Mode = Idle{}
	s.sky.settle(cfg.TimeOfDay)
	s.log.Debugf("scene %dx%d, %v, seed %d", s.w, s.h, s.state.TimeOfDay, seed)
	return s, nil
}

// Config returns the configuration the scene was created with.
func (s *Scene) Config() Config { return s.cfg }

// State returns the live scene state. Callers should treat it as read-only
// and go through the Scene's commands to change it.
func (s *Scene) State() *SceneState { return &s.state }

// Lights returns the placed lights in draw order.
func (s *Scene) Lights() []*LightEntity { return s.state.Lights }

// Moon returns the moon, or nil if none has been dropped.
func (s *Scene) Moon() *Moon { return s.state.Moon }

// Mode returns the current interaction mode.
func (s *Scene) Mode() Mode { return s.state.Mode }

// TimeOfDay returns the current sky setting.
func (s *Scene) TimeOfDay() TimeOfDay { return s.state.TimeOfDay }

// Frame returns the number of frames rendered so far.
func (s *Scene) Frame() uint64 { return s.frame }

// Stats returns the counts from the last rendered frame.
func (s *Scene) Stats() FrameStats { return s.stats }

// Size returns the surface size in pixels.
func (s *Scene) Size() (int, int) { return s.w, s.h }

// Surface returns the visible surface.
func (s *Scene) Surface() *RenderTexture { return s.surface }

// Bounds returns the surface area in surface coordinates.
func (s *Scene) Bounds() Rect { return s.surface.Bounds() }

// Logger returns the scene's logger.
func (s *Scene) Logger() Logger { return s.log }

// SetHUD shows or hides the stats overlay.
func (s *Scene) SetHUD(visible bool) { s.hud.visible = visible }

// Clear removes every light and the moon and resets the interaction mode,
// then redraws.
func (s *Scene) Clear() {
	s.state.Reset()
	s.log.Debugf("scene cleared")
	s.Redraw()
}

// SetTimeOfDay switches the sky palette and redraws. The sky cross-fades
// over Config.PaletteFade seconds.
func (s *Scene) SetTimeOfDay(t TimeOfDay) {
	if t != Midnight && t != Dawn {
		s.log.Warnf("rejected time of day %v", t)
		return
	}
	if t != s.state.TimeOfDay {
		s.sky.start(s.state.TimeOfDay, t, s.cfg.PaletteFade)
	}
	s.state.TimeOfDay = t
	s.log.Debugf("time of day %v", t)
	s.Redraw()
}

// PlaceMoon creates the moon at pos, or moves the existing one there. The
// moon is kept in the upper part of the sky.
func (s *Scene) PlaceMoon(pos Vec2) {
	pos.Y = min(pos.Y, moonDropLimit*float64(s.h))
	if s.state.Moon == nil {
		s.state.Moon = &Moon{Position: pos}
		s.log.Debugf("moon placed at (%.1f, %.1f)", pos.X, pos.Y)
		return
	}
	s.state.Moon.Position = pos
	s.log.Debugf("moon moved to (%.1f, %.1f)", pos.X, pos.Y)
}

// Resize changes the surface size, clamped to MinWidth x MinHeight, and
// redraws immediately.
func (s *Scene) Resize(w, h int) {
	w = max(w, MinWidth)
	h = max(h, MinHeight)
	s.w, s.h = w, h
	s.surface.Resize(w, h)
	s.mask.Resize(w, h)
	s.log.Debugf("resized to %dx%d", w, h)
	s.Redraw()
}

// Update implements ebiten.Game. It handles one tick of input and then
// renders a frame unless a forced redraw already did.
func (s *Scene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.processInput()
	s.tick()
	s.hud.update(s, dt)
	return nil
}

// Draw implements ebiten.Game. It shows the last rendered frame with the
// drawer below it.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.surface.DrawOnto(screen, 0, 0, BlendNone)
	s.drawer.draw(screen, s)
	s.hud.draw(screen)
	s.flushScreenshots(s.surface.Image())
}

// Layout implements ebiten.Game. The window is the surface plus the drawer.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.w, s.h + drawerHeight
}

// Dispose releases the surface and mask images.
func (s *Scene) Dispose() {
	s.surface.Dispose()
	s.mask.Dispose()
}
