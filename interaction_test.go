package nightglow

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestScene(t *testing.T) (*Scene, *fakeClock) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 400, 300
	cfg.Seed = 7
	cfg.PaletteFade = 0
	cfg.Logger = NewNopLogger()
	s, err := NewScene(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Dispose)

	clock := &fakeClock{t: time.Date(2024, 12, 24, 22, 0, 0, 0, time.UTC)}
	s.now = clock.now
	return s, clock
}

func placeCampfire(t *testing.T, s *Scene, pos Vec2) *LightEntity {
	t.Helper()
	s.Drop("campfire", pos)
	lights := s.Lights()
	require.NotEmpty(t, lights)
	fire := lights[len(lights)-1]
	require.Equal(t, KindCampfire, fire.Kind)
	return fire
}

// flickEnd returns the release point for a gesture from start that rises by
// rise and covers dist in total.
func flickEnd(start Vec2, rise, dist float64) Vec2 {
	dx := math.Sqrt(dist*dist - rise*rise)
	return Vec2{start.X + dx, start.Y - rise}
}

func TestIsFlick(t *testing.T) {
	start := Vec2{100, 100}
	assert.True(t, IsFlick(start, flickEnd(start, 30, 40), 300*time.Millisecond))
	assert.False(t, IsFlick(start, flickEnd(start, 10, 40), 300*time.Millisecond))
	assert.False(t, IsFlick(start, flickEnd(start, 30, 40), 450*time.Millisecond))
	assert.False(t, IsFlick(start, Vec2{100, 130}, 100*time.Millisecond), "downward")
	assert.False(t, IsFlick(start, Vec2{100, 75}, 100*time.Millisecond), "rise of exactly 25")
}

func TestDropPlacesEntity(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("deskLamp", Vec2{120, 200})
	require.Len(t, s.Lights(), 1)
	l := s.Lights()[0]
	assert.Equal(t, KindDeskLamp, l.Kind)
	assert.Equal(t, Vec2{120, 200}, l.Position)
	assert.Equal(t, StateOn, l.State)
	assert.IsType(t, Idle{}, s.Mode())
}

func TestDropRejectsUnknownTag(t *testing.T) {
	s, _ := newTestScene(t)
	s.DragStart("lavaLamp")
	assert.IsType(t, Idle{}, s.Mode())
	s.Drop("lavaLamp", Vec2{100, 100})
	assert.Empty(t, s.Lights())
	assert.Nil(t, s.Moon())
	assert.IsType(t, Idle{}, s.Mode())
}

func TestDropOutsideSurfaceCancels(t *testing.T) {
	s, _ := newTestScene(t)
	s.DragStart("torch")
	require.IsType(t, &ItemPlacement{}, s.Mode())

	s.Drop("torch", Vec2{-5, 100})
	s.Drop("torch", Vec2{100, 301})
	s.Drop("stripLight", Vec2{401, 10})
	assert.Empty(t, s.Lights())
	assert.IsType(t, Idle{}, s.Mode())
}

func TestDropOnFarEdgesIsOutside(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("torch", Vec2{100, 300})
	s.Drop("campfire", Vec2{400, 100})
	s.Drop("moon", Vec2{400, 300})
	assert.Empty(t, s.Lights())
	assert.Nil(t, s.Moon())

	s.Drop("torch", Vec2{399.5, 299.5})
	assert.Len(t, s.Lights(), 1)
}

func TestDragEndCancelsPlacement(t *testing.T) {
	s, _ := newTestScene(t)
	s.DragStart("campfire")
	s.PointerMove(Vec2{30, 40})
	m, ok := s.Mode().(*ItemPlacement)
	require.True(t, ok)
	assert.Equal(t, KindCampfire, m.Kind)
	assert.Equal(t, Vec2{30, 40}, m.Ghost)

	s.DragEnd()
	assert.IsType(t, Idle{}, s.Mode())
	assert.Empty(t, s.Lights())
}

func TestStripDropArmsDrawing(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("stripLight", Vec2{50, 60})
	assert.Empty(t, s.Lights(), "a strip is not created by the drop")
	armed, ok := s.Mode().(StripArmed)
	require.True(t, ok)
	assert.Equal(t, Vec2{50, 60}, armed.Anchor)
	assert.Equal(t, 1, s.Stats().Overlays, "prompt is drawn")
}

func TestStripWithOnePointIsDiscarded(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("stripLight", Vec2{50, 60})
	s.PointerDown(Vec2{50, 50})
	s.PointerMove(Vec2{52, 51}) // within 5 units, not recorded
	s.PointerUp(Vec2{52, 51})

	assert.Empty(t, s.Lights())
	assert.IsType(t, Idle{}, s.Mode())
}

func TestStripWithPointsIsCreated(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("stripLight", Vec2{50, 60})
	s.PointerDown(Vec2{50, 50})
	require.IsType(t, &StripDrawing{}, s.Mode())

	s.PointerMove(Vec2{60, 50})
	s.PointerMove(Vec2{62, 50})
	s.PointerMove(Vec2{80, 60})
	s.PointerUp(Vec2{81, 60})

	require.Len(t, s.Lights(), 1)
	strip := s.Lights()[0]
	assert.Equal(t, KindStripLight, strip.Kind)
	assert.Equal(t, []Vec2{{50, 50}, {60, 50}, {80, 60}}, strip.Points)
	assert.IsType(t, Idle{}, s.Mode())
}

func TestClickWhileArmedCancels(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("stripLight", Vec2{50, 60})
	s.PointerUp(Vec2{50, 60})
	assert.IsType(t, Idle{}, s.Mode())
	assert.Empty(t, s.Lights())
}

func TestCampfireFlickLights(t *testing.T) {
	s, clock := newTestScene(t)
	fire := placeCampfire(t, s, Vec2{200, 200})

	start := Vec2{200, 190}
	s.PointerDown(start)
	require.IsType(t, CampfireInteraction{}, s.Mode())
	clock.advance(300 * time.Millisecond)
	s.PointerUp(flickEnd(start, 30, 40))

	assert.Equal(t, StateLit, fire.State)
	assert.Equal(t, float64(IgniteFlick), fire.FlickIntensity)
	assert.IsType(t, Idle{}, s.Mode())
}

func TestCampfireShallowFlickFails(t *testing.T) {
	s, clock := newTestScene(t)
	fire := placeCampfire(t, s, Vec2{200, 200})

	start := Vec2{200, 190}
	s.PointerDown(start)
	clock.advance(300 * time.Millisecond)
	s.PointerUp(flickEnd(start, 10, 40))

	assert.Equal(t, StateUnlit, fire.State)
	assert.Zero(t, fire.FlickIntensity)
	assert.IsType(t, Idle{}, s.Mode())
}

func TestCampfireSlowFlickFails(t *testing.T) {
	s, clock := newTestScene(t)
	fire := placeCampfire(t, s, Vec2{200, 200})

	start := Vec2{200, 190}
	s.PointerDown(start)
	clock.advance(450 * time.Millisecond)
	s.PointerUp(flickEnd(start, 30, 40))
	assert.Equal(t, StateUnlit, fire.State)
}

func TestLitCampfireIgnoresPress(t *testing.T) {
	s, clock := newTestScene(t)
	fire := placeCampfire(t, s, Vec2{200, 200})
	s.PointerDown(Vec2{200, 190})
	clock.advance(100 * time.Millisecond)
	s.PointerUp(flickEnd(Vec2{200, 190}, 30, 40))
	require.Equal(t, StateLit, fire.State)
	fire.FlickIntensity = 4

	s.PointerDown(Vec2{200, 190})
	assert.IsType(t, Idle{}, s.Mode())
	s.PointerUp(flickEnd(Vec2{200, 190}, 30, 40))
	assert.Equal(t, StateLit, fire.State)
	assert.Equal(t, 4.0, fire.FlickIntensity)
}

func TestCampfireHitRadius(t *testing.T) {
	s, _ := newTestScene(t)
	placeCampfire(t, s, Vec2{200, 200})

	s.PointerDown(Vec2{200, 215}) // 25 from the reference point
	assert.IsType(t, Idle{}, s.Mode())
	s.PointerDown(Vec2{200, 214})
	assert.IsType(t, CampfireInteraction{}, s.Mode())
}

func TestTopmostCampfireWins(t *testing.T) {
	s, _ := newTestScene(t)
	placeCampfire(t, s, Vec2{200, 200})
	top := placeCampfire(t, s, Vec2{205, 200})

	s.PointerDown(Vec2{202, 190})
	m, ok := s.Mode().(CampfireInteraction)
	require.True(t, ok)
	assert.Same(t, top, m.Target)
}

func TestCampfireTakesPrecedenceOverMoon(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("moon", Vec2{200, 190})
	placeCampfire(t, s, Vec2{200, 200})

	s.PointerDown(Vec2{200, 190})
	assert.IsType(t, CampfireInteraction{}, s.Mode())
}

func TestMoonIsSingleton(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("moon", Vec2{100, 50})
	first := s.Moon()
	require.NotNil(t, first)

	s.Drop("moon", Vec2{300, 80})
	assert.Same(t, first, s.Moon())
	assert.Equal(t, Vec2{300, 80}, s.Moon().Position)
	assert.Empty(t, s.Lights())
}

func TestMoonDropClampedToSky(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("moon", Vec2{100, 290})
	require.NotNil(t, s.Moon())
	assert.InDelta(t, 210, s.Moon().Position.Y, 1e-9)
}

func TestMoonDrag(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("moon", Vec2{100, 50})

	s.PointerDown(Vec2{110, 55})
	m, ok := s.Mode().(MoonDragging)
	require.True(t, ok)
	assert.Equal(t, Vec2{10, 5}, m.Offset)

	s.PointerMove(Vec2{160, 95})
	assert.Equal(t, Vec2{150, 90}, s.Moon().Position)

	s.PointerMove(Vec2{200, 290})
	assert.Equal(t, 190.0, s.Moon().Position.X)
	assert.InDelta(t, 225, s.Moon().Position.Y, 1e-9, "clamped to 75% of the height")

	s.PointerUp(Vec2{200, 290})
	assert.IsType(t, Idle{}, s.Mode())
	assert.InDelta(t, 225, s.Moon().Position.Y, 1e-9)
}

func TestPressOnEmptySkyDoesNothing(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("moon", Vec2{100, 50})
	s.PointerDown(Vec2{300, 200})
	assert.IsType(t, Idle{}, s.Mode())
}

func TestLeaveFinalizesStrip(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("stripLight", Vec2{50, 60})
	s.PointerDown(Vec2{10, 10})
	s.PointerMove(Vec2{40, 10})
	s.PointerLeave()

	require.Len(t, s.Lights(), 1)
	assert.Equal(t, []Vec2{{10, 10}, {40, 10}}, s.Lights()[0].Points)
	assert.IsType(t, Idle{}, s.Mode())
}

func TestLeaveCancelsArmedStrip(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("stripLight", Vec2{50, 60})
	s.PointerLeave()
	assert.IsType(t, Idle{}, s.Mode())
	assert.Empty(t, s.Lights())
}

func TestLeaveFinishesCampfireGesture(t *testing.T) {
	s, clock := newTestScene(t)
	fire := placeCampfire(t, s, Vec2{200, 200})

	start := Vec2{200, 190}
	s.PointerDown(start)
	clock.advance(120 * time.Millisecond)
	s.PointerMove(flickEnd(start, 35, 45))
	s.PointerLeave()

	assert.Equal(t, StateLit, fire.State)
	assert.IsType(t, Idle{}, s.Mode())
}

func TestLeaveEndsMoonDragAndPlacement(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("moon", Vec2{100, 50})
	s.PointerDown(Vec2{100, 50})
	s.PointerLeave()
	assert.IsType(t, Idle{}, s.Mode())

	s.DragStart("torch")
	s.PointerLeave()
	assert.IsType(t, Idle{}, s.Mode())
}

func TestDragStartNeutralizesDrawing(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("stripLight", Vec2{50, 60})
	s.PointerDown(Vec2{10, 10})
	s.PointerMove(Vec2{40, 10})

	s.DragStart("torch")
	assert.IsType(t, &ItemPlacement{}, s.Mode())
	s.DragEnd()
	assert.Empty(t, s.Lights(), "the abandoned path is not turned into a strip")
}

func TestDropWhileArmedReplacesMode(t *testing.T) {
	s, _ := newTestScene(t)
	s.Drop("stripLight", Vec2{50, 60})
	s.Drop("torch", Vec2{100, 200})
	assert.IsType(t, Idle{}, s.Mode())
	require.Len(t, s.Lights(), 1)
	assert.Equal(t, KindTorch, s.Lights()[0].Kind)
}
