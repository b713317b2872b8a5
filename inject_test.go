package nightglow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectDropConsumesTwoTicks(t *testing.T) {
	s, _ := newTestScene(t)
	s.InjectDrop("penguinLed", 100, 150)
	require.Equal(t, 2, s.Pending())

	require.True(t, s.processInjectedInput())
	assert.IsType(t, &ItemPlacement{}, s.Mode())
	assert.Empty(t, s.Lights())

	require.True(t, s.processInjectedInput())
	require.Len(t, s.Lights(), 1)
	assert.Equal(t, KindPenguinLed, s.Lights()[0].Kind)
	assert.False(t, s.processInjectedInput())
}

func TestInjectDragSequence(t *testing.T) {
	s, _ := newTestScene(t)
	s.InjectDrag(10, 10, 110, 10, 6)
	require.Equal(t, 6, s.Pending())

	assert.Equal(t, evPress, s.injectQueue[0].kind)
	assert.Equal(t, evRelease, s.injectQueue[5].kind)
	for i := 1; i <= 4; i++ {
		assert.Equal(t, evMove, s.injectQueue[i].kind)
		assert.InDelta(t, 10+float64(i)*20, s.injectQueue[i].pos.X, 1e-9)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	s, _ := newTestScene(t)
	s.InjectDrag(0, 0, 50, 50, 0)
	assert.Equal(t, 2, s.Pending())
}

func TestInjectedStripDrawing(t *testing.T) {
	s, _ := newTestScene(t)
	s.InjectDrop("stripLight", 50, 50)
	s.InjectDrag(20, 100, 200, 100, 8)
	for s.Pending() > 0 {
		s.processInjectedInput()
	}
	require.Len(t, s.Lights(), 1)
	strip := s.Lights()[0]
	// The press and six moves are recorded; the release only ends the path.
	require.Len(t, strip.Points, 7)
	assert.Equal(t, Vec2{20, 100}, strip.Points[0])
	assert.InDelta(t, 20+180.0*6/7, strip.Points[6].X, 1e-9)
}

func TestInjectLeave(t *testing.T) {
	s, _ := newTestScene(t)
	s.InjectDrop("stripLight", 50, 50)
	s.InjectLeave()
	for s.Pending() > 0 {
		s.processInjectedInput()
	}
	assert.IsType(t, Idle{}, s.Mode())
	assert.Empty(t, s.Lights())
}
