package nightglow

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerTracker turns polled mouse and touch state into pointer events.
// Only the primary pointer is tracked.
type pointerTracker struct {
	down     bool
	inside   bool
	touching bool
	last     Vec2
	touchIDs []ebiten.TouchID
}

// processInput runs keyboard commands, the script, and then one pointer
// update: a queued synthetic event if there is one, otherwise real input.
func (s *Scene) processInput() {
	s.processKeys()
	if s.script != nil {
		s.script.step(s)
	}
	if s.processInjectedInput() {
		return
	}
	pos, pressed := s.pointer.poll()
	s.routePointer(pos, pressed)
}

func (s *Scene) processKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.SetTimeOfDay(Midnight)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		s.SetTimeOfDay(Dawn)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.Screenshot("manual")
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		s.hud.visible = !s.hud.visible
	}
}

// poll reads the primary pointer. A touch wins over the mouse; when the
// touch ends, its last position is reported as the release point.
func (t *pointerTracker) poll() (Vec2, bool) {
	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])
	if len(t.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(t.touchIDs[0])
		t.touching = true
		return Vec2{float64(x), float64(y)}, true
	}
	if t.touching {
		t.touching = false
		return t.last, false
	}
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// routePointer converts one polled pointer sample into down, move, up and
// leave calls. Presses in the drawer start an item drag; releasing that
// drag over the surface drops the item.
func (s *Scene) routePointer(pos Vec2, pressed bool) {
	t := &s.pointer
	inside := s.Bounds().Contains(pos.X, pos.Y)
	_, placing := s.state.Mode.(*ItemPlacement)

	switch {
	case pressed && !t.down:
		t.down = true
		if kind, ok := s.drawer.itemAt(pos, s.w, s.h); ok {
			s.DragStart(kind.String())
			s.PointerMove(pos)
		} else if inside {
			s.PointerDown(pos)
		}
	case !pressed && t.down:
		t.down = false
		if m, ok := s.state.Mode.(*ItemPlacement); ok {
			if inside {
				s.DropKind(m.Kind, pos)
			} else {
				s.DragEnd()
			}
		} else if inside {
			s.PointerUp(pos)
		}
	case pos != t.last && (inside || placing):
		s.PointerMove(pos)
	}

	_, placing = s.state.Mode.(*ItemPlacement)
	if t.inside && !inside && !placing {
		s.PointerLeave()
	}
	t.inside = inside
	t.last = pos
}
