package nightglow

import (
	"fmt"
	"time"
)

// Mode is the interaction machine's current mode. Exactly one is active at
// a time; switching modes replaces the value, so no two can overlap.
type Mode interface {
	fmt.Stringer
	isMode()
}

// Idle is the resting mode.
type Idle struct{}

// StripArmed waits for the user to start drawing a strip path. Anchor is
// where the strip item was dropped and where the prompt is shown.
type StripArmed struct {
	Anchor Vec2
}

// StripDrawing accumulates a freehand strip path.
type StripDrawing struct {
	Points []Vec2
}

// CampfireInteraction tracks a possible flick on an unlit campfire.
type CampfireInteraction struct {
	Target    *LightEntity
	Start     Vec2
	StartTime time.Time
	// Last is the latest pointer position, used when the pointer leaves.
	Last Vec2
}

// MoonDragging moves the moon with the pointer. Offset is the grab point
// relative to the moon's center.
type MoonDragging struct {
	Offset Vec2
	Last   Vec2
}

// ItemPlacement is a drawer item being dragged toward the surface.
type ItemPlacement struct {
	Kind Kind
	// Ghost is the last pointer position, for drawing the drag label.
	Ghost Vec2
}

func (Idle) isMode()                {}
func (StripArmed) isMode()          {}
func (*StripDrawing) isMode()       {}
func (CampfireInteraction) isMode() {}
func (MoonDragging) isMode()        {}
func (*ItemPlacement) isMode()      {}

func (Idle) String() string                { return "idle" }
func (StripArmed) String() string          { return "strip armed" }
func (*StripDrawing) String() string       { return "strip drawing" }
func (CampfireInteraction) String() string { return "campfire" }
func (MoonDragging) String() string        { return "moon drag" }
func (m *ItemPlacement) String() string    { return "placing " + m.Kind.String() }

// Interaction thresholds, in surface units.
const (
	stripMinStepSq    = 25 // squared distance before a new path point is kept
	campfireHitRadius = 25 // pointer distance to a campfire's reference point
	campfireHitLift   = 10 // the reference point sits this far above the base
	moonHitRadius     = 30
	flickMinRise      = 25
	flickMinDistance  = 30
	flickMaxDuration  = 450 * time.Millisecond
	moonDragLimit     = 0.75 // fraction of the height the moon can be dragged down to
	moonDropLimit     = 0.70 // same, for drops
)

// IsFlick reports whether a pointer gesture from start to end taking elapsed
// is fast, long and upward enough to light a campfire.
func IsFlick(start, end Vec2, elapsed time.Duration) bool {
	rise := start.Y - end.Y
	return rise > flickMinRise && Dist(start, end) > flickMinDistance && elapsed < flickMaxDuration
}

// PointerDown starts an interaction. A pending strip takes precedence, then
// the topmost unlit campfire under the pointer, then the moon.
func (s *Scene) PointerDown(pos Vec2) {
	switch m := s.state.Mode.(type) {
	case StripArmed:
		s.state.Mode = &StripDrawing{Points: []Vec2{pos}}
		s.log.Debugf("strip drawing started at (%.1f, %.1f), armed at (%.1f, %.1f)", pos.X, pos.Y, m.Anchor.X, m.Anchor.Y)
		return
	case *StripDrawing:
		return
	}

	for i := len(s.state.Lights) - 1; i >= 0; i-- {
		l := s.state.Lights[i]
		if l.Kind != KindCampfire || l.State != StateUnlit {
			continue
		}
		ref := Vec2{l.Position.X, l.Position.Y - campfireHitLift}
		if Dist(pos, ref) < campfireHitRadius {
			s.state.Mode = CampfireInteraction{Target: l, Start: pos, StartTime: s.now(), Last: pos}
			return
		}
	}

	if moon := s.state.Moon; moon != nil && Dist(pos, moon.Position) < moonHitRadius {
		s.state.Mode = MoonDragging{Offset: pos.Sub(moon.Position), Last: pos}
	}
}

// PointerMove feeds the active interaction.
func (s *Scene) PointerMove(pos Vec2) {
	switch m := s.state.Mode.(type) {
	case *StripDrawing:
		if DistSq(pos, m.Points[len(m.Points)-1]) > stripMinStepSq {
			m.Points = append(m.Points, pos)
		}
	case CampfireInteraction:
		m.Last = pos
		s.state.Mode = m
	case MoonDragging:
		if s.state.Moon == nil {
			s.state.Mode = Idle{}
			return
		}
		p := pos.Sub(m.Offset)
		p.Y = min(p.Y, moonDragLimit*float64(s.h))
		s.state.Moon.Position = p
		m.Last = pos
		s.state.Mode = m
	case *ItemPlacement:
		m.Ghost = pos
	}
}

// PointerUp finishes the active interaction.
func (s *Scene) PointerUp(pos Vec2) {
	switch m := s.state.Mode.(type) {
	case *StripDrawing:
		s.state.Mode = Idle{}
		s.finishStrip(m.Points)
		s.Redraw()
	case CampfireInteraction:
		s.state.Mode = Idle{}
		elapsed := s.now().Sub(m.StartTime)
		if !IsFlick(m.Start, pos, elapsed) {
			s.log.Debugf("campfire %s: no flick (rise %.1f, dist %.1f, %v)",
				m.Target.ID, m.Start.Y-pos.Y, Dist(m.Start, pos), elapsed)
			return
		}
		if m.Target.Ignite() {
			s.log.Debugf("campfire %s lit", m.Target.ID)
			s.Redraw()
		}
	case MoonDragging:
		s.state.Mode = Idle{}
	case StripArmed:
		// Clicked without drawing.
		s.state.Mode = Idle{}
		s.log.Debugf("strip cancelled")
		s.Redraw()
	}
}

// PointerLeave handles the pointer leaving the surface. Active interactions
// finish as if released at their last position; a pending strip or item
// placement is cancelled.
func (s *Scene) PointerLeave() {
	switch m := s.state.Mode.(type) {
	case *StripDrawing:
		s.PointerUp(m.Points[len(m.Points)-1])
	case CampfireInteraction:
		s.PointerUp(m.Last)
	case MoonDragging:
		s.PointerUp(m.Last)
	case StripArmed:
		s.state.Mode = Idle{}
		s.log.Debugf("strip cancelled on leave")
		s.Redraw()
	case *ItemPlacement:
		s.state.Mode = Idle{}
	}
}

func (s *Scene) finishStrip(points []Vec2) {
	strip, err := NewStripLight(points)
	if err != nil {
		s.log.Debugf("strip discarded: %v", err)
		return
	}
	s.state.Lights = append(s.state.Lights, strip)
	s.log.Debugf("strip %s created with %d points", strip.ID, len(strip.Points))
}

// DragStart begins dragging a drawer item with the given kind tag. Any
// other interaction is abandoned.
func (s *Scene) DragStart(tag string) {
	kind, err := ParseKind(tag)
	if err != nil {
		s.log.Warnf("drag start rejected: %v", err)
		return
	}
	s.state.Mode = &ItemPlacement{Kind: kind}
}

// DragEnd cancels a drawer drag that ended without a drop.
func (s *Scene) DragEnd() {
	if _, ok := s.state.Mode.(*ItemPlacement); ok {
		s.state.Mode = Idle{}
	}
}

// Drop places an item of the given kind tag at pos. Strips arm path drawing
// instead of placing; the moon is created or moved. Drops outside the
// surface and unknown tags place nothing.
func (s *Scene) Drop(tag string, pos Vec2) {
	kind, err := ParseKind(tag)
	if err != nil {
		s.log.Warnf("drop rejected: %v", err)
		s.DragEnd()
		return
	}
	s.DropKind(kind, pos)
}

// DropKind is Drop for an already parsed kind.
func (s *Scene) DropKind(kind Kind, pos Vec2) {
	s.state.Mode = Idle{}
	if !kind.Valid() {
		s.log.Warnf("drop rejected: %v", kind)
		return
	}
	if !s.Bounds().Contains(pos.X, pos.Y) {
		s.log.Debugf("drop of %v outside surface at (%.1f, %.1f)", kind, pos.X, pos.Y)
		return
	}

	switch kind {
	case KindMoon:
		s.PlaceMoon(pos)
	case KindStripLight:
		s.state.Mode = StripArmed{Anchor: pos}
		s.log.Debugf("strip armed at (%.1f, %.1f)", pos.X, pos.Y)
	default:
		l, err := NewLightEntity(kind, pos)
		if err != nil {
			s.log.Warnf("drop rejected: %v", err)
			return
		}
		s.state.Lights = append(s.state.Lights, l)
		s.log.Debugf("%v %s placed at (%.1f, %.1f)", kind, l.ID, pos.X, pos.Y)
	}
	s.Redraw()
}
