package nightglow

// inputEventKind is the kind of a queued synthetic event.
type inputEventKind uint8

const (
	evPress inputEventKind = iota
	evMove
	evRelease
	evLeave
	evDragStart
	evDrop
)

// inputEvent is one queued synthetic input event, in surface coordinates.
type inputEvent struct {
	kind inputEventKind
	pos  Vec2
	tag  string
}

// InjectPress queues a pointer press at (x, y). Queued events are consumed
// one per tick, ahead of real input.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, inputEvent{kind: evPress, pos: Vec2{x, y}})
}

// InjectMove queues a pointer move to (x, y).
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, inputEvent{kind: evMove, pos: Vec2{x, y}})
}

// InjectRelease queues a pointer release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, inputEvent{kind: evRelease, pos: Vec2{x, y}})
}

// InjectLeave queues the pointer leaving the surface.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, inputEvent{kind: evLeave})
}

// InjectDrop queues a drawer drag of the given kind tag and its drop at
// (x, y). Consumes two ticks.
func (s *Scene) InjectDrop(tag string, x, y float64) {
	s.injectQueue = append(s.injectQueue,
		inputEvent{kind: evDragStart, tag: tag},
		inputEvent{kind: evDrop, tag: tag, pos: Vec2{x, y}},
	)
}

// InjectDrag queues a full pointer drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). The sequence consumes frames ticks; the minimum is 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p := LerpVec(Vec2{fromX, fromY}, Vec2{toX, toY}, t)
		s.InjectMove(p.X, p.Y)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the queue and dispatches it.
// It reports whether an event was consumed, in which case real pointer
// input is skipped for the tick.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case evPress:
		s.PointerDown(evt.pos)
	case evMove:
		s.PointerMove(evt.pos)
	case evRelease:
		s.PointerUp(evt.pos)
	case evLeave:
		s.PointerLeave()
	case evDragStart:
		s.DragStart(evt.tag)
	case evDrop:
		s.Drop(evt.tag, evt.pos)
	}
	return true
}
