package nightglow

import "github.com/hajimehoshi/ebiten/v2"

// FrameStats counts what the last rendered frame drew.
type FrameStats struct {
	Frame     uint64
	Sprites   int // physical sprites, including the moon
	Wires     int // strip wires
	Glows     int // light mask contributions
	Ornaments int // strip bells
	Embers    int // live embers after the update
	Overlays  int // interaction prompts and in-progress paths
	Forced    bool
}

const stripPrompt = "Click and drag on canvas to draw strip path"

// tick is one scheduled frame. A forced redraw since the previous tick
// stands in for it, so the frame counter advances once either way.
func (s *Scene) tick() {
	if s.forced {
		s.forced = false
		return
	}
	s.renderFrame(false)
}

// Redraw renders a frame immediately and cancels the next scheduled one.
// The result is the same as a scheduled frame, including the frame counter
// and parallax advance.
func (s *Scene) Redraw() {
	s.renderFrame(true)
	s.forced = true
	s.log.Debugf("forced redraw, frame %d", s.frame)
}

// renderFrame is the single render path for scheduled and forced frames.
func (s *Scene) renderFrame(forced bool) {
	s.frame++
	s.starOffset -= starSpeed
	s.treeOffset -= treeSpeed
	s.sky.advance(1.0 / float64(ebiten.TPS()))

	s.stats = FrameStats{Frame: s.frame, Forced: forced}
	dst := s.surface.Image()
	fc := &frameContext{
		n:         s.frame,
		surface:   dst,
		mask:      s.sink,
		rng:       s.rng,
		p:         &s.painter,
		emberCap:  s.cfg.EmberCap,
		stats:     &s.stats,
		ornaments: s.ornaments,
	}

	s.drawn = s.drawn[:0]
	s.surface.Clear()
	s.drawBackground(dst)
	s.drawForest(dst)

	// Sprites first, then the wires strips hang from.
	for _, l := range s.state.Lights {
		if spec, ok := kindTable[l.Kind]; ok && !spec.wire {
			spec.draw(fc, l)
			s.drawn = append(s.drawn, l.Kind)
			s.stats.Sprites++
		}
	}
	for _, l := range s.state.Lights {
		if spec, ok := kindTable[l.Kind]; ok && spec.wire {
			spec.draw(fc, l)
			s.drawn = append(s.drawn, l.Kind)
			s.stats.Wires++
		}
	}
	if s.state.Moon != nil {
		drawMoon(fc, s.state.Moon)
		s.drawn = append(s.drawn, KindMoon)
		s.stats.Sprites++
	}

	s.mask.Begin()
	if s.state.Moon != nil {
		emitMoon(fc, s.state.Moon)
	}
	for _, l := range s.state.Lights {
		spec, ok := kindTable[l.Kind]
		if !ok || !l.Emitting() {
			continue
		}
		spec.emit(fc, l)
	}
	s.ornaments = fc.ornaments
	s.stats.Glows = s.mask.Glows()
	s.mask.CompositeOnto(dst)

	s.drawOverlays(dst)
	s.debugFrame()
}

// drawOverlays draws the strip prompt or the path being drawn.
func (s *Scene) drawOverlays(dst *ebiten.Image) {
	switch m := s.state.Mode.(type) {
	case StripArmed:
		a := m.Anchor
		drawCaption(dst, stripPrompt, a.X, a.Y-15, promptColor)
		strokePolyline(dst, []Vec2{{a.X - 8, a.Y}, {a.X + 8, a.Y}}, 1, crosshairColor)
		strokePolyline(dst, []Vec2{{a.X, a.Y - 8}, {a.X, a.Y + 8}}, 1, crosshairColor)
		s.stats.Overlays++
	case *StripDrawing:
		strokeDashed(dst, m.Points, 2, 6, 4, pendingPathColor)
		s.stats.Overlays++
	}
}
