package nightglow

// debugInterval is how often, in frames, per-frame stats are logged.
const debugInterval = 120

// debugFrame logs the last frame's stats every debugInterval frames when
// Config.Debug is set.
func (s *Scene) debugFrame() {
	if !s.cfg.Debug || s.frame%debugInterval != 0 {
		return
	}
	st := s.stats
	s.log.Debugf("frame %d | sprites: %d | wires: %d | glows: %d | ornaments: %d | embers: %d | overlays: %d | mode: %v",
		st.Frame, st.Sprites, st.Wires, st.Glows, st.Ornaments, st.Embers, st.Overlays, s.state.Mode)
}
