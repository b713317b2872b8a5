package nightglow

import "math/rand/v2"

const (
	emberSpawnInterval = 4    // frames between spawn chances
	emberSpawnChance   = 0.6  // scaled by campfire intensity
	emberDamping       = 0.985
	emberFade          = 0.018
	// emberAlphaEpsilon absorbs float drift so a fade lasts exactly
	// ceil(alpha/emberFade) steps.
	emberAlphaEpsilon = 1e-9

	// DefaultEmberCap bounds live embers per campfire.
	DefaultEmberCap = 200
)

// Ember is a rising glow particle owned by a lit campfire.
type Ember struct {
	Pos   Vec2
	Vel   Vec2
	Alpha float64
}

// Step advances the ember by one frame: move, damp the rise, fade.
func (e *Ember) Step() {
	e.Pos = e.Pos.Add(e.Vel)
	e.Vel.Y *= emberDamping
	e.Alpha -= emberFade
}

// Dead reports whether the ember has faded out.
func (e *Ember) Dead() bool {
	return e.Alpha <= emberAlphaEpsilon
}

// advanceEmbers steps every ember and drops the dead ones in place,
// preserving order.
func advanceEmbers(embers []Ember) []Ember {
	alive := embers[:0]
	for i := range embers {
		e := embers[i]
		e.Step()
		if e.Dead() {
			continue
		}
		alive = append(alive, e)
	}
	// Clear the tail so the backing array does not pin stale values.
	clear(embers[len(alive):])
	return alive
}

// shouldSpawnEmber gates spawning to every emberSpawnInterval-th frame and
// then rolls against emberSpawnChance*intensity. The roll is only drawn on
// gated frames.
func shouldSpawnEmber(frame uint64, intensity float64, rng *rand.Rand) bool {
	return frame%emberSpawnInterval == 0 && rng.Float64() < emberSpawnChance*intensity
}

// newEmber spawns near the log pile of a campfire standing at base.
func newEmber(base Vec2, rng *rand.Rand) Ember {
	x := base.X + (rng.Float64()-0.5)*20
	y := base.Y - 25 - rng.Float64()*20
	alpha := 0.8 + rng.Float64()*0.2
	vy := -(0.6 + rng.Float64()*0.9)
	vx := (rng.Float64() - 0.5) * 0.4
	return Ember{Pos: Vec2{x, y}, Vel: Vec2{vx, vy}, Alpha: alpha}
}

// updateEmbers runs one frame of the campfire's particle system: maybe spawn,
// then advance all. limit <= 0 disables the cap.
func (l *LightEntity) updateEmbers(frame uint64, intensity float64, rng *rand.Rand, limit int) {
	if shouldSpawnEmber(frame, intensity, rng) && (limit <= 0 || len(l.Embers) < limit) {
		l.Embers = append(l.Embers, newEmber(l.Position, rng))
	}
	l.Embers = advanceEmbers(l.Embers)
}
