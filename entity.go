package nightglow

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnknownKind is returned for a kind tag outside the fixed set.
	ErrUnknownKind = errors.New("nightglow: unknown kind")
	// ErrTooFewPoints is returned when a strip light has fewer than two points.
	ErrTooFewPoints = errors.New("nightglow: strip light needs at least 2 points")
	// ErrMoonSingleton is returned when the moon is created as a light. The
	// moon is placed with Scene.PlaceMoon.
	ErrMoonSingleton = errors.New("nightglow: moon is a singleton")
)

// Kind identifies a placeable object. The zero value is invalid.
type Kind uint8

const (
	KindDeskLamp Kind = iota + 1
	KindPenguinLed
	KindStripLight
	KindCampingLight
	KindTorch
	KindFireStick
	KindCampfire
	KindMoon
)

// kindTags is the string contract shared with drawers and scripts.
var kindTags = [...]string{
	KindDeskLamp:     "deskLamp",
	KindPenguinLed:   "penguinLed",
	KindStripLight:   "stripLight",
	KindCampingLight: "campingLight",
	KindTorch:        "torch",
	KindFireStick:    "fireStick",
	KindCampfire:     "campfire",
	KindMoon:         "moon",
}

// Kinds lists every valid kind in drawer order.
var Kinds = []Kind{
	KindDeskLamp, KindPenguinLed, KindStripLight, KindCampingLight,
	KindTorch, KindFireStick, KindCampfire, KindMoon,
}

func (k Kind) String() string {
	if k.Valid() {
		return kindTags[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindDeskLamp && k <= KindMoon
}

// ParseKind maps a tag such as "campfire" to its Kind.
func ParseKind(tag string) (Kind, error) {
	for k := KindDeskLamp; k <= KindMoon; k++ {
		if kindTags[k] == tag {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
}

// ActivationState is whether a light currently emits.
type ActivationState uint8

const (
	StateOn ActivationState = iota
	StateUnlit
	StateLit
)

func (s ActivationState) String() string {
	switch s {
	case StateOn:
		return "on"
	case StateUnlit:
		return "unlit"
	case StateLit:
		return "lit"
	default:
		return "unknown"
	}
}

// IgniteFlick is the flick intensity a campfire receives when lit.
const IgniteFlick = 10

// LightEntity is one placed light. Kind is fixed at creation; Points is only
// populated for strip lights, FlickIntensity and Embers only for campfires.
type LightEntity struct {
	ID             uuid.UUID
	Kind           Kind
	Position       Vec2
	State          ActivationState
	Points         []Vec2
	FlickIntensity float64
	Embers         []Ember
}

// NewLightEntity creates a positioned light with default activation:
// campfires start unlit, everything else on. Strip lights and the moon are
// not created here; see NewStripLight and Scene.PlaceMoon.
func NewLightEntity(kind Kind, pos Vec2) (*LightEntity, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	switch kind {
	case KindStripLight:
		return nil, fmt.Errorf("new %v: %w", kind, ErrTooFewPoints)
	case KindMoon:
		return nil, fmt.Errorf("new %v: %w", kind, ErrMoonSingleton)
	}
	state := StateOn
	if kind == KindCampfire {
		state = StateUnlit
	}
	return &LightEntity{
		ID:       uuid.New(),
		Kind:     kind,
		Position: pos,
		State:    state,
	}, nil
}

// NewStripLight creates a strip light along a copy of points.
func NewStripLight(points []Vec2) (*LightEntity, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("new %v with %d points: %w", KindStripLight, len(points), ErrTooFewPoints)
	}
	pts := make([]Vec2, len(points))
	copy(pts, points)
	return &LightEntity{
		ID:     uuid.New(),
		Kind:   KindStripLight,
		State:  StateOn,
		Points: pts,
		// Position anchors the strip at its first point for hit tests and logs.
		Position: pts[0],
	}, nil
}

// Emitting reports whether the entity contributes light this frame.
func (l *LightEntity) Emitting() bool {
	return l.State != StateUnlit
}

// Ignite lights an unlit campfire. It reports whether the state changed;
// lit campfires and other kinds are left alone.
func (l *LightEntity) Ignite() bool {
	if l.Kind != KindCampfire || l.State != StateUnlit {
		return false
	}
	l.State = StateLit
	l.FlickIntensity = IgniteFlick
	return true
}

// MoonRadius is the fixed radius of the moon sprite.
const MoonRadius = 30

// Moon is the scene's optional singleton. It is always on.
type Moon struct {
	Position Vec2
}
