package nightglow

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("nightglow: script has no steps")

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Kind   string  `json:"kind,omitempty"`
	Value  string  `json:"value,omitempty"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a JSON script of input events and scene commands across
// ticks. Attach it with Scene.SetScript.
//
//	{"steps": [
//	  {"action": "drop", "kind": "campfire", "x": 200, "y": 400},
//	  {"action": "drag", "fromX": 200, "fromY": 392, "toX": 205, "toY": 340, "frames": 4},
//	  {"action": "wait", "frames": 60},
//	  {"action": "screenshot", "label": "lit"}
//	]}
type ScriptRunner struct {
	// ExitOnDone makes Run return once the script finishes.
	ExitOnDone bool

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a runner. It is stepped once per tick before input is
// processed.
func (s *Scene) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether every step has run and its input has been consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "drop":
		s.InjectDrop(st.Kind, st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "leave":
		s.InjectLeave()
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "clear":
		s.Clear()
	case "time":
		t, ok := ParseTimeOfDay(st.Value)
		if !ok {
			s.log.Warnf("script step %d: unknown time of day %q", r.cursor, st.Value)
			break
		}
		s.SetTimeOfDay(t)
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	default:
		s.log.Warnf("script step %d: unknown action %q", r.cursor, st.Action)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
