package nightglow

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window sized to the scene and its drawer and runs the game
// loop until the window is closed, or until an attached script with
// ExitOnDone set finishes.
func Run(s *Scene) error {
	ebiten.SetWindowSize(s.w, s.h+drawerHeight)
	ebiten.SetWindowTitle(s.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	s.log.Infof("running %q at %dx%d", s.cfg.Title, s.w, s.h)

	err := ebiten.RunGame(&game{scene: s})
	if errors.Is(err, errScriptDone) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// errScriptDone ends the loop once a script with exit-on-done finishes.
var errScriptDone = errors.New("nightglow: script done")

// game adapts Scene for RunGame so the loop can stop after a script. The
// stop is delayed by one tick so queued screenshots are flushed by Draw.
type game struct {
	scene    *Scene
	stopNext bool
}

func (g *game) Update() error {
	if g.stopNext {
		return errScriptDone
	}
	if err := g.scene.Update(); err != nil {
		return err
	}
	if r := g.scene.script; r != nil && r.ExitOnDone && r.Done() {
		g.stopNext = true
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) { g.scene.Draw(screen) }

func (g *game) Layout(w, h int) (int, int) { return g.scene.Layout(w, h) }
