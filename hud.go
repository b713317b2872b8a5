package nightglow

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often, in seconds, the overlay text is regenerated.
const hudRefresh = 0.5

// hud is the FPS and scene stats overlay in the top-left corner.
type hud struct {
	img       *ebiten.Image
	visible   bool
	sinceDraw float64
	lastText  string
}

func newHUD() *hud {
	// Room for four DebugPrint lines.
	return &hud{img: ebiten.NewImage(240, 68), sinceDraw: hudRefresh}
}

// hudText formats the overlay for the scene's current state.
func hudText(s *Scene) string {
	embers := 0
	for _, l := range s.state.Lights {
		embers += len(l.Embers)
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nlights: %d  embers: %d\nmode: %v\n%v",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(s.state.Lights), embers, s.state.Mode, s.state.TimeOfDay)
}

func (h *hud) update(s *Scene, dt float64) {
	if !h.visible {
		return
	}
	h.sinceDraw += dt
	if h.sinceDraw < hudRefresh {
		return
	}
	h.sinceDraw = 0

	h.lastText = hudText(s)
	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.lastText)
}

func (h *hud) draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	screen.DrawImage(h.img, &op)
}
