package nightglow

import "github.com/hajimehoshi/ebiten/v2"

// drawerHeight is the height of the item palette below the surface.
const drawerHeight = 56

var (
	drawerBackground = mustParseColor("#222")
	drawerCell       = mustParseColor("#333")
	drawerLabel      = mustParseColor("#eee")
	ghostColor       = mustParseColor("rgba(255, 255, 255, 0.85)")
	stripGhostColor  = mustParseColor("rgba(255, 105, 180, 0.9)")
)

var drawerLabels = map[Kind]string{
	KindDeskLamp:     "Desk Lamp",
	KindPenguinLed:   "Penguin",
	KindStripLight:   "Strip",
	KindCampingLight: "Lantern",
	KindTorch:        "Torch",
	KindFireStick:    "Fire Stick",
	KindCampfire:     "Campfire",
	KindMoon:         "Moon",
}

// drawer is the palette of placeable kinds, one cell per kind, laid out
// across the window below the surface.
type drawer struct {
	items []Kind
}

func newDrawer() *drawer {
	return &drawer{items: Kinds}
}

// cellWidth is the width of one item cell for a surface w pixels wide.
func (d *drawer) cellWidth(w int) float64 {
	return float64(w) / float64(len(d.items))
}

// itemAt returns the kind under pos, given in window coordinates, for a
// surface of w x h.
func (d *drawer) itemAt(pos Vec2, w, h int) (Kind, bool) {
	top := float64(h)
	if pos.Y < top || pos.Y >= top+drawerHeight || pos.X < 0 || pos.X >= float64(w) {
		return 0, false
	}
	i := int(pos.X / d.cellWidth(w))
	if i < 0 || i >= len(d.items) {
		return 0, false
	}
	return d.items[i], true
}

// draw paints the palette and, while an item is being dragged, its ghost
// label at the pointer.
func (d *drawer) draw(screen *ebiten.Image, s *Scene) {
	top := float64(s.h)
	cw := d.cellWidth(s.w)
	fillRect(screen, 0, top, float64(s.w), drawerHeight, drawerBackground)

	var held Kind
	m, placing := s.state.Mode.(*ItemPlacement)
	if placing {
		held = m.Kind
	}
	for i, k := range d.items {
		x := float64(i) * cw
		c := drawerCell
		if k == held {
			c = drawerCell.Lerp(drawerLabel, 0.25)
		}
		fillRect(screen, x+2, top+4, cw-4, drawerHeight-8, c)
		drawCaption(screen, drawerLabels[k], x+cw/2, top+drawerHeight/2+5, drawerLabel)
	}

	if placing {
		gc := ghostColor
		if m.Kind == KindStripLight {
			gc = stripGhostColor
		}
		drawCaption(screen, drawerLabels[m.Kind], m.Ghost.X, m.Ghost.Y, gc)
	}
}
