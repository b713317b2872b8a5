package nightglow

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprite colors.
var (
	lampBaseColor    = mustParseColor("#808080")
	lampHeadColor    = mustParseColor("#606060")
	penguinBody      = mustParseColor("#000000")
	penguinBelly     = mustParseColor("#ffffff")
	penguinBeak      = mustParseColor("#ffa500")
	penguinLedColor  = mustParseColor("#add8e6")
	wireColor        = mustParseColor("#444")
	wireShadow       = mustParseColor("rgba(0, 0, 0, 0.4)")
	lanternTrim      = mustParseColor("#a0522d")
	lanternGlass     = mustParseColor("#cccccc")
	lanternHandle    = mustParseColor("#505050")
	torchHandle      = mustParseColor("#404040")
	torchHead        = mustParseColor("#606060")
	stickColor       = mustParseColor("#8b4513")
	stickTip         = mustParseColor("#a52a2a")
	logColor         = mustParseColor("#654321")
	flickCueColor    = mustParseColor("rgba(255, 255, 255, 0.7)")
	moonBody         = mustParseColor("#dddbc6")
	moonCrater       = mustParseColor("rgba(150, 150, 150, 0.5)")
	bellHangerColor  = mustParseColor("#aaa")
	promptColor      = mustParseColor("rgba(255, 255, 255, 0.8)")
	crosshairColor   = mustParseColor("rgba(255, 255, 255, 0.7)")
	pendingPathColor = mustParseColor("rgba(255, 255, 255, 0.8)")
)

// flickCue is shown under a campfire until it is lit.
const flickCue = "Flick me!"

func drawDeskLamp(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	fillRect(fc.surface, x-10, y-5, 20, 5, lampBaseColor)
	fillRect(fc.surface, x-2, y-25, 4, 20, lampBaseColor)
	fc.p.fillSector(fc.surface, Vec2{x, y - 25}, 8, 8, math.Pi, 2*math.Pi, lampHeadColor)
}

func drawPenguinLed(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	fc.p.fillEllipse(fc.surface, Vec2{x, y - 15}, 12, 18, penguinBody)
	fc.p.fillEllipse(fc.surface, Vec2{x, y - 10}, 8, 12, penguinBelly)
	fc.p.fillPolygon(fc.surface, []Vec2{{x - 2, y - 22}, {x + 2, y - 22}, {x, y - 18}}, penguinBeak)
	fillCircle(fc.surface, Vec2{x, y - 8}, 4, penguinLedColor)
}

// drawStripWire draws the cable the bells hang from. The bells themselves
// are drawn while emitting light, since they need the frame's hue.
func drawStripWire(fc *frameContext, l *LightEntity) {
	if len(l.Points) < 2 {
		return
	}
	shadow := make([]Vec2, len(l.Points))
	for i, pt := range l.Points {
		shadow[i] = Vec2{pt.X, pt.Y + 1}
	}
	strokePolyline(fc.surface, shadow, 2.5, wireShadow)
	strokePolyline(fc.surface, l.Points, 1.5, wireColor)
}

func drawCampingLight(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	fillRect(fc.surface, x-15, y-5, 30, 5, lanternTrim)
	fillRect(fc.surface, x-12, y-30, 24, 25, lanternGlass)
	fillRect(fc.surface, x-15, y-35, 30, 5, lanternTrim)
	strokeArc(fc.surface, Vec2{x, y - 35}, 10, math.Pi, 2*math.Pi, 2, lanternHandle)
}

func drawTorch(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	fillRect(fc.surface, x-5, y-30, 10, 30, torchHandle)
	fillRect(fc.surface, x-7, y-35, 14, 5, torchHead)
}

func drawFireStick(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	vector.StrokeLine(fc.surface, float32(x), float32(y), float32(x+2), float32(y-30), 4, stickColor.toRGBA(), true)
	fillCircle(fc.surface, Vec2{x + 2, y - 30}, 3, stickTip)
}

// campfireLogs are (angle, x, y, w, h) in the pile's rotated frame.
var campfireLogs = [...][5]float64{
	{-0.2, -20, 0, 40, 8},
	{0.2, -18, -5, 36, 7},
	{0.8, -15, -20, 30, 6},
	{-0.8, -14, -22, 28, 5},
}

func drawCampfire(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	pile := Vec2{x, y - 5}
	for _, lg := range campfireLogs {
		fc.p.fillRotatedRect(fc.surface, pile, lg[0], lg[1], lg[2], lg[3], lg[4], logColor)
	}
	if l.State == StateUnlit {
		drawCaption(fc.surface, flickCue, x, y+15, flickCueColor)
	}
}

func drawMoon(fc *frameContext, m *Moon) {
	c := m.Position
	fillCircle(fc.surface, c, MoonRadius, moonBody)
	fillCircle(fc.surface, c.Add(Vec2{-10, -5}), 5, moonCrater)
	fillCircle(fc.surface, c.Add(Vec2{8, 10}), 7, moonCrater)
	fillCircle(fc.surface, c.Add(Vec2{5, -12}), 4, moonCrater)
}

// drawBell draws one strip ornament and its hanger onto the surface.
func drawBell(fc *frameContext, o Ornament) {
	fillCircle(fc.surface, o.Pos, 4, Hsla(o.Hue, 1, 0.75, 0.9))
	vector.StrokeLine(fc.surface,
		float32(o.Pos.X), float32(o.Pos.Y-4), float32(o.Pos.X), float32(o.Pos.Y-7),
		0.5, bellHangerColor.toRGBA(), true)
}
