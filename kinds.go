package nightglow

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// frameContext carries everything a kind needs to draw or emit during one
// render pass.
type frameContext struct {
	n        uint64 // frame counter
	surface  *ebiten.Image
	mask     lightSink
	rng      *rand.Rand
	p        *painter
	emberCap int
	stats    *FrameStats

	ornaments []Ornament // scratch for strip sampling
}

// kindSpec is the capability table entry for one kind. draw paints the
// physical sprite; emit adds the light contribution and is only called
// while the entity is emitting. wire marks sprites drawn in the second
// sprite pass.
type kindSpec struct {
	draw func(fc *frameContext, l *LightEntity)
	emit func(fc *frameContext, l *LightEntity)
	wire bool
}

var kindTable = map[Kind]kindSpec{
	KindDeskLamp:     {draw: drawDeskLamp, emit: emitDeskLamp},
	KindPenguinLed:   {draw: drawPenguinLed, emit: emitPenguinLed},
	KindStripLight:   {draw: drawStripWire, emit: emitStripLight, wire: true},
	KindCampingLight: {draw: drawCampingLight, emit: emitCampingLight},
	KindTorch:        {draw: drawTorch, emit: emitTorch},
	KindFireStick:    {draw: drawFireStick, emit: emitFireStick},
	KindCampfire:     {draw: drawCampfire, emit: emitCampfire},
}

// Light colors.
var (
	deskLampLight    = RGBA8(255, 255, 190, 0.6)
	penguinLedLight  = RGBA8(173, 216, 230, 0.75)
	campingLight     = RGBA8(255, 245, 190, 0.8)
	torchLight       = RGBA8(255, 255, 230, 0.55)
	campfireLight    = RGBA8(255, 160, 0, 0.5)
	moonLight        = RGBA8(245, 243, 206, 0.35)
	emberLightRed    = 255.0
	emberLightGreen  = 150.0
	bellGlowAlpha    = 0.6
	bellGlowRadius   = 18.0
	bellGlowStrength = 0.9
)

// torchConeSkew is subtracted from both torch cone angles. It is a raw
// radian offset and tilts the beam away from straight down.
const torchConeSkew = 15

func emitDeskLamp(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	fc.mask.Cone(Vec2{x, y - 25}, math.Pi*0.30, math.Pi*0.70, 85, deskLampLight, 1)
}

func emitPenguinLed(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	fc.mask.Radial(Vec2{x, y - 8}, 55, penguinLedLight, 1)
}

// emitStripLight samples the path for this frame, drawing each bell onto
// the surface and its glow into the mask.
func emitStripLight(fc *frameContext, l *LightEntity) {
	if len(l.Points) < 2 {
		return
	}
	fc.ornaments = appendOrnaments(fc.ornaments[:0], l.Points, StripSpacing, fc.n)
	for _, o := range fc.ornaments {
		drawBell(fc, o)
		fc.mask.Radial(o.Pos, bellGlowRadius, Hsla(o.Hue, 1, 0.75, bellGlowAlpha), bellGlowStrength)
	}
	fc.stats.Ornaments += len(fc.ornaments)
}

func emitCampingLight(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	fc.mask.Radial(Vec2{x, y - 18}, 95, campingLight, 1)
}

func emitTorch(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	fc.mask.Cone(Vec2{x, y - 32}, math.Pi*0.40-torchConeSkew, math.Pi*0.60-torchConeSkew, 80, torchLight, 1.1)
}

// FireStickIntensity is the fire stick's pulse on a given frame, in [0.2, 1].
func FireStickIntensity(frame uint64) float64 {
	return 0.6 + math.Sin(float64(frame)*0.2)*0.4
}

func emitFireStick(fc *frameContext, l *LightEntity) {
	x, y := l.Position.X, l.Position.Y
	intensity := FireStickIntensity(fc.n)
	c := RGBA8(255, 60+math.Sin(float64(fc.n)*0.15)*50, 0, 0.8)
	fc.mask.Radial(Vec2{x + 2, y - 30}, 30+intensity*10, c, intensity)
}

// campfireIntensity combines the ignition burst with random flicker.
func campfireIntensity(flick float64, rng *rand.Rand) float64 {
	return min(0.9+flick*0.015+rng.Float64()*0.15, 1.5)
}

func emitCampfire(fc *frameContext, l *LightEntity) {
	if l.State != StateLit {
		return
	}
	x, y := l.Position.X, l.Position.Y
	r := fc.rng.Float64

	intensity := campfireIntensity(l.FlickIntensity, fc.rng)
	fc.mask.Radial(Vec2{x, y - 25}, 90+intensity*20, campfireLight, intensity*0.8)

	flames := 2 + fc.rng.IntN(3)
	flicker := 20 * intensity
	for range flames {
		fx := x + (r()-0.5)*25
		fy := y - 15
		height := 25 + (r()-0.5)*flicker
		radius := 12 + r()*6
		c := RGBA8(255, 120+r()*100, 0, 0.6+r()*0.3)
		fc.mask.Flame(Vec2{fx, fy - height*0.5}, radius, height*0.6, c)
	}

	l.updateEmbers(fc.n, intensity, fc.rng, fc.emberCap)
	for _, e := range l.Embers {
		fc.mask.Spark(e.Pos, 1.5+r(), RGBA8(emberLightRed, emberLightGreen, 0, e.Alpha*0.9))
	}
	fc.stats.Embers += len(l.Embers)
}

func emitMoon(fc *frameContext, m *Moon) {
	fc.mask.Radial(m.Position, 130, moonLight, 0.7)
}
