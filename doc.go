// Package nightglow is an interactive night scene for [Ebitengine]: the user
// drops lamps, lanterns, torches, campfires, strip lights and a moon onto a
// forest, and every light adds its glow to the scene each frame.
//
// # Quick start
//
//	cfg := nightglow.DefaultConfig()
//	scene, err := nightglow.NewScene(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := nightglow.Run(scene); err != nil {
//		log.Fatal(err)
//	}
//
// [Scene] implements [ebiten.Game], so it can also be handed to
// [ebiten.RunGame] directly.
//
// # Rendering
//
// Each frame is drawn into a persistent surface in a fixed order: sky,
// stars and ground, the scrolling forest, every light's sprite, strip
// wires, and the moon. Light is then accumulated into a separate
// [LightMask] that starts opaque black each frame; every emitting light adds
// a radial or cone-shaped gradient with additive blending, and the mask is
// added onto the surface. Black adds nothing, so only lit areas brighten.
//
// Strip lights have no fixed sprite. Their bells are placed every
// [StripSpacing] units of arc length along the drawn path ([SampleStrip])
// and cycle through hues with the frame counter.
//
// Lit campfires flicker and shed rising embers. Ember spawning is gated to
// every fourth frame and capped per campfire by [Config.EmberCap].
//
// # Interaction
//
// Exactly one interaction [Mode] is active at a time:
//
//   - [ItemPlacement]: a kind is being dragged from the drawer below the
//     surface. Releasing over the surface drops it ([Scene.Drop]).
//   - [StripArmed] and [StripDrawing]: dropping a strip light arms path
//     drawing; the next press and drag draws the path, and release creates
//     the strip if at least two points were recorded.
//   - [CampfireInteraction]: a quick upward flick on an unlit campfire
//     lights it ([IsFlick]).
//   - [MoonDragging]: the moon follows the pointer, kept in the upper sky.
//
// State changes from input force an immediate redraw ([Scene.Redraw]) that
// replaces the next scheduled frame, so the frame counter advances once per
// tick either way.
//
// # Automation
//
// Input can be queued with [Scene.InjectPress], [Scene.InjectDrag],
// [Scene.InjectDrop] and friends, or scripted with [LoadScript]. Scripts can
// also switch the time of day, clear the scene, and take screenshots
// ([Scene.Screenshot]).
//
// [Ebitengine]: https://ebitengine.org
package nightglow
