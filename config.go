package nightglow

import (
	"errors"
	"flag"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate and NewScene.
var ErrInvalidConfig = errors.New("nightglow: invalid config")

// Minimum surface size. Smaller sizes are rejected by Validate and clamped
// by Scene.Resize.
const (
	MinWidth  = 300
	MinHeight = 200
)

// Config holds scene construction options. Start from DefaultConfig.
type Config struct {
	Title  string
	Width  int
	Height int

	TimeOfDay TimeOfDay
	ShowHUD   bool
	Debug     bool

	// Seed drives flicker and ember randomness. Zero seeds from the clock.
	Seed uint64
	// EmberCap bounds live embers per campfire. Zero means unbounded.
	EmberCap int
	// PaletteFade is the sky cross-fade duration in seconds after a time of
	// day change. Zero switches instantly.
	PaletteFade float64

	ScreenshotDir string
	Logger        Logger
}

// DefaultConfig returns a 960x540 midnight scene.
func DefaultConfig() Config {
	return Config{
		Title:         "nightglow",
		Width:         960,
		Height:        540,
		TimeOfDay:     Midnight,
		EmberCap:      DefaultEmberCap,
		PaletteFade:   0.6,
		ScreenshotDir: "screenshots",
	}
}

// Validate checks c and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("%w: size %dx%d below minimum %dx%d", ErrInvalidConfig, c.Width, c.Height, MinWidth, MinHeight)
	}
	if c.TimeOfDay != Midnight && c.TimeOfDay != Dawn {
		return fmt.Errorf("%w: time of day %v", ErrInvalidConfig, c.TimeOfDay)
	}
	if c.EmberCap < 0 {
		return fmt.Errorf("%w: ember cap %d", ErrInvalidConfig, c.EmberCap)
	}
	if c.PaletteFade < 0 {
		return fmt.Errorf("%w: palette fade %v", ErrInvalidConfig, c.PaletteFade)
	}
	return nil
}

// RegisterFlags binds c's fields to flags on fs, with c's current values as
// the defaults. Title and Logger are left to the caller.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.Var(&c.TimeOfDay, "time", "starting time of day: midnight or dawn")
	fs.BoolVar(&c.ShowHUD, "hud", c.ShowHUD, "show the stats overlay")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log debug output")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time based")
	fs.IntVar(&c.EmberCap, "embers", c.EmberCap, "max embers per campfire, 0 for no cap")
	fs.Float64Var(&c.PaletteFade, "fade", c.PaletteFade, "sky fade in seconds")
	fs.StringVar(&c.ScreenshotDir, "shots", c.ScreenshotDir, "screenshot directory")
}

// Set implements flag.Value.
func (t *TimeOfDay) Set(s string) error {
	v, ok := ParseTimeOfDay(s)
	if !ok {
		return fmt.Errorf("%w: time of day %q", ErrInvalidConfig, s)
	}
	*t = v
	return nil
}
