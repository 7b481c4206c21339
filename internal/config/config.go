// Package config handles loading and validating flatcaster settings.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Config holds all settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Caster     CasterConfig     `yaml:"caster"`
	Projection ProjectionConfig `yaml:"projection"`
	Player     PlayerConfig     `yaml:"player"`
	Map        MapConfig        `yaml:"map"`
	Audio      AudioConfig      `yaml:"audio"`
	Logging    LoggingConfig    `yaml:"logging"`
	Debug      DebugConfig      `yaml:"debug"`
}

// Backend names accepted in graphics.backend.
const (
	BackendGL       = "gl"
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Backend    string `yaml:"backend"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"` // 0 disables the frame cap
}

// CasterConfig holds ray generation settings.
type CasterConfig struct {
	RayCount     int     `yaml:"ray_count"`
	FieldOfView  float64 `yaml:"field_of_view"` // radians
	LegacySpread bool    `yaml:"legacy_spread"`
	FarDistance  float64 `yaml:"far_distance"` // 0 derives it from the screen size
}

// ProjectionConfig holds first-person projection settings.
type ProjectionConfig struct {
	WallHeight  float64 `yaml:"wall_height"`
	ShadeK      float64 `yaml:"shade_k"`
	SlabWidth   float64 `yaml:"slab_width"`
	MinDistance float64 `yaml:"min_distance"`
}

// PlayerConfig holds the start pose and movement tuning.
type PlayerConfig struct {
	StartX   float64 `yaml:"start_x"`
	StartY   float64 `yaml:"start_y"`
	Heading  float64 `yaml:"heading"` // radians
	Speed    float64 `yaml:"speed"`
	TurnRate float64 `yaml:"turn_rate"`
	Collide  bool    `yaml:"collide"`
	Clamp    bool    `yaml:"clamp"`
	Mode     string  `yaml:"mode"` // overhead or firstperson
}

// RectConfig is one obstacle.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// MapConfig holds the obstacle list.
type MapConfig struct {
	Obstacles    []RectConfig `yaml:"obstacles"`
	ShowOutlines bool         `yaml:"show_outlines"`
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Default returns a Config with the classic demo setup: a 1280x720 view, 200
// rays spread one radian either side of the heading and two boxes.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    1280,
			Height:   720,
			Backend:  BackendGL,
			VSync:    true,
			FPSLimit: 60,
		},
		Caster: CasterConfig{
			RayCount:    200,
			FieldOfView: 2,
		},
		Projection: ProjectionConfig{
			WallHeight:  100,
			ShadeK:      25000 * 255,
			SlabWidth:   15,
			MinDistance: 1e-3,
		},
		Player: PlayerConfig{
			StartX:   640,
			StartY:   360,
			Heading:  math.Pi,
			Speed:    300,
			TurnRate: 2,
			Collide:  true,
			Clamp:    true,
			Mode:     "overhead",
		},
		Map: MapConfig{
			Obstacles: []RectConfig{
				{X: 200, Y: 200, W: 50, H: 50},
				{X: 300, Y: 200, W: 50, H: 50},
			},
			ShowOutlines: true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		add("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)
	}
	switch c.Graphics.Backend {
	case BackendGL, BackendEbiten, BackendTerminal:
	default:
		add("graphics: unknown backend %q", c.Graphics.Backend)
	}
	if c.Graphics.FPSLimit < 0 {
		add("graphics: fps_limit %d must not be negative", c.Graphics.FPSLimit)
	}

	if c.Caster.RayCount < 2 || c.Caster.RayCount%2 != 0 {
		add("caster: ray_count %d must be an even number >= 2", c.Caster.RayCount)
	}
	if !c.Caster.LegacySpread && !(c.Caster.FieldOfView > 0) {
		add("caster: field_of_view %v must be positive", c.Caster.FieldOfView)
	}
	if c.Caster.FarDistance < 0 {
		add("caster: far_distance %v must not be negative", c.Caster.FarDistance)
	}

	if !(c.Projection.WallHeight > 0) {
		add("projection: wall_height %v must be positive", c.Projection.WallHeight)
	}
	if c.Projection.ShadeK < 0 {
		add("projection: shade_k %v must not be negative", c.Projection.ShadeK)
	}
	if !(c.Projection.SlabWidth > 0) {
		add("projection: slab_width %v must be positive", c.Projection.SlabWidth)
	}

	if c.Player.Speed < 0 || c.Player.TurnRate < 0 {
		add("player: speed %v and turn_rate %v must not be negative", c.Player.Speed, c.Player.TurnRate)
	}
	if c.Player.Mode != "overhead" && c.Player.Mode != "firstperson" {
		add("player: unknown mode %q", c.Player.Mode)
	}

	for i, r := range c.Map.Obstacles {
		if !(r.W > 0) || !(r.H > 0) {
			add("map: obstacle %d has non-positive size %vx%v", i, r.W, r.H)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		add("audio: volume %v must be within [0, 1]", c.Audio.Volume)
	}

	return errors.Join(errs...)
}
