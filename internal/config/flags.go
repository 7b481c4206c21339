package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagBackend      = flag.String("backend", "", "Render backend: gl, ebiten or terminal")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagFOV          = flag.Float64("fov", 0, "Field of view in radians")
	flagRays         = flag.Int("rays", 0, "Number of rays per frame")
	flagLegacySpread = flag.Bool("legacy-spread", false, "Offset rays by index/half radians instead of the field of view")
	flagMute         = flag.Bool("mute", false, "Disable sound cues")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Graphics.Backend = *flagBackend
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFOV > 0 {
		cfg.Caster.FieldOfView = *flagFOV
	}
	if *flagRays > 0 {
		cfg.Caster.RayCount = *flagRays
	}
	if *flagLegacySpread {
		cfg.Caster.LegacySpread = true
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
}
