package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Backend != BackendGL {
		t.Errorf("expected backend gl, got %s", cfg.Graphics.Backend)
	}
	if cfg.Graphics.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Caster.RayCount != 200 {
		t.Errorf("expected 200 rays, got %d", cfg.Caster.RayCount)
	}
	if cfg.Caster.FieldOfView != 2 {
		t.Errorf("expected field of view 2, got %v", cfg.Caster.FieldOfView)
	}
	if cfg.Player.Heading != math.Pi {
		t.Errorf("expected heading pi, got %v", cfg.Player.Heading)
	}
	if len(cfg.Map.Obstacles) != 2 {
		t.Errorf("expected 2 default obstacles, got %d", len(cfg.Map.Obstacles))
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 800
  height: 600
  backend: terminal
  fps_limit: 30

caster:
  ray_count: 64
  field_of_view: 1.0471975512
  legacy_spread: true

player:
  start_x: 100
  start_y: 120
  mode: firstperson
  collide: false

map:
  obstacles:
    - {x: 10, y: 20, w: 30, h: 40}

logging:
  level: debug
  log_file: flatcaster.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Backend != BackendTerminal {
		t.Errorf("expected backend terminal, got %s", cfg.Graphics.Backend)
	}
	if cfg.Caster.RayCount != 64 || !cfg.Caster.LegacySpread {
		t.Errorf("caster section not applied: %+v", cfg.Caster)
	}
	if cfg.Player.StartX != 100 || cfg.Player.Mode != "firstperson" || cfg.Player.Collide {
		t.Errorf("player section not applied: %+v", cfg.Player)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Player.Speed != 300 {
		t.Errorf("expected default speed 300, got %v", cfg.Player.Speed)
	}
	if len(cfg.Map.Obstacles) != 1 || cfg.Map.Obstacles[0] != (RectConfig{X: 10, Y: 20, W: 30, H: 40}) {
		t.Errorf("obstacles should be replaced by the file, got %+v", cfg.Map.Obstacles)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "flatcaster.log" {
		t.Errorf("logging section not applied: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFileValidates(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("caster:\n  ray_count: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(configPath)
	if err == nil || !strings.Contains(err.Error(), "ray_count") {
		t.Fatalf("expected ray_count validation error, got %v", err)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Backend = "vulkan"
	cfg.Caster.RayCount = 3
	cfg.Projection.WallHeight = 0
	cfg.Map.Obstacles = append(cfg.Map.Obstacles, RectConfig{X: 1, Y: 1, W: 0, H: 5})
	cfg.Audio.Volume = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"backend", "ray_count", "wall_height", "obstacle 2", "volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error missing %q: %v", want, err)
		}
	}
}

func TestValidateLegacySpreadIgnoresFOV(t *testing.T) {
	cfg := Default()
	cfg.Caster.FieldOfView = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero field of view should fail without legacy spread")
	}
	cfg.Caster.LegacySpread = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("legacy spread should not need a field of view: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Graphics.Backend = BackendEbiten
	cfg.Map.Obstacles = []RectConfig{{X: 5, Y: 6, W: 7, H: 8}}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Graphics.Backend != BackendEbiten {
		t.Errorf("backend = %s, want ebiten", loaded.Graphics.Backend)
	}
	if len(loaded.Map.Obstacles) != 1 || loaded.Map.Obstacles[0].H != 8 {
		t.Errorf("obstacles = %+v", loaded.Map.Obstacles)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "backend flag",
			setup: func() { *flagBackend = BackendTerminal },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Backend != BackendTerminal {
					t.Errorf("expected backend terminal, got %s", cfg.Graphics.Backend)
				}
			},
			teardown: func() { *flagBackend = "" },
		},
		{
			name: "caster flags",
			setup: func() {
				*flagRays = 64
				*flagFOV = 1.5
				*flagLegacySpread = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Caster.RayCount != 64 || cfg.Caster.FieldOfView != 1.5 || !cfg.Caster.LegacySpread {
					t.Errorf("caster flags not applied: %+v", cfg.Caster)
				}
			},
			teardown: func() {
				*flagRays = 0
				*flagFOV = 0
				*flagLegacySpread = false
			},
		},
		{
			name:  "mute flag",
			setup: func() { *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Audio.Enabled {
					t.Error("expected audio disabled with mute flag")
				}
			},
			teardown: func() { *flagMute = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1920
				*flagHeight = 1080
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
					t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
