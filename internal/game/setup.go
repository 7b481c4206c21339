package game

import (
	"fmt"

	"github.com/Faultbox/flatcaster/internal/config"
	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/frame"
	"github.com/Faultbox/flatcaster/internal/projection"
	"github.com/Faultbox/flatcaster/internal/raycast"
	"github.com/Faultbox/flatcaster/internal/world"
	"github.com/Faultbox/flatcaster/pkg/geom"
)

// NewObstacles builds the obstacle set from the map section.
func NewObstacles(cfg *config.Config) (*world.ObstacleSet, error) {
	rects := make([]geom.Rect, len(cfg.Map.Obstacles))
	for i, r := range cfg.Map.Obstacles {
		rects[i] = geom.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
	}
	return world.NewObstacleSet(rects)
}

// NewCaster builds the caster from the caster section. A zero far distance
// is derived from the screen size.
func NewCaster(cfg *config.Config) (*raycast.Caster, error) {
	far := cfg.Caster.FarDistance
	if far == 0 {
		far = raycast.FarDistanceFor(cfg.Graphics.Width, cfg.Graphics.Height)
	}
	spread := raycast.SpreadFieldOfView
	if cfg.Caster.LegacySpread {
		spread = raycast.SpreadLegacy
	}
	return raycast.New(raycast.Config{
		RayCount:    cfg.Caster.RayCount,
		FarDistance: far,
		FieldOfView: cfg.Caster.FieldOfView,
		Spread:      spread,
	})
}

// NewProjector builds the projector for the configured screen.
func NewProjector(cfg *config.Config) projection.Projector {
	return projection.Projector{
		RayCount:     cfg.Caster.RayCount,
		ScreenWidth:  float64(cfg.Graphics.Width),
		ScreenHeight: float64(cfg.Graphics.Height),
		WallHeight:   cfg.Projection.WallHeight,
		ShadeK:       cfg.Projection.ShadeK,
		MinDistance:  cfg.Projection.MinDistance,
	}
}

// NewBuilder wires caster, projector and obstacles into a frame builder.
func NewBuilder(cfg *config.Config, obstacles *world.ObstacleSet) (*frame.Builder, error) {
	caster, err := NewCaster(cfg)
	if err != nil {
		return nil, fmt.Errorf("caster: %w", err)
	}
	style := frame.DefaultStyle()
	style.SlabWidth = cfg.Projection.SlabWidth
	style.ShowOutlines = cfg.Map.ShowOutlines
	return &frame.Builder{
		Caster:    caster,
		Projector: NewProjector(cfg),
		Obstacles: obstacles,
		Style:     style,
	}, nil
}

// NewController places the player at the configured start pose.
func NewController(cfg *config.Config, obstacles *world.ObstacleSet) *controller.Controller {
	var bounds geom.Rect
	if cfg.Player.Clamp {
		bounds = geom.Rect{W: float64(cfg.Graphics.Width), H: float64(cfg.Graphics.Height)}
	}
	return controller.New(
		controller.Config{
			Speed:    cfg.Player.Speed,
			TurnRate: cfg.Player.TurnRate,
			Collide:  cfg.Player.Collide,
			Bounds:   bounds,
		},
		controller.Pose{
			Position: geom.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY},
			Heading:  cfg.Player.Heading,
		},
		ParseMode(cfg.Player.Mode),
		obstacles,
	)
}

// ParseMode maps a config mode name to a ViewMode, defaulting to overhead.
func ParseMode(name string) controller.ViewMode {
	if name == controller.FirstPerson.String() {
		return controller.FirstPerson
	}
	return controller.Overhead
}
