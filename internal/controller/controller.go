// Package controller owns the player pose and view mode and applies one tick
// of input to them.
package controller

import (
	"github.com/Faultbox/flatcaster/internal/world"
	"github.com/Faultbox/flatcaster/pkg/geom"
)

// ViewMode selects how the frame is drawn and how keys are interpreted.
type ViewMode int

const (
	Overhead ViewMode = iota
	FirstPerson
)

// String returns the mode name used in logs and config.
func (m ViewMode) String() string {
	if m == FirstPerson {
		return "firstperson"
	}
	return "overhead"
}

// Pose is the player position and heading. Heading is in radians, 0 points
// along +x and positive angles turn clockwise on screen.
type Pose struct {
	Position geom.Vec2
	Heading  float64
}

// Input is the down/up state of every control, sampled once per tick.
type Input struct {
	Forward   bool
	Back      bool
	Left      bool
	Right     bool
	TurnLeft  bool
	TurnRight bool
	Toggle    bool
	Quit      bool
}

// Config holds movement tuning.
type Config struct {
	Speed    float64 // units per second
	TurnRate float64 // radians per second
	// Collide rejects moves that end inside an obstacle.
	Collide bool
	// Bounds clamps the position when valid; the zero Rect disables clamping.
	Bounds geom.Rect
}

// Event reports what a tick changed.
type Event struct {
	Moved   bool
	Turned  bool
	Blocked bool
	Toggled bool
	Quit    bool
}

// Controller applies input to a Pose and ViewMode it owns exclusively.
type Controller struct {
	cfg        Config
	obstacles  *world.ObstacleSet
	pose       Pose
	mode       ViewMode
	togglePrev bool
}

// New creates a controller at the given pose.
func New(cfg Config, start Pose, mode ViewMode, obstacles *world.ObstacleSet) *Controller {
	return &Controller{
		cfg:       cfg,
		obstacles: obstacles,
		pose:      start,
		mode:      mode,
	}
}

// Pose returns the current pose.
func (c *Controller) Pose() Pose {
	return c.pose
}

// Mode returns the current view mode.
func (c *Controller) Mode() ViewMode {
	return c.mode
}

// SetPose teleports the player. It bypasses collision.
func (c *Controller) SetPose(p Pose) {
	c.pose = p
}

// Update advances the controller by dt seconds.
func (c *Controller) Update(dt float64, in Input) Event {
	var ev Event
	ev.Quit = in.Quit

	move, turn := bindingsFor(c.mode).resolve(in, c.pose.Heading)

	if move != (geom.Vec2{}) {
		dest := c.pose.Position.Add(move.Scale(c.cfg.Speed * dt))
		if c.cfg.Bounds.Valid() {
			dest = clampTo(dest, c.cfg.Bounds)
		}
		switch {
		case c.cfg.Collide && c.obstacles.Blocked(dest):
			ev.Blocked = true
		case dest != c.pose.Position:
			c.pose.Position = dest
			ev.Moved = true
		}
	}

	if turn != 0 {
		c.pose.Heading += turn * c.cfg.TurnRate * dt
		ev.Turned = true
	}

	// Rising edge only: a held toggle flips the mode once.
	if in.Toggle && !c.togglePrev {
		c.mode = 1 - c.mode
		ev.Toggled = true
	}
	c.togglePrev = in.Toggle

	return ev
}

func clampTo(p geom.Vec2, r geom.Rect) geom.Vec2 {
	lo, hi := r.Min(), r.Max()
	p.X = min(max(p.X, lo.X), hi.X)
	p.Y = min(max(p.Y, lo.Y), hi.Y)
	return p
}
