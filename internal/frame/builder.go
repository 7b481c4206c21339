// Package frame turns the player state into a DrawList: sightlines and the
// player marker in overhead mode, wall slabs in first person.
package frame

import (
	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/projection"
	"github.com/Faultbox/flatcaster/internal/raycast"
	"github.com/Faultbox/flatcaster/internal/render"
	"github.com/Faultbox/flatcaster/internal/world"
)

// Style controls how a frame looks.
type Style struct {
	Background   render.Color
	Sightline    render.Color
	Player       render.Color
	Outline      render.Color
	PlayerRadius float64
	SightWidth   float64
	SlabWidth    float64
	ShowOutlines bool
}

// DefaultStyle matches the classic look: white sightlines and a white player
// marker on black, 15 pixel wall slabs.
func DefaultStyle() Style {
	return Style{
		Background:   render.Black,
		Sightline:    render.White,
		Player:       render.White,
		Outline:      render.Color{R: 0, G: 160, B: 255},
		PlayerRadius: 20,
		SightWidth:   1,
		SlabWidth:    15,
		ShowOutlines: true,
	}
}

// Builder produces the DrawList for one frame.
type Builder struct {
	Caster    *raycast.Caster
	Projector projection.Projector
	Obstacles *world.ObstacleSet
	Style     Style

	hits []raycast.Hit
}

// Build returns a fresh DrawList for the pose and mode.
func (b *Builder) Build(pose controller.Pose, mode controller.ViewMode) *render.DrawList {
	l := &render.DrawList{}
	b.BuildInto(l, pose, mode)
	return l
}

// BuildInto resets l and fills it with the frame. It also returns the hits
// used, valid until the next call.
func (b *Builder) BuildInto(l *render.DrawList, pose controller.Pose, mode controller.ViewMode) []raycast.Hit {
	l.Reset(b.Style.Background)
	b.hits = b.Caster.CastInto(b.hits, pose.Position, pose.Heading, b.Obstacles)

	if mode == controller.FirstPerson {
		b.firstPerson(l)
		return b.hits
	}
	b.overhead(l, pose)
	return b.hits
}

func (b *Builder) overhead(l *render.DrawList, pose controller.Pose) {
	s := b.Style
	o := pose.Position
	l.Circle(o.X, o.Y, s.PlayerRadius, s.Player)
	for _, h := range b.hits {
		l.Line(o.X, o.Y, h.Point.X, h.Point.Y, s.SightWidth, s.Sightline)
	}
	if !s.ShowOutlines {
		return
	}
	for _, r := range b.Obstacles.All() {
		for _, e := range r.Edges() {
			l.Line(e.A.X, e.A.Y, e.B.X, e.B.Y, 1, s.Outline)
		}
	}
}

func (b *Builder) firstPerson(l *render.DrawList) {
	for _, h := range b.hits {
		slab, ok := b.Projector.Project(h)
		if !ok {
			continue
		}
		l.Line(slab.ScreenX, slab.TopY, slab.ScreenX, slab.BottomY, b.Style.SlabWidth, render.Gray(slab.Shade))
	}
}
