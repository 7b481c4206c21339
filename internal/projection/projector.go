// Package projection turns ray hits into vertical wall slabs for the
// first-person view.
package projection

import (
	"math"

	"github.com/Faultbox/flatcaster/internal/raycast"
)

const (
	// DefaultShadeK gives full brightness up to roughly 158 units and fades
	// with the inverse square of distance beyond that.
	DefaultShadeK = 25000 * 255

	// DefaultMinDistance is the smallest distance used in the height and
	// shade formulas.
	DefaultMinDistance = 1e-3
)

// Slab is one vertical strip of wall on screen. TopY is the larger y value
// because screen y grows downward; the slab is centered on ScreenHeight/2.
type Slab struct {
	ScreenX float64
	TopY    float64
	BottomY float64
	Shade   uint8
}

// HalfHeight returns the distance from the screen center to either end.
func (s Slab) HalfHeight() float64 {
	return (s.TopY - s.BottomY) / 2
}

// Projector maps hits onto a screen of fixed size.
type Projector struct {
	RayCount     int
	ScreenWidth  float64
	ScreenHeight float64
	WallHeight   float64
	ShadeK       float64
	MinDistance  float64
}

// ScreenX maps a signed ray index to a horizontal screen position: the
// leftmost ray lands on 0 and index RayCount/2 would land on ScreenWidth.
func (p Projector) ScreenX(index int) float64 {
	n := float64(p.RayCount)
	return ((float64(index) + n/2) / n) * p.ScreenWidth
}

// HalfHeight returns the half height of a wall seen at distance d.
func (p Projector) HalfHeight(d float64) float64 {
	d = p.clamp(d)
	return (p.WallHeight / (2 * d)) * p.ScreenHeight
}

// Shade returns the gray level for a wall at distance d.
func (p Projector) Shade(d float64) uint8 {
	d = p.clamp(d)
	v := math.Round(p.ShadeK / (d * d))
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Project converts a hit into a slab. It returns false for rays that saw open
// space.
func (p Projector) Project(h raycast.Hit) (Slab, bool) {
	if !h.Hit {
		return Slab{}, false
	}
	half := p.HalfHeight(h.Distance)
	mid := p.ScreenHeight / 2
	return Slab{
		ScreenX: p.ScreenX(h.Index),
		TopY:    mid + half,
		BottomY: mid - half,
		Shade:   p.Shade(h.Distance),
	}, true
}

// ProjectAll projects every hit, skipping misses, preserving ray order.
func (p Projector) ProjectAll(hits []raycast.Hit) []Slab {
	slabs := make([]Slab, 0, len(hits))
	for _, h := range hits {
		if s, ok := p.Project(h); ok {
			slabs = append(slabs, s)
		}
	}
	return slabs
}

func (p Projector) clamp(d float64) float64 {
	minD := p.MinDistance
	if minD <= 0 {
		minD = DefaultMinDistance
	}
	if d < minD || math.IsNaN(d) {
		return minD
	}
	return d
}
