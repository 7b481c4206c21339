// Package raycast casts a fan of rays from the player into the obstacle set
// and reports the nearest hit for each ray.
package raycast

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/flatcaster/internal/world"
	"github.com/Faultbox/flatcaster/pkg/geom"
)

// Spread selects how ray indices map to angular offsets from the heading.
type Spread int

const (
	// SpreadFieldOfView spaces the rays evenly across FieldOfView radians.
	SpreadFieldOfView Spread = iota
	// SpreadLegacy offsets ray i by i/half radians, ignoring FieldOfView.
	// It is the same as SpreadFieldOfView with a 2 radian field of view.
	SpreadLegacy
)

// String returns the config name of the spread.
func (s Spread) String() string {
	switch s {
	case SpreadLegacy:
		return "legacy"
	default:
		return "fov"
	}
}

// Parameter errors reported by New.
var (
	ErrRayCount    = errors.New("ray count must be an even number >= 2")
	ErrFarDistance = errors.New("far distance must be positive")
	ErrFieldOfView = errors.New("field of view must be positive")
)

// Config holds caster parameters.
type Config struct {
	RayCount    int
	FarDistance float64
	FieldOfView float64
	Spread      Spread
}

// Hit is the result of casting one ray.
type Hit struct {
	// Index is the signed ray index in [-RayCount/2, RayCount/2).
	Index int
	// Hit is false when the ray reached Point without striking an obstacle.
	Hit bool
	// Point is the nearest hit point, or the far end of the ray on a miss.
	Point geom.Vec2
	// Distance is the Euclidean distance from the origin to Point.
	Distance float64
	// Obstacle is the index of the struck obstacle, or -1 on a miss.
	Obstacle int
}

// Caster casts rays against an obstacle set. It holds no per-frame state and
// is safe to reuse.
type Caster struct {
	cfg  Config
	half int
}

// New validates cfg and returns a Caster.
func New(cfg Config) (*Caster, error) {
	var errs []error
	if cfg.RayCount < 2 || cfg.RayCount%2 != 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrRayCount, cfg.RayCount))
	}
	if !(cfg.FarDistance > 0) || math.IsInf(cfg.FarDistance, 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrFarDistance, cfg.FarDistance))
	}
	if cfg.Spread == SpreadFieldOfView && !(cfg.FieldOfView > 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrFieldOfView, cfg.FieldOfView))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Caster{cfg: cfg, half: cfg.RayCount / 2}, nil
}

// FarDistanceFor returns a ray length that always leaves a width x height view.
func FarDistanceFor(width, height int) float64 {
	return math.Pow(float64(width+height), 2)
}

// Config returns the caster parameters.
func (c *Caster) Config() Config {
	return c.cfg
}

// RayCount returns the total number of rays per cast.
func (c *Caster) RayCount() int {
	return c.cfg.RayCount
}

// Index converts a zero-based position k into the signed ray index.
func (c *Caster) Index(k int) int {
	return k - c.half
}

// Offset returns the angular offset of ray i from the heading.
func (c *Caster) Offset(i int) float64 {
	frac := float64(i) / float64(c.half)
	if c.cfg.Spread == SpreadLegacy {
		return frac
	}
	return frac * c.cfg.FieldOfView / 2
}

// Angle returns the absolute angle of ray i.
func (c *Caster) Angle(heading float64, i int) float64 {
	return heading + c.Offset(i)
}

// Cast returns one Hit per ray, ordered from the leftmost ray to the
// rightmost.
func (c *Caster) Cast(origin geom.Vec2, heading float64, obstacles *world.ObstacleSet) []Hit {
	return c.CastInto(make([]Hit, 0, c.cfg.RayCount), origin, heading, obstacles)
}

// CastInto appends the hits to dst[:0] and returns it, so a frame loop can
// reuse one buffer.
func (c *Caster) CastInto(dst []Hit, origin geom.Vec2, heading float64, obstacles *world.ObstacleSet) []Hit {
	dst = dst[:0]
	for k := 0; k < c.cfg.RayCount; k++ {
		i := c.Index(k)
		dst = append(dst, c.castOne(i, origin, c.Angle(heading, i), obstacles))
	}
	return dst
}

// castOne scans every obstacle; a strictly closer entry point replaces the
// current best, so the first obstacle wins ties.
func (c *Caster) castOne(i int, origin geom.Vec2, angle float64, obstacles *world.ObstacleSet) Hit {
	far := origin.Add(geom.FromAngle(angle).Scale(c.cfg.FarDistance))
	hit := Hit{Index: i, Point: far, Distance: origin.Distance(far), Obstacle: -1}

	for j := 0; j < obstacles.Len(); j++ {
		p, ok := geom.ClipSegment(origin, far, obstacles.At(j))
		if !ok {
			continue
		}
		if d := origin.Distance(p); !hit.Hit || d < hit.Distance {
			hit.Hit = true
			hit.Point = p
			hit.Distance = d
			hit.Obstacle = j
		}
	}
	return hit
}
