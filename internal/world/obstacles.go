// Package world holds the static map the player moves through.
package world

import (
	"errors"
	"fmt"

	"github.com/Faultbox/flatcaster/pkg/geom"
)

// ErrInvalidRect is returned when an obstacle has non-positive or non-finite
// dimensions.
var ErrInvalidRect = errors.New("invalid obstacle rectangle")

// ObstacleSet is an ordered, immutable list of axis-aligned obstacles.
// Order matters: when two obstacles are hit at the same distance the earlier
// one wins.
type ObstacleSet struct {
	rects []geom.Rect
}

// NewObstacleSet validates rects and returns a set holding a private copy.
// An empty set is valid; every ray cast against it misses.
func NewObstacleSet(rects []geom.Rect) (*ObstacleSet, error) {
	var errs []error
	for i, r := range rects {
		if !r.Valid() {
			errs = append(errs, fmt.Errorf("obstacle %d %+v: %w", i, r, ErrInvalidRect))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	owned := make([]geom.Rect, len(rects))
	copy(owned, rects)
	return &ObstacleSet{rects: owned}, nil
}

// Len returns the number of obstacles. A nil set has none.
func (s *ObstacleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rects)
}

// At returns the i-th obstacle.
func (s *ObstacleSet) At(i int) geom.Rect {
	return s.rects[i]
}

// All returns a copy of the obstacles in order.
func (s *ObstacleSet) All() []geom.Rect {
	if s == nil {
		return nil
	}
	out := make([]geom.Rect, len(s.rects))
	copy(out, s.rects)
	return out
}

// Blocked reports whether p lies inside any obstacle.
func (s *ObstacleSet) Blocked(p geom.Vec2) bool {
	for i := 0; i < s.Len(); i++ {
		if s.rects[i].Contains(p) {
			return true
		}
	}
	return false
}
