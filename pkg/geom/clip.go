package geom

import "math"

// parallelEpsilon is the direction magnitude below which a segment is treated
// as parallel to an axis.
const parallelEpsilon = 1e-12

// ClipSegment clips the segment origin->far against r and returns the point
// where the segment first enters the rectangle. When origin is already inside
// r the entry point is origin itself. The bool is false when the segment
// misses the rectangle.
func ClipSegment(origin, far Vec2, r Rect) (Vec2, bool) {
	t, ok := EntryT(origin, far, r)
	if !ok {
		return Vec2{}, false
	}
	return origin.Lerp(far, t), true
}

// EntryT returns the segment parameter t in [0,1] at which origin->far enters r.
func EntryT(origin, far Vec2, r Rect) (float64, bool) {
	d := far.Sub(origin)
	tMin, tMax := 0.0, 1.0

	var ok bool
	if tMin, tMax, ok = clipAxis(origin.X, d.X, r.X, r.X+r.W, tMin, tMax); !ok {
		return 0, false
	}
	if tMin, tMax, ok = clipAxis(origin.Y, d.Y, r.Y, r.Y+r.H, tMin, tMax); !ok {
		return 0, false
	}
	return tMin, true
}

// clipAxis narrows [tMin, tMax] to the part of the segment inside one slab.
func clipAxis(o, d, lo, hi, tMin, tMax float64) (float64, float64, bool) {
	if math.Abs(d) < parallelEpsilon {
		if o < lo || o > hi {
			return 0, 0, false
		}
		return tMin, tMax, true
	}

	inv := 1.0 / d
	t1 := (lo - o) * inv
	t2 := (hi - o) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tMin = math.Max(tMin, t1)
	tMax = math.Min(tMax, t2)
	if tMin > tMax {
		return 0, 0, false
	}
	return tMin, tMax, true
}
