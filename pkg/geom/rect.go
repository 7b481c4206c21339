package geom

// Rect is an axis-aligned rectangle covering [X, X+W] x [Y, Y+H].
type Rect struct {
	X, Y, W, H float64
}

// Segment is a line segment from A to B.
type Segment struct {
	A, B Vec2
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.W, r.Y + r.H}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Valid reports whether the rectangle has finite coordinates and strictly
// positive dimensions.
func (r Rect) Valid() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.W) && isFinite(r.H) &&
		r.W > 0 && r.H > 0
}

// Contains reports whether p lies inside the rectangle or on its boundary.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Edges returns the four sides in clockwise order starting at the top.
func (r Rect) Edges() [4]Segment {
	tl := r.Min()
	br := r.Max()
	tr := Vec2{br.X, tl.Y}
	bl := Vec2{tl.X, br.Y}
	return [4]Segment{
		{A: tl, B: tr},
		{A: tr, B: br},
		{A: br, B: bl},
		{A: bl, B: tl},
	}
}
