package render

import "math"

// DefaultCircleSegments is the triangle fan resolution used for circles.
const DefaultCircleSegments = 32

// Vertex is one tessellated vertex in pixel space. The layout is five
// tightly packed float32s so a slice can be uploaded to a GPU buffer as is.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

// Batch is a Surface that tessellates lines and circles into triangles.
// Lines become two-triangle quads and circles become fans.
type Batch struct {
	Background     Color
	Vertices       []Vertex
	CircleSegments int
}

// Clear sets the background and drops queued geometry.
func (b *Batch) Clear(c Color) {
	b.Background = c
	b.Vertices = b.Vertices[:0]
}

// DrawLine queues a quad of the given width centered on the segment.
// Degenerate segments are skipped.
func (b *Batch) DrawLine(x1, y1, x2, y2, width float64, c Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	half := width / 2
	nx, ny := -dy/length*half, dx/length*half

	p0 := b.vertex(x1+nx, y1+ny, c)
	p1 := b.vertex(x2+nx, y2+ny, c)
	p2 := b.vertex(x2-nx, y2-ny, c)
	p3 := b.vertex(x1-nx, y1-ny, c)
	b.Vertices = append(b.Vertices, p0, p1, p2, p0, p2, p3)
}

// FillCircle queues a triangle fan around the center.
func (b *Batch) FillCircle(cx, cy, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	segments := b.CircleSegments
	if segments < 3 {
		segments = DefaultCircleSegments
	}
	center := b.vertex(cx, cy, c)
	step := 2 * math.Pi / float64(segments)
	prev := b.vertex(cx+radius, cy, c)
	for i := 1; i <= segments; i++ {
		a := step * float64(i)
		next := b.vertex(cx+radius*math.Cos(a), cy+radius*math.Sin(a), c)
		b.Vertices = append(b.Vertices, center, prev, next)
		prev = next
	}
}

// Triangles returns the number of queued triangles.
func (b *Batch) Triangles() int {
	return len(b.Vertices) / 3
}

func (b *Batch) vertex(x, y float64, c Color) Vertex {
	r, g, bl := c.Floats()
	return Vertex{X: float32(x), Y: float32(y), R: r, G: g, B: bl}
}
