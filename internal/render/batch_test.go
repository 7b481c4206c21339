package render

import (
	"math"
	"testing"
)

func TestBatchLineQuad(t *testing.T) {
	var b Batch
	b.Clear(Black)
	b.DrawLine(0, 0, 10, 0, 4, White)

	if b.Triangles() != 2 {
		t.Fatalf("triangles = %d, want 2", b.Triangles())
	}
	for i, v := range b.Vertices {
		if math.Abs(float64(v.Y)) != 2 {
			t.Errorf("vertex %d y = %v, want +-2", i, v.Y)
		}
		if v.X != 0 && v.X != 10 {
			t.Errorf("vertex %d x = %v, want 0 or 10", i, v.X)
		}
		if v.R != 1 || v.G != 1 || v.B != 1 {
			t.Errorf("vertex %d color = %v,%v,%v", i, v.R, v.G, v.B)
		}
	}
}

func TestBatchSkipsDegenerateLine(t *testing.T) {
	var b Batch
	b.DrawLine(5, 5, 5, 5, 3, White)
	b.DrawLine(0, 0, 1, 1, 0, White)
	if len(b.Vertices) != 0 {
		t.Fatalf("expected no geometry, got %d vertices", len(b.Vertices))
	}
}

func TestBatchCircleFan(t *testing.T) {
	b := Batch{CircleSegments: 8}
	b.FillCircle(50, 50, 10, Gray(128))

	if b.Triangles() != 8 {
		t.Fatalf("triangles = %d, want 8", b.Triangles())
	}
	for i := 0; i < len(b.Vertices); i += 3 {
		c := b.Vertices[i]
		if c.X != 50 || c.Y != 50 {
			t.Errorf("triangle %d does not start at the center: %+v", i/3, c)
		}
		for _, v := range b.Vertices[i+1 : i+3] {
			d := math.Hypot(float64(v.X-50), float64(v.Y-50))
			if math.Abs(d-10) > 1e-3 {
				t.Errorf("rim vertex at distance %v, want 10", d)
			}
		}
	}
}

func TestBatchDefaultSegments(t *testing.T) {
	var b Batch
	b.FillCircle(0, 0, 1, White)
	if b.Triangles() != DefaultCircleSegments {
		t.Fatalf("triangles = %d, want %d", b.Triangles(), DefaultCircleSegments)
	}
}

func TestBatchClearResets(t *testing.T) {
	var b Batch
	b.DrawLine(0, 0, 1, 0, 1, White)
	b.Clear(Gray(7))
	if len(b.Vertices) != 0 || b.Background != Gray(7) {
		t.Fatalf("clear left %d vertices, background %v", len(b.Vertices), b.Background)
	}
}

func TestPaintIntoBatch(t *testing.T) {
	var l DrawList
	l.Reset(White)
	l.Line(0, 0, 10, 10, 1, Black)
	l.Circle(0, 0, 3, Black)

	b := Batch{CircleSegments: 4}
	Paint(&b, &l)
	if b.Triangles() != 2+4 {
		t.Fatalf("triangles = %d, want 6", b.Triangles())
	}
	if b.Background != White {
		t.Fatalf("background = %v, want white", b.Background)
	}
}
