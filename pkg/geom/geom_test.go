package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	if got := (Vec2{3, 4}).Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if !near(n.Length(), 1) {
		t.Errorf("Vec2.Normalize().Length() = %v, want 1", n.Length())
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	if !near(v.X, 0) || !near(v.Y, 1) {
		t.Errorf("FromAngle(pi/2) = %v, want (0,1)", v)
	}
}

func TestRectValid(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", Rect{0, 0, 10, 10}, true},
		{"zero width", Rect{0, 0, 0, 10}, false},
		{"negative height", Rect{0, 0, 10, -1}, false},
		{"nan", Rect{math.NaN(), 0, 10, 10}, false},
		{"inf", Rect{0, 0, math.Inf(1), 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 5, 5}
	if !r.Contains(Vec2{12, 12}) {
		t.Error("interior point should be contained")
	}
	if !r.Contains(Vec2{10, 15}) {
		t.Error("boundary point should be contained")
	}
	if r.Contains(Vec2{9.9, 12}) {
		t.Error("outside point should not be contained")
	}
}

func TestRectEdgesClosed(t *testing.T) {
	edges := Rect{0, 0, 4, 2}.Edges()
	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		if e.B != next.A {
			t.Errorf("edge %d ends at %v but edge %d starts at %v", i, e.B, (i+1)%4, next.A)
		}
	}
}

func TestClipSegment_HeadOn(t *testing.T) {
	r := Rect{X: 10, Y: -5, W: 5, H: 10}
	p, ok := ClipSegment(Vec2{0, 0}, Vec2{1000, 0}, r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !near(p.X, 10) || !near(p.Y, 0) {
		t.Fatalf("entry = %v, want (10,0)", p)
	}
	if d := p.Distance(Vec2{}); !near(d, 10) {
		t.Fatalf("distance = %v, want 10", d)
	}
}

func TestClipSegment_Miss(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 5}
	if _, ok := ClipSegment(Vec2{0, 0}, Vec2{1000, 0}, r); ok {
		t.Fatal("segment passing below the rect should miss")
	}
}

func TestClipSegment_PointsAway(t *testing.T) {
	r := Rect{X: 10, Y: -5, W: 5, H: 10}
	if _, ok := ClipSegment(Vec2{0, 0}, Vec2{-1000, 0}, r); ok {
		t.Fatal("segment pointing away from the rect should miss")
	}
}

func TestClipSegment_TooShort(t *testing.T) {
	r := Rect{X: 10, Y: -5, W: 5, H: 10}
	if _, ok := ClipSegment(Vec2{0, 0}, Vec2{5, 0}, r); ok {
		t.Fatal("segment ending before the rect should miss")
	}
}

func TestClipSegment_OriginInside(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	origin := Vec2{5, 5}
	p, ok := ClipSegment(origin, Vec2{500, 5}, r)
	if !ok {
		t.Fatal("expected a hit for an origin inside the rect")
	}
	if p != origin {
		t.Fatalf("entry = %v, want origin %v", p, origin)
	}
}

func TestClipSegment_NearAxisParallel(t *testing.T) {
	r := Rect{X: 100, Y: -1, W: 10, H: 2}
	// A direction with a vanishing y component must still hit the thin rect.
	far := Vec2{1e6, 1e-14}
	p, ok := ClipSegment(Vec2{0, 0}, far, r)
	if !ok {
		t.Fatal("near-parallel ray should hit")
	}
	if math.Abs(p.X-100) > 1e-6 {
		t.Fatalf("entry x = %v, want 100", p.X)
	}

	// Exactly vertical segment beside the rect misses.
	if _, ok := ClipSegment(Vec2{50, -100}, Vec2{50, 100}, r); ok {
		t.Fatal("vertical segment beside the rect should miss")
	}
}

func TestClipSegment_Idempotent(t *testing.T) {
	r := Rect{X: 30, Y: 10, W: 20, H: 40}
	origin, far := Vec2{0, 0}, Vec2{800, 600}
	p1, ok1 := ClipSegment(origin, far, r)
	p2, ok2 := ClipSegment(origin, far, r)
	if p1 != p2 || ok1 != ok2 {
		t.Fatalf("clipping twice differs: (%v,%v) vs (%v,%v)", p1, ok1, p2, ok2)
	}
}

func TestClipSegment_FartherRectIsFarther(t *testing.T) {
	prev := 0.0
	for x := 10.0; x <= 200; x += 10 {
		p, ok := ClipSegment(Vec2{0, 0}, Vec2{1000, 0}, Rect{X: x, Y: -5, W: 5, H: 10})
		if !ok {
			t.Fatalf("rect at x=%v should be hit", x)
		}
		d := p.Distance(Vec2{})
		if d <= prev {
			t.Fatalf("distance %v at x=%v is not greater than %v", d, x, prev)
		}
		prev = d
	}
}
