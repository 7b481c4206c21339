package projection

import (
	"math"
	"testing"

	"github.com/Faultbox/flatcaster/internal/raycast"
)

func testProjector() Projector {
	return Projector{
		RayCount:     200,
		ScreenWidth:  1280,
		ScreenHeight: 720,
		WallHeight:   100,
		ShadeK:       DefaultShadeK,
		MinDistance:  DefaultMinDistance,
	}
}

func TestScreenXSpan(t *testing.T) {
	p := testProjector()
	if x := p.ScreenX(-100); x != 0 {
		t.Errorf("leftmost ray x = %v, want 0", x)
	}
	if x := p.ScreenX(100); x != p.ScreenWidth {
		t.Errorf("ray index %d x = %v, want %v", 100, x, p.ScreenWidth)
	}
	if x := p.ScreenX(0); x != 640 {
		t.Errorf("center ray x = %v, want 640", x)
	}

	prev := math.Inf(-1)
	for i := -100; i < 100; i++ {
		x := p.ScreenX(i)
		if x < prev {
			t.Fatalf("screen x decreased at ray %d: %v < %v", i, x, prev)
		}
		if x < 0 || x > p.ScreenWidth {
			t.Fatalf("screen x %v out of range at ray %d", x, i)
		}
		prev = x
	}
}

func TestHalfHeightFormula(t *testing.T) {
	p := testProjector()
	// (100 / (2*60)) * 720 = 600
	if got := p.HalfHeight(60); math.Abs(got-600) > 1e-9 {
		t.Errorf("HalfHeight(60) = %v, want 600", got)
	}
}

func TestHalfHeightStrictlyDecreasing(t *testing.T) {
	p := testProjector()
	prev := math.Inf(1)
	for d := 0.01; d < 5000; d *= 1.3 {
		h := p.HalfHeight(d)
		if !(h < prev) {
			t.Fatalf("half height %v at distance %v is not below %v", h, d, prev)
		}
		prev = h
	}
}

func TestZeroDistanceIsClamped(t *testing.T) {
	p := testProjector()
	for _, d := range []float64{0, -1, math.NaN()} {
		h := p.HalfHeight(d)
		if math.IsInf(h, 0) || math.IsNaN(h) {
			t.Fatalf("HalfHeight(%v) = %v, want finite", d, h)
		}
		if h != p.HalfHeight(DefaultMinDistance) {
			t.Errorf("HalfHeight(%v) = %v, want clamp value", d, h)
		}
	}
}

func TestShade(t *testing.T) {
	p := testProjector()
	if s := p.Shade(10); s != 255 {
		t.Errorf("near wall shade = %d, want 255", s)
	}
	if s := p.Shade(0); s != 255 {
		t.Errorf("zero distance shade = %d, want 255", s)
	}
	if s := p.Shade(1e6); s != 0 {
		t.Errorf("far wall shade = %d, want 0", s)
	}
	// K / 500^2 = 25.5 -> 26
	if s := p.Shade(500); s != 26 {
		t.Errorf("Shade(500) = %d, want 26", s)
	}

	prev := uint8(255)
	for d := 1.0; d < 3000; d += 10 {
		s := p.Shade(d)
		if s > prev {
			t.Fatalf("shade increased with distance at %v: %d > %d", d, s, prev)
		}
		prev = s
	}
}

func TestProjectHit(t *testing.T) {
	p := testProjector()
	s, ok := p.Project(raycast.Hit{Index: 0, Hit: true, Distance: 60})
	if !ok {
		t.Fatal("expected a slab for a hit")
	}
	if s.ScreenX != 640 {
		t.Errorf("ScreenX = %v, want 640", s.ScreenX)
	}
	if math.Abs(s.TopY-960) > 1e-9 || math.Abs(s.BottomY+240) > 1e-9 {
		t.Errorf("slab y = [%v, %v], want [960, -240]", s.TopY, s.BottomY)
	}
	if mid := (s.TopY + s.BottomY) / 2; math.Abs(mid-360) > 1e-9 {
		t.Errorf("slab not centered: mid = %v", mid)
	}
	if math.Abs(s.HalfHeight()-600) > 1e-9 {
		t.Errorf("HalfHeight() = %v, want 600", s.HalfHeight())
	}
}

func TestProjectMiss(t *testing.T) {
	p := testProjector()
	if _, ok := p.Project(raycast.Hit{Index: 3, Distance: 100}); ok {
		t.Fatal("a miss must not produce a slab")
	}
}

func TestProjectAllSkipsMisses(t *testing.T) {
	p := testProjector()
	hits := []raycast.Hit{
		{Index: -2, Hit: true, Distance: 100},
		{Index: -1},
		{Index: 0, Hit: true, Distance: 200},
	}
	slabs := p.ProjectAll(hits)
	if len(slabs) != 2 {
		t.Fatalf("expected 2 slabs, got %d", len(slabs))
	}
	if slabs[0].ScreenX >= slabs[1].ScreenX {
		t.Error("slabs should keep ray order")
	}
	if slabs[0].HalfHeight() <= slabs[1].HalfHeight() {
		t.Error("nearer wall should be taller")
	}
}
