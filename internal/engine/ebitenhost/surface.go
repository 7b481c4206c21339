package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Faultbox/flatcaster/internal/render"
)

// Surface paints onto an ebiten image with anti-aliased vector strokes.
type Surface struct {
	Image *ebiten.Image
}

var _ render.Surface = Surface{}

// Clear fills the whole image.
func (s Surface) Clear(c render.Color) {
	s.Image.Fill(c.RGBA())
}

// DrawLine strokes a segment.
func (s Surface) DrawLine(x1, y1, x2, y2, width float64, c render.Color) {
	vector.StrokeLine(s.Image, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c.RGBA(), true)
}

// FillCircle draws a filled disc.
func (s Surface) FillCircle(cx, cy, radius float64, c render.Color) {
	vector.DrawFilledCircle(s.Image, float32(cx), float32(cy), float32(radius), c.RGBA(), true)
}
