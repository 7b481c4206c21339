// Package raster paints frames into an in-memory image with an anti-aliased
// vector rasterizer. It needs no window and backs the snapshot tool.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/Faultbox/flatcaster/internal/render"
)

const circleSegments = 48

// Surface draws onto an RGBA image.
type Surface struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

var _ render.Surface = (*Surface)(nil)

// New allocates a width x height surface.
func New(width, height int) *Surface {
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear fills the image.
func (s *Surface) Clear(c render.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// DrawLine fills the quad of the given width around the segment.
func (s *Surface) DrawLine(x1, y1, x2, y2, width float64, c render.Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	half := width / 2
	nx, ny := -dy/length*half, dx/length*half

	s.begin()
	s.z.MoveTo(float32(x1+nx), float32(y1+ny))
	s.z.LineTo(float32(x2+nx), float32(y2+ny))
	s.z.LineTo(float32(x2-nx), float32(y2-ny))
	s.z.LineTo(float32(x1-nx), float32(y1-ny))
	s.z.ClosePath()
	s.fill(c)
}

// FillCircle fills a polygonal approximation of the circle.
func (s *Surface) FillCircle(cx, cy, radius float64, c render.Color) {
	if radius <= 0 {
		return
	}
	s.begin()
	s.z.MoveTo(float32(cx+radius), float32(cy))
	for i := 1; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		s.z.LineTo(float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a)))
	}
	s.z.ClosePath()
	s.fill(c)
}

// Caption writes a line of text with its baseline at (x, y).
func (s *Surface) Caption(x, y int, text string, c render.Color) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.RGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func (s *Surface) begin() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
}

func (s *Surface) fill(c render.Color) {
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{})
}
