package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/flatcaster/internal/render"
	"github.com/Faultbox/flatcaster/pkg/geom"
)

// Block is the glyph used for every painted cell.
const Block = '█'

// Cells is the part of tcell.Screen a Surface draws on.
type Cells interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Surface scales world coordinates onto a character grid. Each axis is
// scaled independently, so the whole world is always visible.
type Surface struct {
	cells  Cells
	worldW float64
	worldH float64

	cols, rows int
	bg         tcell.Color
}

var _ render.Surface = (*Surface)(nil)

// NewSurface maps a worldW x worldH world onto cells.
func NewSurface(cells Cells, worldW, worldH float64) *Surface {
	return &Surface{cells: cells, worldW: worldW, worldH: worldH}
}

// Clear fills the grid with the background color. The grid size is read
// again on every clear so terminal resizes take effect on the next frame.
func (s *Surface) Clear(c render.Color) {
	s.cols, s.rows = s.cells.Size()
	s.bg = colorOf(c)
	style := tcell.StyleDefault.Background(s.bg)
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.cells.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawLine walks the visible part of the segment cell by cell and stamps a
// square brush whose size follows the line width.
func (s *Surface) DrawLine(x1, y1, x2, y2, width float64, c render.Color) {
	if s.cols == 0 || s.rows == 0 {
		return
	}
	a, b, ok := s.clip(geom.Vec2{X: x1, Y: y1}, geom.Vec2{X: x2, Y: y2}, width/2)
	if !ok {
		return
	}
	style := s.style(c)
	cx1, cy1 := s.toCell(a.X, a.Y)
	cx2, cy2 := s.toCell(b.X, b.Y)
	brush := int(width*s.scaleX()) / 2

	dx, dy := cx2-cx1, cy2-cy1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	n := int(math.Ceil(steps))
	if n == 0 {
		s.stamp(int(cx1), int(cy1), brush, style)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		s.stamp(int(cx1+dx*t), int(cy1+dy*t), brush, style)
	}
}

// FillCircle paints every cell whose center lies inside the circle. A circle
// smaller than a cell still paints the cell under its center.
func (s *Surface) FillCircle(cx, cy, radius float64, c render.Color) {
	if s.cols == 0 || s.rows == 0 {
		return
	}
	style := s.style(c)
	sx, sy := s.scaleX(), s.scaleY()
	x0 := int(math.Floor((cx - radius) * sx))
	x1 := int(math.Ceil((cx + radius) * sx))
	y0 := int(math.Floor((cy - radius) * sy))
	y1 := int(math.Ceil((cy + radius) * sy))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			wx := (float64(x) + 0.5) / sx
			wy := (float64(y) + 0.5) / sy
			if math.Hypot(wx-cx, wy-cy) <= radius {
				s.set(x, y, style)
			}
		}
	}
	ccx, ccy := s.toCell(cx, cy)
	s.set(int(ccx), int(ccy), style)
}

// clip trims a->b to the world rectangle grown by pad on every side. Sightlines
// that miss run far off screen, so walking them unclipped would cost
// millions of cells.
func (s *Surface) clip(a, b geom.Vec2, pad float64) (geom.Vec2, geom.Vec2, bool) {
	bounds := geom.Rect{X: -pad, Y: -pad, W: s.worldW + 2*pad, H: s.worldH + 2*pad}
	tIn, ok := geom.EntryT(a, b, bounds)
	if !ok {
		return a, b, false
	}
	tOut, _ := geom.EntryT(b, a, bounds)
	return a.Lerp(b, tIn), b.Lerp(a, tOut), true
}

func (s *Surface) stamp(x, y, brush int, style tcell.Style) {
	for dy := -brush; dy <= brush; dy++ {
		for dx := -brush; dx <= brush; dx++ {
			s.set(x+dx, y+dy, style)
		}
	}
}

func (s *Surface) set(x, y int, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.cells.SetContent(x, y, Block, nil, style)
}

func (s *Surface) style(c render.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(colorOf(c)).Background(s.bg)
}

func (s *Surface) toCell(x, y float64) (float64, float64) {
	return x * s.scaleX(), y * s.scaleY()
}

func (s *Surface) scaleX() float64 { return float64(s.cols) / s.worldW }
func (s *Surface) scaleY() float64 { return float64(s.rows) / s.worldH }

func colorOf(c render.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
