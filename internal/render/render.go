// Package render defines the drawing contract between the frame builder and
// the backends. The core only ever produces a DrawList; a backend paints it
// onto its own Surface.
package render

import "image/color"

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Gray returns a gray of the given level.
func Gray(level uint8) Color {
	return Color{level, level, level}
}

// RGBA converts to the standard library color type.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Floats returns the channels scaled to [0, 1].
func (c Color) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Surface is something a frame can be painted on. Coordinates are screen
// pixels.
type Surface interface {
	Clear(c Color)
	DrawLine(x1, y1, x2, y2, width float64, c Color)
	FillCircle(cx, cy, radius float64, c Color)
}

// Kind tags a draw command.
type Kind int

const (
	KindLine Kind = iota
	KindCircle
)

// Command is a single drawing instruction. Lines use X1..Y2 and Width;
// circles use X1, Y1 as the center and Radius.
type Command struct {
	Kind   Kind
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Radius float64
	Color  Color
}

// DrawList is an ordered list of commands for one frame.
type DrawList struct {
	Background Color
	Commands   []Command
}

// Line appends a line command.
func (l *DrawList) Line(x1, y1, x2, y2, width float64, c Color) {
	l.Commands = append(l.Commands, Command{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// Circle appends a filled circle command.
func (l *DrawList) Circle(cx, cy, radius float64, c Color) {
	l.Commands = append(l.Commands, Command{Kind: KindCircle, X1: cx, Y1: cy, Radius: radius, Color: c})
}

// Reset empties the list, keeping its capacity.
func (l *DrawList) Reset(bg Color) {
	l.Background = bg
	l.Commands = l.Commands[:0]
}

// Count returns how many commands of kind k the list holds.
func (l *DrawList) Count(k Kind) int {
	n := 0
	for _, c := range l.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Paint clears s to the list background and replays every command in order.
func Paint(s Surface, l *DrawList) {
	s.Clear(l.Background)
	for _, c := range l.Commands {
		switch c.Kind {
		case KindLine:
			s.DrawLine(c.X1, c.Y1, c.X2, c.Y2, c.Width, c.Color)
		case KindCircle:
			s.FillCircle(c.X1, c.Y1, c.Radius, c.Color)
		}
	}
}
