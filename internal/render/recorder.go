package render

// Recorder is a Surface that keeps every call, for tests and dry runs.
type Recorder struct {
	Cleared  []Color
	Commands []Command
}

// Clear records a clear and drops previously recorded commands.
func (r *Recorder) Clear(c Color) {
	r.Cleared = append(r.Cleared, c)
	r.Commands = r.Commands[:0]
}

// DrawLine records a line.
func (r *Recorder) DrawLine(x1, y1, x2, y2, width float64, c Color) {
	r.Commands = append(r.Commands, Command{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	r.Commands = append(r.Commands, Command{Kind: KindCircle, X1: cx, Y1: cy, Radius: radius, Color: c})
}
