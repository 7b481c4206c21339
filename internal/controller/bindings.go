package controller

import "github.com/Faultbox/flatcaster/pkg/geom"

// effect is what holding one control does in a given view mode.
type effect int

const (
	inert effect = iota
	alongHeading
	alongAxis
	rotate
)

// binding maps a control to an effect. sign flips heading moves and
// rotations; axis is the screen direction for alongAxis.
type binding struct {
	effect effect
	sign   float64
	axis   geom.Vec2
}

// keymap holds one binding per control, in Input field order.
type keymap struct {
	forward, back, left, right, turnLeft, turnRight binding
}

var (
	overheadKeys = keymap{
		forward:   binding{effect: alongAxis, axis: geom.Vec2{X: 0, Y: -1}},
		back:      binding{effect: alongAxis, axis: geom.Vec2{X: 0, Y: 1}},
		left:      binding{effect: alongAxis, axis: geom.Vec2{X: -1, Y: 0}},
		right:     binding{effect: alongAxis, axis: geom.Vec2{X: 1, Y: 0}},
		turnLeft:  binding{effect: rotate, sign: -1},
		turnRight: binding{effect: rotate, sign: 1},
	}

	// In first person the strafe keys turn the player and the arrow keys do
	// nothing.
	firstPersonKeys = keymap{
		forward:   binding{effect: alongHeading, sign: 1},
		back:      binding{effect: alongHeading, sign: -1},
		left:      binding{effect: rotate, sign: -1},
		right:     binding{effect: rotate, sign: 1},
		turnLeft:  binding{effect: inert},
		turnRight: binding{effect: inert},
	}
)

func bindingsFor(m ViewMode) keymap {
	if m == FirstPerson {
		return firstPersonKeys
	}
	return overheadKeys
}

// resolve sums the unit movement vector and rotation direction for the held
// controls. Heading moves use the heading at the start of the tick.
func (k keymap) resolve(in Input, heading float64) (move geom.Vec2, turn float64) {
	held := [...]struct {
		down bool
		b    binding
	}{
		{in.Forward, k.forward},
		{in.Back, k.back},
		{in.Left, k.left},
		{in.Right, k.right},
		{in.TurnLeft, k.turnLeft},
		{in.TurnRight, k.turnRight},
	}

	dir := geom.FromAngle(heading)
	for _, h := range held {
		if !h.down {
			continue
		}
		switch h.b.effect {
		case alongHeading:
			move = move.Add(dir.Scale(h.b.sign))
		case alongAxis:
			move = move.Add(h.b.axis)
		case rotate:
			turn += h.b.sign
		}
	}
	return move, turn
}
