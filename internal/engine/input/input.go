// Package input handles SDL2 input events and maps the keyboard onto
// controller input.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/flatcaster/internal/controller"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Keys assigns a scancode to every controller input.
type Keys struct {
	Forward   sdl.Scancode
	Back      sdl.Scancode
	Left      sdl.Scancode
	Right     sdl.Scancode
	TurnLeft  sdl.Scancode
	TurnRight sdl.Scancode
	Toggle    sdl.Scancode
	Quit      sdl.Scancode
}

// DefaultKeys is W/A/S/D, the arrow keys, Space and Escape.
var DefaultKeys = Keys{
	Forward:   sdl.SCANCODE_W,
	Back:      sdl.SCANCODE_S,
	Left:      sdl.SCANCODE_A,
	Right:     sdl.SCANCODE_D,
	TurnLeft:  sdl.SCANCODE_LEFT,
	TurnRight: sdl.SCANCODE_RIGHT,
	Toggle:    sdl.SCANCODE_SPACE,
	Quit:      sdl.SCANCODE_ESCAPE,
}

// Input handles all input processing.
type Input struct {
	keys   Keys
	events []Event
	state  []uint8
}

// New creates a new input handler.
func New(keys Keys) *Input {
	return &Input{
		keys:   keys,
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			switch e.Type {
			case sdl.KEYDOWN:
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			case sdl.KEYUP:
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}
		}
	}

	i.state = sdl.GetKeyboardState()
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return int(scancode) < len(i.state) && i.state[scancode] != 0
}

// Controls samples the held keys as controller input.
func (i *Input) Controls() controller.Input {
	k := i.keys
	return controller.Input{
		Forward:   i.IsKeyHeld(k.Forward),
		Back:      i.IsKeyHeld(k.Back),
		Left:      i.IsKeyHeld(k.Left),
		Right:     i.IsKeyHeld(k.Right),
		TurnLeft:  i.IsKeyHeld(k.TurnLeft),
		TurnRight: i.IsKeyHeld(k.TurnRight),
		Toggle:    i.IsKeyHeld(k.Toggle),
		Quit:      i.IsKeyHeld(k.Quit),
	}
}
