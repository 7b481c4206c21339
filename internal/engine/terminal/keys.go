package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/flatcaster/internal/controller"
)

// DefaultHold is how long a movement key counts as held after its last
// event. Terminals report presses and auto-repeats but never releases.
const DefaultHold = 150 * time.Millisecond

// DefaultLatch is the hold window for the mode toggle. It outlasts the
// usual auto-repeat delay, so one held press never reads as two.
const DefaultLatch = 600 * time.Millisecond

type action int

const (
	actNone action = iota
	actForward
	actBack
	actLeft
	actRight
	actTurnLeft
	actTurnRight
	actToggle
	actQuit
	actCount
)

func actionOf(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actTurnLeft
	case tcell.KeyRight:
		return actTurnRight
	case tcell.KeyEscape:
		return actQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return actForward
		case 's', 'S':
			return actBack
		case 'a', 'A':
			return actLeft
		case 'd', 'D':
			return actRight
		case ' ':
			return actToggle
		}
	}
	return actNone
}

// keyTable records when each action was last seen. It is written by the
// event goroutine and sampled by the frame loop.
type keyTable struct {
	mu     sync.Mutex
	hold   time.Duration
	latch  time.Duration
	last   [actCount]time.Time
	closed bool
}

func newKeyTable(hold, latch time.Duration) *keyTable {
	return &keyTable{hold: hold, latch: latch}
}

// window is how long action a counts as held after its last event. The toggle is
// edge triggered, so a gap in its repeats would flip the mode again.
func (k *keyTable) window(a action) time.Duration {
	if a == actToggle {
		return k.latch
	}
	return k.hold
}

// handle records an event and reports whether the event stream should stop.
func (k *keyTable) handle(ev tcell.Event, at time.Time) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if key.Key() == tcell.KeyCtrlC {
		k.closed = true
		return true
	}
	if a := actionOf(key); a != actNone {
		k.last[a] = at
	}
	return false
}

func (k *keyTable) close() {
	k.mu.Lock()
	k.closed = true
	k.mu.Unlock()
}

func (k *keyTable) sample(now time.Time) (controller.Input, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	held := func(a action) bool {
		t := k.last[a]
		return !t.IsZero() && now.Sub(t) < k.window(a)
	}
	return controller.Input{
		Forward:   held(actForward),
		Back:      held(actBack),
		Left:      held(actLeft),
		Right:     held(actRight),
		TurnLeft:  held(actTurnLeft),
		TurnRight: held(actTurnRight),
		Toggle:    held(actToggle),
		Quit:      held(actQuit),
	}, k.closed
}
