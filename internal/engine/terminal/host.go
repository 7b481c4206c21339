// Package terminal renders frames into a character grid with tcell and reads
// the keyboard from the terminal.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/config"
	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/logger"
	"github.com/Faultbox/flatcaster/internal/render"
)

// Host is a game backend running in the current terminal.
type Host struct {
	screen  tcell.Screen
	surface *Surface
	keys    *keyTable
	done    chan struct{}
	now     func() time.Time
	log     *zap.Logger
}

// New takes over the terminal. The world keeps its configured pixel size
// and is scaled down to the terminal grid.
func New(cfg *config.Config) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return newHost(screen, cfg), nil
}

func newHost(screen tcell.Screen, cfg *config.Config) *Host {
	screen.HideCursor()
	screen.Clear()

	h := &Host{
		screen:  screen,
		surface: NewSurface(screen, float64(cfg.Graphics.Width), float64(cfg.Graphics.Height)),
		keys:    newKeyTable(DefaultHold, DefaultLatch),
		done:    make(chan struct{}),
		now:     time.Now,
		log:     logger.Named("terminal"),
	}
	cols, rows := screen.Size()
	h.log.Info("terminal ready", zap.Int("cols", cols), zap.Int("rows", rows))

	go h.readEvents()
	return h
}

func (h *Host) readEvents() {
	defer close(h.done)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			// Fini was called.
			h.keys.close()
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			h.screen.Sync()
			continue
		}
		if h.keys.handle(ev, h.now()) {
			return
		}
	}
}

// Poll samples the key table.
func (h *Host) Poll() (controller.Input, bool) {
	return h.keys.sample(h.now())
}

// Surface returns the character grid surface.
func (h *Host) Surface() render.Surface {
	return h.surface
}

// Present flushes the grid to the terminal.
func (h *Host) Present() error {
	h.screen.Show()
	return nil
}

// Close restores the terminal and waits for the event reader to exit.
func (h *Host) Close() {
	h.screen.Fini()
	select {
	case <-h.done:
	case <-time.After(time.Second):
		h.log.Warn("event reader did not stop")
	}
}
