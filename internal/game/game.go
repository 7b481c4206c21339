// Package game ties the controller, the raycaster and the frame builder into
// a session and drives it from a backend's frame loop.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/logger"
	"github.com/Faultbox/flatcaster/internal/render"
)

// Backend is a window or terminal that can sample input and show frames.
type Backend interface {
	// Poll samples the current input. closed reports that the user closed
	// the window, which ends the loop like the quit key does.
	Poll() (in controller.Input, closed bool)
	Surface() render.Surface
	// Present shows the frame painted since the last call.
	Present() error
	Close()
}

// Run steps s once per frame until the quit key, a closed window, or ctx
// cancellation. fps caps the frame rate; zero or less runs uncapped.
func Run(ctx context.Context, s *Session, b Backend, fps int) error {
	log := logger.Named("loop")
	clock := NewClock(fps)

	frameCount := 0
	fpsTimer := time.Now()

	log.Info("starting game loop", zap.Int("fps_limit", fps))

	for {
		select {
		case <-ctx.Done():
			log.Info("loop cancelled", zap.Error(context.Cause(ctx)))
			return nil
		default:
		}

		dt := clock.Tick()

		in, closed := b.Poll()
		if closed {
			log.Info("window closed")
			return nil
		}

		list, quit := s.Step(dt, in)
		if quit {
			log.Info("quit requested")
			return nil
		}

		render.Paint(b.Surface(), list)
		if err := b.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", s.Frames(), err)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("commands", len(list.Commands)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}
