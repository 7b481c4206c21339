package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/config"
	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/frame"
	"github.com/Faultbox/flatcaster/internal/logger"
	"github.com/Faultbox/flatcaster/internal/raycast"
	"github.com/Faultbox/flatcaster/internal/render"
)

// Cues plays feedback for controller events.
type Cues interface {
	ModeChanged(mode controller.ViewMode)
	Bumped()
}

// Session owns everything that changes from frame to frame: the controller
// and the draw list it produces.
type Session struct {
	ctrl    *controller.Controller
	builder *frame.Builder
	cues    Cues
	log     *zap.Logger

	list   render.DrawList
	hits   []raycast.Hit
	frames uint64
}

// NewSession builds a session from config.
func NewSession(cfg *config.Config) (*Session, error) {
	obstacles, err := NewObstacles(cfg)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	builder, err := NewBuilder(cfg, obstacles)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ctrl:    NewController(cfg, obstacles),
		builder: builder,
		log:     logger.Named("session"),
	}
	s.log.Info("session ready",
		zap.Int("obstacles", obstacles.Len()),
		zap.Int("rays", builder.Caster.RayCount()),
		zap.Stringer("spread", builder.Caster.Config().Spread),
		zap.Float64("fov", builder.Caster.Config().FieldOfView),
		zap.Stringer("mode", s.ctrl.Mode()),
	)
	return s, nil
}

// SetCues attaches a cue player; nil disables cues.
func (s *Session) SetCues(c Cues) {
	s.cues = c
}

// Controller exposes the player controller.
func (s *Session) Controller() *controller.Controller {
	return s.ctrl
}

// Hits returns the rays cast for the last frame.
func (s *Session) Hits() []raycast.Hit {
	return s.hits
}

// Frames returns how many frames Step has produced.
func (s *Session) Frames() uint64 {
	return s.frames
}

// Step applies one tick of input and builds the next frame. The returned
// list is reused by the following call.
func (s *Session) Step(dt float64, in controller.Input) (*render.DrawList, bool) {
	ev := s.ctrl.Update(dt, in)
	if ev.Toggled {
		s.log.Debug("view mode toggled", zap.Stringer("mode", s.ctrl.Mode()))
		if s.cues != nil {
			s.cues.ModeChanged(s.ctrl.Mode())
		}
	}
	if ev.Blocked && s.cues != nil {
		s.cues.Bumped()
	}

	s.hits = s.builder.BuildInto(&s.list, s.ctrl.Pose(), s.ctrl.Mode())
	s.frames++
	return &s.list, ev.Quit
}
