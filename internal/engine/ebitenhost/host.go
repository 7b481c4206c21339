// Package ebitenhost runs a session inside ebiten's game loop. Ebiten owns
// the loop, so the session is stepped from Update instead of game.Run.
package ebitenhost

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/config"
	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/engine/debug"
	"github.com/Faultbox/flatcaster/internal/game"
	"github.com/Faultbox/flatcaster/internal/logger"
	"github.com/Faultbox/flatcaster/internal/render"
)

// Keys lists the ebiten keys bound to each controller input.
var Keys = struct {
	Forward, Back, Left, Right, TurnLeft, TurnRight, Toggle, Quit ebiten.Key
}{
	Forward:   ebiten.KeyW,
	Back:      ebiten.KeyS,
	Left:      ebiten.KeyA,
	Right:     ebiten.KeyD,
	TurnLeft:  ebiten.KeyArrowLeft,
	TurnRight: ebiten.KeyArrowRight,
	Toggle:    ebiten.KeySpace,
	Quit:      ebiten.KeyEscape,
}

// Host adapts a game.Session to the ebiten.Game interface.
type Host struct {
	session *game.Session
	width   int
	height  int
	shots   *debug.ScreenshotCapture
	log     *zap.Logger

	list     *render.DrawList
	wantShot bool
}

var _ ebiten.Game = (*Host)(nil)

// New wraps s for a window of the configured size.
func New(cfg *config.Config, s *game.Session) *Host {
	return &Host{
		session: s,
		width:   cfg.Graphics.Width,
		height:  cfg.Graphics.Height,
		shots:   debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "flatcaster"),
		log:     logger.Named("ebiten"),
	}
}

// Run opens the window and blocks until the session quits or the window is
// closed.
func Run(cfg *config.Config, s *game.Session) error {
	ebiten.SetWindowSize(cfg.Graphics.Width, cfg.Graphics.Height)
	ebiten.SetWindowTitle("flatcaster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetFullscreen(cfg.Graphics.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Graphics.VSync)
	if cfg.Graphics.FPSLimit > 0 {
		ebiten.SetTPS(cfg.Graphics.FPSLimit)
	}

	err := ebiten.RunGame(New(cfg, s))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Controls samples the keyboard.
func Controls() controller.Input {
	return controller.Input{
		Forward:   ebiten.IsKeyPressed(Keys.Forward),
		Back:      ebiten.IsKeyPressed(Keys.Back),
		Left:      ebiten.IsKeyPressed(Keys.Left),
		Right:     ebiten.IsKeyPressed(Keys.Right),
		TurnLeft:  ebiten.IsKeyPressed(Keys.TurnLeft),
		TurnRight: ebiten.IsKeyPressed(Keys.TurnRight),
		Toggle:    ebiten.IsKeyPressed(Keys.Toggle),
		Quit:      ebiten.IsKeyPressed(Keys.Quit),
	}
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		h.wantShot = true
	}

	dt := 1 / float64(ebiten.TPS())
	list, quit := h.session.Step(dt, Controls())
	if quit {
		h.log.Info("quit requested")
		return ebiten.Termination
	}
	h.list = list
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.list == nil {
		return
	}
	render.Paint(Surface{Image: screen}, h.list)

	if h.wantShot {
		h.wantShot = false
		b := screen.Bounds()
		img := image.NewRGBA(b)
		screen.ReadPixels(img.Pix)
		path, err := h.shots.CaptureFromImage(img)
		if err != nil {
			h.log.Warn("screenshot failed", zap.Error(err))
			return
		}
		h.log.Info("screenshot saved", zap.String("path", path))
	}
}

// Layout implements ebiten.Game. The logical screen is always the
// configured size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}
