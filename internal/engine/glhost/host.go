// Package glhost is the default desktop backend: an SDL2 window with an
// OpenGL batch renderer and keyboard input.
package glhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/config"
	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/engine/debug"
	"github.com/Faultbox/flatcaster/internal/engine/input"
	"github.com/Faultbox/flatcaster/internal/engine/renderer"
	"github.com/Faultbox/flatcaster/internal/engine/window"
	"github.com/Faultbox/flatcaster/internal/logger"
	"github.com/Faultbox/flatcaster/internal/render"
)

// ScreenshotKey saves the current frame.
const ScreenshotKey = sdl.SCANCODE_F12

// Host owns the window, renderer and input handler.
type Host struct {
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture
	log      *zap.Logger

	wantShot bool
}

// New opens the window described by cfg.
func New(cfg *config.Config) (*Host, error) {
	h := &Host{
		shots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "flatcaster"),
		log:   logger.Named("glhost"),
	}

	var err error
	h.window, err = window.New(window.Config{
		Title:      "flatcaster",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist.
	vw, vh := h.window.DrawableSize()
	h.renderer, err = renderer.New(renderer.Config{
		Width:          cfg.Graphics.Width,
		Height:         cfg.Graphics.Height,
		ViewportWidth:  vw,
		ViewportHeight: vh,
	})
	if err != nil {
		h.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	h.input = input.New(input.DefaultKeys)
	return h, nil
}

// Poll pumps SDL events and samples the keyboard.
func (h *Host) Poll() (controller.Input, bool) {
	if h.input.Update() {
		return controller.Input{}, true
	}

	for _, event := range h.input.Events() {
		if event.Type == input.EventWindowResize {
			h.renderer.Resize(h.window.DrawableSize())
		}
	}
	if h.input.IsKeyPressed(ScreenshotKey) {
		h.wantShot = true
	}

	return h.input.Controls(), false
}

// Surface returns the batch renderer.
func (h *Host) Surface() render.Surface {
	return h.renderer
}

// Present flushes the batch, takes a pending screenshot and swaps buffers.
func (h *Host) Present() error {
	h.renderer.Flush()

	if h.wantShot {
		h.wantShot = false
		pixels, w, ht := h.renderer.ReadPixels()
		path, err := h.shots.CaptureFromPixels(pixels, w, ht)
		if err != nil {
			h.log.Warn("screenshot failed", zap.Error(err))
		} else {
			h.log.Info("screenshot saved", zap.String("path", path))
		}
	}

	h.window.SwapBuffers()
	return nil
}

// Close releases the renderer and the window.
func (h *Host) Close() {
	if h.renderer != nil {
		h.renderer.Close()
	}
	if h.window != nil {
		h.window.Close()
	}
}
