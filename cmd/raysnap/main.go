// Package main renders a single frame without a window and writes it as an
// image, optionally with the per-ray hit table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/config"
	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/engine/debug"
	"github.com/Faultbox/flatcaster/internal/engine/raster"
	"github.com/Faultbox/flatcaster/internal/game"
	"github.com/Faultbox/flatcaster/internal/logger"
	"github.com/Faultbox/flatcaster/internal/raycast"
	"github.com/Faultbox/flatcaster/internal/render"
	"github.com/Faultbox/flatcaster/pkg/geom"
)

var (
	flagX       = flag.Float64("x", math.NaN(), "Player x (default: config start_x)")
	flagY       = flag.Float64("y", math.NaN(), "Player y (default: config start_y)")
	flagHeading = flag.Float64("heading", math.NaN(), "Heading in radians (default: config heading)")
	flagMode    = flag.String("mode", "", "View mode: overhead or firstperson (default: config mode)")
	flagOut     = flag.String("out", "frame.png", "Output image, .png or .bmp")
	flagTable   = flag.Bool("table", false, "Print the hit table to stdout")
	flagCopy    = flag.Bool("copy", false, "Copy the hit table to the clipboard")
	flagCaption = flag.Bool("caption", true, "Stamp pose and hit count onto the image")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.InitWithOptions(logger.Options{Level: cfg.Logging.Level, Console: os.Stderr}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// snapshot is one rendered frame.
type snapshot struct {
	pose    controller.Pose
	mode    controller.ViewMode
	surface *raster.Surface
	hits    []raycast.Hit
}

func run(cfg *config.Config, stdout io.Writer) error {
	if *flagMode != "" {
		cfg.Player.Mode = *flagMode
	}
	pose := controller.Pose{
		Position: geom.Vec2{
			X: orDefault(*flagX, cfg.Player.StartX),
			Y: orDefault(*flagY, cfg.Player.StartY),
		},
		Heading: orDefault(*flagHeading, cfg.Player.Heading),
	}

	snap, err := renderFrame(cfg, pose, game.ParseMode(cfg.Player.Mode))
	if err != nil {
		return err
	}
	if *flagCaption {
		snap.caption()
	}

	if err := debug.SaveImage(*flagOut, snap.surface.Image()); err != nil {
		return fmt.Errorf("write %s: %w", *flagOut, err)
	}
	logger.Info("frame written",
		zap.String("path", *flagOut),
		zap.Stringer("mode", snap.mode),
		zap.Int("hits", countHits(snap.hits)),
	)

	if !*flagTable && !*flagCopy {
		return nil
	}
	var table bytes.Buffer
	if err := writeTable(&table, snap.hits); err != nil {
		return err
	}
	if *flagTable {
		if _, err := stdout.Write(table.Bytes()); err != nil {
			return err
		}
	}
	if *flagCopy {
		if err := clipboard.WriteAll(table.String()); err != nil {
			logger.Warn("clipboard unavailable", zap.Error(err))
		} else {
			logger.Info("hit table copied to clipboard", zap.Int("rows", len(snap.hits)))
		}
	}
	return nil
}

// renderFrame builds and paints a single frame.
func renderFrame(cfg *config.Config, pose controller.Pose, mode controller.ViewMode) (*snapshot, error) {
	obstacles, err := game.NewObstacles(cfg)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	builder, err := game.NewBuilder(cfg, obstacles)
	if err != nil {
		return nil, err
	}

	var list render.DrawList
	hits := builder.BuildInto(&list, pose, mode)

	s := raster.New(cfg.Graphics.Width, cfg.Graphics.Height)
	render.Paint(s, &list)
	return &snapshot{pose: pose, mode: mode, surface: s, hits: hits}, nil
}

func (s *snapshot) caption() {
	text := fmt.Sprintf("%s  x=%.1f y=%.1f heading=%.3f  hits %d/%d",
		s.mode, s.pose.Position.X, s.pose.Position.Y, s.pose.Heading, countHits(s.hits), len(s.hits))
	s.surface.Caption(8, 18, text, render.Color{R: 255, G: 200, B: 0})
}

// writeTable prints one row per ray.
func writeTable(w io.Writer, hits []raycast.Hit) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ray\thit\tx\ty\tdistance\tobstacle\t")
	for _, h := range hits {
		hit := "-"
		if h.Hit {
			hit = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2f\t%d\t\n", h.Index, hit, h.Point.X, h.Point.Y, h.Distance, h.Obstacle)
	}
	return tw.Flush()
}

func countHits(hits []raycast.Hit) int {
	n := 0
	for _, h := range hits {
		if h.Hit {
			n++
		}
	}
	return n
}

func orDefault(v, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return v
}
