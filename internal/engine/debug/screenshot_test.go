package debug

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func TestFlipRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	if _, err := FlipRows(make([]byte, 7), 1, 2); err == nil {
		t.Fatal("expected error for short pixel buffer")
	}
}

func TestCaptureFromImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "frame")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.SetRGBA(2, 1, color.RGBA{10, 20, 30, 255})

	path, err := sc.CaptureFromImage(src)
	if err != nil {
		t.Fatalf("CaptureFromImage: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "frame_2024-03-01_12-30-00") {
		t.Errorf("unexpected file name %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", decoded.Bounds(), src.Bounds())
	}
	r, g, b, _ := decoded.At(2, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "gl")
	path, err := sc.CaptureFromPixels(make([]byte, 2*2*4), 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
}

func TestSaveImageBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.BMP")
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	draw.Draw(src, src.Bounds(), image.Black, image.Point{}, draw.Src)
	src.SetRGBA(1, 1, color.RGBA{200, 100, 50, 255})

	if err := SaveImage(path, src); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode as BMP: %v", err)
	}
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}
