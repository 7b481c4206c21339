// Package renderer paints frames with OpenGL. It is a render.Surface: draw
// calls are tessellated into a CPU batch and uploaded once per frame.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/engine/shader"
	"github.com/Faultbox/flatcaster/internal/logger"
	"github.com/Faultbox/flatcaster/internal/render"
)

const vertexStride = int32(unsafe.Sizeof(render.Vertex{}))

// Config holds renderer configuration.
type Config struct {
	// Width and Height are the logical size in pixels that draw calls use.
	Width  int
	Height int
	// ViewportWidth and ViewportHeight are the drawable size. Zero means
	// the logical size.
	ViewportWidth  int
	ViewportHeight int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	batch  render.Batch

	program       *shader.Program
	locResolution int32

	vao uint32
	vbo uint32
	// capacity of the GPU buffer in vertices
	capacity int
}

var _ render.Surface = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.ViewportWidth == 0 || cfg.ViewportHeight == 0 {
		cfg.ViewportWidth, cfg.ViewportHeight = cfg.Width, cfg.Height
	}
	r := &Renderer{
		config: cfg,
		batch:  render.Batch{CircleSegments: render.DefaultCircleSegments},
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(cfg.ViewportWidth), int32(cfg.ViewportHeight))

	var err error
	r.program, err = shader.CompileProgram(shader.FlatVertex, shader.FlatFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locResolution = r.program.Uniform("uResolution")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("batch renderer created",
		zap.Uint32("program", r.program.ID),
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the drawable size. The logical size is unchanged.
func (r *Renderer) Resize(width, height int) {
	r.config.ViewportWidth = width
	r.config.ViewportHeight = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Clear starts a new frame with the given background.
func (r *Renderer) Clear(c render.Color) {
	r.batch.Clear(c)
	cr, cg, cb := c.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawLine queues a line.
func (r *Renderer) DrawLine(x1, y1, x2, y2, width float64, c render.Color) {
	r.batch.DrawLine(x1, y1, x2, y2, width, c)
}

// FillCircle queues a filled circle.
func (r *Renderer) FillCircle(cx, cy, radius float64, c render.Color) {
	r.batch.FillCircle(cx, cy, radius, c)
}

// Flush uploads the queued geometry and draws it in a single call.
func (r *Renderer) Flush() {
	n := len(r.batch.Vertices)
	if n == 0 {
		return
	}

	r.program.Use()
	gl.Uniform2f(r.locResolution, float32(r.config.Width), float32(r.config.Height))

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := n * int(vertexStride)
	ptr := unsafe.Pointer(&r.batch.Vertices[0])
	if n > r.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, ptr, gl.DYNAMIC_DRAW)
		r.capacity = n
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, ptr)
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Triangles reports the size of the current batch.
func (r *Renderer) Triangles() int {
	return r.batch.Triangles()
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.ViewportWidth, r.config.ViewportHeight
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}
