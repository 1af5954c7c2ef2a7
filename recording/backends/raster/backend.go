// Package raster provides a raster backend for the recording system.
// It replays recordings into a scene graph and rasterizes the scene with
// the software rasterizer in package raster.
//
// The raster backend serves as a pixel reference for the scene adapter:
// what the SVG backend describes, this backend paints.
//
// # Supported Features
//
//   - Solid color and gradient fills and strokes
//   - Clip paths, both persistent and per draw
//   - Transform matrix and Save/Restore
//   - Stroke styling (width, cap, join)
//   - PNG output
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/rive/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("png")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SavePNG("output.png")
//	img := backend.Image()
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/raster"
	"github.com/gogpu/rive/recording"
)

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a pixel image.
// It implements the recording.Backend and recording.WriterBackend
// interfaces.
type Backend struct {
	*recording.SceneBackend

	background color.Color
	img        *image.RGBA
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a new raster backend. Renderer options apply to each
// replay.
func NewBackend(opts ...rive.Option) *Backend {
	return &Backend{SceneBackend: recording.NewSceneBackend(opts...)}
}

// SetBackground sets the color the image is cleared to. Nil keeps it
// transparent.
func (b *Backend) SetBackground(c color.Color) { b.background = c }

// Begin starts a new frame at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	b.img = nil
	return b.SceneBackend.Begin(width, height)
}

// End rasterizes the replayed scene.
// After End is called, output methods (WriteTo, SavePNG) can be used.
func (b *Backend) End() error {
	if err := b.SceneBackend.End(); err != nil {
		return err
	}
	b.img = raster.Render(b.Scene(), raster.Options{
		Width:      b.Width(),
		Height:     b.Height(),
		Background: b.background,
	})
	rive.Logger().Debug("raster backend: rendered frame", "width", b.img.Rect.Dx(), "height", b.img.Rect.Dy())
	return nil
}

// WriteTo encodes the rendered image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, recording.ErrNotBegun
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SavePNG writes the rendered image to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Image returns the rendered image, or nil before End.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
