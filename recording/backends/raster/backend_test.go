package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/recording"
)

func TestBackendRegistration(t *testing.T) {
	// Verify the backend is registered
	if !recording.IsRegistered("png") {
		t.Fatal("png backend not registered")
	}

	backend, err := recording.NewBackend("png")
	if err != nil {
		t.Fatalf("failed to create png backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()

	if err := backend.Begin(100, 50); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 100 || backend.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", backend.Width(), backend.Height())
	}
	if backend.Image() != nil {
		t.Error("Image() should be nil before End")
	}

	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("image size = %v, want 100x50", img.Bounds())
	}
}

func TestBackendEndBeforeBegin(t *testing.T) {
	if err := NewBackend().End(); err != recording.ErrNotBegun {
		t.Errorf("End() = %v, want %v", err, recording.ErrNotBegun)
	}
}

// recordSquare records a red square at (10,10)-(30,30) clipped to its
// left half.
func recordSquare() *recording.Recording {
	rec := recording.NewRecorder(40, 40)

	clip := rec.MakeRenderPath()
	clip.MoveTo(0, 0)
	clip.LineTo(20, 0)
	clip.LineTo(20, 40)
	clip.LineTo(0, 40)
	clip.Close()

	square := rec.MakeRenderPath()
	square.MoveTo(0, 0)
	square.LineTo(20, 0)
	square.LineTo(20, 20)
	square.LineTo(0, 20)
	square.Close()

	paint := rec.MakeRenderPaint()
	paint.Color(0xFFFF0000)

	rec.ClipPath(clip)
	rec.Save()
	rec.Transform(rive.TranslateMat2D(10, 10))
	rec.DrawPath(square, paint)
	rec.Restore()
	return rec.FinishRecording()
}

func TestRecordingPlayback(t *testing.T) {
	backend := NewBackend()
	backend.SetBackground(color.White)
	if err := recordSquare().Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	img := backend.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"inside square and clip", 15, 20, color.RGBA{R: 255, A: 255}},
		{"clipped half", 25, 20, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"outside square", 5, 5, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRecordingPlaybackViaRegistry(t *testing.T) {
	backend, err := recording.NewBackend("png")
	if err != nil {
		t.Fatal(err)
	}
	if err := recordSquare().Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := backend.(recording.WriterBackend).WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 40 || decoded.Bounds().Dy() != 40 {
		t.Errorf("decoded size = %v, want 40x40", decoded.Bounds())
	}
}

func TestBackendSavePNG(t *testing.T) {
	backend := NewBackend()
	if err := recordSquare().Playback(backend); err != nil {
		t.Fatal(err)
	}
	if err := backend.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}

func TestBackendWriteToBeforeEnd(t *testing.T) {
	if _, err := NewBackend().WriteTo(&bytes.Buffer{}); err != recording.ErrNotBegun {
		t.Errorf("WriteTo() = %v, want %v", err, recording.ErrNotBegun)
	}
}
