package recording_test

import (
	"bytes"
	"errors"
	"image/png"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/recording"
	"github.com/gogpu/rive/recording/backends/raster"
	"github.com/gogpu/rive/recording/backends/svg"
)

func square() *recording.Recording {
	rec := recording.NewRecorder(16, 16)
	path := rec.MakeRenderPath()
	path.MoveTo(2, 2)
	path.LineTo(14, 2)
	path.LineTo(14, 14)
	path.LineTo(2, 14)
	path.Close()
	paint := rec.MakeRenderPaint()
	paint.Color(0xFF00FF00)
	rec.DrawPath(path, paint)
	return rec.FinishRecording()
}

func TestRegisteredBackends(t *testing.T) {
	got := recording.Backends()
	for _, name := range []string{"png", "svg"} {
		if !slices.Contains(got, name) || !recording.IsRegistered(name) {
			t.Errorf("backend %q not registered, have %v", name, got)
		}
	}
	if !slices.IsSorted(got) {
		t.Errorf("Backends() = %v, want sorted names", got)
	}
	if recording.IsRegistered("bmp") {
		t.Error(`IsRegistered("bmp") = true`)
	}
}

func TestNewBackendTypes(t *testing.T) {
	tests := []struct {
		name string
		ok   func(recording.Backend) bool
	}{
		{"svg", func(b recording.Backend) bool { _, ok := b.(*svg.Backend); return ok }},
		{"png", func(b recording.Backend) bool { _, ok := b.(*raster.Backend); return ok }},
	}
	for _, tt := range tests {
		b, err := recording.NewBackend(tt.name)
		if err != nil {
			t.Fatalf("NewBackend(%q) error = %v", tt.name, err)
		}
		if !tt.ok(b) {
			t.Errorf("NewBackend(%q) = %T", tt.name, b)
		}
		other, _ := recording.NewBackend(tt.name)
		if other == b {
			t.Errorf("NewBackend(%q) returned the same backend twice", tt.name)
		}
	}
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := recording.NewBackend("bmp")
	if !errors.Is(err, recording.ErrUnknownBackend) {
		t.Fatalf("NewBackend(bmp) error = %v, want %v", err, recording.ErrUnknownBackend)
	}
	if !strings.Contains(err.Error(), "png, svg") {
		t.Errorf("error %q should list the registered backends", err)
	}
}

func TestPlaybackThroughRegistry(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, out []byte)
	}{
		{"svg", func(t *testing.T, out []byte) {
			if !bytes.Contains(out, []byte(`d="M2 2 L14 2 L14 14 L2 14 Z"`)) {
				t.Errorf("svg output lacks the square: %s", out)
			}
		}},
		{"png", func(t *testing.T, out []byte) {
			img, err := png.Decode(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("png output does not decode: %v", err)
			}
			if _, g, _, a := img.At(8, 8).RGBA(); g != 0xffff || a != 0xffff {
				t.Errorf("center pixel = %v, want opaque green", img.At(8, 8))
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := recording.NewBackend(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if err := square().Playback(b); err != nil {
				t.Fatalf("Playback() error = %v", err)
			}
			var buf bytes.Buffer
			if _, err := b.(recording.WriterBackend).WriteTo(&buf); err != nil {
				t.Fatalf("WriteTo() error = %v", err)
			}
			tt.check(t, buf.Bytes())
		})
	}
}

func TestRegisterPanics(t *testing.T) {
	factory := func() recording.Backend { return recording.NewSceneBackend(rive.WithStrict(false)) }
	tests := []struct {
		name    string
		factory recording.BackendFactory
	}{
		{"", factory},
		{"nil factory", nil},
		{"svg", factory}, // already registered by the svg backend
	}
	for _, tt := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", tt.name)
				}
			}()
			recording.Register(tt.name, tt.factory)
		}()
	}
}
