package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/recording"
	"github.com/gogpu/rive/scene/svg"
	"github.com/tdewolff/test"
)

func record() *recording.Recording {
	rec := recording.NewRecorder(64, 32)
	path := rec.MakeRenderPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	path.LineTo(10, 10)
	path.Close()

	paint := rec.MakeRenderPaint()
	paint.Color(0xFFFF0000)

	rec.Save()
	rec.Transform(rive.TranslateMat2D(5, 5))
	rec.DrawPath(path, paint)
	rec.Restore()
	return rec.FinishRecording()
}

func TestBackendRegistration(t *testing.T) {
	test.That(t, recording.IsRegistered("svg"), "svg backend not registered")

	backend, err := recording.NewBackend("svg")
	test.Error(t, err)
	_, ok := backend.(*Backend)
	test.That(t, ok, "backend is not *svg.Backend")
}

func TestBackendWriteTo(t *testing.T) {
	b := NewBackend(svg.DefaultOptions)
	test.Error(t, record().Playback(b))

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	test.Error(t, err)
	test.T(t, n, int64(buf.Len()))

	out := buf.String()
	test.That(t, strings.Contains(out, `width="64" height="32" viewBox="0 0 64 32"`), "document size:", out)
	test.That(t, strings.Contains(out, `d="M0 0 L10 0 L10 10 Z"`), "path:", out)
	test.That(t, strings.Contains(out, `transform="matrix(1 0 0 1 5 5)"`), "transform:", out)
	test.That(t, strings.Contains(out, `fill="#ff0000"`), "fill:", out)
}

func TestBackendMinify(t *testing.T) {
	plain := NewBackend(svg.DefaultOptions)
	test.Error(t, record().Playback(plain))
	var a bytes.Buffer
	_, err := plain.WriteTo(&a)
	test.Error(t, err)

	small := NewBackend(svg.DefaultOptions)
	small.SetMinify(true)
	test.Error(t, record().Playback(small))
	var b bytes.Buffer
	_, err = small.WriteTo(&b)
	test.Error(t, err)

	test.That(t, b.Len() < a.Len(), "minified", b.Len(), "bytes, plain", a.Len())
}

func TestBackendBeforeBegin(t *testing.T) {
	_, err := NewBackend(svg.DefaultOptions).WriteTo(&bytes.Buffer{})
	test.T(t, err, recording.ErrNotBegun)
}

func TestBackendSurfacesViolation(t *testing.T) {
	rec := recording.NewRecorder(1, 1)
	rec.Restore()

	err := rec.FinishRecording().Playback(NewBackend(svg.DefaultOptions, rive.WithStrict(false)))
	test.That(t, err != nil, "expected restore without save to be reported")
}
