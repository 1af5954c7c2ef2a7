// Package svg provides an SVG backend for the recording system. It replays
// a recording into a scene graph and encodes the scene as an SVG document.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/rive/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	if err := rec.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"io"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/recording"
	"github.com/gogpu/rive/scene/svg"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend(svg.DefaultOptions)
	})
}

// Backend writes replayed frames as SVG documents.
type Backend struct {
	*recording.SceneBackend
	opts svg.Options
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates an SVG backend. The document size comes from Begin
// unless opts sets one. Renderer options apply to each replay.
func NewBackend(opts svg.Options, ropts ...rive.Option) *Backend {
	return &Backend{SceneBackend: recording.NewSceneBackend(ropts...), opts: opts}
}

// SetMinify turns minification of the written document on or off.
func (b *Backend) SetMinify(on bool) { b.opts.Minify = on }

// WriteTo writes the SVG document of the last frame. It must be called
// after End.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	s := b.Scene()
	if s == nil {
		return 0, recording.ErrNotBegun
	}
	opts := b.opts
	if opts.Width <= 0 {
		opts.Width = float32(b.Width())
	}
	if opts.Height <= 0 {
		opts.Height = float32(b.Height())
	}

	var buf bytes.Buffer
	if err := svg.Write(&buf, s, opts); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}
