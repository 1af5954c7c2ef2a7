package recording

import (
	"io"

	"github.com/gogpu/rive"
)

// Backend is the interface that all output backends must implement.
// A backend supplies a factory and renderer pair that receives a replayed
// recording, and turns what it received into its output format (an SVG
// document, a PNG image, a scene graph).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Return the same Factory and Renderer between Begin and End
//  3. Report renderer contract violations through an Err() error method
//     if it wants Playback to surface them
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return New()
//	    })
//	}
type Backend interface {
	// Begin prepares the backend for a frame of the given dimensions.
	// It must be called before Factory or Renderer.
	Begin(width, height int) error

	// Factory returns the factory that builds the replayed paths and paints.
	Factory() rive.Factory

	// Renderer returns the renderer that receives the replayed draw calls.
	Renderer() rive.Renderer

	// End finalizes the frame. After End is called, output methods
	// (WriteTo, Image) can be used.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	// Returns the number of bytes written and any error.
	WriteTo(w io.Writer) (int64, error)
}
