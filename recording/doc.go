// Package recording captures a frame of rive draw calls as commands that
// can be played back to different backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: a rive.Factory and rive.Renderer that captures calls as commands
//   - Recording: stores commands and resource snapshots for playback
//   - Backend: a factory and renderer pair that turns a replay into output
//
// # Basic Usage
//
// Let the animation engine draw into a Recorder:
//
//	rec := recording.NewRecorder(800, 600)
//	engine.Draw(rec, rec) // rec is both the factory and the renderer
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
// Play a recording back to a registered backend:
//
//	import _ "github.com/gogpu/rive/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg")
//	if err := r.Playback(b); err != nil {
//	    // The replay violated the draw-call contract
//	}
//	b.(recording.WriterBackend).WriteTo(os.Stdout)
//
// Or straight into any factory and renderer pair, such as a scene renderer:
//
//	s := scene.NewScene()
//	err := r.PlayTo(rive.NewSceneFactory(), rive.NewSceneRenderer(s))
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    "github.com/gogpu/rive/recording"
//	    _ "github.com/gogpu/rive/recording/backends/raster" // Registers "png"
//	    _ "github.com/gogpu/rive/recording/backends/svg"    // Registers "svg"
//	)
//
// # Resource Management
//
// Paths and paints are snapshotted into a [ResourcePool] every time they
// are drawn or used as a clip, and commands refer to the snapshots by
// [PathRef] and [PaintRef]. The engine keeps editing its paths between
// draws; the snapshots keep every recorded call exactly as it was made.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines,
// each with its own backend.
package recording
