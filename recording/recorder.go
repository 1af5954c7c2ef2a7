package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/scene"
)

// ErrInvalidRef is returned by playback when a command references a
// resource the recording does not hold.
var ErrInvalidRef = errors.New("recording: invalid resource reference")

// Recorder captures one frame of draw calls as commands. It implements
// both rive.Factory and rive.Renderer, so the animation engine draws into
// it exactly as it would draw into a real renderer. Use FinishRecording to
// obtain an immutable Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	path := rec.MakeRenderPath()
//	path.MoveTo(0, 0)
//	path.LineTo(100, 0)
//	path.LineTo(100, 100)
//	path.Close()
//	rec.DrawPath(path, rec.MakeRenderPaint())
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	err error
}

var (
	_ rive.Factory  = (*Recorder)(nil)
	_ rive.Renderer = (*Recorder)(nil)
)

// NewRecorder creates a new Recorder for a frame of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Err returns the first contract violation seen while recording.
func (r *Recorder) Err() error { return r.err }

func (r *Recorder) violate(op string, err error) {
	cerr := &rive.ContractError{Op: op, Err: err}
	if r.err == nil {
		r.err = cerr
	}
	rive.Logger().Warn("recording: contract violation", "op", op, "err", err)
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// MakeRenderPath creates an empty path owned by this recorder.
func (r *Recorder) MakeRenderPath() rive.RenderPath {
	return &Path{geom: scene.NewPath(), rec: r}
}

// MakeRenderPaint creates a paint with default state owned by this recorder.
func (r *Recorder) MakeRenderPaint() rive.RenderPaint {
	return newPaint(r)
}

// Save records a Save call.
func (r *Recorder) Save() {
	r.commands = append(r.commands, SaveCommand{})
}

// Restore records a Restore call. Unbalanced calls are recorded as they
// arrive; the playback target decides how to report them.
func (r *Recorder) Restore() {
	r.commands = append(r.commands, RestoreCommand{})
}

// Transform records a Transform call.
func (r *Recorder) Transform(m rive.Mat2D) {
	r.commands = append(r.commands, TransformCommand{Matrix: m})
}

// ClipPath records a ClipPath call with a snapshot of path.
func (r *Recorder) ClipPath(path rive.RenderPath) {
	r.commands = append(r.commands, ClipPathCommand{Path: r.pathRef("ClipPath", path)})
}

// DrawPath records a DrawPath call with snapshots of path and paint.
func (r *Recorder) DrawPath(path rive.RenderPath, paint rive.RenderPaint) {
	r.commands = append(r.commands, DrawPathCommand{
		Path:  r.pathRef("DrawPath", path),
		Paint: r.paintRef("DrawPath", paint),
	})
}

func (r *Recorder) pathRef(op string, path rive.RenderPath) PathRef {
	switch p := path.(type) {
	case nil:
		r.violate(op, rive.ErrNilPath)
	case *Path:
		if p == nil {
			r.violate(op, rive.ErrNilPath)
			break
		}
		if p.rec != r {
			r.violate(op, rive.ErrForeignPath)
			break
		}
		return r.resources.AddPath(p.data())
	default:
		r.violate(op, rive.ErrForeignPath)
	}
	return PathRef(InvalidRef)
}

func (r *Recorder) paintRef(op string, paint rive.RenderPaint) PaintRef {
	switch p := paint.(type) {
	case nil:
		r.violate(op, rive.ErrNilPaint)
	case *Paint:
		if p == nil {
			r.violate(op, rive.ErrNilPaint)
			break
		}
		if p.rec != r {
			r.violate(op, rive.ErrForeignPaint)
			break
		}
		return r.resources.AddPaint(p.state)
	default:
		r.violate(op, rive.ErrForeignPaint)
	}
	return PaintRef(InvalidRef)
}

// Recording is an immutable container for recorded draw calls.
// It can be replayed to any Backend, or to any factory and renderer pair.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	if err := r.PlayTo(backend.Factory(), backend.Renderer()); err != nil {
		return err
	}
	return backend.End()
}

// PlayTo replays the recording as calls on renderer, building every path
// and paint through factory. Each snapshot becomes one fresh path or paint,
// so the renderer sees the state that was current when the call was
// recorded.
//
// If renderer has an Err() error method, a contract violation it reports
// is returned.
func (r *Recording) PlayTo(factory rive.Factory, renderer rive.Renderer) error {
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			renderer.Save()
		case RestoreCommand:
			renderer.Restore()
		case TransformCommand:
			renderer.Transform(c.Matrix)
		case ClipPathCommand:
			path, ok := r.resources.GetPath(c.Path)
			if !ok {
				return fmt.Errorf("command %d (%s): %w", i, cmd.Type(), ErrInvalidRef)
			}
			renderer.ClipPath(buildPath(factory, path))
		case DrawPathCommand:
			path, ok := r.resources.GetPath(c.Path)
			if !ok {
				return fmt.Errorf("command %d (%s): %w", i, cmd.Type(), ErrInvalidRef)
			}
			paint, ok := r.resources.GetPaint(c.Paint)
			if !ok {
				return fmt.Errorf("command %d (%s): %w", i, cmd.Type(), ErrInvalidRef)
			}
			renderer.DrawPath(buildPath(factory, path), buildPaint(factory, paint))
		}
	}

	if e, ok := renderer.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return fmt.Errorf("recording: playback: %w", err)
		}
	}
	return nil
}

func buildPath(factory rive.Factory, d PathData) rive.RenderPath {
	p := factory.MakeRenderPath()
	p.FillRule(d.FillRule)
	if d.Geometry == nil {
		return p
	}
	for el := range d.Geometry.Elements() {
		switch el.Verb {
		case scene.VerbMoveTo:
			p.MoveTo(el.Points[0].X, el.Points[0].Y)
		case scene.VerbLineTo:
			p.LineTo(el.Points[0].X, el.Points[0].Y)
		case scene.VerbCubicTo:
			p.CubicTo(el.Points[0].X, el.Points[0].Y,
				el.Points[1].X, el.Points[1].Y,
				el.Points[2].X, el.Points[2].Y)
		case scene.VerbClose:
			p.Close()
		}
	}
	return p
}

func buildPaint(factory rive.Factory, d PaintData) rive.RenderPaint {
	p := factory.MakeRenderPaint()
	p.Style(d.Style)
	p.Color(d.Color)
	p.Thickness(d.Thickness)
	p.Join(d.Join)
	p.Cap(d.Cap)
	p.BlendMode(d.Blend)
	if g := d.Gradient; g != nil {
		if g.Radial {
			p.RadialGradient(g.SX, g.SY, g.EX, g.EY)
		} else {
			p.LinearGradient(g.SX, g.SY, g.EX, g.EY)
		}
		for _, s := range g.Stops {
			p.AddStop(s.Color, s.Offset)
		}
		p.CompleteGradient()
	}
	return p
}
