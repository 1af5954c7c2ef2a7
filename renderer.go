package rive

import (
	"image/color"

	"github.com/gogpu/rive/scene"
)

// clipColor is the color forced onto clip shapes. Clips select coverage;
// their color never reaches the output.
var clipColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// SceneRenderer is the Renderer that turns draw calls into scene paints.
//
// It tracks the current transform with a save stack and two clip slots:
//   - the persistent clip applies to every following DrawPath until
//     ResetPersistentClip;
//   - the next-draw clip applies to the next DrawPath only.
//
// Clip geometry is captured in the transform current at the time of the
// clip call. A SceneRenderer is not safe for concurrent use; use one per
// animation instance.
type SceneRenderer struct {
	dst scene.Container

	transform Mat2D
	stack     []Mat2D

	persistent *scene.Shape
	next       *scene.Shape

	check *contract
}

var _ Renderer = (*SceneRenderer)(nil)

// NewSceneRenderer creates a renderer that pushes paints into dst, which
// is usually a *scene.Scene or a *scene.Group.
func NewSceneRenderer(dst scene.Container, opts ...Option) *SceneRenderer {
	return &SceneRenderer{
		dst:       dst,
		transform: IdentityMat2D(),
		stack:     make([]Mat2D, 0, 8),
		check:     newContract(buildOptions(opts)),
	}
}

// Save pushes the current transform.
func (r *SceneRenderer) Save() {
	r.stack = append(r.stack, r.transform)
}

// Restore pops the transform pushed by the matching Save. Restore on an
// empty stack reports ErrRestoreWithoutSave and keeps the current transform.
func (r *SceneRenderer) Restore() {
	n := len(r.stack)
	if n == 0 {
		r.check.violate("Restore", ErrRestoreWithoutSave)
		return
	}
	r.transform = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

// Transform right-multiplies the current transform by m.
func (r *SceneRenderer) Transform(m Mat2D) {
	r.transform = r.transform.Multiply(m)
}

// ClipPath installs a clip. The first clip while no persistent clip is set
// becomes the persistent clip; later clips become the next-draw clip.
func (r *SceneRenderer) ClipPath(path RenderPath) {
	clip, ok := r.clip("ClipPath", path)
	if !ok {
		return
	}
	if r.persistent == nil {
		r.persistent = clip
		return
	}
	r.next = clip
}

// SetPersistentClip installs the clip applied to every following draw.
func (r *SceneRenderer) SetPersistentClip(path RenderPath) {
	if clip, ok := r.clip("SetPersistentClip", path); ok {
		r.persistent = clip
	}
}

// SetNextDrawClip installs the clip applied to the next draw only.
func (r *SceneRenderer) SetNextDrawClip(path RenderPath) {
	if clip, ok := r.clip("SetNextDrawClip", path); ok {
		r.next = clip
	}
}

// ResetClipPath clears the next-draw clip. The persistent clip is kept.
func (r *SceneRenderer) ResetClipPath() {
	r.next = nil
}

// ResetPersistentClip clears the persistent clip.
func (r *SceneRenderer) ResetPersistentClip() {
	r.persistent = nil
}

// clip captures path's geometry in the current transform.
func (r *SceneRenderer) clip(op string, path RenderPath) (*scene.Shape, bool) {
	p, ok := r.path(op, path)
	if !ok {
		return nil, false
	}
	clip := p.snapshot()
	clip.Path().TransformFrom(0, r.transform.Matrix())
	clip.SetFillColor(clipColor)
	return clip, true
}

// DrawPath pushes one paint for path styled by paint under the current
// transform and clips. With a persistent clip the shape is wrapped in a
// group that carries the clip.
func (r *SceneRenderer) DrawPath(path RenderPath, paint RenderPaint) {
	p, ok := r.path("DrawPath", path)
	if !ok {
		return
	}
	pt, ok := r.paint("DrawPath", paint)
	if !ok {
		return
	}

	sh := p.snapshot()
	if sh.Path().IsEmpty() {
		r.check.log().Debug("rive: drawing empty path")
	}
	pt.apply(sh)

	if r.next != nil {
		sh.SetComposite(r.next, scene.CompositeClipPath)
		r.next = nil
	}

	sh.SetTransform(r.transform.Matrix())

	if r.persistent == nil {
		r.dst.Push(sh)
		return
	}
	g := scene.NewGroup()
	g.Push(sh)
	g.SetComposite(r.persistent.Duplicate(), scene.CompositeClipPath)
	r.dst.Push(g)
}

func (r *SceneRenderer) path(op string, path RenderPath) (*Path, bool) {
	switch p := path.(type) {
	case nil:
		r.check.violate(op, ErrNilPath)
	case *Path:
		if p == nil {
			r.check.violate(op, ErrNilPath)
			return nil, false
		}
		return p, true
	default:
		r.check.violate(op, ErrForeignPath)
	}
	return nil, false
}

func (r *SceneRenderer) paint(op string, paint RenderPaint) (*Paint, bool) {
	switch p := paint.(type) {
	case nil:
		r.check.violate(op, ErrNilPaint)
	case *Paint:
		if p == nil {
			r.check.violate(op, ErrNilPaint)
			return nil, false
		}
		return p, true
	default:
		r.check.violate(op, ErrForeignPaint)
	}
	return nil, false
}

// CurrentTransform returns the current cumulative transform.
func (r *SceneRenderer) CurrentTransform() Mat2D { return r.transform }

// SaveDepth returns the number of unmatched Save calls.
func (r *SceneRenderer) SaveDepth() int { return len(r.stack) }

// PersistentClip returns the persistent clip shape, or nil.
func (r *SceneRenderer) PersistentClip() *scene.Shape { return r.persistent }

// NextDrawClip returns the pending next-draw clip shape, or nil.
func (r *SceneRenderer) NextDrawClip() *scene.Shape { return r.next }

// Target returns the container paints are pushed into.
func (r *SceneRenderer) Target() scene.Container { return r.dst }

// Err returns the first contract violation seen by the renderer.
func (r *SceneRenderer) Err() error { return r.check.err }
