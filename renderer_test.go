package rive

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/rive/scene"
)

// testRig bundles a scene with a non-strict factory and renderer.
type testRig struct {
	scene    *scene.Scene
	factory  *SceneFactory
	renderer *SceneRenderer
}

func newTestRig() *testRig {
	s := scene.NewScene()
	return &testRig{
		scene:    s,
		factory:  NewSceneFactory(WithStrict(false)),
		renderer: NewSceneRenderer(s, WithStrict(false)),
	}
}

func (rig *testRig) square(x, y, size float32) *Path {
	p := rig.factory.NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+size, y)
	p.LineTo(x+size, y+size)
	p.LineTo(x, y+size)
	p.Close()
	return p
}

func (rig *testRig) paint(c uint32) *Paint {
	p := rig.factory.NewPaint()
	p.Color(c)
	return p
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ops  func(r *SceneRenderer)
	}{
		{"single", func(r *SceneRenderer) {
			r.Save()
			r.Transform(TranslateMat2D(10, 0))
			r.Restore()
		}},
		{"nested", func(r *SceneRenderer) {
			r.Save()
			r.Transform(ScaleMat2D(2, 2))
			r.Save()
			r.Transform(RotationMat2D(1))
			r.Transform(TranslateMat2D(3, 4))
			r.Restore()
			r.Transform(TranslateMat2D(-1, 0))
			r.Restore()
		}},
		{"sequential", func(r *SceneRenderer) {
			for i := range 5 {
				r.Save()
				r.Transform(TranslateMat2D(float32(i), 0))
				r.Restore()
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig().renderer
			r.Transform(TranslateMat2D(7, 7))
			before := r.CurrentTransform()

			tt.ops(r)

			if got := r.CurrentTransform(); got != before {
				t.Errorf("CurrentTransform() = %v, want %v", got, before)
			}
			if r.SaveDepth() != 0 {
				t.Errorf("SaveDepth() = %d, want 0", r.SaveDepth())
			}
		})
	}
}

func TestRestoreWithoutSave(t *testing.T) {
	r := newTestRig().renderer
	r.Transform(TranslateMat2D(1, 2))
	r.Restore()

	if !errors.Is(r.Err(), ErrRestoreWithoutSave) {
		t.Errorf("Err() = %v, want %v", r.Err(), ErrRestoreWithoutSave)
	}
	if r.CurrentTransform() != TranslateMat2D(1, 2) {
		t.Errorf("CurrentTransform() = %v, want unchanged", r.CurrentTransform())
	}

	// Only the first violation is kept.
	r.DrawPath(nil, nil)
	if !errors.Is(r.Err(), ErrRestoreWithoutSave) {
		t.Errorf("Err() = %v, want the first violation", r.Err())
	}
}

func TestRestoreWithoutSaveStrict(t *testing.T) {
	r := NewSceneRenderer(scene.NewScene(), WithStrict(true))
	defer func() {
		if err, ok := recover().(*ContractError); !ok || err.Op != "Restore" {
			t.Errorf("recover() = %v, want Restore *ContractError", err)
		}
	}()
	r.Restore()
}

func TestTransformComposition(t *testing.T) {
	a := TranslateMat2D(5, 3).Multiply(RotationMat2D(0.5))
	b := ScaleMat2D(2, 1.5).Multiply(TranslateMat2D(-1, 4))

	split := newTestRig()
	split.renderer.Transform(a)
	split.renderer.Transform(b)
	split.renderer.DrawPath(split.square(0, 0, 1), split.paint(0xFF000000))

	joined := newTestRig()
	joined.renderer.Transform(a.Multiply(b))
	joined.renderer.DrawPath(joined.square(0, 0, 1), joined.paint(0xFF000000))

	got := split.scene.Paints()[0].Transform()
	want := joined.scene.Paints()[0].Transform()
	if got != want {
		t.Errorf("Transform(A); Transform(B) = %+v, want %+v", got, want)
	}
	if !approxMat(split.renderer.CurrentTransform(), a.Multiply(b), 1e-6) {
		t.Errorf("CurrentTransform() = %v, want %v", split.renderer.CurrentTransform(), a.Multiply(b))
	}
}

func TestTwoSquaresScenario(t *testing.T) {
	rig := newTestRig()
	r := rig.renderer
	sq := rig.square(0, 0, 1)
	paint := rig.paint(0xFF00FF00)

	r.DrawPath(sq, paint)
	r.Save()
	r.Transform(TranslateMat2D(10, 0))
	r.DrawPath(sq, paint)
	r.Restore()

	if rig.scene.Len() != 2 {
		t.Fatalf("scene Len() = %d, want 2", rig.scene.Len())
	}
	a := rig.scene.Paints()[0].Bounds()
	b := rig.scene.Paints()[1].Bounds()
	if a.Intersects(b) {
		t.Errorf("drawables overlap: %+v and %+v", a, b)
	}
	if b.MinX-a.MinX != 10 || b.MinY != a.MinY {
		t.Errorf("offset = (%v, %v), want (10, 0)", b.MinX-a.MinX, b.MinY-a.MinY)
	}

	// Drawing does not mutate the engine's path.
	if sq.Geometry().VerbCount() != 5 {
		t.Errorf("path VerbCount() = %d, want 5", sq.Geometry().VerbCount())
	}
	if sq.shape.HasFill() {
		t.Error("engine path picked up paint state")
	}
}

func TestDrawPathFill(t *testing.T) {
	rig := newTestRig()
	p := rig.square(0, 0, 4)
	p.FillRule(FillRuleEvenOdd)
	rig.renderer.DrawPath(p, rig.paint(0x80FF0000))

	sh, ok := rig.scene.Paints()[0].(*scene.Shape)
	if !ok {
		t.Fatalf("paint = %T, want *scene.Shape", rig.scene.Paints()[0])
	}
	if sh.FillColor() != (color.NRGBA{R: 0xff, A: 0x80}) {
		t.Errorf("FillColor() = %+v", sh.FillColor())
	}
	if sh.HasStroke() {
		t.Error("fill paint produced a stroke")
	}
	if sh.FillRule() != scene.FillEvenOdd {
		t.Errorf("FillRule() = %v, want evenodd", sh.FillRule())
	}
}

func TestDrawPathStroke(t *testing.T) {
	rig := newTestRig()
	paint := rig.paint(0xFF0000FF)
	paint.Style(PaintStyleStroke)
	paint.Thickness(6)
	paint.Join(StrokeJoinMiter)
	paint.Cap(StrokeCapRound)
	rig.renderer.DrawPath(rig.square(0, 0, 4), paint)

	sh := rig.scene.Paints()[0].(*scene.Shape)
	st := sh.Stroke()
	if st.Width != 6 || st.Join != scene.LineJoinMiter || st.Cap != scene.LineCapRound {
		t.Errorf("Stroke() = %+v", st)
	}
	if sh.StrokeColor() != (color.NRGBA{B: 0xff, A: 0xff}) {
		t.Errorf("StrokeColor() = %+v", sh.StrokeColor())
	}
	if sh.HasFill() {
		t.Error("stroke paint produced a fill")
	}
}

func TestDrawPathStrokeGradient(t *testing.T) {
	rig := newTestRig()
	paint := rig.factory.NewPaint()
	paint.Style(PaintStyleStroke)
	paint.RadialGradient(0, 0, 2, 0)
	paint.AddStop(0xFFFFFFFF, 0)
	paint.CompleteGradient()

	rig.renderer.DrawPath(rig.square(0, 0, 4), paint)
	rig.renderer.DrawPath(rig.square(0, 0, 4), paint)

	a := rig.scene.Paints()[0].(*scene.Shape).StrokeFill()
	b := rig.scene.Paints()[1].(*scene.Shape).StrokeFill()
	if a == nil || b == nil {
		t.Fatal("stroke gradient missing")
	}
	if a == b || a == paint.Gradient() {
		t.Error("gradient shared between drawables")
	}
}

func TestClipSlotOrder(t *testing.T) {
	rig := newTestRig()
	r := rig.renderer
	paint := rig.paint(0xFF000000)

	r.ClipPath(rig.square(0, 0, 100))
	if r.PersistentClip() == nil || r.NextDrawClip() != nil {
		t.Fatal("first ClipPath should set the persistent clip only")
	}

	r.ClipPath(rig.square(10, 10, 5))
	if r.NextDrawClip() == nil {
		t.Fatal("second ClipPath should set the next-draw clip")
	}

	r.DrawPath(rig.square(0, 0, 20), paint)
	if r.NextDrawClip() != nil {
		t.Error("DrawPath should consume the next-draw clip")
	}
	r.DrawPath(rig.square(0, 0, 20), paint)

	if rig.scene.Len() != 2 {
		t.Fatalf("scene Len() = %d, want 2", rig.scene.Len())
	}

	first, ok := rig.scene.Paints()[0].(*scene.Group)
	if !ok {
		t.Fatalf("paint[0] = %T, want *scene.Group", rig.scene.Paints()[0])
	}
	if target, method := first.Composite(); target == nil || method != scene.CompositeClipPath {
		t.Error("group should carry the persistent clip")
	}
	inner := first.Children()[0].(*scene.Shape)
	fg, _ := inner.Composite()
	if fg == nil {
		t.Fatal("first drawable should carry the next-draw clip")
	}
	if fg.FillColor() != clipColor {
		t.Errorf("clip color = %+v, want opaque white", fg.FillColor())
	}
	if b := fg.Path().Bounds(); b.MinX != 10 || b.MaxX != 15 {
		t.Errorf("clip bounds = %+v, want x in [10, 15]", b)
	}

	second := rig.scene.Paints()[1].(*scene.Group)
	if target, _ := second.Children()[0].(*scene.Shape).Composite(); target != nil {
		t.Error("second drawable should see no next-draw clip")
	}
	if target, _ := second.Composite(); target == nil {
		t.Error("persistent clip should persist across draws")
	}

	a, _ := first.Composite()
	b, _ := second.Composite()
	if a == b {
		t.Error("groups share one persistent clip shape")
	}
}

func TestClipUsesTransformAtClipTime(t *testing.T) {
	rig := newTestRig()
	r := rig.renderer

	r.Save()
	r.Transform(TranslateMat2D(50, 0))
	r.ClipPath(rig.square(0, 0, 10))
	r.Restore()

	r.Save()
	r.Transform(ScaleMat2D(3, 3))
	r.DrawPath(rig.square(0, 0, 1), rig.paint(0xFF000000))
	r.Restore()

	g := rig.scene.Paints()[0].(*scene.Group)
	clip, _ := g.Composite()
	b := clip.Path().Bounds()
	if b.MinX != 50 || b.MaxX != 60 {
		t.Errorf("clip bounds = %+v, want x in [50, 60]", b)
	}
	if !clip.Transform().IsIdentity() {
		t.Errorf("clip Transform() = %+v, want identity", clip.Transform())
	}
}

func TestClipSnapshotIgnoresLaterPathEdits(t *testing.T) {
	rig := newTestRig()
	clipPath := rig.square(0, 0, 10)
	rig.renderer.ClipPath(clipPath)
	clipPath.Reset()

	if rig.renderer.PersistentClip().Path().IsEmpty() {
		t.Error("clip geometry should be captured at ClipPath time")
	}
}

func TestResetClipPath(t *testing.T) {
	rig := newTestRig()
	r := rig.renderer
	r.ClipPath(rig.square(0, 0, 10))
	r.ClipPath(rig.square(0, 0, 5))
	r.ResetClipPath()

	if r.NextDrawClip() != nil {
		t.Error("ResetClipPath should clear the next-draw clip")
	}
	if r.PersistentClip() == nil {
		t.Error("ResetClipPath should keep the persistent clip")
	}

	r.ResetPersistentClip()
	r.DrawPath(rig.square(0, 0, 1), rig.paint(0xFF000000))
	if _, ok := rig.scene.Paints()[0].(*scene.Shape); !ok {
		t.Errorf("paint = %T, want unwrapped *scene.Shape", rig.scene.Paints()[0])
	}
}

func TestExplicitClipSlots(t *testing.T) {
	rig := newTestRig()
	r := rig.renderer

	r.SetNextDrawClip(rig.square(0, 0, 5))
	if r.PersistentClip() != nil {
		t.Error("SetNextDrawClip should not set the persistent clip")
	}
	r.DrawPath(rig.square(0, 0, 10), rig.paint(0xFF000000))
	sh := rig.scene.Paints()[0].(*scene.Shape)
	if target, _ := sh.Composite(); target == nil {
		t.Error("drawable should carry the next-draw clip")
	}

	r.SetPersistentClip(rig.square(0, 0, 50))
	r.SetPersistentClip(rig.square(0, 0, 40))
	if b := r.PersistentClip().Path().Bounds(); b.MaxX != 40 {
		t.Errorf("persistent clip bounds = %+v, want replaced clip", b)
	}
	if r.NextDrawClip() != nil {
		t.Error("SetPersistentClip should not set the next-draw clip")
	}
}

func TestDrawPathContract(t *testing.T) {
	tests := []struct {
		name  string
		path  func(*testRig) RenderPath
		paint func(*testRig) RenderPaint
		want  error
	}{
		{"nil path", func(*testRig) RenderPath { return nil },
			func(r *testRig) RenderPaint { return r.paint(0) }, ErrNilPath},
		{"nil paint", func(r *testRig) RenderPath { return r.square(0, 0, 1) },
			func(*testRig) RenderPaint { return nil }, ErrNilPaint},
		{"typed nil paint", func(r *testRig) RenderPath { return r.square(0, 0, 1) },
			func(*testRig) RenderPaint { return (*Paint)(nil) }, ErrNilPaint},
		{"foreign path", func(*testRig) RenderPath { return foreignPath{} },
			func(r *testRig) RenderPaint { return r.paint(0) }, ErrForeignPath},
		{"foreign paint", func(r *testRig) RenderPath { return r.square(0, 0, 1) },
			func(*testRig) RenderPaint { return foreignPaint{} }, ErrForeignPaint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := newTestRig()
			rig.renderer.DrawPath(tt.path(rig), tt.paint(rig))
			if !errors.Is(rig.renderer.Err(), tt.want) {
				t.Errorf("Err() = %v, want %v", rig.renderer.Err(), tt.want)
			}
			if !rig.scene.IsEmpty() {
				t.Error("rejected draw pushed a paint")
			}
		})
	}
}

type foreignPaint struct{ RenderPaint }

func TestDrawEmptyPath(t *testing.T) {
	rig := newTestRig()
	rig.renderer.DrawPath(rig.factory.NewPath(), rig.paint(0xFF000000))

	if rig.renderer.Err() != nil {
		t.Errorf("Err() = %v, want nil", rig.renderer.Err())
	}
	if rig.scene.Len() != 1 {
		t.Errorf("scene Len() = %d, want 1", rig.scene.Len())
	}
	if !rig.scene.Bounds().IsEmpty() {
		t.Errorf("Bounds() = %+v, want empty", rig.scene.Bounds())
	}
}

func TestRendererTargetsGroup(t *testing.T) {
	g := scene.NewGroup()
	f := NewSceneFactory(WithStrict(false))
	r := NewSceneRenderer(g, WithStrict(false))
	p := f.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	r.DrawPath(p, f.NewPaint())

	if len(g.Children()) != 1 {
		t.Errorf("len(Children()) = %d, want 1", len(g.Children()))
	}
	if r.Target() != scene.Container(g) {
		t.Error("Target() does not return the group")
	}
}
