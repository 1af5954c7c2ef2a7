// Package sample provides a small procedural animation that drives a
// rive.Factory and rive.Renderer the way the animation engine does: paths
// and paints are created once and edited every frame, the artboard clip
// arrives first, and clipping shapes precede the draws they restrict.
package sample

import (
	"math"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/scene"
)

// Artboard size in artboard units.
const (
	Width  = 200
	Height = 200
)

// Bounds returns the area Draw covers. The artboard is centered on the
// origin of the transform it is drawn under.
func Bounds() rive.AABB {
	return rive.AABB{MinX: -Width / 2, MinY: -Height / 2, MaxX: Width / 2, MaxY: Height / 2}
}

// Artboard owns the render objects of one animation instance.
type Artboard struct {
	clip   rive.RenderPath
	back   rive.RenderPath
	glass  rive.RenderPath
	liquid rive.RenderPath
	bubble rive.RenderPath
	circle rive.RenderPath
	straw  rive.RenderPath

	backPaint   rive.RenderPaint
	glassPaint  rive.RenderPaint
	liquidPaint rive.RenderPaint
	bubblePaint rive.RenderPaint
	strawPaint  rive.RenderPaint
}

// NewArtboard creates the artboard's paths and paints through f.
func NewArtboard(f rive.Factory) *Artboard {
	a := &Artboard{
		clip:   f.MakeRenderPath(),
		back:   f.MakeRenderPath(),
		glass:  f.MakeRenderPath(),
		liquid: f.MakeRenderPath(),
		bubble: f.MakeRenderPath(),
		circle: f.MakeRenderPath(),
		straw:  f.MakeRenderPath(),

		backPaint:   f.MakeRenderPaint(),
		glassPaint:  f.MakeRenderPaint(),
		liquidPaint: f.MakeRenderPaint(),
		bubblePaint: f.MakeRenderPaint(),
		strawPaint:  f.MakeRenderPaint(),
	}

	frame := scene.NewPath().Rectangle(0, 0, Width, Height)
	addPath(a.clip, frame)
	addPath(a.back, frame)
	addPath(a.circle, scene.NewPath().Ellipse(0, 0, 1, 1))

	a.backPaint.LinearGradient(0, 0, 0, Height)
	a.backPaint.AddStop(0xFFFFF4D6, 0)
	a.backPaint.AddStop(0xFFFFC07A, 1)
	a.backPaint.CompleteGradient()

	a.glassPaint.Style(rive.PaintStyleStroke)
	a.glassPaint.Thickness(6)
	a.glassPaint.Join(rive.StrokeJoinRound)
	a.glassPaint.Color(0xCC3B3B58)

	a.liquidPaint.BlendMode(rive.BlendSrcOver)

	a.bubblePaint.Color(0x99FFFFFF)

	a.strawPaint.Style(rive.PaintStyleStroke)
	a.strawPaint.Thickness(8)
	a.strawPaint.Cap(rive.StrokeCapRound)
	a.strawPaint.Color(0xFFE0245E)
	return a
}

// Draw issues one frame at time t seconds.
func (a *Artboard) Draw(r rive.Renderer, t float64) {
	wobble := float32(math.Sin(t * 2))

	r.Save()
	r.Transform(rive.TranslateMat2D(-Width/2, -Height/2))
	r.ClipPath(a.clip)

	r.DrawPath(a.back, a.backPaint)

	// The glass outline bends with the wobble; the engine rebuilds it in place.
	a.glass.Reset()
	a.glass.MoveTo(50, 40)
	a.glass.CubicTo(50+8*wobble, 100, 60, 170, 70, 175)
	a.glass.LineTo(130, 175)
	a.glass.CubicTo(140, 170, 150-8*wobble, 100, 150, 40)
	a.glass.Close()

	level := 90 + 10*wobble
	a.liquid.Reset()
	a.liquid.MoveTo(40, level)
	a.liquid.CubicTo(80, level-12*wobble, 120, level+12*wobble, 160, level)
	a.liquid.LineTo(160, 190)
	a.liquid.LineTo(40, 190)
	a.liquid.Close()

	a.liquidPaint.RadialGradient(100, 175, 100, 175-120)
	a.liquidPaint.AddStop(0xFFFF7A00, 0)
	a.liquidPaint.AddStop(0xFFFFD23F, 0.7)
	a.liquidPaint.AddStop(0xC0FFF3B0, 1)
	a.liquidPaint.CompleteGradient()

	// Liquid and bubbles are clipped to the glass.
	r.ClipPath(a.glass)
	r.DrawPath(a.liquid, a.liquidPaint)

	a.bubble.Reset()
	for i := range 4 {
		phase := math.Mod(t*0.5+float64(i)*0.25, 1)
		x := float32(75 + 17*i)
		y := float32(170 - phase*100)
		size := float32(4 + i)
		m := rive.TranslateMat2D(x, y).Multiply(rive.ScaleMat2D(size, size))
		a.bubble.AddRenderPath(a.circle, m)
	}
	a.bubble.FillRule(rive.FillRuleEvenOdd)
	r.ClipPath(a.glass)
	r.DrawPath(a.bubble, a.bubblePaint)

	r.DrawPath(a.glass, a.glassPaint)

	r.Save()
	r.Transform(rive.TranslateMat2D(115, 60))
	r.Transform(rive.RotationMat2D(0.3 + 0.1*wobble))
	a.straw.Reset()
	a.straw.MoveTo(0, 0)
	a.straw.LineTo(0, -45)
	a.straw.LineTo(18, -60)
	r.DrawPath(a.straw, a.strawPaint)
	r.Restore()

	r.Restore()
}

// addPath issues the commands of geometry on p.
func addPath(p rive.RenderPath, geometry *scene.Path) {
	for el := range geometry.Elements() {
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
}
