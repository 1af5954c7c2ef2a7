package rive

import (
	"image/color"

	"github.com/gogpu/rive/scene"
)

// Paint is the RenderPaint created by SceneFactory.
//
// A new paint fills with opaque black, a stroke thickness of 1, a bevel
// join and a butt cap. Exactly one of the flat color and the completed
// gradient is active: Color drops the gradient, CompleteGradient replaces
// the color.
type Paint struct {
	style     PaintStyle
	color     color.NRGBA
	thickness float32
	join      StrokeJoin
	cap       StrokeCap
	blend     BlendMode

	builder *gradientBuilder
	fill    scene.Fill

	check *contract
}

func newPaint(check *contract) *Paint {
	return &Paint{
		color:     color.NRGBA{A: 0xff},
		thickness: 1,
		join:      StrokeJoinBevel,
		cap:       StrokeCapButt,
		check:     check,
	}
}

// Style sets fill or stroke mode.
func (p *Paint) Style(style PaintStyle) { p.style = style }

// Color sets a flat color and drops any completed gradient.
func (p *Paint) Color(value uint32) {
	p.color = UnpackColor(value)
	p.fill = nil
}

// Thickness sets the stroke width.
func (p *Paint) Thickness(value float32) { p.thickness = value }

// Join sets the stroke join.
func (p *Paint) Join(value StrokeJoin) { p.join = value }

// Cap sets the stroke cap.
func (p *Paint) Cap(value StrokeCap) { p.cap = value }

// BlendMode records the mode. Scenes composite with SrcOver only, so any
// other mode draws as SrcOver.
func (p *Paint) BlendMode(value BlendMode) {
	if value != BlendSrcOver {
		p.check.log().Debug("rive: blend mode not supported, drawing as SrcOver", "mode", value)
	}
	p.blend = value
}

// LinearGradient begins a linear gradient.
func (p *Paint) LinearGradient(sx, sy, ex, ey float32) {
	p.begin(gradientLinear, sx, sy, ex, ey)
}

// RadialGradient begins a radial gradient.
func (p *Paint) RadialGradient(sx, sy, ex, ey float32) {
	p.begin(gradientRadial, sx, sy, ex, ey)
}

func (p *Paint) begin(kind gradientKind, sx, sy, ex, ey float32) {
	if p.builder != nil {
		p.check.log().Debug("rive: incomplete gradient replaced",
			"kind", p.builder.kind, "stops", len(p.builder.stops))
		p.builder.release()
	}
	p.builder = &gradientBuilder{kind: kind, sx: sx, sy: sy, ex: ex, ey: ey}
}

// AddStop appends a stop to the gradient being built.
func (p *Paint) AddStop(color uint32, stop float32) {
	if p.builder == nil {
		p.check.violate("AddStop", ErrNoGradient)
		return
	}
	p.builder.addStop(color, stop)
}

// CompleteGradient builds the gradient and makes the paint gradient-filled.
func (p *Paint) CompleteGradient() {
	if p.builder == nil {
		p.check.violate("CompleteGradient", ErrNoGradient)
		return
	}
	p.fill = p.builder.build()
	p.builder.release()
	p.builder = nil
}

// PaintStyle returns fill or stroke mode.
func (p *Paint) PaintStyle() PaintStyle { return p.style }

// FlatColor returns the flat color. It is ignored while IsGradient is true.
func (p *Paint) FlatColor() color.NRGBA { return p.color }

// StrokeThickness returns the stroke width.
func (p *Paint) StrokeThickness() float32 { return p.thickness }

// StrokeJoin returns the stroke join.
func (p *Paint) StrokeJoin() StrokeJoin { return p.join }

// StrokeCap returns the stroke cap.
func (p *Paint) StrokeCap() StrokeCap { return p.cap }

// Blend returns the recorded blend mode.
func (p *Paint) Blend() BlendMode { return p.blend }

// IsGradient reports whether a completed gradient is active.
func (p *Paint) IsGradient() bool { return p.fill != nil }

// Gradient returns the completed gradient, or nil. Callers must not
// modify it; the renderer draws a duplicate.
func (p *Paint) Gradient() scene.Fill { return p.fill }

// Building reports whether a gradient is being built.
func (p *Paint) Building() bool { return p.builder != nil }

// apply copies the paint's style onto sh. Gradients are duplicated so
// every drawable owns its fill.
func (p *Paint) apply(sh *scene.Shape) {
	if p.style == PaintStyleStroke {
		sh.SetStrokeWidth(p.thickness)
		sh.SetStrokeCap(p.cap.scene())
		sh.SetStrokeJoin(p.join.scene())
		if p.fill != nil {
			sh.SetStrokeFill(p.fill.Duplicate())
		} else {
			sh.SetStrokeColor(p.color)
		}
		return
	}
	if p.fill != nil {
		sh.SetFill(p.fill.Duplicate())
	} else {
		sh.SetFillColor(p.color)
	}
}
