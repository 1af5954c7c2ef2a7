package recording

import "github.com/gogpu/rive"

// Paint is the RenderPaint created by a Recorder.
type Paint struct {
	state   PaintData
	pending *GradientData
	rec     *Recorder
}

var _ rive.RenderPaint = (*Paint)(nil)

func newPaint(rec *Recorder) *Paint {
	return &Paint{
		state: PaintData{
			Color:     0xFF000000,
			Thickness: 1,
			Join:      rive.StrokeJoinBevel,
			Cap:       rive.StrokeCapButt,
		},
		rec: rec,
	}
}

// Style sets fill or stroke.
func (p *Paint) Style(style rive.PaintStyle) { p.state.Style = style }

// Color sets a flat color and drops any completed gradient.
func (p *Paint) Color(value uint32) {
	p.state.Color = value
	p.state.Gradient = nil
}

// Thickness sets the stroke width.
func (p *Paint) Thickness(value float32) { p.state.Thickness = value }

// Join sets the stroke join.
func (p *Paint) Join(value rive.StrokeJoin) { p.state.Join = value }

// Cap sets the stroke cap.
func (p *Paint) Cap(value rive.StrokeCap) { p.state.Cap = value }

// BlendMode records the blend mode.
func (p *Paint) BlendMode(value rive.BlendMode) { p.state.Blend = value }

// LinearGradient begins a linear gradient.
func (p *Paint) LinearGradient(sx, sy, ex, ey float32) {
	p.pending = &GradientData{SX: sx, SY: sy, EX: ex, EY: ey}
}

// RadialGradient begins a radial gradient.
func (p *Paint) RadialGradient(sx, sy, ex, ey float32) {
	p.pending = &GradientData{Radial: true, SX: sx, SY: sy, EX: ex, EY: ey}
}

// AddStop appends a stop to the gradient being built.
func (p *Paint) AddStop(color uint32, stop float32) {
	if p.pending == nil {
		p.rec.violate("AddStop", rive.ErrNoGradient)
		return
	}
	p.pending.Stops = append(p.pending.Stops, StopData{Color: color, Offset: stop})
}

// CompleteGradient attaches the gradient being built.
func (p *Paint) CompleteGradient() {
	if p.pending == nil {
		p.rec.violate("CompleteGradient", rive.ErrNoGradient)
		return
	}
	p.state.Gradient = p.pending
	p.pending = nil
}
