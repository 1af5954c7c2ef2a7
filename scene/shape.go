package scene

import "image/color"

// Paint is a drawable node of the scene graph: a *Shape or a *Group.
type Paint interface {
	// Transform returns the node's transform relative to its parent.
	Transform() Matrix

	// SetTransform replaces the node's transform.
	SetTransform(m Matrix)

	// Composite returns the clip target and method, if any.
	Composite() (*Shape, CompositeMethod)

	// SetComposite restricts the node to the coverage of target.
	// The target lives in the parent's coordinate space: its own transform
	// applies, the node's transform does not. The node takes ownership of
	// target. A nil target or CompositeNone removes the composite.
	SetComposite(target *Shape, method CompositeMethod)

	// Bounds returns a conservative bounding box in the parent's space.
	Bounds() Rect

	// DuplicatePaint returns an independent deep copy of the node.
	DuplicatePaint() Paint
}

// composite is embedded by every Paint to hold the clip target.
type composite struct {
	target *Shape
	method CompositeMethod
}

func (c *composite) Composite() (*Shape, CompositeMethod) {
	return c.target, c.method
}

func (c *composite) SetComposite(target *Shape, method CompositeMethod) {
	if target == nil || method == CompositeNone {
		c.target, c.method = nil, CompositeNone
		return
	}
	c.target, c.method = target, method
}

func (c *composite) duplicate() composite {
	if c.target == nil {
		return composite{}
	}
	return composite{target: c.target.Duplicate(), method: c.method}
}

// Shape is a retained path with fill and stroke state.
//
// A shape fills with either a flat color or a gradient Fill; setting one
// discards the other. A stroke is drawn only when the stroke width is
// positive.
type Shape struct {
	composite

	path      *Path
	rule      FillStyle
	transform Matrix

	fillColor color.NRGBA
	fill      Fill

	stroke      StrokeStyle
	strokeColor color.NRGBA
	strokeFill  Fill
}

// NewShape creates an empty shape with a transparent fill and no stroke.
func NewShape() *Shape {
	s := &Shape{
		path:      NewPath(),
		transform: Identity(),
		stroke:    DefaultStrokeStyle(),
	}
	s.stroke.Width = 0
	return s
}

// Path returns the shape's geometry for in-place editing.
func (s *Shape) Path() *Path { return s.path }

// Reset clears the geometry. Style and transform are kept.
func (s *Shape) Reset() { s.path.Reset() }

// SetFillRule sets the winding rule.
func (s *Shape) SetFillRule(rule FillStyle) { s.rule = rule }

// FillRule returns the winding rule.
func (s *Shape) FillRule() FillStyle { return s.rule }

// SetFillColor fills the shape with a flat color and drops any gradient.
func (s *Shape) SetFillColor(c color.NRGBA) {
	s.fillColor = c
	s.fill = nil
}

// FillColor returns the flat fill color.
func (s *Shape) FillColor() color.NRGBA { return s.fillColor }

// SetFill fills the shape with a gradient. The shape takes ownership of f.
func (s *Shape) SetFill(f Fill) { s.fill = f }

// Fill returns the gradient fill, or nil for a flat color.
func (s *Shape) Fill() Fill { return s.fill }

// HasFill reports whether the interior paints anything.
func (s *Shape) HasFill() bool { return s.fill != nil || s.fillColor.A > 0 }

// SetStrokeWidth sets the stroke width. Zero disables the stroke.
func (s *Shape) SetStrokeWidth(w float32) {
	if w < 0 {
		w = 0
	}
	s.stroke.Width = w
}

// SetStrokeCap sets the line cap.
func (s *Shape) SetStrokeCap(c LineCap) { s.stroke.Cap = c }

// SetStrokeJoin sets the line join.
func (s *Shape) SetStrokeJoin(j LineJoin) { s.stroke.Join = j }

// SetStrokeMiterLimit sets the miter limit.
func (s *Shape) SetStrokeMiterLimit(l float32) { s.stroke.MiterLimit = l }

// SetStrokeColor strokes with a flat color and drops any stroke gradient.
func (s *Shape) SetStrokeColor(c color.NRGBA) {
	s.strokeColor = c
	s.strokeFill = nil
}

// SetStrokeFill strokes with a gradient. The shape takes ownership of f.
func (s *Shape) SetStrokeFill(f Fill) { s.strokeFill = f }

// Stroke returns the stroke parameters.
func (s *Shape) Stroke() StrokeStyle { return s.stroke }

// StrokeColor returns the flat stroke color.
func (s *Shape) StrokeColor() color.NRGBA { return s.strokeColor }

// StrokeFill returns the stroke gradient, or nil for a flat color.
func (s *Shape) StrokeFill() Fill { return s.strokeFill }

// HasStroke reports whether the outline paints anything.
func (s *Shape) HasStroke() bool {
	return s.stroke.Width > 0 && (s.strokeFill != nil || s.strokeColor.A > 0)
}

// Transform returns the shape's transform relative to its parent.
func (s *Shape) Transform() Matrix { return s.transform }

// SetTransform replaces the shape's transform.
func (s *Shape) SetTransform(m Matrix) { s.transform = m }

// Bounds returns the path bounds mapped into the parent's space and
// grown by half the stroke width.
func (s *Shape) Bounds() Rect {
	b := s.path.Bounds()
	if b.IsEmpty() {
		return b
	}
	if s.stroke.Width > 0 {
		h := s.stroke.Width / 2
		b = Rect{MinX: b.MinX - h, MinY: b.MinY - h, MaxX: b.MaxX + h, MaxY: b.MaxY + h}
	}
	return b.Transform(s.transform)
}

// Duplicate returns an independent deep copy, including gradients and the
// composite target.
func (s *Shape) Duplicate() *Shape {
	d := *s
	d.path = s.path.Clone()
	if s.fill != nil {
		d.fill = s.fill.Duplicate()
	}
	if s.strokeFill != nil {
		d.strokeFill = s.strokeFill.Duplicate()
	}
	d.composite = s.composite.duplicate()
	return &d
}

// DuplicatePaint implements Paint.
func (s *Shape) DuplicatePaint() Paint { return s.Duplicate() }
