package rive

import "github.com/gogpu/rive/scene"

// Path is the RenderPath created by SceneFactory. It mirrors the engine's
// geometry in a backend shape and carries no style; the style is applied to
// a copy at draw time, so drawing never mutates the path.
type Path struct {
	shape *scene.Shape
	rule  FillRule
	check *contract
}

func newPath(check *contract) *Path {
	return &Path{shape: scene.NewShape(), check: check}
}

// Reset clears all commands and points.
func (p *Path) Reset() {
	p.shape.Reset()
}

// AddRenderPath appends every command of path and maps only the appended
// points by transform. Appending an empty path is a no-op. A path may be
// appended to itself.
func (p *Path) AddRenderPath(path RenderPath, transform Mat2D) {
	src, ok := p.source("AddRenderPath", path)
	if !ok {
		return
	}
	if src.PointCount() == 0 {
		return
	}
	start := p.shape.Path().Append(src)
	if !transform.IsIdentity() {
		p.shape.Path().TransformFrom(start, transform.Matrix())
	}
}

func (p *Path) source(op string, path RenderPath) (*scene.Path, bool) {
	switch other := path.(type) {
	case nil:
		p.check.violate(op, ErrNilPath)
	case *Path:
		if other == nil {
			p.check.violate(op, ErrNilPath)
			return nil, false
		}
		return other.shape.Path(), true
	default:
		p.check.violate(op, ErrForeignPath)
	}
	return nil, false
}

// FillRule sets the winding rule.
func (p *Path) FillRule(rule FillRule) {
	p.rule = rule
	p.shape.SetFillRule(rule.scene())
}

// MoveTo begins a new subpath.
func (p *Path) MoveTo(x, y float32) { p.shape.Path().MoveTo(x, y) }

// LineTo appends a line.
func (p *Path) LineTo(x, y float32) { p.shape.Path().LineTo(x, y) }

// CubicTo appends a cubic Bezier with out control (ox, oy) and in control (ix, iy).
func (p *Path) CubicTo(ox, oy, ix, iy, x, y float32) {
	p.shape.Path().CubicTo(ox, oy, ix, iy, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() { p.shape.Path().Close() }

// Rule returns the winding rule.
func (p *Path) Rule() FillRule { return p.rule }

// Geometry returns the backend geometry. Callers must not modify it.
func (p *Path) Geometry() *scene.Path { return p.shape.Path() }

// snapshot returns an unstyled copy of the backend shape.
func (p *Path) snapshot() *scene.Shape {
	return p.shape.Duplicate()
}
