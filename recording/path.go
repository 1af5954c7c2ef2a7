package recording

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/scene"
)

// Path is the RenderPath created by a Recorder. It accumulates geometry
// like any render path; a snapshot is taken every time the path is drawn
// or used as a clip.
type Path struct {
	geom *scene.Path
	rule rive.FillRule
	rec  *Recorder
}

var _ rive.RenderPath = (*Path)(nil)

// Reset clears all commands and points.
func (p *Path) Reset() { p.geom.Reset() }

// AddRenderPath appends the commands of path, mapping only the appended
// points by transform.
func (p *Path) AddRenderPath(path rive.RenderPath, transform rive.Mat2D) {
	src, ok := path.(*Path)
	if !ok || src == nil {
		if path == nil || ok {
			p.rec.violate("AddRenderPath", rive.ErrNilPath)
		} else {
			p.rec.violate("AddRenderPath", rive.ErrForeignPath)
		}
		return
	}
	if src.geom.PointCount() == 0 {
		return
	}
	start := p.geom.Append(src.geom)
	if !transform.IsIdentity() {
		p.geom.TransformFrom(start, transform.Matrix())
	}
}

// FillRule sets the winding rule.
func (p *Path) FillRule(rule rive.FillRule) { p.rule = rule }

// MoveTo begins a new subpath.
func (p *Path) MoveTo(x, y float32) { p.geom.MoveTo(x, y) }

// LineTo appends a line.
func (p *Path) LineTo(x, y float32) { p.geom.LineTo(x, y) }

// CubicTo appends a cubic Bezier.
func (p *Path) CubicTo(ox, oy, ix, iy, x, y float32) { p.geom.CubicTo(ox, oy, ix, iy, x, y) }

// Close closes the current subpath.
func (p *Path) Close() { p.geom.Close() }

func (p *Path) data() PathData {
	return PathData{Geometry: p.geom, FillRule: p.rule}
}
