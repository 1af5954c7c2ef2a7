package scene

import "iter"

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns the number of float32 values this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2 // x, y
	case VerbCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	default:
		return 0
	}
}

// Path is the geometry of a shape: a verb stream and a point stream kept
// in lock-step. Every verb consumes exactly PointCount() values.
type Path struct {
	verbs  []PathVerb
	points []float32
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float32, 0, 64),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	return p
}

// CubicTo draws a cubic Bezier curve.
// The curve goes from the current point to (x, y) using (c1x, c1y) and (c2x, c2y) as control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	return p
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// Rectangle adds a rectangle path.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Ellipse adds an ellipse path.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	// Magic number for approximating circular arcs with cubic beziers
	k := float32(0.5522847498)
	kx := k * rx
	ky := k * ry

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry) // to bottom
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy) // to left
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry) // to top
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy) // to right (start)

	return p.Close()
}

// Append copies the verbs and points of other onto the end of p.
// It returns the index into Points() where the copied points begin.
func (p *Path) Append(other *Path) int {
	start := len(p.points)
	if other == nil {
		return start
	}
	p.verbs = append(p.verbs, other.verbs...)
	p.points = append(p.points, other.points...)
	return start
}

// TransformFrom applies m to every point from index start (a float32
// index into Points(), always even) to the end of the path. Points before
// start are left untouched.
func (p *Path) TransformFrom(start int, m Matrix) {
	if start < 0 {
		start = 0
	}
	for i := start; i+1 < len(p.points); i += 2 {
		p.points[i], p.points[i+1] = m.TransformPoint(p.points[i], p.points[i+1])
	}
}

// Transform returns a new path with all points transformed by m.
func (p *Path) Transform(m Matrix) *Path {
	result := p.Clone()
	result.TransformFrom(0, m)
	return result
}

// Bounds returns the bounding rectangle of the path.
// Note: This is a conservative approximation that includes control points.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	for i := 0; i+1 < len(p.points); i += 2 {
		r = r.UnionPoint(p.points[i], p.points[i+1])
	}
	return r
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the point data stream.
func (p *Path) Points() []float32 {
	return p.points
}

// VerbCount returns the number of verbs in the path.
func (p *Path) VerbCount() int {
	return len(p.verbs)
}

// PointCount returns the number of float32 values in the point stream.
func (p *Path) PointCount() int {
	return len(p.points)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		verbs:  make([]PathVerb, len(p.verbs)),
		points: make([]float32, len(p.points)),
	}
	copy(result.verbs, p.verbs)
	copy(result.points, p.points)
	return result
}

// Point represents a 2D point with float32 coordinates.
type Point struct {
	X, Y float32
}

// PathElement represents a single path command with its associated points.
type PathElement struct {
	// Verb is the path command type.
	Verb PathVerb

	// Points contains the coordinates for this element:
	//   - MoveTo, LineTo: 1 point (destination)
	//   - CubicTo: 3 points (control1, control2, destination)
	//   - Close: 0 points
	Points []Point
}

// Elements returns an iterator over all path elements.
// A verb whose points are missing from a truncated stream ends iteration.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		pointIdx := 0
		for _, verb := range p.verbs {
			n := verb.PointCount()
			if pointIdx+n > len(p.points) {
				return
			}
			elem := PathElement{Verb: verb}
			for j := 0; j < n; j += 2 {
				elem.Points = append(elem.Points, Point{p.points[pointIdx+j], p.points[pointIdx+j+1]})
			}
			pointIdx += n
			if !yield(elem) {
				return
			}
		}
	}
}
