package stroke

import (
	"math"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the sum of a point and a vector.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < 1e-10 {
		return Vec2{X: 0, Y: 0}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroke expansion.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStroke returns a stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the path.
type Close struct{}

func (Close) isPathElement() {}

// polyline is one flattened subpath.
type polyline struct {
	points []Point
	closed bool
}

// StrokeExpander converts stroked paths to filled polygons.
type StrokeExpander struct {
	style Stroke

	// Tolerance for curve flattening and arc approximation.
	// Smaller values produce more accurate results but more segments.
	tolerance float64

	lines   []polyline
	current *polyline
	out     [][]Point
}

// NewStrokeExpander creates a new stroke expander with the given style.
func NewStrokeExpander(style Stroke) *StrokeExpander {
	return &StrokeExpander{
		style:     style,
		tolerance: 0.25, // Default tolerance
	}
}

// SetTolerance sets the curve flattening tolerance.
func (e *StrokeExpander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand converts a stroked path to closed polygons. Every polygon has a
// positive signed area, so the stroke is the nonzero union of the result
// even when the pieces overlap. A zero width yields no polygons.
func (e *StrokeExpander) Expand(elements []PathElement) [][]Point {
	e.lines = e.lines[:0]
	e.current = nil
	e.out = nil

	for _, el := range elements {
		switch elem := el.(type) {
		case MoveTo:
			e.finish()
			e.lines = append(e.lines, polyline{points: []Point{elem.Point}})
			e.current = &e.lines[len(e.lines)-1]
		case LineTo:
			e.lineTo(elem.Point)
		case CubicTo:
			start := e.lastPoint()
			e.flattenCubicRec(start, elem.Control1, elem.Control2, elem.Point, 0)
		case Close:
			if e.current != nil {
				e.current.closed = true
				e.finish()
			}
		}
	}
	e.finish()

	if e.style.Width <= 0 {
		return nil
	}
	for _, l := range e.lines {
		e.strokePolyline(l)
	}
	return e.out
}

func (e *StrokeExpander) lastPoint() Point {
	if e.current == nil || len(e.current.points) == 0 {
		return Point{}
	}
	return e.current.points[len(e.current.points)-1]
}

// lineTo appends p to the current subpath, starting one at the origin if
// none is open. Repeated points are dropped.
func (e *StrokeExpander) lineTo(p Point) {
	if e.current == nil {
		e.lines = append(e.lines, polyline{points: []Point{{}}})
		e.current = &e.lines[len(e.lines)-1]
	}
	if p != e.lastPoint() {
		e.current.points = append(e.current.points, p)
	}
}

// finish ends the current subpath. A closed subpath drops a final point
// equal to its first.
func (e *StrokeExpander) finish() {
	if e.current == nil {
		return
	}
	pts := e.current.points
	if e.current.closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		e.current.points = pts[:len(pts)-1]
	}
	e.current = nil
}

func (e *StrokeExpander) strokePolyline(l polyline) {
	h := e.style.Width / 2
	pts := l.points
	n := len(pts)
	if n == 0 {
		return
	}
	if n == 1 {
		// Zero-length subpath: only round and square caps paint.
		switch e.style.Cap {
		case LineCapRound:
			e.circle(pts[0], h)
		case LineCapSquare:
			p := pts[0]
			e.emit([]Point{{p.X - h, p.Y - h}, {p.X + h, p.Y - h}, {p.X + h, p.Y + h}, {p.X - h, p.Y + h}})
		}
		return
	}

	closed := l.closed && n > 2
	segments := n - 1
	if closed {
		segments = n
	}
	for i := range segments {
		a, b := pts[i], pts[(i+1)%n]
		nn := b.Sub(a).Normalize().Perp().Scale(h)
		e.emit([]Point{a.Add(nn), b.Add(nn), b.Add(nn.Neg()), a.Add(nn.Neg())})
	}

	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
		e.join(pts[i], pts[i].Sub(prev).Normalize(), next.Sub(pts[i]).Normalize(), h)
	}

	if !closed {
		e.lineCap(pts[0], pts[0].Sub(pts[1]).Normalize(), h)
		e.lineCap(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize(), h)
	}
}

// join fills the outer wedge at v between the incoming direction d0 and
// the outgoing direction d1.
func (e *StrokeExpander) join(v Point, d0, d1 Vec2, h float64) {
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return // collinear
	}

	if e.style.Join == LineJoinRound {
		e.circle(v, h)
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := d0.Perp().Scale(h * side)
	n1 := d1.Perp().Scale(h * side)
	a, b := v.Add(n0), v.Add(n1)

	if e.style.Join == LineJoinMiter && dot > -1+1e-9 {
		ratio := 1 / math.Sqrt((1+dot)/2)
		if ratio <= e.style.MiterLimit {
			tip := v.Add(n0.Add(n1).Normalize().Scale(h * ratio))
			e.emit([]Point{v, a, tip, b})
			return
		}
	}
	e.emit([]Point{v, a, b})
}

// lineCap adds the cap at p, where d points away from the stroke.
func (e *StrokeExpander) lineCap(p Point, d Vec2, h float64) {
	switch e.style.Cap {
	case LineCapRound:
		e.circle(p, h)
	case LineCapSquare:
		nn := d.Perp().Scale(h)
		ext := d.Scale(h)
		e.emit([]Point{p.Add(nn), p.Add(nn).Add(ext), p.Add(nn.Neg()).Add(ext), p.Add(nn.Neg())})
	}
}

// circle adds a polygon approximating the circle at c with radius r
// within the tolerance.
func (e *StrokeExpander) circle(c Point, r float64) {
	steps := 8
	if r > e.tolerance {
		steps = int(math.Ceil(math.Pi / math.Acos(1-e.tolerance/r)))
	}
	steps = min(max(steps, 8), 256)

	poly := make([]Point, steps)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(steps)
		poly[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	e.emit(poly)
}

// emit appends poly with a positive signed area. Degenerate polygons are
// dropped.
func (e *StrokeExpander) emit(poly []Point) {
	area := signedArea(poly)
	if math.Abs(area) < 1e-12 {
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	e.out = append(e.out, poly)
}

func signedArea(poly []Point) float64 {
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// maxFlattenDepth bounds cubic subdivision.
const maxFlattenDepth = 16

func (e *StrokeExpander) flattenCubicRec(p0, p1, p2, p3 Point, depth int) {
	// Check if curve is flat enough
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)

	if dist < e.tolerance || depth >= maxFlattenDepth {
		e.lineTo(p3)
		return
	}

	// Subdivide using de Casteljau's algorithm
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	e.flattenCubicRec(p0, q0, r0, s, depth+1)
	e.flattenCubicRec(s, r1, q2, p3, depth+1)
}

// distanceToLine calculates the perpendicular distance from point p to line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	// Project p onto the line
	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Scale(t))
	return p.Distance(closest)
}
