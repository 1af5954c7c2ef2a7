// Package raster renders a scene into an image for previews and tests.
//
// Fills use golang.org/x/image/vector, whose accumulation rule is nonzero:
// even-odd shapes render as nonzero. Strokes are expanded into polygons
// first. A clipped paint is drawn into an offscreen layer and composited
// through an alpha mask of its clip.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/internal/stroke"
	"github.com/gogpu/rive/scene"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Options configures Render.
type Options struct {
	// Width and Height set the image size. Zero uses the bottom-right
	// corner of the scene bounds, rounded up.
	Width, Height int

	// Background fills the image before drawing. Nil leaves it transparent.
	Background color.Color
}

// tolerance is the flattening tolerance in device pixels.
const tolerance = 0.25

// Render draws s into a new image.
func Render(s *scene.Scene, opts Options) *image.RGBA {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		b := s.Bounds()
		if !b.IsEmpty() {
			if w <= 0 {
				w = int(math.Ceil(float64(max(b.MaxX, 0))))
			}
			if h <= 0 {
				h = int(math.Ceil(float64(max(b.MaxY, 0))))
			}
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	Draw(img, s)
	return img
}

// Draw composites s over dst. Scene coordinates map to dst pixels with
// the origin at dst.Bounds().Min.
func Draw(dst draw.Image, s *scene.Scene) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	p := &painter{bounds: b, z: vector.NewRasterizer(b.Dx(), b.Dy())}
	origin := scene.Translate(float32(b.Min.X), float32(b.Min.Y))
	for _, paint := range s.Paints() {
		p.paint(dst, paint, origin)
	}
	rive.Logger().Debug("raster: drew scene",
		"paints", s.Len(), "size", b.Size(), "layers", p.layers)
}

// painter draws paints into images sharing one bounds rectangle.
type painter struct {
	bounds image.Rectangle
	z      *vector.Rasterizer
	layers int
}

// paint draws p with the parent's world transform.
func (p *painter) paint(dst draw.Image, paint scene.Paint, parent scene.Matrix) {
	if target, method := paint.Composite(); target != nil && method == scene.CompositeClipPath {
		// The clip lives in the parent's space.
		mask := image.NewAlpha(p.bounds)
		p.fillPath(mask, target.Path(), parent.Multiply(target.Transform()), image.Opaque)

		layer := image.NewRGBA(p.bounds)
		p.layers++
		p.content(layer, paint, parent)
		draw.DrawMask(dst, p.bounds, layer, p.bounds.Min, mask, p.bounds.Min, draw.Over)
		return
	}
	p.content(dst, paint, parent)
}

func (p *painter) content(dst draw.Image, paint scene.Paint, parent scene.Matrix) {
	world := parent.Multiply(paint.Transform())
	switch v := paint.(type) {
	case *scene.Shape:
		p.shape(dst, v, world)
	case *scene.Group:
		for _, c := range v.Children() {
			p.paint(dst, c, world)
		}
	}
}

func (p *painter) shape(dst draw.Image, sh *scene.Shape, world scene.Matrix) {
	if fill := source(sh.Fill(), sh.FillColor(), world); fill != nil {
		p.fillPath(dst, sh.Path(), world, fill)
	}
	if !sh.HasStroke() {
		return
	}
	if src := source(sh.StrokeFill(), sh.StrokeColor(), world); src != nil {
		p.strokePath(dst, sh.Path(), sh.Stroke(), world, src)
	}
}

// source returns the color source of a fill, or nil if it paints nothing.
func source(fill scene.Fill, c color.NRGBA, world scene.Matrix) image.Image {
	if fill != nil {
		inv, ok := world.Invert()
		if !ok {
			return nil
		}
		return &gradientImage{fill: fill, inv: inv}
	}
	if c.A == 0 {
		return nil
	}
	return image.NewUniform(c)
}

// fillPath rasterizes path mapped by m and draws src through it.
func (p *painter) fillPath(dst draw.Image, path *scene.Path, m scene.Matrix, src image.Image) {
	if !finite(path) {
		return
	}
	p.z.Reset(p.bounds.Dx(), p.bounds.Dy())
	p.z.DrawOp = draw.Over
	if p.contains(path, m) {
		p.curves(path, m)
	} else {
		for _, poly := range p.flatten(path, m) {
			p.polygon(poly)
		}
	}
	p.z.Draw(dst, p.bounds, src, p.bounds.Min)
}

// curves feeds path to the rasterizer as is. All of its device points
// must lie inside the guard band.
func (p *painter) curves(path *scene.Path, m scene.Matrix) {
	at := func(pt scene.Point) (float32, float32) {
		q := p.device(m, pt.X, pt.Y)
		return float32(q.x), float32(q.y)
	}
	open := false
	for el := range path.Elements() {
		switch el.Verb {
		case scene.VerbMoveTo:
			if open {
				p.z.ClosePath()
			}
			p.z.MoveTo(at(el.Points[0]))
			open = true
		case scene.VerbLineTo:
			p.z.LineTo(at(el.Points[0]))
		case scene.VerbCubicTo:
			x1, y1 := at(el.Points[0])
			x2, y2 := at(el.Points[1])
			x3, y3 := at(el.Points[2])
			p.z.CubeTo(x1, y1, x2, y2, x3, y3)
		case scene.VerbClose:
			p.z.ClosePath()
			open = false
		}
	}
	if open {
		p.z.ClosePath()
	}
}

// strokePath expands the stroke in the shape's local space, so
// non-uniform transforms distort it the way they distort the fill.
func (p *painter) strokePath(dst draw.Image, path *scene.Path, st scene.StrokeStyle, m scene.Matrix, src image.Image) {
	if !finite(path) {
		return
	}
	var elements []stroke.PathElement
	pt := func(q scene.Point) stroke.Point { return stroke.Point{X: float64(q.X), Y: float64(q.Y)} }
	for el := range path.Elements() {
		switch el.Verb {
		case scene.VerbMoveTo:
			elements = append(elements, stroke.MoveTo{Point: pt(el.Points[0])})
		case scene.VerbLineTo:
			elements = append(elements, stroke.LineTo{Point: pt(el.Points[0])})
		case scene.VerbCubicTo:
			elements = append(elements, stroke.CubicTo{
				Control1: pt(el.Points[0]), Control2: pt(el.Points[1]), Point: pt(el.Points[2]),
			})
		case scene.VerbClose:
			elements = append(elements, stroke.Close{})
		}
	}

	e := stroke.NewStrokeExpander(stroke.Stroke{
		Width:      float64(st.Width),
		Cap:        stroke.LineCap(st.Cap),
		Join:       stroke.LineJoin(st.Join),
		MiterLimit: float64(st.MiterLimit),
	})
	if s := m.ScaleFactor(); s > 0 {
		e.SetTolerance(tolerance / float64(s))
	}
	polys := e.Expand(elements)
	if len(polys) == 0 {
		return
	}

	p.z.Reset(p.bounds.Dx(), p.bounds.Dy())
	p.z.DrawOp = draw.Over
	for _, poly := range polys {
		dev := make([]devicePoint, len(poly))
		for i, q := range poly {
			dev[i] = p.device(m, float32(q.X), float32(q.Y))
		}
		p.polygon(dev)
	}
	p.z.Draw(dst, p.bounds, src, p.bounds.Min)
}

// guard is the margin in pixels around the raster that geometry is
// clipped to. The fixed-point paths of vector.Rasterizer overflow on
// coordinates far outside the raster.
const guard = 2

// maxCubicSegments bounds the flattening of a cubic that leaves the
// guard band.
const maxCubicSegments = 1024

// devicePoint is a point in raster coordinates, relative to bounds.Min.
type devicePoint struct{ x, y float64 }

func (p *painter) device(m scene.Matrix, x, y float32) devicePoint {
	fx, fy := float64(x), float64(y)
	return devicePoint{
		x: float64(m.E11)*fx + float64(m.E12)*fy + float64(m.E13) - float64(p.bounds.Min.X),
		y: float64(m.E21)*fx + float64(m.E22)*fy + float64(m.E23) - float64(p.bounds.Min.Y),
	}
}

func (p *painter) inGuard(q devicePoint) bool {
	return q.x >= -guard && q.y >= -guard &&
		q.x <= float64(p.bounds.Dx())+guard && q.y <= float64(p.bounds.Dy())+guard
}

// contains reports whether every point of path, control points included,
// maps inside the guard band.
func (p *painter) contains(path *scene.Path, m scene.Matrix) bool {
	pts := path.Points()
	for i := 0; i+1 < len(pts); i += 2 {
		if !p.inGuard(p.device(m, pts[i], pts[i+1])) {
			return false
		}
	}
	return true
}

// flatten maps path to device polygons, one per subpath.
func (p *painter) flatten(path *scene.Path, m scene.Matrix) [][]devicePoint {
	var polys [][]devicePoint
	var cur []devicePoint
	finish := func() {
		if len(cur) > 0 {
			polys = append(polys, cur)
			start := cur[0]
			cur = []devicePoint{start}
		}
	}
	for el := range path.Elements() {
		switch el.Verb {
		case scene.VerbMoveTo:
			if len(cur) > 1 {
				polys = append(polys, cur)
			}
			cur = []devicePoint{p.device(m, el.Points[0].X, el.Points[0].Y)}
		case scene.VerbLineTo:
			cur = append(cur, p.device(m, el.Points[0].X, el.Points[0].Y))
		case scene.VerbCubicTo:
			if len(cur) == 0 {
				cur = append(cur, devicePoint{})
			}
			cur = flattenCubic(cur, cur[len(cur)-1],
				p.device(m, el.Points[0].X, el.Points[0].Y),
				p.device(m, el.Points[1].X, el.Points[1].Y),
				p.device(m, el.Points[2].X, el.Points[2].Y))
		case scene.VerbClose:
			finish()
		}
	}
	if len(cur) > 1 {
		polys = append(polys, cur)
	}
	return polys
}

// flattenCubic appends a polyline approximation of the cubic p0..p3,
// without p0, to dst.
func flattenCubic(dst []devicePoint, p0, p1, p2, p3 devicePoint) []devicePoint {
	ddx := max(math.Abs(p0.x-2*p1.x+p2.x), math.Abs(p1.x-2*p2.x+p3.x))
	ddy := max(math.Abs(p0.y-2*p1.y+p2.y), math.Abs(p1.y-2*p2.y+p3.y))
	n := math.Ceil(math.Sqrt(0.75 * math.Hypot(ddx, ddy) / tolerance))
	if !(n < maxCubicSegments) {
		n = maxCubicSegments
	}
	steps := max(int(n), 1)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		dst = append(dst, devicePoint{
			x: a*p0.x + b*p1.x + c*p2.x + d*p3.x,
			y: a*p0.y + b*p1.y + c*p2.y + d*p3.y,
		})
	}
	return dst
}

// polygon clips poly to the guard band and adds it as a closed subpath.
// Clipping against a convex window keeps the winding number of every
// point inside it.
func (p *painter) polygon(poly []devicePoint) {
	for _, q := range poly {
		if math.IsNaN(q.x) || math.IsNaN(q.y) || math.IsInf(q.x, 0) || math.IsInf(q.y, 0) {
			return
		}
	}
	inside := true
	for _, q := range poly {
		if !p.inGuard(q) {
			inside = false
			break
		}
	}
	if !inside {
		w, h := float64(p.bounds.Dx())+guard, float64(p.bounds.Dy())+guard
		poly = clipEdge(poly, func(q devicePoint) float64 { return q.x + guard })
		poly = clipEdge(poly, func(q devicePoint) float64 { return w - q.x })
		poly = clipEdge(poly, func(q devicePoint) float64 { return q.y + guard })
		poly = clipEdge(poly, func(q devicePoint) float64 { return h - q.y })
	}
	if len(poly) < 3 {
		return
	}
	p.z.MoveTo(float32(poly[0].x), float32(poly[0].y))
	for _, q := range poly[1:] {
		p.z.LineTo(float32(q.x), float32(q.y))
	}
	p.z.ClosePath()
}

// clipEdge keeps the part of the closed polygon poly where dist >= 0.
func clipEdge(poly []devicePoint, dist func(devicePoint) float64) []devicePoint {
	if len(poly) == 0 {
		return nil
	}
	out := make([]devicePoint, 0, len(poly)+4)
	prev := poly[len(poly)-1]
	dp := dist(prev)
	for _, q := range poly {
		dq := dist(q)
		if (dp >= 0) != (dq >= 0) {
			t := dp / (dp - dq)
			out = append(out, devicePoint{x: prev.x + t*(q.x-prev.x), y: prev.y + t*(q.y-prev.y)})
		}
		if dq >= 0 {
			out = append(out, q)
		}
		prev, dp = q, dq
	}
	return out
}

// finite reports whether every point of path is a finite number.
func finite(path *scene.Path) bool {
	for _, v := range path.Points() {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// gradientImage is an unbounded image whose pixels sample a gradient
// through the inverse of the shape's world transform.
type gradientImage struct {
	fill scene.Fill
	inv  scene.Matrix
}

func (g *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1<<24, -1<<24, 1<<24, 1<<24)
}

func (g *gradientImage) At(x, y int) color.Color {
	lx, ly := g.inv.TransformPoint(float32(x)+0.5, float32(y)+0.5)
	return g.fill.ColorAt(g.fill.Param(lx, ly))
}
