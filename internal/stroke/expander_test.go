package stroke

import (
	"math"
	"testing"
)

func bounds(polys [][]Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
			maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
		}
	}
	return
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestNewStrokeExpander(t *testing.T) {
	style := DefaultStroke()
	expander := NewStrokeExpander(style)

	if expander == nil {
		t.Fatal("NewStrokeExpander returned nil")
	}
	if expander.style.Width != 1.0 {
		t.Errorf("style.Width = %v, want 1.0", expander.style.Width)
	}
	if expander.tolerance != 0.25 {
		t.Errorf("tolerance = %v, want 0.25", expander.tolerance)
	}
}

func TestStrokeExpander_SetTolerance(t *testing.T) {
	expander := NewStrokeExpander(DefaultStroke())

	expander.SetTolerance(0.1)
	if expander.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", expander.tolerance)
	}

	// Negative tolerance should be ignored
	expander.SetTolerance(-1.0)
	if expander.tolerance != 0.1 {
		t.Error("negative tolerance should be ignored")
	}

	// Zero tolerance should be ignored
	expander.SetTolerance(0)
	if expander.tolerance != 0.1 {
		t.Error("zero tolerance should be ignored")
	}
}

func TestStrokeExpander_Caps(t *testing.T) {
	line := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
	}

	tests := []struct {
		name       string
		cap        LineCap
		wantPolys  int
		minX, maxX float64
	}{
		{"butt", LineCapButt, 1, 0, 10},
		{"square", LineCapSquare, 3, -1, 11},
		{"round", LineCapRound, 3, -1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := Stroke{Width: 2, Cap: tt.cap, Join: LineJoinMiter, MiterLimit: 4}
			polys := NewStrokeExpander(style).Expand(line)

			if len(polys) != tt.wantPolys {
				t.Fatalf("len(polys) = %d, want %d", len(polys), tt.wantPolys)
			}
			minX, minY, maxX, maxY := bounds(polys)
			if !approx(minX, tt.minX) || !approx(maxX, tt.maxX) {
				t.Errorf("x range = [%v, %v], want [%v, %v]", minX, maxX, tt.minX, tt.maxX)
			}
			if !approx(minY, -1) || !approx(maxY, 1) {
				t.Errorf("y range = [%v, %v], want [-1, 1]", minY, maxY)
			}
		})
	}
}

func TestStrokeExpander_Orientation(t *testing.T) {
	// Both travel directions and every join must come out with the same
	// orientation so overlapping pieces never cancel.
	elements := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		LineTo{Point: Point{X: 0, Y: 10}},
		LineTo{Point: Point{X: 5, Y: 3}},
		CubicTo{Control1: Point{X: 2, Y: 2}, Control2: Point{X: 8, Y: -4}, Point: Point{X: 0, Y: 0}},
	}
	for _, join := range []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel} {
		polys := NewStrokeExpander(Stroke{Width: 3, Join: join, Cap: LineCapRound, MiterLimit: 10}).Expand(elements)
		for i, poly := range polys {
			if signedArea(poly) <= 0 {
				t.Errorf("join %d: polygon %d has signed area %v, want > 0", join, i, signedArea(poly))
			}
		}
	}
}

func TestStrokeExpander_ClosedSquare(t *testing.T) {
	square := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		LineTo{Point: Point{X: 0, Y: 10}},
		Close{},
	}

	polys := NewStrokeExpander(Stroke{Width: 2, Cap: LineCapRound, Join: LineJoinMiter, MiterLimit: 4}).Expand(square)
	// Four segment quads and four miter joins; caps are not drawn on closed paths.
	if len(polys) != 8 {
		t.Fatalf("len(polys) = %d, want 8", len(polys))
	}
	minX, minY, maxX, maxY := bounds(polys)
	if !approx(minX, -1) || !approx(minY, -1) || !approx(maxX, 11) || !approx(maxY, 11) {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (-1,-1)-(11,11)", minX, minY, maxX, maxY)
	}
}

func TestStrokeExpander_MiterLimit(t *testing.T) {
	// A sharp spike whose miter exceeds the limit falls back to a bevel.
	spike := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 1}},
		LineTo{Point: Point{X: 0, Y: 2}},
	}

	miter := NewStrokeExpander(Stroke{Width: 2, Join: LineJoinMiter, MiterLimit: 100}).Expand(spike)
	bevel := NewStrokeExpander(Stroke{Width: 2, Join: LineJoinMiter, MiterLimit: 4}).Expand(spike)

	_, _, miterMaxX, _ := bounds(miter)
	_, _, bevelMaxX, _ := bounds(bevel)
	if miterMaxX <= bevelMaxX {
		t.Errorf("miter tip x = %v, want beyond bevel x = %v", miterMaxX, bevelMaxX)
	}
	if bevelMaxX > 11.1 {
		t.Errorf("bevel reaches x = %v, want close to the vertex", bevelMaxX)
	}
}

func TestStrokeExpander_ZeroLength(t *testing.T) {
	dot := []PathElement{MoveTo{Point: Point{X: 5, Y: 5}}, LineTo{Point: Point{X: 5, Y: 5}}}

	if polys := NewStrokeExpander(Stroke{Width: 2, Cap: LineCapButt}).Expand(dot); len(polys) != 0 {
		t.Errorf("butt cap dot produced %d polygons, want 0", len(polys))
	}
	polys := NewStrokeExpander(Stroke{Width: 2, Cap: LineCapSquare}).Expand(dot)
	if len(polys) != 1 {
		t.Fatalf("square cap dot produced %d polygons, want 1", len(polys))
	}
	minX, minY, maxX, maxY := bounds(polys)
	if minX != 4 || minY != 4 || maxX != 6 || maxY != 6 {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (4,4)-(6,6)", minX, minY, maxX, maxY)
	}
}

func TestStrokeExpander_ZeroWidth(t *testing.T) {
	line := []PathElement{MoveTo{Point: Point{}}, LineTo{Point: Point{X: 1}}}
	if polys := NewStrokeExpander(Stroke{Width: 0}).Expand(line); polys != nil {
		t.Errorf("zero width produced %d polygons, want none", len(polys))
	}
}

func TestStrokeExpander_CubicFlattening(t *testing.T) {
	curve := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		CubicTo{Control1: Point{X: 0, Y: 50}, Control2: Point{X: 100, Y: 50}, Point: Point{X: 100, Y: 0}},
	}

	coarse := NewStrokeExpander(Stroke{Width: 1, Join: LineJoinBevel})
	coarse.SetTolerance(5)
	fine := NewStrokeExpander(Stroke{Width: 1, Join: LineJoinBevel})
	fine.SetTolerance(0.05)

	nc, nf := len(coarse.Expand(curve)), len(fine.Expand(curve))
	if nf <= nc {
		t.Errorf("fine tolerance produced %d polygons, want more than coarse (%d)", nf, nc)
	}
	_, _, _, maxY := bounds(fine.Expand(curve))
	// The curve peaks at y = 37.5; the stroke adds half the width.
	if math.Abs(maxY-38) > 0.1 {
		t.Errorf("max y = %v, want about 38", maxY)
	}
}

func TestDistanceToLine(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular", Point{5, 3}, Point{0, 0}, Point{10, 0}, 3},
		{"before start", Point{-3, 4}, Point{0, 0}, Point{10, 0}, 5},
		{"degenerate", Point{3, 4}, Point{0, 0}, Point{0, 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := distanceToLine(tt.p, tt.a, tt.b); !approx(got, tt.want) {
				t.Errorf("distanceToLine() = %v, want %v", got, tt.want)
			}
		})
	}
}
