package scene

import (
	"image/color"
	"math"
	"sort"
)

// Spread defines how gradients extend beyond their defined bounds.
type Spread uint8

const (
	// SpreadPad extends edge colors beyond bounds (default behavior).
	SpreadPad Spread = iota
	// SpreadRepeat repeats the gradient pattern.
	SpreadRepeat
	// SpreadReflect mirrors the gradient pattern.
	SpreadReflect
)

// String returns the SVG spreadMethod name.
func (s Spread) String() string {
	switch s {
	case SpreadPad:
		return "pad"
	case SpreadRepeat:
		return "repeat"
	case SpreadReflect:
		return "reflect"
	default:
		return unknownStr
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float32     // Position in gradient, 0.0 to 1.0
	Color  color.NRGBA // Color at this position
}

// Fill is a gradient paint source owned by exactly one shape.
// Shapes never share a Fill; use Duplicate to hand the same gradient to
// another shape.
type Fill interface {
	// Duplicate returns an independent deep copy.
	Duplicate() Fill

	// ColorStops returns the stops in the order they were set.
	ColorStops() []ColorStop

	// Spread returns the extend mode.
	Spread() Spread

	// Param returns the gradient parameter for a point given in the
	// shape's local space. 0 maps to the first stop, 1 to the last.
	Param(x, y float32) float32

	// ColorAt returns the interpolated color at gradient parameter t.
	ColorAt(t float32) color.NRGBA
}

// gradient holds the state shared by linear and radial fills.
type gradient struct {
	stops  []ColorStop
	spread Spread
}

// SetColorStops replaces the stops. The slice is copied.
func (g *gradient) SetColorStops(stops []ColorStop) {
	g.stops = append(g.stops[:0:0], stops...)
}

// ColorStops returns the stops in the order they were set.
func (g *gradient) ColorStops() []ColorStop { return g.stops }

// SetSpread sets the extend mode.
func (g *gradient) SetSpread(s Spread) { g.spread = s }

// Spread returns the extend mode.
func (g *gradient) Spread() Spread { return g.spread }

// ColorAt returns the interpolated color at gradient parameter t.
func (g *gradient) ColorAt(t float32) color.NRGBA {
	return colorAtOffset(g.stops, t, g.spread)
}

func (g *gradient) clone() gradient {
	return gradient{stops: append([]ColorStop(nil), g.stops...), spread: g.spread}
}

// LinearGradient interpolates colors along the axis from (X1, Y1) to (X2, Y2).
type LinearGradient struct {
	gradient
	X1, Y1 float32
	X2, Y2 float32
}

// NewLinearGradient creates a linear gradient with the given axis.
func NewLinearGradient(x1, y1, x2, y2 float32) *LinearGradient {
	return &LinearGradient{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Duplicate returns an independent deep copy.
func (g *LinearGradient) Duplicate() Fill {
	d := *g
	d.gradient = g.clone()
	return &d
}

// Param projects (x, y) onto the gradient axis.
// A zero-length axis maps every point to 0.
func (g *LinearGradient) Param(x, y float32) float32 {
	dx := g.X2 - g.X1
	dy := g.Y2 - g.Y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return ((x-g.X1)*dx + (y-g.Y1)*dy) / lenSq
}

// RadialGradient interpolates colors outward from (CX, CY) to radius R.
type RadialGradient struct {
	gradient
	CX, CY float32
	R      float32
}

// NewRadialGradient creates a radial gradient. Negative radii are clamped
// to zero.
func NewRadialGradient(cx, cy, r float32) *RadialGradient {
	if r < 0 {
		r = 0
	}
	return &RadialGradient{CX: cx, CY: cy, R: r}
}

// Duplicate returns an independent deep copy.
func (g *RadialGradient) Duplicate() Fill {
	d := *g
	d.gradient = g.clone()
	return &d
}

// Param returns the distance from the center in units of R.
// A zero radius maps every point to 1, so the area takes the last stop color.
func (g *RadialGradient) Param(x, y float32) float32 {
	if g.R == 0 {
		return 1
	}
	dx := float64(x - g.CX)
	dy := float64(y - g.CY)
	return float32(math.Sqrt(dx*dx+dy*dy)) / g.R
}

// sortStops returns a copy of the stops ordered by offset. Stops with the
// same offset keep their relative order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applySpread applies the spread mode to normalize t to [0, 1].
func applySpread(t float32, mode Spread) float32 {
	switch mode {
	case SpreadRepeat:
		t -= float32(math.Floor(float64(t)))
	case SpreadReflect:
		t = float32(math.Abs(float64(t)))
		period := float32(math.Floor(float64(t)))
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // SpreadPad
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
	}
	return t
}

// colorAtOffset returns the interpolated color at a given offset.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float32, mode Spread) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applySpread(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return lerpColor(stop1.Color, stop2.Color, localT)
}

// lerpColor interpolates two non-premultiplied colors channel by channel.
func lerpColor(a, b color.NRGBA, t float32) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		v := float32(x) + t*(float32(y)-float32(x))
		return uint8(math.Round(float64(v)))
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
