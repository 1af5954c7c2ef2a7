package rive

import (
	"math"

	"github.com/gogpu/rive/scene"
)

// gradientKind identifies the gradient being built.
type gradientKind uint8

const (
	gradientLinear gradientKind = iota
	gradientRadial
)

func (k gradientKind) String() string {
	if k == gradientRadial {
		return "radial"
	}
	return "linear"
}

// gradientBuilder collects anchors and stops until CompleteGradient.
type gradientBuilder struct {
	kind           gradientKind
	sx, sy, ex, ey float32
	stops          []scene.ColorStop
}

func (b *gradientBuilder) addStop(c uint32, stop float32) {
	b.stops = append(b.stops, scene.ColorStop{Offset: stop, Color: UnpackColor(c)})
}

// build creates the backend fill. The radial radius is the distance
// between the two anchors; identical anchors give a zero radius.
func (b *gradientBuilder) build() scene.Fill {
	switch b.kind {
	case gradientRadial:
		g := scene.NewRadialGradient(b.sx, b.sy, radialRadius(b.sx, b.sy, b.ex, b.ey))
		g.SetColorStops(b.stops)
		return g
	default:
		g := scene.NewLinearGradient(b.sx, b.sy, b.ex, b.ey)
		g.SetColorStops(b.stops)
		return g
	}
}

// release drops the builder's stops.
func (b *gradientBuilder) release() {
	clear(b.stops)
	b.stops = nil
}

func radialRadius(sx, sy, ex, ey float32) float32 {
	return float32(math.Hypot(float64(ex-sx), float64(ey-sy)))
}
