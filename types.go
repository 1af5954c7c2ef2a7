package rive

import "github.com/gogpu/rive/scene"

// FillRule selects how path winding determines the interior.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// String returns the name of the rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

func (r FillRule) scene() scene.FillStyle {
	if r == FillRuleEvenOdd {
		return scene.FillEvenOdd
	}
	return scene.FillNonZero
}

// PaintStyle selects whether a paint fills or strokes.
type PaintStyle uint8

const (
	PaintStyleFill PaintStyle = iota
	PaintStyleStroke
)

// String returns the name of the style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "Fill"
	case PaintStyleStroke:
		return "Stroke"
	default:
		return unknownStr
	}
}

// StrokeJoin is the shape used where two stroked segments meet.
type StrokeJoin uint8

const (
	StrokeJoinMiter StrokeJoin = iota
	StrokeJoinRound
	StrokeJoinBevel
)

// String returns the name of the join.
func (j StrokeJoin) String() string {
	switch j {
	case StrokeJoinMiter:
		return "Miter"
	case StrokeJoinRound:
		return "Round"
	case StrokeJoinBevel:
		return "Bevel"
	default:
		return unknownStr
	}
}

func (j StrokeJoin) scene() scene.LineJoin {
	switch j {
	case StrokeJoinRound:
		return scene.LineJoinRound
	case StrokeJoinBevel:
		return scene.LineJoinBevel
	default:
		return scene.LineJoinMiter
	}
}

// StrokeCap is the shape used at the ends of open stroked subpaths.
type StrokeCap uint8

const (
	StrokeCapButt StrokeCap = iota
	StrokeCapRound
	StrokeCapSquare
)

// String returns the name of the cap.
func (c StrokeCap) String() string {
	switch c {
	case StrokeCapButt:
		return "Butt"
	case StrokeCapRound:
		return "Round"
	case StrokeCapSquare:
		return "Square"
	default:
		return unknownStr
	}
}

func (c StrokeCap) scene() scene.LineCap {
	switch c {
	case StrokeCapRound:
		return scene.LineCapRound
	case StrokeCapSquare:
		return scene.LineCapSquare
	default:
		return scene.LineCapButt
	}
}

// BlendMode is the compositing mode requested by the engine.
// SceneRenderer draws every mode as SrcOver.
type BlendMode uint8

const (
	BlendSrcOver BlendMode = iota
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

// blendModeNames maps BlendMode values to their string representation.
var blendModeNames = [...]string{
	BlendSrcOver:    "SrcOver",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendColorDodge: "ColorDodge",
	BlendColorBurn:  "ColorBurn",
	BlendHardLight:  "HardLight",
	BlendSoftLight:  "SoftLight",
	BlendDifference: "Difference",
	BlendExclusion:  "Exclusion",
	BlendMultiply:   "Multiply",
	BlendHue:        "Hue",
	BlendSaturation: "Saturation",
	BlendColor:      "Color",
	BlendLuminosity: "Luminosity",
}

// String returns the name of the blend mode.
func (b BlendMode) String() string {
	if int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return unknownStr
}

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"
