package rive

// Fit selects how content is scaled into a frame.
type Fit uint8

const (
	FitFill Fit = iota
	FitContain
	FitCover
	FitWidth
	FitHeight
	FitNone
	FitScaleDown
)

// fitNames maps Fit values to their string representation.
var fitNames = [...]string{
	FitFill:      "Fill",
	FitContain:   "Contain",
	FitCover:     "Cover",
	FitWidth:     "FitWidth",
	FitHeight:    "FitHeight",
	FitNone:      "None",
	FitScaleDown: "ScaleDown",
}

// String returns the name of the fit.
func (f Fit) String() string {
	if int(f) < len(fitNames) {
		return fitNames[f]
	}
	return unknownStr
}

// ParseFit returns the Fit named s (case-sensitive, as returned by String).
func ParseFit(s string) (Fit, bool) {
	for i, name := range fitNames {
		if name == s {
			return Fit(i), true
		}
	}
	return FitContain, false
}

// Alignment positions content inside a frame. -1 is the left/top edge,
// 0 the center, 1 the right/bottom edge.
type Alignment struct {
	X, Y float32
}

// Alignment presets.
var (
	AlignTopLeft      = Alignment{-1, -1}
	AlignTopCenter    = Alignment{0, -1}
	AlignTopRight     = Alignment{1, -1}
	AlignCenterLeft   = Alignment{-1, 0}
	AlignCenter       = Alignment{0, 0}
	AlignCenterRight  = Alignment{1, 0}
	AlignBottomLeft   = Alignment{-1, 1}
	AlignBottomCenter = Alignment{0, 1}
	AlignBottomRight  = Alignment{1, 1}
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Width returns MaxX - MinX.
func (b AABB) Width() float32 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b AABB) Height() float32 { return b.MaxY - b.MinY }

// ComputeAlignment returns the transform that places content inside frame.
// Content with zero width or height is only translated.
func ComputeAlignment(fit Fit, alignment Alignment, frame, content AABB) Mat2D {
	cw, ch := content.Width(), content.Height()
	fw, fh := frame.Width(), frame.Height()

	x := -content.MinX - cw/2 - alignment.X*cw/2
	y := -content.MinY - ch/2 - alignment.Y*ch/2

	sx, sy := float32(1), float32(1)
	if cw != 0 && ch != 0 {
		sx, sy = fitScale(fit, fw/cw, fh/ch)
	}

	translation := TranslateMat2D(
		frame.MinX+fw/2+alignment.X*fw/2,
		frame.MinY+fh/2+alignment.Y*fh/2,
	)
	return translation.Multiply(ScaleMat2D(sx, sy)).Multiply(TranslateMat2D(x, y))
}

func fitScale(fit Fit, wr, hr float32) (float32, float32) {
	switch fit {
	case FitFill:
		return wr, hr
	case FitContain:
		s := min(wr, hr)
		return s, s
	case FitCover:
		s := max(wr, hr)
		return s, s
	case FitWidth:
		return wr, wr
	case FitHeight:
		return hr, hr
	case FitScaleDown:
		s := min(min(wr, hr), 1)
		return s, s
	default: // FitNone
		return 1, 1
	}
}

// Align applies ComputeAlignment to r's current transform.
func Align(r Renderer, fit Fit, alignment Alignment, frame, content AABB) {
	r.Transform(ComputeAlignment(fit, alignment, frame, content))
}
