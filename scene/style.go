package scene

// FillStyle represents the fill rule for paths.
type FillStyle uint8

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillStyle = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// String returns the SVG name of the fill rule.
func (f FillStyle) String() string {
	switch f {
	case FillNonZero:
		return "nonzero"
	case FillEvenOdd:
		return "evenodd"
	default:
		return unknownStr
	}
}

// LineCap represents line endpoint shapes.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// String returns the SVG name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return unknownStr
	}
}

// LineJoin represents line join shapes.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// String returns the SVG name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return unknownStr
	}
}

// StrokeStyle contains stroke parameters.
type StrokeStyle struct {
	Width      float32
	MiterLimit float32
	Cap        LineCap
	Join       LineJoin
}

// DefaultStrokeStyle returns default stroke parameters.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1.0,
		MiterLimit: 4.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
	}
}

// CompositeMethod selects how a composite target restricts a paint.
type CompositeMethod uint8

const (
	// CompositeNone draws the paint unrestricted.
	CompositeNone CompositeMethod = iota
	// CompositeClipPath restricts the paint to the area covered by the
	// target's geometry. The target's colors are ignored.
	CompositeClipPath
)

// String returns a human-readable name for the method.
func (c CompositeMethod) String() string {
	switch c {
	case CompositeNone:
		return "None"
	case CompositeClipPath:
		return "ClipPath"
	default:
		return unknownStr
	}
}
