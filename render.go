package rive

// RenderPath is geometry built by the animation engine in local space.
type RenderPath interface {
	// Reset clears all commands and points.
	Reset()

	// AddRenderPath appends every command of path and maps only the
	// appended points by transform. Existing points are left untouched.
	AddRenderPath(path RenderPath, transform Mat2D)

	// FillRule sets the winding rule used when this path is filled.
	FillRule(rule FillRule)

	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubicTo(ox, oy, ix, iy, x, y float32)
	Close()
}

// RenderPaint is style state configured by the engine before drawing.
// Colors are packed as 0xAARRGGBB.
type RenderPaint interface {
	Style(style PaintStyle)
	Color(value uint32)
	Thickness(value float32)
	Join(value StrokeJoin)
	Cap(value StrokeCap)
	BlendMode(value BlendMode)

	// LinearGradient begins a gradient along the axis (sx, sy)-(ex, ey),
	// replacing any gradient still being built.
	LinearGradient(sx, sy, ex, ey float32)

	// RadialGradient begins a gradient centered at (sx, sy) whose radius is
	// the distance to (ex, ey), replacing any gradient still being built.
	RadialGradient(sx, sy, ex, ey float32)

	// AddStop appends a stop to the gradient being built.
	AddStop(color uint32, stop float32)

	// CompleteGradient attaches the gradient being built to the paint.
	CompleteGradient()
}

// Renderer receives the per-frame draw calls.
//
// Calls arrive in the order save, transform, zero or more clipPath,
// drawPath, restore. A Renderer is not safe for concurrent use.
type Renderer interface {
	Save()
	Restore()

	// Transform right-multiplies the current transform: current = current * m.
	Transform(m Mat2D)

	DrawPath(path RenderPath, paint RenderPaint)
	ClipPath(path RenderPath)
}

// Factory creates the paths and paints a Renderer draws.
type Factory interface {
	MakeRenderPath() RenderPath
	MakeRenderPaint() RenderPaint
}
