package rive

// SceneFactory creates paths and paints backed by scene objects.
// Paths and paints report contract violations to their factory.
type SceneFactory struct {
	check *contract
}

var _ Factory = (*SceneFactory)(nil)

// NewSceneFactory creates a factory.
func NewSceneFactory(opts ...Option) *SceneFactory {
	return &SceneFactory{check: newContract(buildOptions(opts))}
}

// MakeRenderPath returns a new empty *Path.
func (f *SceneFactory) MakeRenderPath() RenderPath {
	return f.NewPath()
}

// MakeRenderPaint returns a new *Paint with default style.
func (f *SceneFactory) MakeRenderPaint() RenderPaint {
	return f.NewPaint()
}

// NewPath is MakeRenderPath with the concrete type.
func (f *SceneFactory) NewPath() *Path {
	return newPath(f.check)
}

// NewPaint is MakeRenderPaint with the concrete type.
func (f *SceneFactory) NewPaint() *Paint {
	return newPaint(f.check)
}

// Err returns the first contract violation reported by a path or paint
// of this factory.
func (f *SceneFactory) Err() error {
	return f.check.err
}
