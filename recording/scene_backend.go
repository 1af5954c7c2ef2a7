package recording

import (
	"errors"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/scene"
)

// ErrNotBegun is returned when a backend is used before Begin.
var ErrNotBegun = errors.New("recording: backend used before Begin")

// SceneBackend replays a recording into a fresh scene graph. Output
// backends embed it and encode Scene after End.
type SceneBackend struct {
	width, height int
	opts          []rive.Option

	scene    *scene.Scene
	factory  *rive.SceneFactory
	renderer *rive.SceneRenderer
}

var _ Backend = (*SceneBackend)(nil)

// NewSceneBackend creates a scene backend. The options are passed to the
// factory and renderer created by each Begin.
func NewSceneBackend(opts ...rive.Option) *SceneBackend {
	return &SceneBackend{opts: opts}
}

// Begin starts a new scene of the given dimensions.
func (b *SceneBackend) Begin(width, height int) error {
	b.width, b.height = width, height
	b.scene = scene.NewScene()
	b.factory = rive.NewSceneFactory(b.opts...)
	b.renderer = rive.NewSceneRenderer(b.scene, b.opts...)
	return nil
}

// Factory returns the factory of the current frame.
func (b *SceneBackend) Factory() rive.Factory { return b.factory }

// Renderer returns the renderer of the current frame.
func (b *SceneBackend) Renderer() rive.Renderer { return b.renderer }

// End finishes the frame.
func (b *SceneBackend) End() error {
	if b.scene == nil {
		return ErrNotBegun
	}
	return nil
}

// Scene returns the scene built by the last playback, or nil before Begin.
func (b *SceneBackend) Scene() *scene.Scene { return b.scene }

// Width returns the frame width passed to Begin.
func (b *SceneBackend) Width() int { return b.width }

// Height returns the frame height passed to Begin.
func (b *SceneBackend) Height() int { return b.height }
