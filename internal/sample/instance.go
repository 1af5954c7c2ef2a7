package sample

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/internal/parallel"
	"github.com/gogpu/rive/scene"
)

// Placement positions an instance on the canvas.
type Placement struct {
	X, Y     float32
	Rotation float32 // radians
}

// DefaultPlacements are the three instances of the composition demo.
var DefaultPlacements = []Placement{
	{X: 400, Y: 400, Rotation: 0},
	{X: 700, Y: 600, Rotation: 2},
	{X: 500, Y: 800, Rotation: 4},
}

// Instance is one animation instance with its own renderer and retained
// group. The group is pushed into the canvas once and redrawn in place
// every frame.
type Instance struct {
	Placement

	group    *scene.Group
	renderer *rive.SceneRenderer
	artboard *Artboard
}

// NewInstance creates an instance drawing through its own factory.
func NewInstance(p Placement, opts ...rive.Option) *Instance {
	g := scene.NewGroup()
	return &Instance{
		Placement: p,
		group:     g,
		renderer:  rive.NewSceneRenderer(g, opts...),
		artboard:  NewArtboard(rive.NewSceneFactory(opts...)),
	}
}

// Group returns the retained group the instance draws into.
func (in *Instance) Group() *scene.Group { return in.group }

// Renderer returns the instance's renderer.
func (in *Instance) Renderer() *rive.SceneRenderer { return in.renderer }

// Update clears the group and redraws the frame at time t.
func (in *Instance) Update(t float64) error {
	in.group.Clear()
	in.renderer.ResetPersistentClip()
	in.renderer.ResetClipPath()

	m := rive.RotationMat2D(in.Rotation)
	m[4], m[5] = in.X, in.Y

	in.renderer.Save()
	in.renderer.Transform(m)
	in.artboard.Draw(in.renderer, t)
	in.renderer.Restore()
	return in.renderer.Err()
}

// Composition is a canvas scene holding several instances in draw order.
// Instances share no render objects, so a frame redraws them concurrently.
type Composition struct {
	canvas    *scene.Scene
	instances []*Instance
	pool      *parallel.WorkerPool
}

// NewComposition creates one instance per placement and pushes their
// groups into a new canvas scene. Close releases its workers.
func NewComposition(placements []Placement, opts ...rive.Option) *Composition {
	c := &Composition{
		canvas: scene.NewScene(),
		pool:   parallel.NewWorkerPool(len(placements)),
	}
	for _, p := range placements {
		in := NewInstance(p, opts...)
		c.instances = append(c.instances, in)
		c.canvas.Push(in.Group())
	}
	return c
}

// Update redraws every instance at time t. It returns the error of the
// first failing instance in draw order.
func (c *Composition) Update(t float64) error {
	tasks := make([]func() error, len(c.instances))
	for i, in := range c.instances {
		tasks[i] = func() error { return in.Update(t) }
	}
	return c.pool.Run(tasks)
}

// Close stops the composition's workers. Update keeps working afterwards
// on the calling goroutine.
func (c *Composition) Close() { c.pool.Close() }

// Scene returns the canvas scene.
func (c *Composition) Scene() *scene.Scene { return c.canvas }

// Instances returns the instances in draw order.
func (c *Composition) Instances() []*Instance { return c.instances }
