package recording

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/scene"
)

// PathData is a snapshot of a recorded path.
type PathData struct {
	Geometry *scene.Path
	FillRule rive.FillRule
}

// Clone creates a deep copy of the snapshot.
func (d PathData) Clone() PathData {
	if d.Geometry != nil {
		d.Geometry = d.Geometry.Clone()
	}
	return d
}

// StopData is one gradient stop as passed to AddStop.
type StopData struct {
	Color  uint32
	Offset float32
}

// GradientData is a completed gradient as passed to the gradient calls.
type GradientData struct {
	Radial         bool
	SX, SY, EX, EY float32
	Stops          []StopData
}

// Clone creates a deep copy of the gradient.
func (g *GradientData) Clone() *GradientData {
	if g == nil {
		return nil
	}
	c := *g
	c.Stops = append([]StopData(nil), g.Stops...)
	return &c
}

// PaintData is a snapshot of a recorded paint. Gradient is nil for a
// flat-colored paint.
type PaintData struct {
	Style     rive.PaintStyle
	Color     uint32
	Thickness float32
	Join      rive.StrokeJoin
	Cap       rive.StrokeCap
	Blend     rive.BlendMode
	Gradient  *GradientData
}

// Clone creates a deep copy of the snapshot.
func (d PaintData) Clone() PaintData {
	d.Gradient = d.Gradient.Clone()
	return d
}

// ResourcePool stores the snapshots referenced by recording commands.
// Each Add operation clones its argument so the recording stays immutable
// while the engine keeps editing its paths and paints.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	paths  []PathData
	paints []PaintData
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]PathData, 0, 64),
		paints: make([]PaintData, 0, 32),
	}
}

// AddPath adds a path snapshot to the pool and returns its reference.
func (p *ResourcePool) AddPath(path PathData) PathRef {
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// The second result is false if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) (PathData, bool) {
	if int(ref) >= len(p.paths) {
		return PathData{}, false
	}
	return p.paths[ref], true
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddPaint adds a paint snapshot to the pool and returns its reference.
func (p *ResourcePool) AddPaint(paint PaintData) PaintRef {
	p.paints = append(p.paints, paint.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PaintRef(uint32(len(p.paints) - 1))
}

// GetPaint returns the paint for the given reference.
// The second result is false if the reference is invalid.
func (p *ResourcePool) GetPaint(ref PaintRef) (PaintData, bool) {
	if int(ref) >= len(p.paints) {
		return PaintData{}, false
	}
	return p.paints[ref], true
}

// PaintCount returns the number of paints in the pool.
func (p *ResourcePool) PaintCount() int {
	return len(p.paints)
}

// Clear removes all resources from the pool.
// This does not release the underlying memory; use NewResourcePool for that.
func (p *ResourcePool) Clear() {
	clear(p.paths)
	p.paths = p.paths[:0]
	p.paints = p.paints[:0]
}
