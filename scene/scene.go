package scene

// Container accepts finished paints in paint order. *Scene and *Group
// implement it.
type Container interface {
	Push(p Paint)
}

// Scene is the root retained-mode container. Paints pushed later draw on
// top of paints pushed earlier; the scene never reorders them.
//
// Example:
//
//	s := scene.NewScene()
//	sh := scene.NewShape()
//	sh.Path().Rectangle(0, 0, 10, 10)
//	sh.SetFillColor(color.NRGBA{R: 255, A: 255})
//	s.Push(sh)
type Scene struct {
	paints []Paint

	// version is incremented on each modification for cache invalidation
	version uint64
}

// NewScene creates a new empty scene.
func NewScene() *Scene {
	return &Scene{paints: make([]Paint, 0, 32)}
}

// Push appends p as the top-most paint. Nil paints are ignored.
func (s *Scene) Push(p Paint) {
	if p == nil {
		return
	}
	s.paints = append(s.paints, p)
	s.version++
}

// Clear removes all paints for reuse without deallocating memory.
func (s *Scene) Clear() {
	clear(s.paints)
	s.paints = s.paints[:0]
	s.version++
}

// Paints returns the paints in paint order.
func (s *Scene) Paints() []Paint { return s.paints }

// Len returns the number of top-level paints.
func (s *Scene) Len() int { return len(s.paints) }

// IsEmpty returns true if the scene has no paints.
func (s *Scene) IsEmpty() bool { return len(s.paints) == 0 }

// Version returns the modification counter.
func (s *Scene) Version() uint64 { return s.version }

// Bounds returns the union of all paint bounds.
func (s *Scene) Bounds() Rect { return unionBounds(s.paints) }

// Walk calls fn for every paint in paint order, descending into groups,
// with the accumulated transform from the scene root. Composite targets
// are not visited. Walk stops early when fn returns false.
func (s *Scene) Walk(fn func(p Paint, world Matrix) bool) {
	walk(s.paints, Identity(), fn)
}

func walk(paints []Paint, parent Matrix, fn func(Paint, Matrix) bool) bool {
	for _, p := range paints {
		world := parent.Multiply(p.Transform())
		if !fn(p, world) {
			return false
		}
		if g, ok := p.(*Group); ok {
			if !walk(g.children, world, fn) {
				return false
			}
		}
	}
	return true
}
