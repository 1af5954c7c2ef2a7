package scene

// Group is a paint that draws its children in order as one visual unit.
// A composite set on a group clips all children together.
type Group struct {
	composite

	children  []Paint
	transform Matrix
}

// NewGroup creates an empty group with the identity transform.
func NewGroup() *Group {
	return &Group{transform: Identity()}
}

// Push appends p as the top-most child. Nil paints are ignored.
func (g *Group) Push(p Paint) {
	if p == nil {
		return
	}
	g.children = append(g.children, p)
}

// Clear removes all children.
func (g *Group) Clear() {
	clear(g.children)
	g.children = g.children[:0]
}

// Children returns the children in paint order.
func (g *Group) Children() []Paint { return g.children }

// Transform returns the group's transform relative to its parent.
func (g *Group) Transform() Matrix { return g.transform }

// SetTransform replaces the group's transform.
func (g *Group) SetTransform(m Matrix) { g.transform = m }

// Bounds returns the union of the children's bounds in the parent's space.
func (g *Group) Bounds() Rect {
	return unionBounds(g.children).Transform(g.transform)
}

// Duplicate returns an independent deep copy of the group and its children.
func (g *Group) Duplicate() *Group {
	d := &Group{
		composite: g.composite.duplicate(),
		children:  make([]Paint, len(g.children)),
		transform: g.transform,
	}
	for i, c := range g.children {
		d.children[i] = c.DuplicatePaint()
	}
	return d
}

// DuplicatePaint implements Paint.
func (g *Group) DuplicatePaint() Paint { return g.Duplicate() }

func unionBounds(paints []Paint) Rect {
	r := EmptyRect()
	for _, p := range paints {
		b := p.Bounds()
		if !b.IsEmpty() {
			r = r.Union(b)
		}
	}
	return r
}
