package layerstack

// StackingStrategy re-derives the surface's paint order from the tree.
// Restack is called after every structural change with the manager's root
// group and pane; afterwards the paint order of everything in the pane must
// match the tree's sibling order at every level.
type StackingStrategy interface {
	Restack(root *Node, pane Pane)
}

// RasterStrategy orders raster-family renderables by explicit depth.
//
// A depth-first walk hands out strictly increasing z-indices starting at 0,
// one per [ZIndexer] primitive, carrying the counter across group
// boundaries. Vectors sharing the pane are then pinned above the whole
// raster stack if the pane implements [VectorPinner].
type RasterStrategy struct{}

// Restack implements [StackingStrategy].
func (RasterStrategy) Restack(root *Node, pane Pane) {
	next := assignZIndex(root, 0)
	if p, ok := pane.(VectorPinner); ok {
		p.PinVectors(next)
	}
}

// String returns "raster".
func (RasterStrategy) String() string { return "raster" }

// assignZIndex gives every depth-ordered primitive below n a z-index starting
// at z and returns the next free value.
func assignZIndex(n *Node, z int) int {
	if n.typ == NodeTypeGroup {
		for _, c := range n.children {
			z = assignZIndex(c, z)
		}
		return z
	}
	Walk(n.value, func(r Renderable) {
		if zi, ok := r.(ZIndexer); ok {
			zi.SetZIndex(z)
			z++
		}
	})
	return z
}

// VectorStrategy orders vector-family renderables, which ignore numeric
// depth. Walking the tree bottom to top and bringing each primitive to the
// front leaves the native paint list in tree order.
type VectorStrategy struct{}

// Restack implements [StackingStrategy].
func (VectorStrategy) Restack(root *Node, _ Pane) {
	walkLeaves(root, func(leaf *Node) {
		Walk(leaf.value, func(r Renderable) {
			if fb, ok := r.(FrontBringer); ok {
				fb.BringToFront()
			}
		})
	})
}

// String returns "vector".
func (VectorStrategy) String() string { return "vector" }
