package layerstack

// Node is one element of the layer tree. A single flat struct serves both
// node kinds: leaves carry a renderable, groups carry ordered children.
type Node struct {
	// Identity
	name       string
	typ        NodeType
	properties any

	// Hierarchy
	parent   *Node
	children []*Node // groups only; order is stacking order, bottom first

	// Leaf payload
	value Renderable

	// Surface state
	attached bool
	opacity  float64 // last requested opacity, restored by show
	hidden   bool
}

// newNode builds a node tree from a validated descriptor. Nothing is attached.
func newNode(d Descriptor) *Node {
	n := &Node{
		name:       d.Name,
		properties: d.Properties,
		opacity:    1,
	}
	if !d.IsGroup() {
		n.typ = NodeTypeLeaf
		n.value = d.Renderable
		return n
	}
	n.typ = NodeTypeGroup
	n.children = make([]*Node, 0, len(d.Layers))
	for _, cd := range d.Layers {
		c := newNode(cd)
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// newRoot returns the unnamed group owned by a manager.
func newRoot() *Node {
	return &Node{typ: NodeTypeGroup, opacity: 1}
}

// --- Accessors ---

// Name returns the node's name. The root node's name is empty.
func (n *Node) Name() string { return n.name }

// Type reports whether the node is a leaf or a group.
func (n *Node) Type() NodeType { return n.typ }

// IsGroup reports whether the node is a group.
func (n *Node) IsGroup() bool { return n.typ == NodeTypeGroup }

// Properties returns the caller-supplied annotation given at creation (or
// at the last reusing SetLayers).
func (n *Node) Properties() any { return n.properties }

// Renderable returns the leaf's renderable, or nil for groups.
func (n *Node) Renderable() Renderable { return n.value }

// Parent returns the owning group, or nil for the root and for removed nodes.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt returns the child at index, or nil if index is out of range.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Attached reports whether the node's renderables are attached to the surface.
func (n *Node) Attached() bool { return n.attached }

// Opacity returns the last opacity requested for this node.
func (n *Node) Opacity() float64 { return n.opacity }

// Hidden reports whether the node itself has been hidden. A node inside a
// hidden group is not drawn even when Hidden returns false.
func (n *Node) Hidden() bool { return n.hidden }

// Path returns the dotted path of the node from the manager root.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.name
	}
	return joinPath(n.parent.Path(), n.name)
}

// --- Lookup ---

// indexOf returns the index of the child named name, or -1.
func (n *Node) indexOf(name string) int {
	for i, c := range n.children {
		if c.name == name {
			return i
		}
	}
	return -1
}

// child returns the child named name, or nil.
func (n *Node) child(name string) *Node {
	if i := n.indexOf(name); i >= 0 {
		return n.children[i]
	}
	return nil
}

// findRenderable searches the subtree for the leaf wrapping r.
func (n *Node) findRenderable(r Renderable) *Node {
	if n.typ == NodeTypeLeaf {
		if n.value == r {
			return n
		}
		return nil
	}
	for _, c := range n.children {
		if found := c.findRenderable(r); found != nil {
			return found
		}
	}
	return nil
}

// --- Surface attachment ---

// attach adds every leaf in the subtree to pane. Already attached leaves are
// left alone so reused nodes never see a second attach.
func (n *Node) attach(s Surface, pane Pane) {
	if n.typ == NodeTypeGroup {
		for _, c := range n.children {
			c.attach(s, pane)
		}
		n.attached = true
		return
	}
	if n.attached {
		return
	}
	s.AddLayer(n.value, pane)
	n.attached = true
}

// detach removes every leaf in the subtree from the surface.
func (n *Node) detach(s Surface) {
	if n.typ == NodeTypeGroup {
		for _, c := range n.children {
			c.detach(s)
		}
		n.attached = false
		return
	}
	if !n.attached {
		return
	}
	s.RemoveLayer(n.value)
	n.attached = false
}

// --- Restyle ---

// isHidden reports whether n or any of its ancestors is hidden.
func (n *Node) isHidden() bool {
	for p := n; p != nil; p = p.parent {
		if p.hidden {
			return true
		}
	}
	return false
}

// setOpacity records opacity on the subtree and applies it to visible leaves.
func (n *Node) setOpacity(opacity float64) {
	n.opacity = opacity
	if n.typ == NodeTypeGroup {
		for _, c := range n.children {
			c.setOpacity(opacity)
		}
		return
	}
	if !n.isHidden() {
		applyOpacity(n.value, opacity)
	}
}

// setHidden sets the node's own visibility flag and re-applies visibility to
// the subtree. Members hidden on their own stay hidden when a group is shown.
func (n *Node) setHidden(hidden bool) {
	n.hidden = hidden
	n.applyVisibility(n.isHidden())
}

// applyVisibility drives hidden leaves to zero opacity and gives shown leaves
// their remembered opacity back.
func (n *Node) applyVisibility(hidden bool) {
	if n.typ == NodeTypeGroup {
		for _, c := range n.children {
			c.applyVisibility(hidden || c.hidden)
		}
		return
	}
	if hidden {
		applyOpacity(n.value, 0)
	} else {
		applyOpacity(n.value, n.opacity)
	}
}

// inherit gives child, freshly inserted under n, the group's remembered
// opacity and visibility.
func (n *Node) inherit(child *Node) {
	if n.opacity != 1 {
		child.setOpacity(n.opacity)
	}
	if n.isHidden() {
		child.applyVisibility(true)
	}
}

// setStyle fans a style update out to every styleable primitive in the subtree.
func (n *Node) setStyle(s Style) {
	if n.typ == NodeTypeGroup {
		for _, c := range n.children {
			c.setStyle(s)
		}
		return
	}
	Walk(n.value, func(r Renderable) {
		if st, ok := r.(Styler); ok {
			st.SetStyle(s)
		}
	})
}

// applyOpacity sets opacity on every primitive of r that supports it.
func applyOpacity(r Renderable, opacity float64) {
	Walk(r, func(p Renderable) {
		if o, ok := p.(OpacitySetter); ok {
			o.SetOpacity(opacity)
		}
	})
}

// walkLeaves calls fn for every leaf in the subtree in stacking order.
func walkLeaves(n *Node, fn func(*Node)) {
	if n.typ == NodeTypeLeaf {
		fn(n)
		return
	}
	for _, c := range n.children {
		walkLeaves(c, fn)
	}
}
