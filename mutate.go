package layerstack

// clampInsert normalizes an insertion index into [0, n]. A missing index
// appends.
func clampInsert(index int, hasIndex bool, n int) int {
	if !hasIndex || index > n {
		return n
	}
	if index < 0 {
		return 0
	}
	return index
}

// clampPosition normalizes an existing-element index into [0, n-1].
// n must be positive.
func clampPosition(index, n int) int {
	if index >= n {
		return n - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

// insertChild inserts child at index, which must already be clamped.
func (n *Node) insertChild(child *Node, index int) {
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// removeChildAt removes and returns the child at index.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildAt(index int) *Node {
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.parent = nil
	return child
}

// replaceChildAt swaps the child at index for repl and returns the old child.
func (n *Node) replaceChildAt(index int, repl *Node) *Node {
	old := n.children[index]
	old.parent = nil
	repl.parent = n
	n.children[index] = repl
	return old
}

// moveChild moves the child at from to to. Both must be valid indices.
func (n *Node) moveChild(from, to int) {
	child := n.children[from]
	// Shift elements to fill the gap and open the target slot.
	if from < to {
		copy(n.children[from:], n.children[from+1:to+1])
	} else {
		copy(n.children[to+1:], n.children[to:from])
	}
	n.children[to] = child
}

// clearChildren drops every child and returns the old list.
func (n *Node) clearChildren() []*Node {
	old := n.children
	for _, c := range old {
		c.parent = nil
	}
	n.children = nil
	return old
}

// setChildren installs list as the child list.
func (n *Node) setChildren(list []*Node) {
	for _, c := range list {
		c.parent = n
	}
	n.children = list
}

// reconcile rebuilds n's children from ds. With reuse, an existing child of
// the same name and kind is kept (renderable untouched, properties replaced)
// and, for groups, reconciled recursively. New nodes inherit n's opacity and
// visibility. It returns the nodes that were
// dropped; the caller detaches them. ds must be validated.
func (n *Node) reconcile(ds []Descriptor, reuse bool) []*Node {
	old := make(map[string]*Node, len(n.children))
	for _, c := range n.children {
		old[c.name] = c
	}
	var dropped, fresh []*Node
	list := make([]*Node, 0, len(ds))
	for _, d := range ds {
		prev, ok := old[d.Name]
		if reuse && ok && prev.IsGroup() == d.IsGroup() {
			delete(old, d.Name)
			prev.properties = d.Properties
			if prev.IsGroup() {
				dropped = append(dropped, prev.reconcile(d.Layers, true)...)
			}
			list = append(list, prev)
			continue
		}
		c := newNode(d)
		fresh = append(fresh, c)
		list = append(list, c)
	}
	for _, c := range n.children {
		if _, gone := old[c.name]; gone {
			c.parent = nil
			dropped = append(dropped, c)
		}
	}
	n.setChildren(list)
	for _, c := range fresh {
		n.inherit(c)
	}
	return dropped
}
