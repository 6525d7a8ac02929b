package layerstack

// debugMaxTreeDepth is the nesting depth above which debug mode warns.
const debugMaxTreeDepth = 32

// debugMaxChildCount is the sibling count above which debug mode warns.
const debugMaxChildCount = 1000

// SetDebugMode enables or disables debug mode. When enabled, inserts check
// the tree shape and warn through [Logger] about very deep nesting or very
// wide groups.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// debugCheckTreeDepth warns if the subtree rooted at n reaches deeper than
// the threshold.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if deepest := depth + subtreeHeight(n) - 1; deepest > debugMaxTreeDepth {
		Logger().Warn("layerstack: tree depth exceeds threshold",
			"path", n.Path(), "depth", deepest, "threshold", debugMaxTreeDepth)
	}
}

// subtreeHeight returns the number of levels in the subtree rooted at n.
func subtreeHeight(n *Node) int {
	h := 0
	for _, c := range n.children {
		if ch := subtreeHeight(c); ch > h {
			h = ch
		}
	}
	return h + 1
}

// debugCheckChildCount warns if group g has more children than the threshold.
func debugCheckChildCount(g *Node) {
	if len(g.children) > debugMaxChildCount {
		Logger().Warn("layerstack: group has too many children",
			"path", g.Path(), "children", len(g.children), "threshold", debugMaxChildCount)
	}
}

// countLeaves returns the number of leaves below n.
func countLeaves(n *Node) int {
	count := 0
	walkLeaves(n, func(*Node) { count++ })
	return count
}
