package layerstack

import "strings"

// Separator joins group names into a path. An empty path is the root.
const Separator = "."

// joinPath appends name to parent with the separator.
func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + Separator + name
}

// resolveGroup returns the group addressed by path below root, or nil when
// any segment names nothing or names a leaf.
func resolveGroup(root *Node, path string) *Node {
	g := root
	if path == "" {
		return g
	}
	for _, seg := range strings.Split(path, Separator) {
		c := g.child(seg)
		if c == nil || c.typ != NodeTypeGroup {
			return nil
		}
		g = c
	}
	return g
}
