package layerstack

// RasterManager is a [Manager] for raster-family renderables (tiles,
// images) ordered by explicit depth. It exposes opacity and visibility.
type RasterManager struct {
	*Manager
}

// NewRasterManager returns a manager using [RasterStrategy].
func NewRasterManager(surface Surface, paneName string) *RasterManager {
	return &RasterManager{Manager: NewManager(surface, RasterStrategy{}, paneName)}
}

// SetOpacity sets the opacity of the named node. For a group every
// descendant gets the value; primitives without opacity are skipped. A
// hidden node remembers the value and applies it on Show.
func (m *RasterManager) SetOpacity(name string, opacity float64, opts ...Option) {
	m.setOpacity(name, opacity, opts)
}

// Hide drives the named node to zero opacity while remembering its opacity.
// Members of a hidden group stay hidden until the group is shown.
func (m *RasterManager) Hide(name string, opts ...Option) {
	m.setHidden(name, true, opts)
}

// Show clears the named node's hidden flag and re-applies visibility to its
// subtree: every member gets its remembered opacity back, except members
// that were hidden on their own, which stay hidden. Calling Show on a shown
// node re-applies the same way.
func (m *RasterManager) Show(name string, opts ...Option) {
	m.setHidden(name, false, opts)
}

// IsShown reports whether the named node exists and neither it nor any of
// its groups is hidden.
func (m *RasterManager) IsShown(name string, opts ...Option) bool {
	n := m.FindByName(name, opts...)
	return n != nil && !n.isHidden()
}
