package layerstack

// VectorManager is a [Manager] for vector-family renderables (paths,
// shapes) ordered by native paint order. It exposes styling.
type VectorManager struct {
	*Manager
}

// NewVectorManager returns a manager using [VectorStrategy].
func NewVectorManager(surface Surface, paneName string) *VectorManager {
	return &VectorManager{Manager: NewManager(surface, VectorStrategy{}, paneName)}
}

// SetStyle applies a partial style to the named node. For a group every
// descendant gets the update; primitives without styling are skipped.
func (m *VectorManager) SetStyle(name string, s Style, opts ...Option) {
	m.setStyle(name, s, opts)
}
