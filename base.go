package layerstack

import "slices"

// Base layers are mutually exclusive backgrounds stacked below every other
// layer of a manager. At most one is selected at a time. The others stay
// attached but hidden, and drop out of Attributions.

// Bases returns a copy of the base layer list, bottom first.
func (m *Manager) Bases() []*Node {
	if m.base == nil {
		return nil
	}
	return slices.Clone(m.base.children)
}

// SelectedBase returns the selected base layer, or nil.
func (m *Manager) SelectedBase() *Node {
	if m.base == nil {
		return nil
	}
	for _, c := range m.base.children {
		if !c.hidden {
			return c
		}
	}
	return nil
}

func (m *Manager) addBase(d Descriptor, selected bool) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if m.base == nil {
		m.base = newRoot()
	}
	if m.base.indexOf(d.Name) >= 0 {
		Logger().Debug("layerstack: duplicate base ignored", "name", d.Name)
		return nil
	}
	n := newNode(d)
	n.attach(m.surface, m.pane)
	index := len(m.base.children)
	m.base.insertChild(n, index)
	n.setHidden(true)
	m.restack()
	m.emit(LayerEvent{Type: EventBaseAdded, Name: d.Name, From: index, To: index})
	if selected {
		m.selectBase(d.Name)
	}
	return nil
}

func (m *Manager) selectBase(name string) {
	if m.base == nil {
		return
	}
	sel := m.base.child(name)
	if sel == nil || !sel.hidden {
		return
	}
	for _, c := range m.base.children {
		c.setHidden(c != sel)
	}
	m.emit(LayerEvent{Type: EventBaseSelected, Name: name})
}

func (m *Manager) removeBase(name string) {
	if m.base == nil {
		return
	}
	i := m.base.indexOf(name)
	if i < 0 {
		return
	}
	m.base.children[i].detach(m.surface)
	m.base.removeChildAt(i)
	m.restack()
	m.emit(LayerEvent{Type: EventBaseRemoved, Name: name, From: i, To: i})
}

// AddBase adds a base layer built from d above the existing bases. With
// selected it becomes the one shown; otherwise it is added hidden. A name
// already used by another base makes AddBase a no-op.
func (m *RasterManager) AddBase(d Descriptor, selected bool) error {
	return m.addBase(d, selected)
}

// SelectBase shows the named base layer and hides every other base. Unknown
// names are a no-op.
func (m *RasterManager) SelectBase(name string) {
	m.selectBase(name)
}

// RemoveBase detaches and drops the named base layer. Removing the selected
// base leaves no base shown.
func (m *RasterManager) RemoveBase(name string) {
	m.removeBase(name)
}
