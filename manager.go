package layerstack

import (
	"slices"
)

// Option adjusts a single Manager call.
type Option func(*callConfig)

type callConfig struct {
	parent   string
	index    int
	hasIndex bool
	noReuse  bool
	deep     bool
}

// InGroup scopes a call to the group at the given dotted path. The default
// is the root. A path that does not resolve to a group turns the call into
// a no-op.
func InGroup(path string) Option {
	return func(c *callConfig) { c.parent = path }
}

// AtIndex sets the insertion index for Add. Negative values insert first,
// values past the end append.
func AtIndex(index int) Option {
	return func(c *callConfig) {
		c.index = index
		c.hasIndex = true
	}
}

// NoReuse makes SetLayers rebuild every node instead of keeping existing
// nodes whose names match.
func NoReuse() Option {
	return func(c *callConfig) { c.noReuse = true }
}

// Deep makes Sort also sort every nested group with the same comparator.
func Deep() Option {
	return func(c *callConfig) { c.deep = true }
}

func resolveOptions(opts []Option) callConfig {
	var c callConfig
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Manager keeps a tree of named layers and the paint order of one pane of a
// [Surface] consistent with it. Every structural call re-derives the full
// paint order with the manager's [StackingStrategy] before returning.
//
// A Manager is not safe for concurrent use; callers serialize access.
type Manager struct {
	surface  Surface
	pane     Pane
	root     *Node
	base     *Node // base layers, below root; nil until the first AddBase
	strategy StackingStrategy
	sink     EventSink
	debug    bool
}

// NewManager returns a manager drawing into the pane named paneName on
// surface, creating the pane if it does not exist yet. An empty paneName
// selects [DefaultPane]. Panics if surface or strategy is nil.
func NewManager(surface Surface, strategy StackingStrategy, paneName string) *Manager {
	if surface == nil {
		panic("layerstack: nil surface")
	}
	if strategy == nil {
		panic("layerstack: nil stacking strategy")
	}
	if paneName == "" {
		paneName = DefaultPane
	}
	pane := surface.Pane(paneName)
	if pane == nil {
		pane = surface.CreatePane(paneName)
	}
	return &Manager{
		surface:  surface,
		pane:     pane,
		root:     newRoot(),
		strategy: strategy,
	}
}

// Root returns the manager's unnamed root group.
func (m *Manager) Root() *Node { return m.root }

// Pane returns the pane the manager draws into.
func (m *Manager) Pane() Pane { return m.pane }

// Strategy returns the manager's stacking strategy.
func (m *Manager) Strategy() StackingStrategy { return m.strategy }

// group resolves path, logging misses.
func (m *Manager) group(path, op string) *Node {
	g := resolveGroup(m.root, path)
	if g == nil {
		Logger().Debug("layerstack: group not found", "op", op, "path", path)
	}
	return g
}

// stackTree returns the tree the strategy walks: the base layers, if any,
// below the root.
func (m *Manager) stackTree() *Node {
	if m.base == nil || len(m.base.children) == 0 {
		return m.root
	}
	return &Node{typ: NodeTypeGroup, children: []*Node{m.base, m.root}}
}

// restack re-applies the full paint order.
func (m *Manager) restack() {
	tree := m.stackTree()
	m.strategy.Restack(tree, m.pane)
	Logger().Debug("layerstack: restack",
		"pane", m.pane.Name(), "strategy", m.strategy, "leaves", countLeaves(tree))
}

// --- Structural edits ---

// Add constructs a node from d, attaches it and inserts it into the
// addressed group (AtIndex, default append). The new node takes the group's
// opacity and visibility. A name already used by a
// sibling makes Add a no-op. Only a malformed descriptor returns an error,
// and then nothing is changed.
func (m *Manager) Add(d Descriptor, opts ...Option) error {
	if err := d.Validate(); err != nil {
		return err
	}
	cfg := resolveOptions(opts)
	g := m.group(cfg.parent, "add")
	if g == nil {
		return nil
	}
	if g.indexOf(d.Name) >= 0 {
		Logger().Debug("layerstack: duplicate name ignored", "path", joinPath(cfg.parent, d.Name))
		return nil
	}
	n := newNode(d)
	n.attach(m.surface, m.pane)
	index := clampInsert(cfg.index, cfg.hasIndex, len(g.children))
	g.insertChild(n, index)
	g.inherit(n)
	if m.debug {
		debugCheckTreeDepth(n)
		debugCheckChildCount(g)
	}
	m.restack()
	m.emit(LayerEvent{Type: EventAdded, Parent: cfg.parent, Name: d.Name, From: index, To: index})
	return nil
}

// Remove detaches the named child of the addressed group and drops it.
func (m *Manager) Remove(name string, opts ...Option) {
	cfg := resolveOptions(opts)
	g := m.group(cfg.parent, "remove")
	if g == nil {
		return
	}
	i := g.indexOf(name)
	if i < 0 {
		return
	}
	g.children[i].detach(m.surface)
	g.removeChildAt(i)
	m.restack()
	m.emit(LayerEvent{Type: EventRemoved, Parent: cfg.parent, Name: name, From: i, To: i})
}

// Reset detaches and drops every child of the addressed group.
func (m *Manager) Reset(opts ...Option) {
	cfg := resolveOptions(opts)
	g := m.group(cfg.parent, "reset")
	if g == nil || len(g.children) == 0 {
		return
	}
	for _, c := range g.children {
		c.detach(m.surface)
	}
	g.clearChildren()
	m.restack()
	m.emit(LayerEvent{Type: EventReset, Parent: cfg.parent})
}

// ReplaceLayer swaps the child named d.Name for a node built from d, keeping
// its index. The old node is detached and the new one takes the group's
// opacity and visibility. Unknown names are a no-op.
func (m *Manager) ReplaceLayer(d Descriptor, opts ...Option) error {
	if err := d.Validate(); err != nil {
		return err
	}
	cfg := resolveOptions(opts)
	g := m.group(cfg.parent, "replace")
	if g == nil {
		return nil
	}
	i := g.indexOf(d.Name)
	if i < 0 {
		return nil
	}
	n := newNode(d)
	g.children[i].detach(m.surface)
	g.replaceChildAt(i, n)
	g.inherit(n)
	n.attach(m.surface, m.pane)
	if m.debug {
		debugCheckTreeDepth(n)
	}
	m.restack()
	m.emit(LayerEvent{Type: EventReplaced, Parent: cfg.parent, Name: d.Name, From: i, To: i})
	return nil
}

// SetLayers replaces the addressed group's children with nodes for ds, in
// ds order. By default a child whose name (and kind) matches a descriptor is
// kept as is: its renderable stays attached and only its properties are
// updated, and groups are reconciled the same way one level down. Children
// with no matching descriptor are detached. NoReuse rebuilds everything.
func (m *Manager) SetLayers(ds []Descriptor, opts ...Option) error {
	cfg := resolveOptions(opts)
	if err := validateList(ds, cfg.parent); err != nil {
		return err
	}
	g := m.group(cfg.parent, "set-layers")
	if g == nil {
		return nil
	}
	for _, n := range g.reconcile(ds, !cfg.noReuse) {
		n.detach(m.surface)
	}
	for _, c := range g.children {
		c.attach(m.surface, m.pane)
		if m.debug {
			debugCheckTreeDepth(c)
		}
	}
	if m.debug {
		debugCheckChildCount(g)
	}
	m.restack()
	m.emit(LayerEvent{Type: EventSetLayers, Parent: cfg.parent})
	return nil
}

// Move moves the child at from to index to within the addressed group. Both
// indices are clamped to the existing range.
func (m *Manager) Move(from, to int, opts ...Option) {
	cfg := resolveOptions(opts)
	g := m.group(cfg.parent, "move")
	if g == nil || len(g.children) == 0 {
		return
	}
	n := len(g.children)
	m.move(g, cfg.parent, clampPosition(from, n), clampPosition(to, n))
}

// BringToFront moves the named child to the top of its group.
func (m *Manager) BringToFront(name string, opts ...Option) {
	cfg := resolveOptions(opts)
	g := m.group(cfg.parent, "bring-to-front")
	if g == nil {
		return
	}
	if i := g.indexOf(name); i >= 0 {
		m.move(g, cfg.parent, i, len(g.children)-1)
	}
}

// BringToBack moves the named child to the bottom of its group.
func (m *Manager) BringToBack(name string, opts ...Option) {
	cfg := resolveOptions(opts)
	g := m.group(cfg.parent, "bring-to-back")
	if g == nil {
		return
	}
	if i := g.indexOf(name); i >= 0 {
		m.move(g, cfg.parent, i, 0)
	}
}

func (m *Manager) move(g *Node, parent string, from, to int) {
	if from == to {
		return
	}
	name := g.children[from].name
	g.moveChild(from, to)
	m.restack()
	m.emit(LayerEvent{Type: EventMoved, Parent: parent, Name: name, From: from, To: to})
}

// Sort stable-sorts the addressed group's children with cmp, which must be a
// total order over nodes (compare names and properties, not renderables).
// With Deep, nested groups are sorted too. A nil cmp is a no-op.
func (m *Manager) Sort(cmp func(a, b *Node) int, opts ...Option) {
	if cmp == nil {
		return
	}
	cfg := resolveOptions(opts)
	g := m.group(cfg.parent, "sort")
	if g == nil {
		return
	}
	sortGroup(g, cmp, cfg.deep)
	m.restack()
	m.emit(LayerEvent{Type: EventSorted, Parent: cfg.parent})
}

func sortGroup(g *Node, cmp func(a, b *Node) int, deep bool) {
	slices.SortStableFunc(g.children, cmp)
	if !deep {
		return
	}
	for _, c := range g.children {
		if c.typ == NodeTypeGroup {
			sortGroup(c, cmp, true)
		}
	}
}

// SortByName orders nodes by name, the default ordering for layer lists.
func SortByName(a, b *Node) int {
	switch {
	case a.name < b.name:
		return -1
	case a.name > b.name:
		return 1
	default:
		return 0
	}
}

// --- Queries ---

// FindByName returns the named child of the addressed group, or nil.
func (m *Manager) FindByName(name string, opts ...Option) *Node {
	cfg := resolveOptions(opts)
	g := resolveGroup(m.root, cfg.parent)
	if g == nil {
		return nil
	}
	return g.child(name)
}

// HasLayer reports whether the addressed group has a child named name.
func (m *Manager) HasLayer(name string, opts ...Option) bool {
	return m.FindByName(name, opts...) != nil
}

// IndexByName returns the index of the named child of the addressed group,
// or -1.
func (m *Manager) IndexByName(name string, opts ...Option) int {
	cfg := resolveOptions(opts)
	g := resolveGroup(m.root, cfg.parent)
	if g == nil {
		return -1
	}
	return g.indexOf(name)
}

// FindByRenderable returns the leaf anywhere in the tree wrapping r, or nil.
func (m *Manager) FindByRenderable(r Renderable) *Node {
	if r == nil {
		return nil
	}
	return m.root.findRenderable(r)
}

// Layers returns a copy of the addressed group's child list, bottom first.
// It returns nil if the path does not resolve.
func (m *Manager) Layers(opts ...Option) []*Node {
	cfg := resolveOptions(opts)
	g := resolveGroup(m.root, cfg.parent)
	if g == nil {
		return nil
	}
	return slices.Clone(g.children)
}

// Attributions returns the distinct non-empty attributions of every attached
// and visible primitive, in stacking order. Hidden layers, including
// unselected base layers, contribute nothing.
func (m *Manager) Attributions() []string {
	var out []string
	seen := make(map[string]struct{})
	walkLeaves(m.stackTree(), func(leaf *Node) {
		if !leaf.attached || leaf.isHidden() {
			return
		}
		Walk(leaf.value, func(r Renderable) {
			a, ok := r.(Attributor)
			if !ok {
				return
			}
			s := a.Attribution()
			if _, dup := seen[s]; s == "" || dup {
				return
			}
			seen[s] = struct{}{}
			out = append(out, s)
		})
	})
	return out
}

// --- Restyle ---

func (m *Manager) setOpacity(name string, opacity float64, opts []Option) {
	if n := m.FindByName(name, opts...); n != nil {
		n.setOpacity(opacity)
	}
}

func (m *Manager) setHidden(name string, hidden bool, opts []Option) {
	if n := m.FindByName(name, opts...); n != nil {
		n.setHidden(hidden)
	}
}

func (m *Manager) setStyle(name string, s Style, opts []Option) {
	if n := m.FindByName(name, opts...); n != nil {
		n.setStyle(s)
	}
}
