package layerstack

import "image/color"

// Renderable is an opaque value drawn by a [Surface]. The manager never
// inspects it beyond the optional capability interfaces below: a renderable
// implements whichever subset its family supports.
type Renderable any

// ZIndexer is implemented by raster-family renderables that order themselves
// by an explicit numeric depth.
type ZIndexer interface {
	SetZIndex(z int)
}

// FrontBringer is implemented by vector-family renderables whose only
// ordering primitive is moving to the end of the native paint order.
type FrontBringer interface {
	BringToFront()
}

// Styler is implemented by renderables that accept a partial style update.
type Styler interface {
	SetStyle(s Style)
}

// OpacitySetter is implemented by renderables with a whole-element opacity.
type OpacitySetter interface {
	SetOpacity(opacity float64)
}

// Attributor is implemented by renderables that carry a source attribution
// (for example a tile provider credit line).
type Attributor interface {
	Attribution() string
}

// Composite is a renderable made of other renderables, such as a feature
// group. Members may themselves be composites.
type Composite interface {
	Members() []Renderable
}

// Collection is a ready-made [Composite]. Member order is paint order.
type Collection struct {
	members []Renderable
}

// NewCollection returns a collection holding the given members.
func NewCollection(members ...Renderable) *Collection {
	return &Collection{members: members}
}

// Members returns the collection's members. The returned slice MUST NOT be
// mutated by the caller.
func (c *Collection) Members() []Renderable {
	return c.members
}

// Add appends r to the collection.
func (c *Collection) Add(r Renderable) {
	c.members = append(c.members, r)
}

// Walk calls fn for every primitive in r, expanding composites depth-first
// in member order. A nil renderable is skipped.
func Walk(r Renderable, fn func(Renderable)) {
	if r == nil {
		return
	}
	if c, ok := r.(Composite); ok {
		for _, m := range c.Members() {
			Walk(m, fn)
		}
		return
	}
	fn(r)
}

// Pane is a named sub-surface that receives attached renderables.
type Pane interface {
	Name() string
}

// VectorPinner is implemented by panes that can lift their vector paint
// layer to a given depth. The raster strategy uses it to keep vectors above
// the whole raster stack.
type VectorPinner interface {
	PinVectors(z int)
}

// Surface is the rendering surface the manager draws onto. It owns panes and
// the attach state of renderables; the manager only calls into it.
type Surface interface {
	// Pane returns the pane with the given name, or nil if none exists.
	Pane(name string) Pane
	// CreatePane creates the named pane. Creating an existing name returns
	// the existing pane.
	CreatePane(name string) Pane
	// AddLayer attaches r (and every member of a composite r) to pane.
	AddLayer(r Renderable, pane Pane)
	// RemoveLayer detaches r (and every member of a composite r).
	RemoveLayer(r Renderable)
}

// Style is a partial style update for vector renderables. Nil colors and
// pointers, and a zero Weight, leave the current value unchanged.
type Style struct {
	Color       color.Color // stroke color
	FillColor   color.Color
	Weight      float64 // stroke width in pixels
	Opacity     *float64
	FillOpacity *float64
}

// Alpha returns a pointer to v, for use in [Style.Opacity] and
// [Style.FillOpacity].
func Alpha(v float64) *float64 {
	return &v
}

// Merge returns s with every field that is set in o replaced by o's value.
func (s Style) Merge(o Style) Style {
	if o.Color != nil {
		s.Color = o.Color
	}
	if o.FillColor != nil {
		s.FillColor = o.FillColor
	}
	if o.Weight != 0 {
		s.Weight = o.Weight
	}
	if o.Opacity != nil {
		v := *o.Opacity
		s.Opacity = &v
	}
	if o.FillOpacity != nil {
		v := *o.FillOpacity
		s.FillOpacity = &v
	}
	return s
}

// NodeType distinguishes the two kinds of tree node.
type NodeType uint8

const (
	NodeTypeLeaf  NodeType = iota // wraps one renderable
	NodeTypeGroup                 // ordered child nodes, no renderable of its own
)

// String returns "leaf" or "group".
func (t NodeType) String() string {
	switch t {
	case NodeTypeLeaf:
		return "leaf"
	case NodeTypeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// DefaultPane is the pane name used when a manager is built with an empty
// pane name.
const DefaultPane = "overlayPane"
