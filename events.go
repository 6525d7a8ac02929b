package layerstack

// EventType identifies a kind of tree mutation.
type EventType uint8

const (
	EventAdded     EventType = iota // a layer was inserted
	EventRemoved                    // a layer was removed and detached
	EventReplaced                   // a layer was swapped in place
	EventReset                      // every child of a group was dropped
	EventSetLayers                  // a group's child list was rebuilt
	EventMoved                      // a layer changed index among its siblings
	EventSorted                     // a group's children were sorted
	EventBaseAdded                  // a base layer was added
	EventBaseRemoved                // a base layer was removed and detached
	EventBaseSelected               // a different base layer was selected
)

// String returns a short lowercase name for the event type.
func (t EventType) String() string {
	switch t {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventReplaced:
		return "replaced"
	case EventReset:
		return "reset"
	case EventSetLayers:
		return "set-layers"
	case EventMoved:
		return "moved"
	case EventSorted:
		return "sorted"
	case EventBaseAdded:
		return "base-added"
	case EventBaseRemoved:
		return "base-removed"
	case EventBaseSelected:
		return "base-selected"
	default:
		return "unknown"
	}
}

// LayerEvent describes one effective tree mutation. Calls that resolve to
// nothing emit no event.
type LayerEvent struct {
	Type   EventType
	Parent string // dotted path of the group that changed; "" is the root
	Name   string // affected child, empty for group-wide events
	// Index fields (valid for EventAdded, EventMoved, EventReplaced and the
	// base add and remove events)
	From int
	To   int
}

// EventSink is the interface for optional mutation listeners, such as an ECS
// bridge. When set on a Manager every effective mutation is forwarded.
type EventSink interface {
	EmitEvent(event LayerEvent)
}

// SetEventSink sets the optional mutation listener. Pass nil to remove it.
func (m *Manager) SetEventSink(sink EventSink) {
	m.sink = sink
}

func (m *Manager) emit(e LayerEvent) {
	if m.sink != nil {
		m.sink.EmitEvent(e)
	}
}
