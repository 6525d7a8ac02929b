package ecs

import (
	"testing"

	"github.com/phanxgames/layerstack"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// image is a minimal raster renderable.
type image struct{ z int }

func (i *image) SetZIndex(z int) { i.z = z }

// surface accepts every attach and ignores it.
type surface struct{ panes map[string]layerstack.Pane }

type pane string

func (p pane) Name() string { return string(p) }

func (s *surface) Pane(name string) layerstack.Pane {
	if p, ok := s.panes[name]; ok {
		return p
	}
	return nil
}

func (s *surface) CreatePane(name string) layerstack.Pane {
	if s.panes == nil {
		s.panes = make(map[string]layerstack.Pane)
	}
	s.panes[name] = pane(name)
	return s.panes[name]
}

func (s *surface) AddLayer(layerstack.Renderable, layerstack.Pane) {}
func (s *surface) RemoveLayer(layerstack.Renderable)               {}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []layerstack.LayerEvent
	LayerEventType.Subscribe(world, func(w donburi.World, e layerstack.LayerEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(layerstack.LayerEvent{
		Type:   layerstack.EventAdded,
		Parent: "raster3",
		Name:   "png4",
		From:   1,
		To:     1,
	})

	sink.EmitEvent(layerstack.LayerEvent{
		Type:   layerstack.EventMoved,
		Parent: "raster3.group",
		Name:   "png2",
		From:   0,
		To:     1,
	})

	// Events are queued until processed.
	LayerEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != layerstack.EventAdded || e0.Name != "png4" || e0.Parent != "raster3" {
		t.Errorf("event 0: %+v", e0)
	}

	e1 := received[1]
	if e1.Type != layerstack.EventMoved || e1.From != 0 || e1.To != 1 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_FromManager(t *testing.T) {
	world := donburi.NewWorld()
	m := layerstack.NewRasterManager(&surface{}, "")
	m.SetEventSink(NewDonburiSink(world))

	var types []layerstack.EventType
	LayerEventType.Subscribe(world, func(w donburi.World, e layerstack.LayerEvent) {
		types = append(types, e.Type)
	})

	_ = m.Add(layerstack.Leaf("a", &image{}))
	_ = m.Add(layerstack.Leaf("b", &image{}))
	m.BringToBack("b")
	m.Remove("missing")
	m.Reset()
	events.ProcessAllEvents(world)

	want := []layerstack.EventType{
		layerstack.EventAdded, layerstack.EventAdded, layerstack.EventMoved, layerstack.EventReset,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	LayerEventType.Subscribe(world, func(w donburi.World, e layerstack.LayerEvent) {
		count1++
	})
	LayerEventType.Subscribe(world, func(w donburi.World, e layerstack.LayerEvent) {
		count2++
	})

	sink.EmitEvent(layerstack.LayerEvent{Type: layerstack.EventSorted})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_QueuedUntilProcessed(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var got []layerstack.EventType
	LayerEventType.Subscribe(world, func(w donburi.World, e layerstack.LayerEvent) {
		got = append(got, e.Type)
	})

	sink.EmitEvent(layerstack.LayerEvent{Type: layerstack.EventBaseAdded, Name: "streets"})
	sink.EmitEvent(layerstack.LayerEvent{Type: layerstack.EventBaseSelected, Name: "streets"})
	if len(got) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %v", got)
	}

	LayerEventType.ProcessEvents(world)
	if len(got) != 2 || got[0] != layerstack.EventBaseAdded || got[1] != layerstack.EventBaseSelected {
		t.Errorf("events = %v, want [base-added base-selected]", got)
	}
}
