package ecs

import (
	"github.com/phanxgames/layerstack"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LayerEventType carries layer tree mutations through a Donburi world.
// Events queue up on Publish; subscribers see them when a system calls
// LayerEventType.ProcessEvents, usually once per tick.
var LayerEventType = events.NewEventType[layerstack.LayerEvent]()

// worldSink queues every manager mutation on its world.
type worldSink struct {
	world donburi.World
}

// NewDonburiSink returns a layerstack.EventSink that publishes each
// mutation of the manager it is installed on to LayerEventType in world.
func NewDonburiSink(world donburi.World) layerstack.EventSink {
	return &worldSink{world: world}
}

func (s *worldSink) EmitEvent(e layerstack.LayerEvent) {
	LayerEventType.Publish(s.world, e)
}
