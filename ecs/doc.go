// Package ecs provides ECS adapters for layerstack's mutation events.
//
// The primary adapter is [NewDonburiSink], which bridges layer tree
// mutations (add, remove, replace, reset, move, sort, base selection) into
// a [Donburi] world as typed events. Subscribe to [LayerEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	manager.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
