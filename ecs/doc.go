// Package ecs provides ECS adapters for motion.
//
// The primary adapter is [NewDonburiSink], which forwards every style change
// of an element into a [Donburi] world as a typed [StyleEvent]. Subscribe to
// [StyleEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	unbind := sink.Attach(el)
//	defer unbind()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
