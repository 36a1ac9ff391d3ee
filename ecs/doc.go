// Package ecs connects a [Donburi] world to a chariot window tree.
//
// Entities carrying [Position] and [Appearance] are stamped into a window
// with [DrawEntities]. Hit-test results are published as [SelectionEvent]s;
// subscribe to [SelectionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	player := ecs.Spawn(world, chariot.Pt(0, 0), chariot.NewGlyph('@', chariot.ColorWhite, chariot.Color{}))
//	ecs.DrawEntities(world, mapWindow, origin)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
