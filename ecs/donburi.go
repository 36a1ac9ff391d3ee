package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/chariot"
)

// Position is an entity's location in world cells.
var Position = donburi.NewComponentType[chariot.Point]()

// Appearance is the glyph drawn for an entity. A transparent background
// keeps whatever the window already shows under the entity.
var Appearance = donburi.NewComponentType[chariot.Glyph]()

func drawable() *donburi.Query {
	return donburi.NewQuery(filter.Contains(Position, Appearance))
}

// Spawn creates an entity at p drawn as g.
func Spawn(world donburi.World, p chariot.Point, g chariot.Glyph) donburi.Entity {
	e := world.Create(Position, Appearance)
	entry := world.Entry(e)
	Position.SetValue(entry, p)
	Appearance.SetValue(entry, g)
	return e
}

// Move shifts an entity's position by delta. It reports false when the
// entity no longer exists or has no Position.
func Move(world donburi.World, e donburi.Entity, delta chariot.Point) bool {
	if !world.Valid(e) {
		return false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(Position) {
		return false
	}
	p := Position.Get(entry)
	*p = p.Add(delta)
	return true
}

// DrawEntities writes the glyph of every drawable entity into w's own
// buffer. World point origin maps to the minimum of w's span. It returns the
// number of entities that landed inside the window.
func DrawEntities(world donburi.World, w chariot.Window[chariot.Glyph], origin chariot.Point) int {
	shift := w.Span().Min.Sub(origin)
	drawn := 0
	drawable().Each(world, func(entry *donburi.Entry) {
		cell := Position.Get(entry).Add(shift)
		g := *Appearance.Get(entry)
		if g.Bg.A == 0 {
			under, ok := w.Get(cell)
			if !ok {
				return
			}
			g.Bg = under.Bg
		}
		if w.Set(cell, g) {
			drawn++
		}
	})
	return drawn
}

// EntityAt returns a drawable entity standing on world point p.
func EntityAt(world donburi.World, p chariot.Point) (donburi.Entity, bool) {
	var hit donburi.Entity
	found := false
	drawable().Each(world, func(entry *donburi.Entry) {
		if !found && *Position.Get(entry) == p {
			hit, found = entry.Entity(), true
		}
	})
	return hit, found
}

// SelectionEvent describes a click resolved through the window tree.
type SelectionEvent struct {
	// WindowID is the id of the window that was hit.
	WindowID string
	// Point is the hit position inside that window.
	Point chariot.Point
	// World is Point translated into world cells.
	World chariot.Point
	// Entity is the entity at World, if HasEntity.
	Entity    donburi.Entity
	HasEntity bool
}

// SelectionEventType is the Donburi event type for selections. Events are
// queued until SelectionEventType.ProcessEvents is called.
var SelectionEventType = events.NewEventType[SelectionEvent]()

// PublishSelection builds a SelectionEvent for point p of window w, whose
// span minimum shows world point origin, and publishes it to world.
func PublishSelection(world donburi.World, w chariot.Window[chariot.Glyph], p, origin chariot.Point) SelectionEvent {
	ev := SelectionEvent{
		WindowID: w.ID(),
		Point:    p,
		World:    p.Sub(w.Span().Min).Add(origin),
	}
	ev.Entity, ev.HasEntity = EntityAt(world, ev.World)
	SelectionEventType.Publish(world, ev)
	return ev
}
