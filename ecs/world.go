package ecs

import "github.com/milk9111/scroller/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, their component stores and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// entityFor rebuilds the live handle for a stored id.
func (w *World) entityFor(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(w.entities.gens) || !w.entities.alive[id-1] {
		return 0, false
	}
	return makeEntity(id, w.entities.gens[id-1]), true
}

func storeFor[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if w == nil || w.stores == nil {
		return nil
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		return nil
	}
	typed, _ := store.(*sparseSet[T])
	return typed
}

func ensureStore[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if s := storeFor(w, kind); s != nil {
		return s
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}
