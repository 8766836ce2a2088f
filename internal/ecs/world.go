package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrStaleEntity is returned when an operation targets a despawned entity or
// an entity issued by another world.
var ErrStaleEntity = errors.New("stale entity")

// World is an isolated entity store. Each game instance owns exactly one and
// ids never cross worlds: the shard bits of an id must match the world.
//
// World is not safe for concurrent use; the engine drives it from a single
// goroutine per instance.
type World struct {
	pool      *entityPool
	stores    map[reflect.Type]componentStore
	resources map[reflect.Type]any
}

// NewWorld creates an empty world issuing ids for the given shard.
func NewWorld(shard uint8) *World {
	return &World{
		pool:      newEntityPool(shard),
		stores:    make(map[reflect.Type]componentStore),
		resources: make(map[reflect.Type]any),
	}
}

// Shard returns the shard id stamped into every entity of this world.
func (w *World) Shard() uint8 { return w.pool.shard }

// Spawn allocates a new entity without components.
func (w *World) Spawn() EntityID {
	return w.pool.create()
}

// Despawn removes the entity and all its components. The id (and every copy
// of it) stops resolving immediately. Returns false for stale ids.
func (w *World) Despawn(id EntityID) bool {
	if !w.pool.isAlive(id) {
		return false
	}
	for _, s := range w.stores {
		s.remove(id)
	}
	return w.pool.release(id)
}

// Alive reports whether id refers to a live entity of this world.
func (w *World) Alive(id EntityID) bool {
	return w.pool.isAlive(id)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return w.pool.count()
}

func storeOf[T any](w *World, create bool) *ComponentStore[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	s, ok := w.stores[key]
	if !ok {
		if !create {
			return nil
		}
		typed := newComponentStore[T]()
		w.stores[key] = typed
		return typed
	}
	return s.(*ComponentStore[T])
}

// Insert attaches (or overwrites) component c on id.
func Insert[T any](w *World, id EntityID, c T) error {
	if !w.pool.isAlive(id) {
		return fmt.Errorf("insert %T on %s: %w", c, id, ErrStaleEntity)
	}
	storeOf[T](w, true).set(id, &c)
	return nil
}

// Get returns a pointer to the component; writes through it mutate the world.
func Get[T any](w *World, id EntityID) (*T, bool) {
	if !w.pool.isAlive(id) {
		return nil, false
	}
	s := storeOf[T](w, false)
	if s == nil {
		return nil, false
	}
	return s.get(id)
}

// Has reports whether a live id carries component T.
func Has[T any](w *World, id EntityID) bool {
	_, ok := Get[T](w, id)
	return ok
}

// Remove detaches component T. Returns false if it was absent.
func Remove[T any](w *World, id EntityID) bool {
	s := storeOf[T](w, false)
	if s == nil || !s.has(id) {
		return false
	}
	s.remove(id)
	return true
}
