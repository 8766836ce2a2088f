package ecs

// componentStore is implemented by every typed store so the World can
// bulk-remove an entity's data on despawn.
type componentStore interface {
	remove(id EntityID)
	has(id EntityID) bool
	len() int
}

// ComponentStore is a typed store for one component type. Iteration follows
// insertion order so queries are deterministic across runs.
type ComponentStore[T any] struct {
	data  map[EntityID]*T
	order []EntityID
}

func newComponentStore[T any]() *ComponentStore[T] {
	return &ComponentStore[T]{
		data:  make(map[EntityID]*T, 64),
		order: make([]EntityID, 0, 64),
	}
}

// set inserts or overwrites. Overwrite keeps the original position in order.
func (s *ComponentStore[T]) set(id EntityID, c *T) {
	if _, ok := s.data[id]; !ok {
		s.order = append(s.order, id)
	}
	s.data[id] = c
}

func (s *ComponentStore[T]) get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *ComponentStore[T]) has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *ComponentStore[T]) remove(id EntityID) {
	if _, ok := s.data[id]; !ok {
		return
	}
	delete(s.data, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *ComponentStore[T]) len() int {
	return len(s.data)
}
