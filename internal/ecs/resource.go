package ecs

import "reflect"

// SetResource stores a world-global singleton (content catalog, rng, ...).
// A later call with the same type replaces it.
func SetResource[T any](w *World, r T) {
	if w.resources == nil {
		w.resources = make(map[reflect.Type]any)
	}
	w.resources[reflect.TypeOf((*T)(nil)).Elem()] = r
}

// Resource returns the singleton of type T, if set.
func Resource[T any](w *World) (T, bool) {
	var zero T
	r, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return zero, false
	}
	return r.(T), true
}
