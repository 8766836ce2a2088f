package ecs

// Filter narrows a query. Build them with With and Without.
type Filter func(w *World, id EntityID) bool

// With keeps entities that also carry component U.
func With[U any]() Filter {
	return func(w *World, id EntityID) bool { return Has[U](w, id) }
}

// Without keeps entities that do not carry component U.
func Without[U any]() Filter {
	return func(w *World, id EntityID) bool { return !Has[U](w, id) }
}

// Query returns every entity carrying T that passes all filters, in the
// order T was first inserted. The result is a snapshot: despawning while
// iterating it is safe.
func Query[T any](w *World, filters ...Filter) []EntityID {
	s := storeOf[T](w, false)
	if s == nil {
		return nil
	}
	out := make([]EntityID, 0, len(s.order))
next:
	for _, id := range s.order {
		for _, f := range filters {
			if !f(w, id) {
				continue next
			}
		}
		out = append(out, id)
	}
	return out
}

// First returns the first entity matching the query.
func First[T any](w *World, filters ...Filter) (EntityID, bool) {
	ids := Query[T](w, filters...)
	if len(ids) == 0 {
		return NilEntityID, false
	}
	return ids[0], true
}

// Count returns how many entities carry T.
func Count[T any](w *World) int {
	s := storeOf[T](w, false)
	if s == nil {
		return 0
	}
	return s.len()
}
