package engine

import "odyssey-engine/internal/ecs"

// ActorQueue хранит порядок ходов. Первый элемент — тот, кто сейчас ходит.
// Ротация round-robin: сходивший уходит в конец.
type ActorQueue struct {
	items []ecs.EntityID
}

func NewActorQueue() *ActorQueue {
	return &ActorQueue{items: make([]ecs.EntityID, 0)}
}

// PushBack ставит актора в конец очереди. Повторная постановка игнорируется.
func (q *ActorQueue) PushBack(id ecs.EntityID) bool {
	if q.Contains(id) {
		return false
	}
	q.items = append(q.items, id)
	return true
}

// Front возвращает актора, который на ходу.
func (q *ActorQueue) Front() (ecs.EntityID, bool) {
	if len(q.items) == 0 {
		return ecs.NilEntityID, false
	}
	return q.items[0], true
}

// Rotate moves the front actor to the back.
func (q *ActorQueue) Rotate() {
	if len(q.items) < 2 {
		return
	}
	front := q.items[0]
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = front
}

// Remove убирает актора из очереди (смерть, деспавн).
func (q *ActorQueue) Remove(id ecs.EntityID) bool {
	for i, item := range q.items {
		if item == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

func (q *ActorQueue) Contains(id ecs.EntityID) bool {
	for _, item := range q.items {
		if item == id {
			return true
		}
	}
	return false
}

func (q *ActorQueue) Len() int { return len(q.items) }

// Snapshot возвращает копию порядка ходов.
func (q *ActorQueue) Snapshot() []ecs.EntityID {
	out := make([]ecs.EntityID, len(q.items))
	copy(out, q.items)
	return out
}
