package engine

import "odyssey-engine/internal/actions"

// PendingQueue — очередь действий текущего хода. Голова исполняется первой.
type PendingQueue struct {
	items []actions.Action
}

func NewPendingQueue() *PendingQueue {
	return &PendingQueue{items: make([]actions.Action, 0, 8)}
}

// Push добавляет действие в конец очереди.
func (q *PendingQueue) Push(a actions.Action) {
	q.items = append(q.items, a)
}

// PushFront inserts as ahead of everything already queued, keeping their
// relative order: follow-ups resolve before any unrelated queued action.
func (q *PendingQueue) PushFront(as ...actions.Action) {
	if len(as) == 0 {
		return
	}
	merged := make([]actions.Action, 0, len(as)+len(q.items))
	merged = append(merged, as...)
	merged = append(merged, q.items...)
	q.items = merged
}

// Pop снимает действие с головы.
func (q *PendingQueue) Pop() (actions.Action, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	a := q.items[0]
	q.items[0] = nil // избегаем утечки памяти
	q.items = q.items[1:]
	return a, true
}

func (q *PendingQueue) Len() int { return len(q.items) }

// Clear сбрасывает очередь, не удерживая ссылок на отброшенные действия.
func (q *PendingQueue) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}
