package engine

import (
	"testing"

	"odyssey-engine/internal/actions"
	"odyssey-engine/internal/ecs"
)

func TestPendingQueue_PushFront(t *testing.T) {
	q := NewPendingQueue()
	a := &actions.Pause{Entity: ecs.PackEntityID(0, 1, 1)}
	b := &actions.Pause{Entity: ecs.PackEntityID(0, 1, 2)}
	c := &actions.Pause{Entity: ecs.PackEntityID(0, 1, 3)}

	q.Push(a)
	q.PushFront(b, c)
	q.PushFront()

	if q.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", q.Len())
	}
	for i, want := range []actions.Action{b, c, a} {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Errorf("Pop #%d: got %v, want %v", i, got, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue returned an action")
	}
}

func TestPendingQueue_Clear(t *testing.T) {
	q := NewPendingQueue()
	q.Push(&actions.Pause{})
	q.Push(&actions.Pause{})
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
	for i, a := range q.items[:2] {
		if a != nil {
			t.Errorf("Slot %d still holds a dropped action", i)
		}
	}
}

func TestActorQueue(t *testing.T) {
	q := NewActorQueue()
	e1 := ecs.PackEntityID(0, 1, 1)
	e2 := ecs.PackEntityID(0, 1, 2)
	e3 := ecs.PackEntityID(0, 1, 3)

	q.PushBack(e1)
	q.PushBack(e2)
	q.PushBack(e3)
	if q.PushBack(e2) {
		t.Error("Duplicate PushBack should be ignored")
	}
	if q.Len() != 3 {
		t.Errorf("Expected length 3, got %d", q.Len())
	}

	// e1 сходил, уходит в конец
	q.Rotate()
	if front, _ := q.Front(); front != e2 {
		t.Errorf("Expected e2 on turn, got %s", front)
	}

	q.Remove(e3)
	want := []ecs.EntityID{e2, e1}
	got := q.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("Snapshot = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Snapshot[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if q.Contains(e3) {
		t.Error("Removed actor still in queue")
	}

	empty := NewActorQueue()
	empty.Rotate()
	if _, ok := empty.Front(); ok {
		t.Error("Front on empty queue should fail")
	}
}
