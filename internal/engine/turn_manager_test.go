package engine

import (
	"testing"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

func TestTurnManager_SkipsDespawned(t *testing.T) {
	w := ecs.NewWorld(0)
	a := spawnActor(t, w, domain.Vec2{}, 1)
	b := spawnActor(t, w, domain.Vec2{X: 1}, 1)
	c := spawnActor(t, w, domain.Vec2{X: 2}, 1)

	tm := NewTurnManager()
	tm.Sync(w)
	if tm.Len() != 3 {
		t.Fatalf("Expected 3 actors, got %d", tm.Len())
	}

	w.Despawn(a)
	id, skipped, ok := tm.Current(w)
	if !ok || id != b || skipped != 1 {
		t.Errorf("Current() = %s, %d, %v; want %s, 1, true", id, skipped, ok, b)
	}
	if tm.Len() != 2 {
		t.Errorf("Despawned actor not dropped, len %d", tm.Len())
	}

	tm.EndTurn()
	if id, _, _ := tm.Current(w); id != c {
		t.Errorf("After rotation expected %s, got %s", c, id)
	}

	// Повторный Sync не дублирует и не возвращает мёртвых
	tm.Sync(w)
	if tm.Len() != 2 {
		t.Errorf("Sync duplicated actors, len %d", tm.Len())
	}
}

func TestTurnManager_ConsumeParalysis(t *testing.T) {
	w := ecs.NewWorld(0)
	id := spawnActor(t, w, domain.Vec2{}, 1)
	put(t, w, id, domain.Paralyzed{Turns: 2})

	tm := NewTurnManager()

	tests := []struct {
		name      string
		consumed  bool
		stillHeld bool
	}{
		{"first paralyzed turn", true, true},
		{"last paralyzed turn", true, false},
		{"free again", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tm.ConsumeParalysis(w, id); got != tt.consumed {
				t.Errorf("ConsumeParalysis() = %v, want %v", got, tt.consumed)
			}
			if got := ecs.Has[domain.Paralyzed](w, id); got != tt.stillHeld {
				t.Errorf("Paralyzed present = %v, want %v", got, tt.stillHeld)
			}
		})
	}
}

func TestTurnManager_ZeroParalysisIsCleared(t *testing.T) {
	w := ecs.NewWorld(0)
	id := spawnActor(t, w, domain.Vec2{}, 1)
	put(t, w, id, domain.Paralyzed{Turns: 0})

	tm := NewTurnManager()
	if tm.ConsumeParalysis(w, id) {
		t.Error("Zero-turn paralysis should not consume the turn")
	}
	if ecs.Has[domain.Paralyzed](w, id) {
		t.Error("Zero-turn paralysis should be removed")
	}
}

func TestTurnManager_DebugDump(t *testing.T) {
	w := ecs.NewWorld(0)
	id := spawnActor(t, w, domain.Vec2{}, 1)
	put(t, w, id, domain.Name{Value: "Goblin"})

	tm := NewTurnManager()
	tm.Sync(w)
	dump := tm.DebugDump(w)
	if len(dump) != 1 || dump[0]["name"] != "Goblin" {
		t.Errorf("DebugDump() = %v", dump)
	}
}
