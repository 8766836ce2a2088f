package actions

import (
	"testing"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// spawnAt creates an entity at pos with the given extra components.
func spawnAt(t *testing.T, w *ecs.World, pos domain.Vec2, components ...any) ecs.EntityID {
	t.Helper()
	id := w.Spawn()
	if err := ecs.Insert(w, id, domain.Position{Vec2: pos}); err != nil {
		t.Fatalf("insert position: %v", err)
	}
	for _, c := range components {
		var err error
		switch v := c.(type) {
		case domain.Health:
			err = ecs.Insert(w, id, v)
		case domain.Obstacle:
			err = ecs.Insert(w, id, v)
		case domain.Item:
			err = ecs.Insert(w, id, v)
		case domain.Player:
			err = ecs.Insert(w, id, v)
		case domain.PlayerCharacter:
			err = ecs.Insert(w, id, v)
		default:
			t.Fatalf("spawnAt: unsupported component %T", c)
		}
		if err != nil {
			t.Fatalf("insert %T: %v", c, err)
		}
	}
	return id
}

func spawnPlayer(t *testing.T, w *ecs.World, pos domain.Vec2) ecs.EntityID {
	t.Helper()
	return spawnAt(t, w, pos, domain.Player{}, domain.PlayerCharacter{}, domain.Health{Value: 10})
}

func healthOf(t *testing.T, w *ecs.World, id ecs.EntityID) uint32 {
	t.Helper()
	hp, ok := ecs.Get[domain.Health](w, id)
	if !ok {
		t.Fatalf("%s has no health", id)
	}
	return hp.Value
}
