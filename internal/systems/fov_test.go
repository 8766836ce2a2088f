package systems

import (
	"testing"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

func place(t *testing.T, w *ecs.World, pos domain.Vec2, blocker bool) ecs.EntityID {
	t.Helper()
	id := w.Spawn()
	if err := ecs.Insert(w, id, domain.Position{Vec2: pos}); err != nil {
		t.Fatal(err)
	}
	if blocker {
		if err := ecs.Insert(w, id, domain.ViewBlocker{}); err != nil {
			t.Fatal(err)
		}
	}
	return id
}

func TestComputeVisible_OpenField(t *testing.T) {
	w := ecs.NewWorld(0)
	visible := ComputeVisible(w, domain.Vec2{}, 3)

	tests := []struct {
		cell domain.Vec2
		want bool
	}{
		{domain.Vec2{}, true},
		{domain.Vec2{X: 2}, true},
		{domain.Vec2{X: -1, Y: -1}, true},
		{domain.Vec2{X: 5}, false}, // за радиусом
	}
	for _, tt := range tests {
		if visible[tt.cell] != tt.want {
			t.Errorf("visible[%s] = %v, want %v", tt.cell, visible[tt.cell], tt.want)
		}
	}
}

func TestComputeVisible_WallCastsShadow(t *testing.T) {
	w := ecs.NewWorld(0)
	place(t, w, domain.Vec2{X: 1}, true)

	visible := ComputeVisible(w, domain.Vec2{}, 5)
	if !visible[domain.Vec2{X: 1}] {
		t.Error("The wall itself should be visible")
	}
	if visible[domain.Vec2{X: 3}] {
		t.Error("Cell behind the wall should be hidden")
	}
	if !visible[domain.Vec2{X: -3}] {
		t.Error("Cell on the open side should be visible")
	}
}

func TestComputeVisible_Blind(t *testing.T) {
	w := ecs.NewWorld(0)
	if got := ComputeVisible(w, domain.Vec2{}, 0); len(got) != 0 {
		t.Errorf("Blind observer sees %d cells", len(got))
	}
}

func TestVisibleWith(t *testing.T) {
	w := ecs.NewWorld(0)
	place(t, w, domain.Vec2{X: 1}, true)
	hidden := place(t, w, domain.Vec2{X: 3}, false)
	seen := place(t, w, domain.Vec2{Y: 2}, false)
	for _, id := range []ecs.EntityID{hidden, seen} {
		if err := ecs.Insert(w, id, domain.Item{Kind: domain.ItemGold}); err != nil {
			t.Fatal(err)
		}
	}

	got := VisibleWith[domain.Item](w, ComputeVisible(w, domain.Vec2{}, 5))
	if len(got) != 1 || got[0] != seen {
		t.Errorf("VisibleWith() = %v, want [%s]", got, seen)
	}
}
