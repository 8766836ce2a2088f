package actions

import (
	"fmt"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// PickItem consumes every Item on the actor's cell. Inventory, if any, lives
// in whoever listens to the event.
type PickItem struct {
	selectableAction
	Entity ecs.EntityID
}

func (a *PickItem) Kind() domain.ActionKind { return domain.ActionPickItem }

func (a *PickItem) Execute(w *ecs.World) ([]Action, error) {
	pos, ok := domain.PositionOf(w, a.Entity)
	if !ok {
		return nil, fmt.Errorf("pick item %s: position: %w", a.Entity, ErrMissingComponent)
	}

	var items []ecs.EntityID
	for _, id := range domain.EntitiesAt(w, pos) {
		if ecs.Has[domain.Item](w, id) {
			items = append(items, id)
		}
	}
	for _, id := range items {
		w.Despawn(id)
	}
	return nil, nil
}

func (a *PickItem) Event() domain.ActionEvent { return otherEvent(domain.ActionPickItem) }
