package actions

import (
	"fmt"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Travel moves Entity to Target. It does not check obstacles: generators
// filter blocked cells before constructing it.
type Travel struct {
	selectableAction
	Entity ecs.EntityID
	Target domain.Vec2
}

func (a *Travel) Kind() domain.ActionKind { return domain.ActionTravel }

func (a *Travel) Execute(w *ecs.World) ([]Action, error) {
	pos, ok := ecs.Get[domain.Position](w, a.Entity)
	if !ok {
		return nil, fmt.Errorf("travel %s: position: %w", a.Entity, ErrMissingComponent)
	}
	pos.Vec2 = a.Target
	return nil, nil
}

func (a *Travel) Event() domain.ActionEvent {
	return domain.ActionEvent{
		Kind:   domain.EventTravel,
		Action: domain.ActionTravel,
		Entity: a.Entity,
		Target: a.Target,
	}
}

// Score pulls NPCs toward the player character.
func (a *Travel) Score(w *ecs.World) int {
	player, ok := domain.PlayerCharacterPosition(w)
	if !ok {
		return 0
	}
	return domain.TravelScoreBase - a.Target.Manhattan(player)
}
