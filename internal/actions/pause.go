package actions

import (
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Pause is a voluntary no-op turn. For the player character it also picks
// up whatever lies on its cell.
type Pause struct {
	selectableAction
	Entity ecs.EntityID
}

func (a *Pause) Kind() domain.ActionKind { return domain.ActionPause }

func (a *Pause) Execute(w *ecs.World) ([]Action, error) {
	if ecs.Has[domain.PlayerCharacter](w, a.Entity) {
		return []Action{&PickItem{Entity: a.Entity}}, nil
	}
	return nil, nil
}

func (a *Pause) Event() domain.ActionEvent { return otherEvent(domain.ActionPause) }
