package actions

import (
	"fmt"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Paralyze sets (or overwrites) the target's Paralyzed status.
type Paralyze struct {
	selectableAction
	Target ecs.EntityID
	Turns  uint32
}

func (a *Paralyze) Kind() domain.ActionKind { return domain.ActionParalyze }

func (a *Paralyze) Execute(w *ecs.World) ([]Action, error) {
	if err := ecs.Insert(w, a.Target, domain.Paralyzed{Turns: a.Turns}); err != nil {
		return nil, fmt.Errorf("paralyze: %w", err)
	}
	return nil, nil
}

func (a *Paralyze) Event() domain.ActionEvent { return otherEvent(domain.ActionParalyze) }
