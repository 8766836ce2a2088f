package actions

import (
	"fmt"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Damage lowers the target's health, flooring at zero. It only ever appears
// as a follow-up of MeleeHit or Impact.
type Damage struct {
	sealedAction
	Entity ecs.EntityID
	Amount uint32
}

func (a *Damage) Kind() domain.ActionKind { return domain.ActionDamage }

func (a *Damage) Execute(w *ecs.World) ([]Action, error) {
	hp, ok := ecs.Get[domain.Health](w, a.Entity)
	if !ok {
		return nil, fmt.Errorf("damage %s: health: %w", a.Entity, ErrMissingComponent)
	}
	hp.Value = saturatingSub(hp.Value, a.Amount)
	return nil, nil
}

func (a *Damage) Event() domain.ActionEvent { return otherEvent(domain.ActionDamage) }

func saturatingSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}
