package actions

import (
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// MeleeHit strikes every Health-bearing occupant of Target. It never fails;
// an empty cell yields no follow-ups.
type MeleeHit struct {
	selectableAction
	Entity ecs.EntityID
	Target domain.Vec2
	Damage uint32
}

func (a *MeleeHit) Kind() domain.ActionKind { return domain.ActionMeleeHit }

func (a *MeleeHit) Execute(w *ecs.World) ([]Action, error) {
	var out []Action
	for _, id := range domain.EntitiesAt(w, a.Target) {
		if ecs.Has[domain.Health](w, id) {
			out = append(out, &Damage{Entity: id, Amount: a.Damage})
		}
	}
	return out, nil
}

func (a *MeleeHit) Event() domain.ActionEvent {
	return domain.ActionEvent{
		Kind:   domain.EventMelee,
		Action: domain.ActionMeleeHit,
		Entity: a.Entity,
		Target: a.Target,
		Value:  a.Damage,
	}
}

// Score strongly prefers hitting an ally of the player and penalises
// swinging at a cell without one.
func (a *MeleeHit) Score(w *ecs.World) int {
	for _, id := range domain.EntitiesAt(w, a.Target) {
		if ecs.Has[domain.Player](w, id) {
			return domain.MeleeHitScore
		}
	}
	return domain.MeleeMissScore
}
