package actions

import (
	"fmt"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Impact lands a projectile spawned by Shoot: the projectile is consumed
// and every Health-bearing occupant of its target cell takes its damage.
type Impact struct {
	sealedAction
	Projectile ecs.EntityID
}

func (a *Impact) Kind() domain.ActionKind { return domain.ActionImpact }

func (a *Impact) Execute(w *ecs.World) ([]Action, error) {
	p, ok := ecs.Get[domain.Projectile](w, a.Projectile)
	if !ok {
		return nil, fmt.Errorf("impact %s: projectile: %w", a.Projectile, ErrMissingComponent)
	}
	target, damage := p.Target, p.Damage

	var out []Action
	for _, id := range domain.EntitiesAt(w, target) {
		if ecs.Has[domain.Health](w, id) {
			out = append(out, &Damage{Entity: id, Amount: damage})
		}
	}
	w.Despawn(a.Projectile)
	return out, nil
}

func (a *Impact) Event() domain.ActionEvent { return otherEvent(domain.ActionImpact) }
