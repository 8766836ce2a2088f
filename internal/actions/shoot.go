package actions

import (
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Shoot spawns a Projectile aimed along Dir. The projectile itself is landed
// later by an Impact action.
type Shoot struct {
	selectableAction
	Source domain.Vec2
	Dir    domain.Vec2
	Dist   int
	Damage uint32
}

func (a *Shoot) Kind() domain.ActionKind { return domain.ActionShoot }

// ImpactCell walks from Source along Dir for up to Dist cells and stops on
// the first obstacle.
func (a *Shoot) ImpactCell(w *ecs.World) domain.Vec2 {
	obstacles := domain.ObstaclePositions(w)
	target := a.Source
	for i := 1; i <= a.Dist; i++ {
		target = target.Add(a.Dir)
		if _, blocked := obstacles[target]; blocked {
			break
		}
	}
	return target
}

func (a *Shoot) Execute(w *ecs.World) ([]Action, error) {
	target := a.ImpactCell(w)
	id := w.Spawn()
	_ = ecs.Insert(w, id, domain.Projectile{
		Damage: a.Damage,
		Source: a.Source,
		Target: target,
	})
	return nil, nil
}

func (a *Shoot) Event() domain.ActionEvent { return otherEvent(domain.ActionShoot) }

// Score rewards lines of fire that land on the player character.
func (a *Shoot) Score(w *ecs.World) int {
	player, ok := domain.PlayerCharacterPosition(w)
	if !ok {
		return 0
	}
	if a.ImpactCell(w) == player {
		return domain.ShootHitScore
	}
	return domain.ShootMissScore
}
