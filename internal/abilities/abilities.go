// Package abilities turns an actor's ability into the concrete actions it
// could take this turn, keyed by target cell.
package abilities

import (
	"odyssey-engine/internal/actions"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Candidate is one ready-to-execute choice. Only Selectable actions can be
// candidates, so follow-up-only actions like Damage never reach a selector.
type Candidate struct {
	Target domain.Vec2
	Action actions.Selectable
}

// Candidates enumerates what entity can do with ability. The order is
// deterministic (direction order, then query order) and the AI breaks score
// ties by it. An entity without a position has no candidates.
func Candidates(w *ecs.World, entity ecs.EntityID, ability domain.Ability) []Candidate {
	origin, ok := domain.PositionOf(w, entity)
	if !ok {
		return nil
	}

	switch ability.Kind {
	case domain.AbilityWalk:
		return walk(w, entity, origin)
	case domain.AbilityMelee:
		return melee(entity, origin, ability)
	case domain.AbilityShoot:
		return shoot(w, origin, ability)
	case domain.AbilityParalyze:
		return paralyze(w, entity, origin, ability)
	case domain.AbilityPlaceBuoy:
		return placeBuoy(w, origin, ability)
	default:
		return nil
	}
}

// Lookup returns the candidate aimed at cell, e.g. the tile the player clicked.
func Lookup(candidates []Candidate, cell domain.Vec2) (actions.Selectable, bool) {
	for _, c := range candidates {
		if c.Target == cell {
			return c.Action, true
		}
	}
	return nil, false
}

// walk never steps onto an Obstacle or another creature.
func walk(w *ecs.World, entity ecs.EntityID, origin domain.Vec2) []Candidate {
	out := make([]Candidate, 0, len(domain.OrthogonalDirs))
	for _, dir := range domain.OrthogonalDirs {
		cell := origin.Add(dir)
		if !isFree(w, cell) {
			continue
		}
		out = append(out, Candidate{Target: cell, Action: &actions.Travel{Entity: entity, Target: cell}})
	}
	return out
}

func melee(entity ecs.EntityID, origin domain.Vec2, ability domain.Ability) []Candidate {
	out := make([]Candidate, 0, len(domain.AllDirs))
	for _, dir := range domain.AllDirs {
		cell := origin.Add(dir)
		out = append(out, Candidate{
			Target: cell,
			Action: &actions.MeleeHit{Entity: entity, Target: cell, Damage: ability.Damage},
		})
	}
	return out
}

func shoot(w *ecs.World, origin domain.Vec2, ability domain.Ability) []Candidate {
	out := make([]Candidate, 0, len(domain.OrthogonalDirs))
	for _, dir := range domain.OrthogonalDirs {
		s := &actions.Shoot{Source: origin, Dir: dir, Dist: rangeOf(ability), Damage: ability.Damage}
		out = append(out, Candidate{Target: s.ImpactCell(w), Action: s})
	}
	return out
}

func paralyze(w *ecs.World, entity ecs.EntityID, origin domain.Vec2, ability domain.Ability) []Candidate {
	var out []Candidate
	for _, id := range ecs.Query[domain.Health](w, ecs.With[domain.Position]()) {
		if id == entity {
			continue
		}
		pos, _ := domain.PositionOf(w, id)
		if pos.Manhattan(origin) > rangeOf(ability) {
			continue
		}
		out = append(out, Candidate{
			Target: pos,
			Action: &actions.Paralyze{Target: id, Turns: ability.Duration},
		})
	}
	return out
}

func placeBuoy(w *ecs.World, origin domain.Vec2, ability domain.Ability) []Candidate {
	out := make([]Candidate, 0, len(domain.OrthogonalDirs))
	for _, dir := range domain.OrthogonalDirs {
		cell := origin.Add(dir)
		if !isFree(w, cell) {
			continue
		}
		out = append(out, Candidate{
			Target: cell,
			Action: &actions.PlaceMarker{Position: cell, Health: ability.Health},
		})
	}
	return out
}

func isFree(w *ecs.World, cell domain.Vec2) bool {
	if domain.IsObstacle(w, cell) {
		return false
	}
	for _, id := range domain.EntitiesAt(w, cell) {
		if ecs.Has[domain.Health](w, id) {
			return false
		}
	}
	return true
}

func rangeOf(ability domain.Ability) int {
	if ability.Range <= 0 {
		return 1
	}
	return ability.Range
}
