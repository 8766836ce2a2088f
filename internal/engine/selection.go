package engine

import (
	"odyssey-engine/internal/abilities"
	"odyssey-engine/internal/actions"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// SelectAction returns the highest scoring candidate. Ties go to the one
// seen first, so the outcome depends only on world state and candidate
// order. Scoring never mutates the world.
func SelectAction(w *ecs.World, candidates []abilities.Candidate) (actions.Selectable, bool) {
	idx := bestCandidate(w, candidates)
	if idx < 0 {
		return nil, false
	}
	return candidates[idx].Action, true
}

func bestCandidate(w *ecs.World, candidates []abilities.Candidate) int {
	best := -1
	bestScore := 0
	for i, c := range candidates {
		score := c.Action.Score(w)
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// chooseNPCAction собирает кандидатов всех готовых способностей актора по
// порядку и выбирает лучший. Без кандидатов актор пропускает ход (Pause).
// Второе значение — индекс способности, породившей действие, или -1.
func chooseNPCAction(w *ecs.World, id ecs.EntityID) (actions.Selectable, int) {
	actor, ok := ecs.Get[domain.Actor](w, id)
	if !ok {
		return &actions.Pause{Entity: id}, -1
	}

	var (
		candidates []abilities.Candidate
		sources    []int
	)
	for i, ability := range actor.Abilities {
		if !abilities.Ready(actor, i) {
			continue
		}
		for _, c := range abilities.Candidates(w, id, ability) {
			candidates = append(candidates, c)
			sources = append(sources, i)
		}
	}

	idx := bestCandidate(w, candidates)
	if idx < 0 {
		return &actions.Pause{Entity: id}, -1
	}
	return candidates[idx].Action, sources[idx]
}
