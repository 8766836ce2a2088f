package main

import (
	"context"
	"math/rand"

	"odyssey-engine/internal/abilities"
	"odyssey-engine/internal/actions"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
	"odyssey-engine/internal/engine"
	"odyssey-engine/internal/systems"
	"odyssey-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Исход прогона для итогового лога.
const (
	OutcomeTurnsDone  = "turns_done"
	OutcomePlayerDead = "player_dead"
	OutcomeIdle       = "idle"
	OutcomeStopped    = "stopped"
)

const visionRadius = 8

// simulation крутит игру без рендера: ввод игрока заменён случайным ботом,
// а смерть и приземление снарядов обрабатываются здесь, снаружи движка.
type simulation struct {
	game   *engine.Game
	player ecs.EntityID
	rng    *rand.Rand
}

func (s *simulation) run(ctx context.Context, turns int) string {
	for s.game.Turn() < turns {
		select {
		case <-ctx.Done():
			return OutcomeStopped
		default:
		}

		switch s.game.RunTurn() {
		case engine.StepIdle:
			return OutcomeIdle
		case engine.StepAwaitingInput:
			s.autoPlay()
			continue
		}

		s.game.LandProjectiles()
		s.reapDead()
		if !s.game.World.Alive(s.player) {
			return OutcomePlayerDead
		}
	}
	return OutcomeTurnsDone
}

// autoPlay идёт к ближайшему видимому предмету, иначе выбирает случайную
// цель активной способности игрока.
// Без кандидатов или на перезарядке игрок пропускает ход.
func (s *simulation) autoPlay() {
	actor, ok := ecs.Get[domain.Actor](s.game.World, s.player)
	pc, _ := ecs.Get[domain.PlayerCharacter](s.game.World, s.player)
	if !ok || pc == nil || pc.ActiveAbility >= len(actor.Abilities) {
		s.game.SubmitPlayerAction(&actions.Pause{Entity: s.player})
		return
	}

	cands := abilities.Candidates(s.game.World, s.player, actor.Abilities[pc.ActiveAbility])
	if len(cands) == 0 || s.rng.Intn(5) == 0 {
		s.game.SubmitPlayerAction(&actions.Pause{Entity: s.player})
		return
	}
	target, ok := s.towardLoot(cands)
	if !ok {
		target = cands[s.rng.Intn(len(cands))].Target
	}
	if origin, _ := domain.PositionOf(s.game.World, s.player); target == origin {
		s.game.SubmitPlayerAction(&actions.Pause{Entity: s.player})
		return
	}
	if _, err := s.game.SelectPlayerTarget(target); err != nil {
		logger.Log.WithError(err).Debug("Player input rejected, pausing")
		s.game.SubmitPlayerAction(&actions.Pause{Entity: s.player})
	}
}

// towardLoot picks the candidate cell closest to the nearest visible item.
// Стоя на предмете, бот подбирает его паузой.
func (s *simulation) towardLoot(cands []abilities.Candidate) (domain.Vec2, bool) {
	origin, ok := domain.PositionOf(s.game.World, s.player)
	if !ok {
		return domain.Vec2{}, false
	}
	items := systems.VisibleWith[domain.Item](s.game.World, systems.ComputeVisible(s.game.World, origin, visionRadius))
	if len(items) == 0 {
		return domain.Vec2{}, false
	}

	goal, _ := domain.PositionOf(s.game.World, items[0])
	for _, id := range items[1:] {
		pos, _ := domain.PositionOf(s.game.World, id)
		if pos.Manhattan(origin) < goal.Manhattan(origin) {
			goal = pos
		}
	}
	if goal == origin {
		return origin, true
	}

	best := cands[0].Target
	for _, c := range cands[1:] {
		if c.Target.Manhattan(goal) < best.Manhattan(goal) {
			best = c.Target
		}
	}
	return best, true
}

// reapDead despawns everything whose health dropped to zero. The engine
// only floors health; dying is up to its consumers.
func (s *simulation) reapDead() {
	for _, id := range ecs.Query[domain.Health](s.game.World) {
		hp, _ := ecs.Get[domain.Health](s.game.World, id)
		if hp.Value > 0 {
			continue
		}
		entry := logger.Log.WithFields(logrus.Fields{"entity_id": id, "turn": s.game.Turn()})
		if name, ok := ecs.Get[domain.Name](s.game.World, id); ok {
			entry = entry.WithField("name", name.Value)
		}
		entry.Info("Entity died")
		s.game.World.Despawn(id)
	}
}
