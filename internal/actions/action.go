// Package actions holds the closed set of game effects. Every action carries
// only the immutable parameters it needs; the world is passed in on execute.
package actions

import (
	"errors"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

var (
	// ErrMissingComponent — у сущности нет компонента, нужного действию.
	ErrMissingComponent = errors.New("missing component")
	// ErrStaleEntity — действие ссылается на уничтоженную сущность.
	ErrStaleEntity = ecs.ErrStaleEntity
)

// Action is one schedulable unit of game effect.
//
// Execute either succeeds and returns follow-up actions, or fails with no
// observable mutation. Failure is an expected outcome (the target may have
// been despawned earlier in the turn). Score is pure and only used while an
// NPC picks among candidates. Event describes the effect for listeners and
// is published only after a successful Execute.
type Action interface {
	Kind() domain.ActionKind
	Execute(w *ecs.World) ([]Action, error)
	Score(w *ecs.World) int
	Event() domain.ActionEvent

	sealed()
}

// Selectable is the subset of actions a selector (player input or AI) may
// choose directly. Damage and Impact only ever appear as follow-ups and do
// not implement it.
type Selectable interface {
	Action
	selectable()
}

// sealedAction provides the defaults: zero score, no notable event.
type sealedAction struct{}

func (sealedAction) sealed() {}

func (sealedAction) Score(*ecs.World) int { return 0 }

type selectableAction struct{ sealedAction }

func (selectableAction) selectable() {}

func otherEvent(kind domain.ActionKind) domain.ActionEvent {
	return domain.ActionEvent{Kind: domain.EventOther, Action: kind}
}
