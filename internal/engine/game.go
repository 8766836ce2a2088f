package engine

import (
	"errors"
	"fmt"

	"odyssey-engine/internal/abilities"
	"odyssey-engine/internal/actions"
	"odyssey-engine/internal/content"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
	"odyssey-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoPlayer          = errors.New("no player character")
	ErrNoAbility         = errors.New("no such ability")
	ErrAbilityOnCooldown = errors.New("ability on cooldown")
	ErrNoCandidate       = errors.New("no action targets this cell")
)

// StepResult говорит вызывающему, что произошло за тик.
type StepResult uint8

const (
	// StepIdle — в очереди ходов никого нет.
	StepIdle StepResult = iota
	// StepResolving — каскад ещё не разобран (пошаговый режим).
	StepResolving
	// StepTurnEnded — очередь опустела, ход передан следующему.
	StepTurnEnded
	// StepAwaitingInput — ходит игрок, а действие не выбрано.
	StepAwaitingInput
	// StepSkipped — ход съеден параличом.
	StepSkipped
)

var stepResultToString = map[StepResult]string{
	StepIdle:          "IDLE",
	StepResolving:     "RESOLVING",
	StepTurnEnded:     "TURN_ENDED",
	StepAwaitingInput: "AWAITING_INPUT",
	StepSkipped:       "SKIPPED",
}

func (r StepResult) String() string {
	if val, ok := stepResultToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}

// playerChoice — действие игрока и способность, которой оно выбрано.
type playerChoice struct {
	action  actions.Selectable
	ability int
}

// Game представляет собой один изолированный мир со своей очередью ходов.
// Не потокобезопасен: всё состояние меняется из одного цикла.
type Game struct {
	World    *ecs.World
	Turns    *TurnManager
	Resolver *Resolver
	Events   *EventHub
	Config   Config

	Logs []LogEntry

	turn   int
	onTurn ecs.EntityID
	choice *playerChoice

	log *logrus.Entry
}

// NewGame creates an empty world. A non-nil catalog is installed as a world
// resource so actions can spawn prefabs.
func NewGame(cfg Config, catalog *content.Catalog) *Game {
	w := ecs.NewWorld(cfg.ShardId)
	if catalog != nil {
		ecs.SetResource(w, catalog)
	}

	hub := NewEventHub()
	g := &Game{
		World:    w,
		Turns:    NewTurnManager(),
		Resolver: NewResolver(hub, cfg.Pace, cfg.MaxCascade),
		Events:   hub,
		Config:   cfg,
		Logs:     make([]LogEntry, 0),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"shard":     cfg.ShardId,
		}),
	}
	hub.SubscribeFunc(g.logEvent)
	return g
}

// Turn возвращает номер текущего хода (сколько ходов завершено).
func (g *Game) Turn() int { return g.turn }

// Step advances the game by one tick.
func (g *Game) Step() StepResult {
	if g.Resolver.State() == StateDraining {
		return g.resolve()
	}

	g.Turns.Sync(g.World)
	id, skipped, ok := g.Turns.Current(g.World)
	if skipped > 0 {
		g.log.WithFields(logrus.Fields{
			"dropped": skipped,
			"queue":   g.Turns.DebugDump(g.World),
		}).Debug("Skipped despawned actors")
	}
	if !ok {
		return StepIdle
	}

	if g.onTurn != id {
		g.onTurn = id
		if actor, ok := ecs.Get[domain.Actor](g.World, id); ok {
			abilities.TickCooldowns(actor)
		}
		if g.Turns.ConsumeParalysis(g.World, id) {
			g.endTurn()
			return StepSkipped
		}
	}

	var (
		action  actions.Selectable
		ability int
	)
	if ecs.Has[domain.PlayerCharacter](g.World, id) {
		if g.choice == nil {
			return StepAwaitingInput
		}
		action, ability = g.choice.action, g.choice.ability
		g.choice = nil
	} else {
		action, ability = chooseNPCAction(g.World, id)
	}

	if ability >= 0 {
		if actor, ok := ecs.Get[domain.Actor](g.World, id); ok {
			abilities.Use(actor, ability)
		}
	}
	g.log.WithFields(logrus.Fields{
		"actor":  id,
		"action": action.Kind(),
	}).Debug("Action selected")

	g.Resolver.Enqueue(action)
	return g.resolve()
}

// RunTurn steps until the current turn ends or input is needed.
func (g *Game) RunTurn() StepResult {
	for {
		res := g.Step()
		if res != StepResolving {
			return res
		}
	}
}

func (g *Game) resolve() StepResult {
	g.Resolver.Tick(g.World)
	if g.Resolver.State() == StateDraining {
		return StepResolving
	}
	g.endTurn()
	return StepTurnEnded
}

func (g *Game) endTurn() {
	ended := g.onTurn
	if ecs.Has[domain.PlayerCharacter](g.World, ended) {
		g.tickSpawners()
	}

	if g.World.Alive(ended) {
		g.Turns.EndTurn()
	} else {
		g.Turns.RemoveEntity(ended)
	}
	g.onTurn = ecs.NilEntityID
	g.turn++
}

// tickSpawners отсчитывает таймеры спавнеров раз в раунд (по концу хода игрока).
func (g *Game) tickSpawners() {
	for _, id := range ecs.Query[domain.Spawner](g.World, ecs.With[domain.Position]()) {
		sp, _ := ecs.Get[domain.Spawner](g.World, id)
		if sp.Countdown > 0 {
			sp.Countdown--
		}
		if sp.Countdown > 0 {
			continue
		}

		pos, _ := domain.PositionOf(g.World, id)
		target := sp.Target
		spawned, err := content.SpawnWithPosition(g.World, target, pos)
		if err != nil {
			// клетка занята — пробуем в следующем раунде
			g.log.WithFields(logrus.Fields{
				"spawner": id,
				"prefab":  target,
				"error":   err,
			}).Debug("Spawn postponed")
			continue
		}
		g.World.Despawn(id)
		g.AddLog(fmt.Sprintf("%s appears at %s", target, pos), "SPAWN")
		g.log.WithFields(logrus.Fields{
			"entity_id": spawned,
			"prefab":    target,
		}).Debug("Spawner fired")
	}
}

// LandProjectiles enqueues an Impact for every live projectile. When no turn
// is resolving they are drained at once.
func (g *Game) LandProjectiles() int {
	ids := ecs.Query[domain.Projectile](g.World)
	if len(ids) == 0 {
		return 0
	}
	idle := g.Resolver.State() == StateIdle
	for _, id := range ids {
		g.Resolver.Enqueue(&actions.Impact{Projectile: id})
	}
	if idle {
		g.Resolver.Drain(g.World)
	}
	return len(ids)
}

// SetActiveAbility выбирает способность игрока для последующих кликов.
func (g *Game) SetActiveAbility(index int) error {
	_, pc, actor, err := g.player()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(actor.Abilities) {
		return fmt.Errorf("set ability %d: %w", index, ErrNoAbility)
	}
	pc.ActiveAbility = index
	return nil
}

// SelectPlayerTarget resolves a clicked cell through the player's active
// ability and stores the action for the player's turn.
func (g *Game) SelectPlayerTarget(cell domain.Vec2) (actions.Selectable, error) {
	id, pc, actor, err := g.player()
	if err != nil {
		return nil, err
	}
	index := pc.ActiveAbility
	if index < 0 || index >= len(actor.Abilities) {
		return nil, fmt.Errorf("ability %d: %w", index, ErrNoAbility)
	}
	if !abilities.Ready(actor, index) {
		return nil, fmt.Errorf("%s: %w", actor.Abilities[index].Kind, ErrAbilityOnCooldown)
	}

	candidates := abilities.Candidates(g.World, id, actor.Abilities[index])
	action, ok := abilities.Lookup(candidates, cell)
	if !ok {
		return nil, fmt.Errorf("%s at %s: %w", actor.Abilities[index].Kind, cell, ErrNoCandidate)
	}
	g.choice = &playerChoice{action: action, ability: index}
	return action, nil
}

// SubmitPlayerAction stores a ready-made action (e.g. Pause) for the player's
// turn. It bypasses abilities, so no cooldown is started.
func (g *Game) SubmitPlayerAction(a actions.Selectable) {
	if a == nil {
		g.choice = nil
		return
	}
	g.choice = &playerChoice{action: a, ability: -1}
}

func (g *Game) player() (ecs.EntityID, *domain.PlayerCharacter, *domain.Actor, error) {
	id, ok := ecs.First[domain.PlayerCharacter](g.World)
	if !ok {
		return ecs.NilEntityID, nil, nil, ErrNoPlayer
	}
	pc, _ := ecs.Get[domain.PlayerCharacter](g.World, id)
	actor, ok := ecs.Get[domain.Actor](g.World, id)
	if !ok {
		return id, nil, nil, fmt.Errorf("player %s actor: %w", id, actions.ErrMissingComponent)
	}
	return id, pc, actor, nil
}

// Close освобождает подписчиков.
func (g *Game) Close() {
	g.log.WithField("subscribers", g.Events.SubscriberCount()).Debug("Closing event hub")
	g.Events.Close()
}
