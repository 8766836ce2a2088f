package engine

import (
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
	"odyssey-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TurnManager ведёт очередь ходов поверх мира: знает про деспавн и паралич.
type TurnManager struct {
	queue *ActorQueue
}

func NewTurnManager() *TurnManager {
	return &TurnManager{queue: NewActorQueue()}
}

// AddEntity registers an actor at the back of the turn order.
func (tm *TurnManager) AddEntity(id ecs.EntityID) {
	if tm.queue.PushBack(id) {
		logger.Log.WithField("entity_id", id).Debug("Entity added to TurnManager")
	}
}

// Sync enrolls every live Actor not yet in the queue, in query order.
// Spawned actors (spawner output, content) join at the back.
func (tm *TurnManager) Sync(w *ecs.World) {
	for _, id := range ecs.Query[domain.Actor](w) {
		tm.AddEntity(id)
	}
}

// RemoveEntity убирает сущность из системы ходов.
func (tm *TurnManager) RemoveEntity(id ecs.EntityID) {
	tm.queue.Remove(id)
}

// Current returns the actor on turn. Despawned actors at the front are
// dropped from the queue; skipped reports how many were dropped.
func (tm *TurnManager) Current(w *ecs.World) (id ecs.EntityID, skipped int, ok bool) {
	for {
		front, ok := tm.queue.Front()
		if !ok {
			return ecs.NilEntityID, skipped, false
		}
		if w.Alive(front) {
			return front, skipped, true
		}
		tm.queue.Remove(front)
		skipped++
		logger.Log.WithField("entity_id", front).Debug("Despawned actor dropped from turn order")
	}
}

// ConsumeParalysis decrements the actor's Paralyzed counter and reports
// whether its turn is consumed. The component is removed at zero.
func (tm *TurnManager) ConsumeParalysis(w *ecs.World, id ecs.EntityID) bool {
	p, ok := ecs.Get[domain.Paralyzed](w, id)
	if !ok {
		return false
	}
	if p.Turns == 0 {
		ecs.Remove[domain.Paralyzed](w, id)
		return false
	}
	p.Turns--
	if p.Turns == 0 {
		ecs.Remove[domain.Paralyzed](w, id)
	}
	logger.Log.WithFields(logrus.Fields{
		"entity_id": id,
		"left":      p.Turns,
	}).Debug("Paralyzed actor skips turn")
	return true
}

// EndTurn ротирует очередь: сходивший уходит в конец.
func (tm *TurnManager) EndTurn() {
	tm.queue.Rotate()
}

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// Order возвращает текущий порядок ходов.
func (tm *TurnManager) Order() []ecs.EntityID {
	return tm.queue.Snapshot()
}

// DebugDump возвращает снимок очереди для отладки
func (tm *TurnManager) DebugDump(w *ecs.World) []map[string]interface{} {
	// Пустой слайс, а не nil
	result := make([]map[string]interface{}, 0)

	for i, id := range tm.queue.Snapshot() {
		entry := map[string]interface{}{
			"id":    id,
			"index": i,
			"alive": w.Alive(id),
		}
		if name, ok := ecs.Get[domain.Name](w, id); ok {
			entry["name"] = name.Value
		}
		if p, ok := ecs.Get[domain.Paralyzed](w, id); ok {
			entry["paralyzed"] = p.Turns
		}
		result = append(result, entry)
	}
	return result
}
