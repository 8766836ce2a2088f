// Package storage persists the event journal of a simulation run: every
// event the engine emitted, tagged with the turn it happened in. Two runs
// with the same seed and content must produce identical journals.
package storage

import (
	"time"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Record — одно событие журнала.
type Record struct {
	Turn  int
	Event domain.ActionEvent
}

// Session — журнал одного прогона.
type Session struct {
	Seed      int64
	Shard     uint8
	Timestamp int64
	Records   []Record
}

func NewSession(seed int64, shard uint8) *Session {
	return &Session{
		Seed:      seed,
		Shard:     shard,
		Timestamp: time.Now().Unix(),
		Records:   make([]Record, 0),
	}
}

// Append добавляет событие хода turn.
func (s *Session) Append(turn int, ev domain.ActionEvent) {
	s.Records = append(s.Records, Record{Turn: turn, Event: ev})
}

// SameEvents reports whether both sessions hold the same event sequence.
// Timestamps and seeds are not compared.
func (s *Session) SameEvents(other *Session) bool {
	if len(s.Records) != len(other.Records) {
		return false
	}
	for i := range s.Records {
		if s.Records[i] != other.Records[i] {
			return false
		}
	}
	return true
}

// Count возвращает число событий данного вида действия.
func (s *Session) Count(kind domain.ActionKind) int {
	n := 0
	for _, r := range s.Records {
		if r.Event.Action == kind {
			n++
		}
	}
	return n
}

func recordFromFrame(f eventFrame) Record {
	return Record{
		Turn: int(f.Turn),
		Event: domain.ActionEvent{
			Kind:   domain.EventKind(f.Kind),
			Action: domain.ActionKind(f.Action),
			Entity: ecs.EntityID(f.Entity),
			Target: domain.Vec2{X: int(f.TargetX), Y: int(f.TargetY)},
			Value:  f.Value,
		},
	}
}

func frameFromRecord(r Record) eventFrame {
	return eventFrame{
		Turn:    int32(r.Turn),
		Kind:    uint8(r.Event.Kind),
		Action:  uint8(r.Event.Action),
		Entity:  uint64(r.Event.Entity),
		TargetX: int32(r.Event.Target.X),
		TargetY: int32(r.Event.Target.Y),
		Value:   r.Event.Value,
	}
}
