package engine

import (
	"odyssey-engine/internal/actions"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
	"odyssey-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Pace задаёт, сколько действий исполняется за один тик игры.
type Pace uint8

const (
	// PaceDrainAll resolves the whole cascade in one tick.
	PaceDrainAll Pace = iota
	// PaceOnePerTick executes at most one action per tick, for animation pacing.
	PaceOnePerTick
)

var paceToString = map[Pace]string{
	PaceDrainAll:   "drain_all",
	PaceOnePerTick: "one_per_tick",
}

func (p Pace) String() string {
	if val, ok := paceToString[p]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParsePace конвертирует строку из конфига в Pace.
func ParsePace(s string) (Pace, bool) {
	for k, v := range paceToString {
		if v == s {
			return k, true
		}
	}
	return PaceDrainAll, false
}

// ResolverState — Idle (очередь пуста) или Draining.
type ResolverState uint8

const (
	StateIdle ResolverState = iota
	StateDraining
)

func (s ResolverState) String() string {
	if s == StateDraining {
		return "DRAINING"
	}
	return "IDLE"
}

// EventSink receives the event of every successfully executed action.
type EventSink interface {
	Publish(ev domain.ActionEvent)
}

// DefaultMaxCascade ограничивает число исполнений за один ход.
const DefaultMaxCascade = 10000

// Resolver drains the pending queue. A failed action is logged and dropped;
// it never aborts the drain. Follow-ups go to the front of the queue.
type Resolver struct {
	queue      *PendingQueue
	sink       EventSink
	pace       Pace
	maxCascade int
	executed   int

	log *logrus.Entry
}

func NewResolver(sink EventSink, pace Pace, maxCascade int) *Resolver {
	if maxCascade <= 0 {
		maxCascade = DefaultMaxCascade
	}
	return &Resolver{
		queue:      NewPendingQueue(),
		sink:       sink,
		pace:       pace,
		maxCascade: maxCascade,
		log:        logger.Log.WithField("component", "resolver"),
	}
}

func (r *Resolver) Pace() Pace { return r.pace }

// SetPace переключает режим. Можно менять между тиками.
func (r *Resolver) SetPace(p Pace) { r.pace = p }

func (r *Resolver) State() ResolverState {
	if r.queue.Len() == 0 {
		return StateIdle
	}
	return StateDraining
}

// Pending возвращает длину очереди.
func (r *Resolver) Pending() int { return r.queue.Len() }

// Enqueue ставит действие в конец очереди (Idle -> Draining).
func (r *Resolver) Enqueue(a actions.Action) {
	if a == nil {
		return
	}
	r.queue.Push(a)
}

// Step executes the head action. It reports false when the queue was empty.
func (r *Resolver) Step(w *ecs.World) bool {
	a, ok := r.queue.Pop()
	if !ok {
		return false
	}

	r.executed++
	followUps, err := a.Execute(w)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"action": a.Kind(),
			"error":  err,
		}).Debug("Action failed, dropped")
	} else {
		r.queue.PushFront(followUps...)
		if r.sink != nil {
			r.sink.Publish(a.Event())
		}
	}

	if r.executed >= r.maxCascade && r.queue.Len() > 0 {
		r.log.WithFields(logrus.Fields{
			"executed": r.executed,
			"dropped":  r.queue.Len(),
		}).Error("Cascade limit reached, pending actions cleared")
		r.queue.Clear()
	}
	if r.queue.Len() == 0 {
		r.executed = 0
	}
	return true
}

// Drain исполняет действия, пока очередь не опустеет. Возвращает число исполнений.
func (r *Resolver) Drain(w *ecs.World) int {
	n := 0
	for r.Step(w) {
		n++
	}
	return n
}

// Tick advances resolution by one game tick according to the pace mode.
func (r *Resolver) Tick(w *ecs.World) int {
	if r.pace == PaceOnePerTick {
		if r.Step(w) {
			return 1
		}
		return 0
	}
	return r.Drain(w)
}

// Reset drops everything pending.
func (r *Resolver) Reset() {
	r.queue.Clear()
	r.executed = 0
}
