package domain

import (
	"strings"

	"odyssey-engine/internal/ecs"
)

// EventKind - Внутренний числовой идентификатор события
type EventKind uint8

const (
	// EventOther — "ничего примечательного"; значение по умолчанию.
	EventOther EventKind = iota
	EventTravel
	EventMelee
)

// Маппинг для конвертации String -> Domain
var eventStringToKind = map[string]EventKind{
	"OTHER":  EventOther,
	"TRAVEL": EventTravel,
	"MELEE":  EventMelee,
}

// Маппинг для логов Domain -> String
var eventKindToString = map[EventKind]string{
	EventOther:  "OTHER",
	EventTravel: "TRAVEL",
	EventMelee:  "MELEE",
}

// ParseEvent конвертирует строку в EventKind. Unknown strings map to EventOther.
func ParseEvent(s string) EventKind {
	if val, ok := eventStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return EventOther
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (k EventKind) String() string {
	if val, ok := eventKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ActionEvent describes what a successfully executed action did, for the
// rendering and audio layers. Entity and Target are meaningful for Travel
// and Melee; Value carries the melee damage.
type ActionEvent struct {
	Kind   EventKind
	Action ActionKind
	Entity ecs.EntityID
	Target Vec2
	Value  uint32
}

// IsNotable reports whether listeners care about the event at all.
func (e ActionEvent) IsNotable() bool {
	return e.Kind != EventOther
}
