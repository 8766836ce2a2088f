package domain

import "strings"

// ActionKind - Внутренний числовой идентификатор варианта действия
type ActionKind uint8

const (
	ActionUnknown ActionKind = iota
	ActionTravel
	ActionShoot
	ActionParalyze
	ActionPause
	ActionPlaceMarker
	ActionMeleeHit
	ActionDamage
	ActionPickItem
	ActionImpact
)

// Маппинг для конвертации String -> Domain
var actionStringToKind = map[string]ActionKind{
	"TRAVEL":       ActionTravel,
	"SHOOT":        ActionShoot,
	"PARALYZE":     ActionParalyze,
	"PAUSE":        ActionPause,
	"PLACE_MARKER": ActionPlaceMarker,
	"MELEE_HIT":    ActionMeleeHit,
	"DAMAGE":       ActionDamage,
	"PICK_ITEM":    ActionPickItem,
	"IMPACT":       ActionImpact,
}

// Маппинг для логов Domain -> String
var actionKindToString = map[ActionKind]string{
	ActionTravel:      "TRAVEL",
	ActionShoot:       "SHOOT",
	ActionParalyze:    "PARALYZE",
	ActionPause:       "PAUSE",
	ActionPlaceMarker: "PLACE_MARKER",
	ActionMeleeHit:    "MELEE_HIT",
	ActionDamage:      "DAMAGE",
	ActionPickItem:    "PICK_ITEM",
	ActionImpact:      "IMPACT",
}

// ParseAction конвертирует строку в ActionKind
func ParseAction(s string) ActionKind {
	// Делаем нечувствительным к регистру для надежности
	if val, ok := actionStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionKind) String() string {
	if val, ok := actionKindToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
