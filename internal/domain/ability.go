package domain

import (
	"fmt"
	"strings"
)

// AbilityKind — вид способности; определяет, какие действия она порождает.
type AbilityKind uint8

const (
	AbilityUnknown AbilityKind = iota
	AbilityWalk
	AbilityMelee
	AbilityShoot
	AbilityParalyze
	AbilityPlaceBuoy
)

var abilityKindToString = map[AbilityKind]string{
	AbilityWalk:      "Walk",
	AbilityMelee:     "Melee",
	AbilityShoot:     "Shoot",
	AbilityParalyze:  "Paralyze",
	AbilityPlaceBuoy: "PlaceBuoy",
}

var abilityStringToKind = map[string]AbilityKind{
	"WALK":      AbilityWalk,
	"MELEE":     AbilityMelee,
	"SHOOT":     AbilityShoot,
	"PARALYZE":  AbilityParalyze,
	"PLACEBUOY": AbilityPlaceBuoy,
}

// ParseAbilityKind конвертирует строку в AbilityKind (без учёта регистра).
func ParseAbilityKind(s string) AbilityKind {
	if val, ok := abilityStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return AbilityUnknown
}

func (k AbilityKind) String() string {
	if val, ok := abilityKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// UnmarshalText rejects unknown kinds so bad content fails at load time.
func (k *AbilityKind) UnmarshalText(text []byte) error {
	parsed := ParseAbilityKind(string(text))
	if parsed == AbilityUnknown {
		return fmt.Errorf("unknown ability kind %q", text)
	}
	*k = parsed
	return nil
}

func (k AbilityKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Cooldown — перезарядка способности в ходах актора.
type Cooldown struct {
	Base    uint32 `yaml:"base"`
	Current uint32 `yaml:"current"`
}

// Ready reports whether the ability can be used this turn.
func (c *Cooldown) Ready() bool {
	return c == nil || c.Current == 0
}

// Ability is a content-defined capability of an actor. Which fields matter
// depends on Kind: Range for Shoot and Paralyze, Damage for Melee and Shoot,
// Duration for Paralyze, Health for PlaceBuoy.
type Ability struct {
	Kind     AbilityKind `yaml:"kind"`
	Range    int         `yaml:"range"`
	Damage   uint32      `yaml:"damage"`
	Duration uint32      `yaml:"duration"`
	Health   uint32      `yaml:"health"`
	Cooldown *Cooldown   `yaml:"cooldown,omitempty"`
}

// ItemKind — вид предмета.
type ItemKind uint8

const (
	ItemUnknown ItemKind = iota
	ItemGold
	ItemPotion
	ItemRelic
)

var itemKindToString = map[ItemKind]string{
	ItemGold:   "Gold",
	ItemPotion: "Potion",
	ItemRelic:  "Relic",
}

func (k ItemKind) String() string {
	if val, ok := itemKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func (k *ItemKind) UnmarshalText(text []byte) error {
	for kind, name := range itemKindToString {
		if strings.EqualFold(name, string(text)) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown item kind %q", text)
}
