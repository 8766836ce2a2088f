package domain

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// --- DATA COMPONENTS (загружаются из yaml) ---

// AP — очки действия актора.
type AP struct {
	Max     uint32 `yaml:"max"`
	Current uint32 `yaml:"current"`
}

// Actor marks an entity that takes turns. Abilities are enumerated in order
// by the AI, so their order is part of tie-breaking.
type Actor struct {
	Abilities []Ability `yaml:"abilities"`
	AP        AP        `yaml:"ap"`
}

// Fixture — неподвижная мебель клетки.
type Fixture struct{}

// Health is a non-negative hit point counter. In yaml it is a bare integer.
type Health struct {
	Value uint32
}

func (h *Health) UnmarshalYAML(node *yaml.Node) error {
	v, err := strconv.ParseUint(node.Value, 10, 32)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	h.Value = uint32(v)
	return nil
}

// Item marks something the player character can pick up.
type Item struct {
	Kind ItemKind
}

func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	return i.Kind.UnmarshalText([]byte(node.Value))
}

// Obstacle blocks travel and lines of fire.
type Obstacle struct{}

type Tile struct{}

type ViewBlocker struct{}

type Vortex struct{}

// --- CONTEXT COMPONENTS (создаются движком) ---

// Name — имя префаба, из которого создана сущность.
type Name struct {
	Value string
}

// Player marks allied entities: the player character and everything spawned
// on its behalf (buoys). Many can exist.
type Player struct{}

// PlayerCharacter marks the single entity driven by input.
type PlayerCharacter struct {
	ActiveAbility int
}

// Paralyzed — актор пропускает ходы, пока Turns > 0.
type Paralyzed struct {
	Turns uint32
}

// Projectile is spawned by Shoot and landed later by an Impact action.
type Projectile struct {
	Damage uint32
	Source Vec2
	Target Vec2
}

// Position — клетка, в которой находится сущность.
type Position struct {
	Vec2
}

// Spawner spawns the Target prefab on its cell once Countdown reaches zero.
type Spawner struct {
	Target    string
	Countdown uint32
}

// Clone deep-copies the ability list so spawned actors never share cooldowns.
func (a Actor) Clone() Actor {
	out := Actor{AP: a.AP, Abilities: make([]Ability, len(a.Abilities))}
	for i, ab := range a.Abilities {
		if ab.Cooldown != nil {
			cd := *ab.Cooldown
			ab.Cooldown = &cd
		}
		out.Abilities[i] = ab
	}
	return out
}
