package abilities

import "odyssey-engine/internal/domain"

// Ready reports whether the actor's ability at index can be used now.
func Ready(actor *domain.Actor, index int) bool {
	if actor == nil || index < 0 || index >= len(actor.Abilities) {
		return false
	}
	return actor.Abilities[index].Cooldown.Ready()
}

// Use puts the ability on cooldown after it was chosen.
func Use(actor *domain.Actor, index int) {
	if actor == nil || index < 0 || index >= len(actor.Abilities) {
		return
	}
	if cd := actor.Abilities[index].Cooldown; cd != nil {
		cd.Current = cd.Base
	}
}

// TickCooldowns decrements every running cooldown by one turn.
func TickCooldowns(actor *domain.Actor) {
	if actor == nil {
		return
	}
	for _, ab := range actor.Abilities {
		if ab.Cooldown != nil && ab.Cooldown.Current > 0 {
			ab.Cooldown.Current--
		}
	}
}
