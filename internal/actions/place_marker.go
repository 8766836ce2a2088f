package actions

import (
	"fmt"

	"odyssey-engine/internal/content"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// PlaceMarker spawns an allied buoy with the given health.
type PlaceMarker struct {
	selectableAction
	Position domain.Vec2
	Health   uint32
}

func (a *PlaceMarker) Kind() domain.ActionKind { return domain.ActionPlaceMarker }

func (a *PlaceMarker) Execute(w *ecs.World) ([]Action, error) {
	id, err := content.SpawnWithPosition(w, domain.PrefabBuoy, a.Position)
	if err != nil {
		return nil, fmt.Errorf("place marker: %w", err)
	}
	// Fresh id: inserts cannot fail.
	_ = ecs.Insert(w, id, domain.Player{})
	_ = ecs.Insert(w, id, domain.Health{Value: a.Health})
	return nil, nil
}

func (a *PlaceMarker) Event() domain.ActionEvent { return otherEvent(domain.ActionPlaceMarker) }

// TODO: score buoy placement once allies can draw aggro; until then NPCs never prefer it.
func (a *PlaceMarker) Score(*ecs.World) int { return 0 }
