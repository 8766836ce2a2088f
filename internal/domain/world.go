package domain

import "odyssey-engine/internal/ecs"

// EntitiesAt возвращает все сущности в клетке, в порядке появления Position.
func EntitiesAt(w *ecs.World, pos Vec2) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range ecs.Query[Position](w) {
		if p, ok := ecs.Get[Position](w, id); ok && p.Vec2 == pos {
			out = append(out, id)
		}
	}
	return out
}

// PlayerCharacterPosition returns the cell of the player character, if one
// is spawned and positioned.
func PlayerCharacterPosition(w *ecs.World) (Vec2, bool) {
	id, ok := ecs.First[PlayerCharacter](w, ecs.With[Position]())
	if !ok {
		return Vec2{}, false
	}
	p, _ := ecs.Get[Position](w, id)
	return p.Vec2, true
}

// ObstaclePositions collects the cells of every positioned Obstacle.
func ObstaclePositions(w *ecs.World) map[Vec2]struct{} {
	ids := ecs.Query[Obstacle](w, ecs.With[Position]())
	out := make(map[Vec2]struct{}, len(ids))
	for _, id := range ids {
		p, _ := ecs.Get[Position](w, id)
		out[p.Vec2] = struct{}{}
	}
	return out
}

// IsObstacle reports whether an Obstacle occupies pos.
func IsObstacle(w *ecs.World, pos Vec2) bool {
	for _, id := range EntitiesAt(w, pos) {
		if ecs.Has[Obstacle](w, id) {
			return true
		}
	}
	return false
}

// PositionOf is a convenience accessor for the entity's cell.
func PositionOf(w *ecs.World, id ecs.EntityID) (Vec2, bool) {
	p, ok := ecs.Get[Position](w, id)
	if !ok {
		return Vec2{}, false
	}
	return p.Vec2, true
}
