package dungeon

import (
	"fmt"
	"math/rand"

	"odyssey-engine/internal/content"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

// Options — что и сколько расставить на арене.
type Options struct {
	Wall     string
	Monsters []string
	Items    []string
	Spawners int
	// SpawnerCountdown — через сколько раундов спавнер срабатывает.
	SpawnerCountdown uint32
}

// Populate fills w with the layout's walls and the requested prefabs. The
// player character goes to the layout start; one monster per room except
// the first; items and spawners go to random free floor cells. Every prefab
// name is checked against the catalog before anything is spawned.
func Populate(w *ecs.World, catalog *content.Catalog, l *Layout, rng *rand.Rand, opts Options) (ecs.EntityID, error) {
	names := append([]string{domain.PrefabPlayer, opts.Wall}, opts.Monsters...)
	names = append(names, opts.Items...)
	for _, name := range names {
		if !catalog.Has(name) {
			return ecs.NilEntityID, fmt.Errorf("dungeon: %q: %w", name, content.ErrUnknownPrefab)
		}
	}

	// 1. Стены — только те, что граничат с полом
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.IsWall(x, y) && l.touchesFloor(x, y) {
				if _, err := catalog.Spawn(w, opts.Wall, domain.Vec2{X: x, Y: y}); err != nil {
					return ecs.NilEntityID, err
				}
			}
		}
	}

	// 2. Игрок
	player, err := SpawnPlayer(w, catalog, l.Start)
	if err != nil {
		return ecs.NilEntityID, err
	}
	taken := map[domain.Vec2]bool{l.Start: true}

	// 3. Монстры: по одному в каждой комнате, кроме первой
	if len(opts.Monsters) > 0 {
		for _, room := range l.Rooms[1:] {
			cx, cy := room.Center()
			pos := domain.Vec2{X: cx, Y: cy}
			if taken[pos] {
				continue
			}
			name := opts.Monsters[rng.Intn(len(opts.Monsters))]
			if _, err := catalog.Spawn(w, name, pos); err != nil {
				return ecs.NilEntityID, err
			}
			taken[pos] = true
		}
	}

	free := l.FloorCells()
	pick := func() (domain.Vec2, bool) {
		for len(free) > 0 {
			i := rng.Intn(len(free))
			pos := free[i]
			free = append(free[:i], free[i+1:]...)
			if !taken[pos] {
				taken[pos] = true
				return pos, true
			}
		}
		return domain.Vec2{}, false
	}

	// 4. Предметы
	for _, name := range opts.Items {
		pos, ok := pick()
		if !ok {
			break
		}
		if _, err := catalog.Spawn(w, name, pos); err != nil {
			return ecs.NilEntityID, err
		}
	}

	// 5. Спавнеры монстров
	for i := 0; i < opts.Spawners && len(opts.Monsters) > 0; i++ {
		pos, ok := pick()
		if !ok {
			break
		}
		id := w.Spawn()
		_ = ecs.Insert(w, id, domain.Position{Vec2: pos})
		_ = ecs.Insert(w, id, domain.Spawner{
			Target:    opts.Monsters[rng.Intn(len(opts.Monsters))],
			Countdown: max(opts.SpawnerCountdown, 1),
		})
	}

	return player, nil
}

// SpawnPlayer spawns the Player prefab and tags it as the player character.
func SpawnPlayer(w *ecs.World, catalog *content.Catalog, pos domain.Vec2) (ecs.EntityID, error) {
	id, err := catalog.Spawn(w, domain.PrefabPlayer, pos)
	if err != nil {
		return ecs.NilEntityID, err
	}
	_ = ecs.Insert(w, id, domain.Player{})
	_ = ecs.Insert(w, id, domain.PlayerCharacter{})
	return id, nil
}

func (l *Layout) touchesFloor(x, y int) bool {
	for _, d := range domain.AllDirs {
		if !l.IsWall(x+d.X, y+d.Y) {
			return true
		}
	}
	return false
}
