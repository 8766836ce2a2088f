package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odyssey-engine/internal/content"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
)

func TestDamage_Saturates(t *testing.T) {
	w := ecs.NewWorld(0)
	e := spawnAt(t, w, domain.Vec2{}, domain.Health{Value: 5})

	next, err := (&Damage{Entity: e, Amount: 10}).Execute(w)
	require.NoError(t, err)
	assert.Empty(t, next)
	assert.Equal(t, uint32(0), healthOf(t, w, e))

	_, err = (&Damage{Entity: e, Amount: 1}).Execute(w)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), healthOf(t, w, e), "health must not wrap")
}

func TestDamage_MissingHealth(t *testing.T) {
	w := ecs.NewWorld(0)
	e := spawnAt(t, w, domain.Vec2{})

	_, err := (&Damage{Entity: e, Amount: 1}).Execute(w)
	assert.True(t, errors.Is(err, ErrMissingComponent))
}

func TestMeleeHit_FansOutToHealthOccupants(t *testing.T) {
	w := ecs.NewWorld(0)
	attacker := spawnAt(t, w, domain.Vec2{X: 0, Y: 0}, domain.Health{Value: 5})
	a := spawnAt(t, w, domain.Vec2{X: 1, Y: 0}, domain.Health{Value: 5})
	spawnAt(t, w, domain.Vec2{X: 1, Y: 0}, domain.Item{Kind: domain.ItemGold})
	b := spawnAt(t, w, domain.Vec2{X: 1, Y: 0}, domain.Health{Value: 7})

	hit := &MeleeHit{Entity: attacker, Target: domain.Vec2{X: 1, Y: 0}, Damage: 3}
	next, err := hit.Execute(w)
	require.NoError(t, err)
	require.Len(t, next, 2)

	d0, ok := next[0].(*Damage)
	require.True(t, ok)
	d1, ok := next[1].(*Damage)
	require.True(t, ok)
	assert.Equal(t, a, d0.Entity)
	assert.Equal(t, b, d1.Entity)
	assert.Equal(t, uint32(3), d0.Amount)

	// Execute itself does not touch health.
	assert.Equal(t, uint32(5), healthOf(t, w, a))

	ev := hit.Event()
	assert.Equal(t, domain.EventMelee, ev.Kind)
	assert.Equal(t, attacker, ev.Entity)
	assert.Equal(t, uint32(3), ev.Value)
}

func TestMeleeHit_EmptyCell(t *testing.T) {
	w := ecs.NewWorld(0)
	next, err := (&MeleeHit{Target: domain.Vec2{X: 4, Y: 4}, Damage: 1}).Execute(w)
	require.NoError(t, err)
	assert.Empty(t, next)
}

func TestMeleeHit_Score(t *testing.T) {
	w := ecs.NewWorld(0)
	spawnPlayer(t, w, domain.Vec2{X: 1, Y: 0})
	spawnAt(t, w, domain.Vec2{X: 0, Y: 1}, domain.Health{Value: 3})

	assert.Equal(t, domain.MeleeHitScore, (&MeleeHit{Target: domain.Vec2{X: 1, Y: 0}}).Score(w))
	assert.Equal(t, domain.MeleeMissScore, (&MeleeHit{Target: domain.Vec2{X: 0, Y: 1}}).Score(w))
	assert.Equal(t, domain.MeleeMissScore, (&MeleeHit{Target: domain.Vec2{X: 5, Y: 5}}).Score(w))
}

func TestShoot_StopsAtObstacle(t *testing.T) {
	w := ecs.NewWorld(0)
	spawnAt(t, w, domain.Vec2{X: 3, Y: 0}, domain.Obstacle{})

	s := &Shoot{Source: domain.Vec2{}, Dir: domain.DirRight, Dist: 5, Damage: 2}
	assert.Equal(t, domain.Vec2{X: 3, Y: 0}, s.ImpactCell(w))

	next, err := s.Execute(w)
	require.NoError(t, err)
	assert.Empty(t, next)

	projectiles := ecs.Query[domain.Projectile](w)
	require.Len(t, projectiles, 1)
	p, _ := ecs.Get[domain.Projectile](w, projectiles[0])
	assert.Equal(t, domain.Vec2{X: 3, Y: 0}, p.Target)
	assert.Equal(t, domain.Vec2{}, p.Source)
	assert.Equal(t, uint32(2), p.Damage)
}

func TestShoot_MaxRangeAndScore(t *testing.T) {
	w := ecs.NewWorld(0)
	s := &Shoot{Source: domain.Vec2{}, Dir: domain.DirRight, Dist: 5, Damage: 1}
	assert.Equal(t, domain.Vec2{X: 5, Y: 0}, s.ImpactCell(w))
	assert.Equal(t, 0, s.Score(w), "no player, no score")

	spawnPlayer(t, w, domain.Vec2{X: 5, Y: 0})
	assert.Equal(t, domain.ShootHitScore, s.Score(w))

	short := &Shoot{Source: domain.Vec2{}, Dir: domain.DirRight, Dist: 4, Damage: 1}
	assert.Equal(t, domain.ShootMissScore, short.Score(w))
	assert.Equal(t, 0, ecs.Count[domain.Projectile](w), "Score must not spawn")
}

func TestTravel_ExecuteAndScore(t *testing.T) {
	w := ecs.NewWorld(0)
	spawnPlayer(t, w, domain.Vec2{X: 5, Y: 5})
	npc := spawnAt(t, w, domain.Vec2{X: 0, Y: 0}, domain.Health{Value: 1})

	target := domain.Vec2{X: 1, Y: 0}
	travel := &Travel{Entity: npc, Target: target}
	assert.Equal(t, domain.TravelScoreBase-target.Manhattan(domain.Vec2{X: 5, Y: 5}), travel.Score(w))
	assert.Equal(t, 11, travel.Score(w))

	_, err := travel.Execute(w)
	require.NoError(t, err)
	pos, _ := domain.PositionOf(w, npc)
	assert.Equal(t, target, pos)

	ev := travel.Event()
	assert.Equal(t, domain.EventTravel, ev.Kind)
	assert.Equal(t, target, ev.Target)
}

func TestTravel_MissingPosition(t *testing.T) {
	w := ecs.NewWorld(0)
	e := w.Spawn()
	_, err := (&Travel{Entity: e, Target: domain.Vec2{X: 1}}).Execute(w)
	assert.True(t, errors.Is(err, ErrMissingComponent))
	assert.False(t, ecs.Has[domain.Position](w, e))
}

func TestParalyze(t *testing.T) {
	w := ecs.NewWorld(0)
	e := spawnAt(t, w, domain.Vec2{}, domain.Health{Value: 1})

	_, err := (&Paralyze{Target: e, Turns: 3}).Execute(w)
	require.NoError(t, err)
	_, err = (&Paralyze{Target: e, Turns: 1}).Execute(w)
	require.NoError(t, err)

	p, ok := ecs.Get[domain.Paralyzed](w, e)
	require.True(t, ok)
	assert.Equal(t, uint32(1), p.Turns, "insert overwrites")
	assert.Equal(t, 0, (&Paralyze{Target: e}).Score(w))
}

func TestDespawnedTargetFailsWithoutMutation(t *testing.T) {
	w := ecs.NewWorld(0)
	bystander := spawnAt(t, w, domain.Vec2{}, domain.Health{Value: 4})
	gone := spawnAt(t, w, domain.Vec2{}, domain.Health{Value: 4})
	w.Despawn(gone)

	tests := []struct {
		name   string
		action Action
	}{
		{"damage", &Damage{Entity: gone, Amount: 2}},
		{"paralyze", &Paralyze{Target: gone, Turns: 2}},
		{"travel", &Travel{Entity: gone, Target: domain.Vec2{X: 9}}},
		{"pick item", &PickItem{Entity: gone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := w.Count()
			_, err := tt.action.Execute(w)
			require.Error(t, err)
			assert.Equal(t, count, w.Count())
			assert.Equal(t, uint32(4), healthOf(t, w, bystander))
			assert.False(t, ecs.Has[domain.Paralyzed](w, bystander))
			assert.Equal(t, 0, ecs.Count[domain.Paralyzed](w))
		})
	}
}

func TestPause(t *testing.T) {
	w := ecs.NewWorld(0)
	player := spawnPlayer(t, w, domain.Vec2{})
	npc := spawnAt(t, w, domain.Vec2{X: 2}, domain.Health{Value: 1})

	next, err := (&Pause{Entity: player}).Execute(w)
	require.NoError(t, err)
	require.Len(t, next, 1)
	pick, ok := next[0].(*PickItem)
	require.True(t, ok)
	assert.Equal(t, player, pick.Entity)

	next, err = (&Pause{Entity: npc}).Execute(w)
	require.NoError(t, err)
	assert.Empty(t, next)
}

func TestPickItem_OnlyActorCell(t *testing.T) {
	w := ecs.NewWorld(0)
	player := spawnPlayer(t, w, domain.Vec2{X: 2, Y: 2})
	here1 := spawnAt(t, w, domain.Vec2{X: 2, Y: 2}, domain.Item{Kind: domain.ItemGold})
	here2 := spawnAt(t, w, domain.Vec2{X: 2, Y: 2}, domain.Item{Kind: domain.ItemPotion})
	elsewhere := spawnAt(t, w, domain.Vec2{X: 3, Y: 2}, domain.Item{Kind: domain.ItemRelic})
	scenery := spawnAt(t, w, domain.Vec2{X: 2, Y: 2}, domain.Obstacle{})

	_, err := (&PickItem{Entity: player}).Execute(w)
	require.NoError(t, err)

	assert.False(t, w.Alive(here1))
	assert.False(t, w.Alive(here2))
	assert.True(t, w.Alive(elsewhere))
	assert.True(t, w.Alive(scenery))
	assert.True(t, w.Alive(player))
	assert.Equal(t, 0, (&PickItem{Entity: player}).Score(w))
}

func TestPlaceMarker(t *testing.T) {
	w := ecs.NewWorld(0)
	spawnAt(t, w, domain.Vec2{X: 1}, domain.Obstacle{})

	_, err := (&PlaceMarker{Position: domain.Vec2{X: 1}, Health: 3}).Execute(w)
	assert.True(t, errors.Is(err, content.ErrSpawnBlocked))
	assert.Equal(t, 0, ecs.Count[domain.Player](w))

	_, err = (&PlaceMarker{Position: domain.Vec2{X: 2}, Health: 3}).Execute(w)
	require.NoError(t, err)

	buoys := ecs.Query[domain.Player](w)
	require.Len(t, buoys, 1)
	assert.Equal(t, uint32(3), healthOf(t, w, buoys[0]))
	name, _ := ecs.Get[domain.Name](w, buoys[0])
	assert.Equal(t, domain.PrefabBuoy, name.Value)
	assert.Equal(t, 0, (&PlaceMarker{}).Score(w))
}

func TestImpact(t *testing.T) {
	w := ecs.NewWorld(0)
	target := spawnAt(t, w, domain.Vec2{X: 3}, domain.Health{Value: 6})

	_, err := (&Shoot{Source: domain.Vec2{}, Dir: domain.DirRight, Dist: 3, Damage: 4}).Execute(w)
	require.NoError(t, err)
	proj := ecs.Query[domain.Projectile](w)[0]

	impact := &Impact{Projectile: proj}
	next, err := impact.Execute(w)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.False(t, w.Alive(proj), "projectile consumed")

	dmg := next[0].(*Damage)
	assert.Equal(t, target, dmg.Entity)
	assert.Equal(t, uint32(4), dmg.Amount)

	_, err = impact.Execute(w)
	assert.True(t, errors.Is(err, ErrMissingComponent), "second landing fails")
}

func TestDefaultEvents(t *testing.T) {
	tests := []Action{
		&Shoot{}, &Paralyze{}, &Pause{}, &PlaceMarker{}, &Damage{}, &PickItem{}, &Impact{},
	}
	for _, a := range tests {
		ev := a.Event()
		assert.Equal(t, domain.EventOther, ev.Kind, a.Kind().String())
		assert.Equal(t, a.Kind(), ev.Action)
	}
}
