package domain

// Веса полезности для выбора действий NPC.
const (
	// TravelScoreBase - score of a Travel is TravelScoreBase minus the
	// manhattan distance from its target to the player character.
	TravelScoreBase = 20

	ShootHitScore  = 100
	ShootMissScore = 0

	MeleeHitScore  = 200
	MeleeMissScore = -50
)

// Имена префабов, которые движок создаёт сам.
const (
	PrefabBuoy   = "Buoy"
	PrefabPlayer = "Player"
)
