package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно для генерации арены.
	Seed    int64
	ShardId uint8
	// Pace — режим разбора очереди действий.
	Pace Pace
	// MaxCascade — предел исполнений за ход (защита от бесконечных каскадов).
	MaxCascade int
	// LogLimit — сколько последних записей хранит журнал хода.
	LogLimit int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:       time.Now().UnixNano(),
		ShardId:    0,
		Pace:       PaceDrainAll,
		MaxCascade: DefaultMaxCascade,
		LogLimit:   200,
	}
}
