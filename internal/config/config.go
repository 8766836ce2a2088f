// Package config reads the simulation's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Content ContentConfig `toml:"content"`
	Arena   ArenaConfig   `toml:"arena"`
	Journal JournalConfig `toml:"journal"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	Seed       int64  `toml:"seed"` // 0 = случайный
	Shard      uint8  `toml:"shard"`
	Pace       string `toml:"pace"` // "drain_all" или "one_per_tick"
	MaxCascade int    `toml:"max_cascade"`
	Turns      int    `toml:"turns"` // сколько ходов крутит CLI
	LogLimit   int    `toml:"log_limit"`
}

type ContentConfig struct {
	Prefabs string `toml:"prefabs"`
}

type ArenaConfig struct {
	Width    int      `toml:"width"`
	Height   int      `toml:"height"`
	Wall     string   `toml:"wall"`
	Monsters []string `toml:"monsters"`
	Items    []string `toml:"items"`
	Spawners int      `toml:"spawners"`
}

type JournalConfig struct {
	Path string `toml:"path"` // пусто = журнал не пишется
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" или "text"
}

// Load читает файл поверх значений по умолчанию и проверяет результат.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Pace:       "drain_all",
			MaxCascade: 10000,
			Turns:      50,
			LogLimit:   200,
		},
		Content: ContentConfig{
			Prefabs: "data/prefabs.yaml",
		},
		Arena: ArenaConfig{
			Width:    12,
			Height:   9,
			Wall:     "Wall",
			Monsters: []string{"Goblin", "Archer"},
			Items:    []string{"Coin"},
			Spawners: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate проверяет значения, которые движок не умеет чинить сам.
func (c *Config) Validate() error {
	switch c.Engine.Pace {
	case "drain_all", "one_per_tick":
	default:
		return fmt.Errorf("engine.pace %q: want drain_all or one_per_tick", c.Engine.Pace)
	}
	if c.Engine.MaxCascade <= 0 {
		return errors.New("engine.max_cascade must be positive")
	}
	if c.Engine.Turns < 0 {
		return errors.New("engine.turns cannot be negative")
	}
	if c.Arena.Width < 3 || c.Arena.Height < 3 {
		return fmt.Errorf("arena %dx%d is too small", c.Arena.Width, c.Arena.Height)
	}
	if c.Content.Prefabs == "" {
		return errors.New("content.prefabs is required")
	}
	return nil
}
