package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"odyssey-engine/internal/config"
	"odyssey-engine/internal/content"
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/engine"
	"odyssey-engine/internal/infrastructure/storage"
	"odyssey-engine/internal/version"
	"odyssey-engine/pkg/dungeon"
	"odyssey-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Флаги. Заданные явно важнее файла конфигурации.
	var (
		configPath  string
		contentPath string
		journalDir  string
		pace        string
		seed        int64
		turns       int
	)
	flag.StringVar(&configPath, "config", "", "Path to TOML config (defaults are used when empty)")
	flag.StringVar(&contentPath, "content", "", "Path to prefab yaml")
	flag.StringVar(&journalDir, "journal", "", "Directory for the .odj event journal")
	flag.StringVar(&pace, "pace", "", "Resolution pace: drain_all or one_per_tick")
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&turns, "turns", 0, "Number of turns to simulate")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Log.Fatal("Failed to load config: ", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "content":
			cfg.Content.Prefabs = contentPath
		case "journal":
			cfg.Journal.Path = journalDir
		case "pace":
			cfg.Engine.Pace = pace
		case "seed":
			cfg.Engine.Seed = seed
		case "turns":
			cfg.Engine.Turns = turns
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("Invalid config: ", err)
	}
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		logger.Log.WithError(err).Warn("Bad logging config, keeping defaults")
	}

	logger.Log.Info("Starting Odyssey simulation...")
	logger.Log.Info(version.Banner())

	// 2. Контент. Ошибка данных — фатальна.
	catalog, err := content.LoadCatalog(cfg.Content.Prefabs)
	if err != nil {
		logger.Log.Fatal("Failed to load content: ", err)
	}
	logger.Log.WithField("prefabs", len(catalog.Names())).Info("Content loaded")

	// 3. Движок
	engineCfg := engine.NewConfig()
	if cfg.Engine.Seed != 0 {
		engineCfg.Seed = cfg.Engine.Seed
		logger.Log.Infof("🎲 Using explicit seed: %d", engineCfg.Seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", engineCfg.Seed)
	}
	engineCfg.ShardId = cfg.Engine.Shard
	engineCfg.Pace, _ = engine.ParsePace(cfg.Engine.Pace)
	engineCfg.MaxCascade = cfg.Engine.MaxCascade
	engineCfg.LogLimit = cfg.Engine.LogLimit

	game := engine.NewGame(engineCfg, catalog)
	defer game.Close()

	rng := rand.New(rand.NewSource(engineCfg.Seed))
	layout := dungeon.Generate(rng, cfg.Arena.Width, cfg.Arena.Height)
	player, err := dungeon.Populate(game.World, catalog, layout, rng, dungeon.Options{
		Wall:             cfg.Arena.Wall,
		Monsters:         cfg.Arena.Monsters,
		Items:            cfg.Arena.Items,
		Spawners:         cfg.Arena.Spawners,
		SpawnerCountdown: 5,
	})
	if err != nil {
		logger.Log.Fatal("Failed to build arena: ", err)
	}

	session := storage.NewSession(engineCfg.Seed, engineCfg.ShardId)
	game.Events.SubscribeFunc(func(ev domain.ActionEvent) {
		session.Append(game.Turn(), ev)
	})

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := &simulation{game: game, player: player, rng: rng}
	outcome := sim.run(ctx, cfg.Engine.Turns)

	logger.Log.WithFields(logrus.Fields{
		"turns":   game.Turn(),
		"events":  len(session.Records),
		"outcome": outcome,
	}).Info("Simulation finished")

	if cfg.Journal.Path != "" {
		path, err := storage.NewJournalService(cfg.Journal.Path).Save(session)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to save journal")
			return
		}
		logger.Log.WithField("path", path).Info("Journal saved")
	}

	logger.Log.Info("Done.")
}
