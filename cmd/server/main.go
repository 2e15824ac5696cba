package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/JeffAllen714/Demonbane/internal/config"
	"github.com/JeffAllen714/Demonbane/internal/engine"
	"github.com/JeffAllen714/Demonbane/internal/infrastructure/storage"
	"github.com/JeffAllen714/Demonbane/internal/server"
	"github.com/JeffAllen714/Demonbane/internal/version"
	"github.com/JeffAllen714/Demonbane/pkg/logger"
)

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var configPath string
	var loadPath string
	// Флаг -seed имеет приоритет над конфигом. 0 - сгенерировать случайно.
	flag.Int64Var(&seed, "seed", 0, "Master world seed (0 for random)")
	flag.StringVar(&configPath, "config", "demonbane.toml", "Path to TOML config file")
	flag.StringVar(&loadPath, "load", "", "Path to .dbsv save file to restore")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		// Логгер еще не поднят - падаем через stderr.
		println("config error:", err.Error())
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Log.Info("Starting Demonbane...")
	logger.Log.Info(version.String())

	// 2. Формируем конфиг движка
	engineCfg := engine.NewConfig()
	engineCfg.Width = cfg.Game.MapWidth
	engineCfg.Height = cfg.Game.MapHeight

	switch {
	case seed != 0:
		engineCfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	case cfg.Game.Seed != 0:
		engineCfg.Seed = cfg.Game.Seed
		logger.Log.Infof("🎲 Using config Master Seed: %d", engineCfg.Seed)
	default:
		logger.Log.Infof("🎲 Using random Master Seed: %d", engineCfg.Seed)
	}

	port := os.Getenv("DEMONBANE_PORT")
	if port == "" {
		port = cfg.Server.Port
	}

	// 3. Инициализация ядра
	gameService := engine.NewService(engineCfg)
	saves := storage.NewSaveService(cfg.Server.SaveDir)

	// Восстановление из сейва: мир регенерируется из сида слепка,
	// модификаторы реактивируются по именам.
	if loadPath != "" {
		snap, err := saves.Load(loadPath)
		if err != nil {
			logger.Log.Fatal("Failed to load save: ", err)
		}
		if err := gameService.Restore(snap); err != nil {
			logger.Log.Fatal("Failed to restore state: ", err)
		}
		logger.Log.Infof("💿 Restored save: area %d, heat %d", snap.Area, snap.Heat)
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Сохраняем состояние мира перед выходом.
	if path, err := saves.Save(gameService.Snapshot()); err != nil {
		logger.Log.WithError(err).Error("Failed to save state")
	} else {
		logger.Log.Infof("State saved to %s", path)
	}

	logger.Log.Info("Done.")
}
