package main

import (
	"github.com/clientdeck-dev/clientdeck/db"
	"github.com/clientdeck-dev/clientdeck/internal/auth"
	"github.com/clientdeck-dev/clientdeck/internal/config"
	"github.com/clientdeck-dev/clientdeck/internal/logger"
	"github.com/clientdeck-dev/clientdeck/internal/router"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.Server.Env); err != nil {
		panic(err)
	}

	defer zap.L().Sync()

	if err := auth.Init(cfg.JWT.SigningKey, cfg.JWT.ExpirationHours); err != nil {
		zap.L().Fatal("failed to initialize auth", zap.Error(err))
	}

	if err := db.ConnectDatabase(cfg.DB.GetDSN()); err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		zap.L().Fatal("failed to migrate database", zap.Error(err))
	}

	gormStore := store.New(db.DB)

	r := router.NewRouter(router.Stores{
		Tenants: gormStore,
		Owners:  gormStore,
	})

	zap.L().Info("starting server", zap.String("port", cfg.Server.Port))

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
