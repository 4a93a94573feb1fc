package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"teamhub/internal/config"
	"teamhub/internal/database"
	"teamhub/internal/logger"
	"teamhub/internal/repository"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "index: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel})
	defer func() { _ = log.Sync() }()
	log.Info("starting migration")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		log.Fatal("connect", zap.Error(err))
	}
	defer mongoDB.Close()

	names, err := repository.EnsureIndexes(ctx, mongoDB.Database)
	if err != nil {
		log.Fatal("create indexes", zap.Error(err))
	}

	log.Info("migration completed", zap.Strings("indexes", names))
}
