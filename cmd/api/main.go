package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"moviesapi/proj/internal/config"
	"moviesapi/proj/internal/lib/logger"
	"moviesapi/proj/internal/storage/memory"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	seed, err := memory.LoadSeed(cfg.Storage.SeedPath)
	if err != nil {
		log.Error("failed to load movies seed", "path", cfg.Storage.SeedPath, "err", err.Error())
		os.Exit(1)
	}
	store := memory.New(seed)
	log.Info("movies loaded", "count", store.Len())

	app := NewApplication(cfg, log, store)
	if err := app.serve(); err != nil {
		log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
}
