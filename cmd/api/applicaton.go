package main

import (
	"log/slog"

	"moviesapi/proj/internal/config"
	"moviesapi/proj/internal/lib/cors"
	"moviesapi/proj/internal/lib/decoder"
	"moviesapi/proj/internal/lib/metrics"
	"moviesapi/proj/internal/services/movies"
)

type Application struct {
	cfg     *config.Config
	log     *slog.Logger
	Http    *Http
	movies  *movies.MovieService
	schema  *movies.Schema
	cors    *cors.Policy
	query   *decoder.URLDecoder
	metrics *metrics.Metrics
}

// NewApplication wires the handler layer around storage. The storage is
// owned by the caller, so tests can hand every application its own store.
func NewApplication(cfg *config.Config, log *slog.Logger, storage movies.MoviesStorage) *Application {
	app := &Application{
		cfg:    cfg,
		log:    log,
		movies: movies.New(log, storage),
		schema: movies.NewSchema(cfg.Validation.MinYear, cfg.Validation.MaxYear),
		cors:   cors.New(cfg.CORS.AllowedOrigins),
		query:  decoder.New(),
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
	if cfg.Metrics.Enabled {
		app.metrics = metrics.New("movies")
	}
	return app
}
