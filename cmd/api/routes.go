package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Not found")
	})
	router.MethodNotAllowed(app.Http.MethodNotAllowed)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	if app.metrics != nil {
		router.Use(app.metrics.Instrument)
	}
	router.Use(app.RateLimiter)
	router.Use(app.CORS)

	router.Get("/", app.greeting)
	router.Get("/healthcheck", app.healthcheck)
	if app.metrics != nil {
		router.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}
	router.Route("/movies", func(r chi.Router) {
		r.Get("/", app.listMovies)
		r.Post("/", app.createMovie)
		r.Get("/{id}", app.getMovie)
		r.Patch("/{id}", app.updateMovie)
		r.Delete("/{id}", app.deleteMovie)
		r.Options("/{id}", app.preflightMovie)
	})
	return router
}
