package main

import (
	"errors"
	"net/http"

	"moviesapi/proj/internal/domain/filters"
	"moviesapi/proj/internal/services/movies"
)

const movieNotFoundMsg = "Movie not found"

func (app *Application) listMovies(w http.ResponseWriter, r *http.Request) {
	var f filters.MovieFilters
	if err := app.query.Decode(&f, r.URL.Query()); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.movies.List(r.Context(), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, list)
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	id := extractIDParam(r)
	movie, err := app.movies.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, movieNotFoundMsg)
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, movie)
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	obj, err := app.readJSONObject(w, r)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	result := app.schema.ValidateMovie(obj)
	if result.Error != nil {
		app.Http.Response(w, r, envelop{"message": result.Error.Errors}, http.StatusBadRequest)
		return
	}
	movie, err := app.movies.Create(r.Context(), *result.Data)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieAlreadyExists):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, envelop{"message": movie})
}

// updateMovie answers 400 for an invalid body before looking the movie up.
func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	obj, err := app.readJSONObject(w, r)
	if err != nil {
		app.Http.Response(w, r, envelop{"error": err.Error()}, http.StatusBadRequest)
		return
	}
	result := app.schema.ValidatePartialMovie(obj)
	if !result.Success {
		app.Http.Response(w, r, envelop{"error": result.Error.Errors}, http.StatusBadRequest)
		return
	}
	id := extractIDParam(r)
	movie, err := app.movies.Update(r.Context(), id, *result.Data)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, movieNotFoundMsg)
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, movie)
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id := extractIDParam(r)
	if err := app.movies.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, movieNotFoundMsg)
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Movie deleted"})
}

// preflightMovie answers CORS preflight requests for a single movie.
func (app *Application) preflightMovie(w http.ResponseWriter, r *http.Request) {
	if app.cors.Allows(r.Header.Get("Origin")) {
		w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
	}
	w.WriteHeader(http.StatusOK)
}
