package main

import (
	"net/http"

	"github.com/go-chi/render"
)

func (app *Application) greeting(w http.ResponseWriter, r *http.Request) {
	app.Http.Ok(w, r, envelop{"message": "hola mundo"})
}

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, struct {
		Status  string `json:"status"`
		Debug   bool   `json:"debug"`
		Version string `json:"version"`
	}{
		Status:  "available",
		Debug:   app.cfg.Debug,
		Version: version,
	})
}
