package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eduforge/worksheet-api/internal/api"
	apiMiddleware "github.com/eduforge/worksheet-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.CORS)

	worksheetHandler := api.NewWorksheetHandler(app.service, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/worksheets", worksheetHandler.GenerateWorksheet)
	})

	// Path kept for clients of the original deployment.
	r.Post("/generate-worksheet", worksheetHandler.GenerateWorksheet)

	r.Get("/health", api.Health)
	r.Get("/", api.Root)

	return r
}
