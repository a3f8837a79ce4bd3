package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/bloomtrack-api/internal/api"
	apiMiddleware "github.com/phrazzld/bloomtrack-api/internal/api/middleware"
	"github.com/phrazzld/bloomtrack-api/internal/api/shared"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}

	records := api.NewRecordHandler(app.records, app.logger)
	predictions := api.NewPredictionHandler(app.predictions, app.logger)
	health := api.NewHealthHandler(app.db, api.DefaultHealthTimeout, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cycles", records.ListCycles)
		r.Post("/cycles", records.CreateCycle)
		r.Delete("/cycles/{id}", records.DeleteCycle)

		r.Get("/pregnancies", records.ListPregnancies)
		r.Post("/pregnancies", records.CreatePregnancy)

		r.Get("/weights", records.ListWeights)
		r.Post("/weights", records.CreateWeight)

		r.Get("/postpartum", records.ListPostpartum)
		r.Post("/postpartum", records.CreatePostpartum)

		r.Route("/predictions", func(r chi.Router) {
			r.Post("/cycle", predictions.Cycle)
			r.Post("/pregnancy", predictions.Pregnancy)
			r.Post("/weight", predictions.Weight)
			r.Post("/postpartum", predictions.Postpartum)
		})
	})

	r.Get("/health", health.Health)

	if app.metrics != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
