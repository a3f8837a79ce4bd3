package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/bloomtrack-api/internal/api/shared"
)

// PredictionHandler serves the calculator endpoints under /api/predictions.
type PredictionHandler struct {
	predictions PredictionService
	logger      *slog.Logger
}

// NewPredictionHandler creates a PredictionHandler.
func NewPredictionHandler(predictions PredictionService, logger *slog.Logger) *PredictionHandler {
	if predictions == nil {
		// ALLOW-PANIC: constructor guard
		panic("predictions cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PredictionHandler{
		predictions: predictions,
		logger:      logger.With(slog.String("component", "prediction_handler")),
	}
}

func predict[In any, Out any](
	w http.ResponseWriter,
	r *http.Request,
	compute func(context.Context, In) (Out, error),
) {
	var in In
	if err := shared.DecodeJSON(w, r, &in); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	out, err := compute(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute prediction")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// Cycle handles POST /api/predictions/cycle.
func (h *PredictionHandler) Cycle(w http.ResponseWriter, r *http.Request) {
	predict(w, r, h.predictions.Cycle)
}

// Pregnancy handles POST /api/predictions/pregnancy.
func (h *PredictionHandler) Pregnancy(w http.ResponseWriter, r *http.Request) {
	predict(w, r, h.predictions.Pregnancy)
}

// Weight handles POST /api/predictions/weight.
func (h *PredictionHandler) Weight(w http.ResponseWriter, r *http.Request) {
	predict(w, r, h.predictions.Weight)
}

// Postpartum handles POST /api/predictions/postpartum.
func (h *PredictionHandler) Postpartum(w http.ResponseWriter, r *http.Request) {
	predict(w, r, h.predictions.Postpartum)
}
