package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/bloomtrack-api/internal/api/shared"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
)

// RecordHandler serves the per-entity list, create and delete endpoints.
type RecordHandler struct {
	records RecordService
	logger  *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(records RecordService, logger *slog.Logger) *RecordHandler {
	if records == nil {
		// ALLOW-PANIC: constructor guard
		panic("records cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordHandler{
		records: records,
		logger:  logger.With(slog.String("component", "record_handler")),
	}
}

// createRecord decodes In, runs create and answers 201 with the result.
func createRecord[In any, Out any](
	w http.ResponseWriter,
	r *http.Request,
	create func(context.Context, In) (Out, error),
	failure string,
) {
	var in In
	if err := shared.DecodeJSON(w, r, &in); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	out, err := create(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, failure)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, out)
}

// listRecords answers 200 with the list; a nil list is sent as [].
func listRecords[T any](
	w http.ResponseWriter,
	r *http.Request,
	list func(context.Context) ([]T, error),
	failure string,
) {
	items, err := list(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, failure)
		return
	}
	if items == nil {
		items = []T{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// ListCycles handles GET /api/cycles.
func (h *RecordHandler) ListCycles(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, h.records.ListCycles, "Failed to list cycles")
}

// CreateCycle handles POST /api/cycles.
func (h *RecordHandler) CreateCycle(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, h.records.CreateCycle, "Failed to create cycle")
}

// DeleteCycle handles DELETE /api/cycles/{id}.
func (h *RecordHandler) DeleteCycle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := h.records.DeleteCycle(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete cycle")
		return
	}

	log.Debug("cycle deleted", slog.Int64("cycle_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// ListPregnancies handles GET /api/pregnancies.
func (h *RecordHandler) ListPregnancies(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, h.records.ListPregnancies, "Failed to list pregnancies")
}

// CreatePregnancy handles POST /api/pregnancies. A dueDate in the body is
// ignored; it is always derived.
func (h *RecordHandler) CreatePregnancy(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, h.records.CreatePregnancy, "Failed to create pregnancy")
}

// ListWeights handles GET /api/weights.
func (h *RecordHandler) ListWeights(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, h.records.ListWeights, "Failed to list weights")
}

// CreateWeight handles POST /api/weights.
func (h *RecordHandler) CreateWeight(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, h.records.CreateWeight, "Failed to create weight entry")
}

// ListPostpartum handles GET /api/postpartum.
func (h *RecordHandler) ListPostpartum(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, h.records.ListPostpartum, "Failed to list postpartum check-ins")
}

// CreatePostpartum handles POST /api/postpartum.
func (h *RecordHandler) CreatePostpartum(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, h.records.CreatePostpartum, "Failed to create postpartum check-in")
}
