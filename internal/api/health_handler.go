package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/api/shared"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/redact"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DefaultHealthTimeout bounds the database ping.
const DefaultHealthTimeout = 2 * time.Second

// HealthHandler reports liveness backed by a database ping.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
	logger  *slog.Logger
}

// NewHealthHandler creates a HealthHandler. A non-positive timeout uses
// DefaultHealthTimeout.
func NewHealthHandler(db Pinger, timeout time.Duration, logger *slog.Logger) *HealthHandler {
	if db == nil {
		// ALLOW-PANIC: constructor guard
		panic("db cannot be nil")
	}
	if timeout <= 0 {
		timeout = DefaultHealthTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		db:      db,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "health_handler")),
	}
}

// Health handles GET /health: 200 "OK", or 503 when the ping fails.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Warn("health check failed", redact.ErrorAttr(err))
		shared.RespondWithError(w, r, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("failed to write health check response", redact.ErrorAttr(err))
	}
}
