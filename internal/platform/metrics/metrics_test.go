package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	rec := New()
	r := chi.NewRouter()
	r.Use(rec.Middleware)
	r.Get("/api/cycles/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/cycles/1", "/api/cycles/2", "/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.httpRequests.WithLabelValues("GET", "/api/cycles/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.httpRequests.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.httpDuration))
}

func TestObserveAndCounters(t *testing.T) {
	rec := New()
	ctx := context.Background()

	rec.Observe(ctx, "create_cycle", true, 5*time.Millisecond)
	rec.Observe(ctx, "create_cycle", false, time.Millisecond)
	rec.Observe(ctx, "", true, time.Millisecond)
	rec.RecordCreated("cycle")
	rec.RecordCreated("cycle")
	rec.RecordDeleted("cycle")
	rec.PredictionMade("pregnancy")

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.operations.WithLabelValues("create_cycle", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.operations.WithLabelValues("create_cycle", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.opDuration))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.recordsCreated.WithLabelValues("cycle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.recordsDeleted.WithLabelValues("cycle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.predictionsMade.WithLabelValues("pregnancy")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	rec := New()
	rec.RecordCreated("weight")

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bloomtrack_records_created_total{entity="weight"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilRecorderIsInert(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.Observe(context.Background(), "op", true, time.Second)
		rec.RecordCreated("cycle")
		rec.RecordDeleted("cycle")
		rec.PredictionMade("cycle")
	})
	assert.Nil(t, rec.Registry())

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	w := httptest.NewRecorder()
	rec.Middleware(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)

	w = httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
