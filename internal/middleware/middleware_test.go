package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Logger(logger))
	r.Get("/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("oops"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, float64(http.StatusBadGateway), entry["status"])
	assert.Equal(t, float64(4), entry["bytes"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/orders/{order_id}/invoice", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("order not found"))
	})

	testCases := []struct {
		name  string
		path  string
		route string
		code  string
	}{
		{name: "route pattern instead of path", path: "/orders/abc/invoice", route: "/orders/{order_id}/invoice", code: "4xx"},
		{name: "unknown route", path: "/nope", route: unmatchedRoute, code: "4xx"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			counter := httpRequestsTotal.WithLabelValues(http.MethodGet, tc.route, tc.code)
			before := testutil.ToFloat64(counter)

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
			assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight.WithLabelValues(http.MethodGet)))
		})
	}
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(http.StatusOK))
	assert.Equal(t, "4xx", statusClass(http.StatusConflict))
	assert.Equal(t, "5xx", statusClass(http.StatusBadGateway))
}
