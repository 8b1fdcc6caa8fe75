package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/store-admin-service/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}

type stubConsumer struct {
	started atomic.Bool
	closed  atomic.Bool
}

func (c *stubConsumer) Consume(ctx context.Context) {
	c.started.Store(true)
	<-ctx.Done()
}

func (c *stubConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

func testConfig() config.Config {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	return cfg
}

func newTestApp() *application {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
}

func TestApplication_Routes(t *testing.T) {
	a := newTestApp()
	a.SetHTTPHandlers(pingHandler{})

	rr := httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())

	rr = httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "store_admin_http_in_flight_requests")
}

func TestApplication_CORS(t *testing.T) {
	a := newTestApp()
	a.SetHTTPHandlers(pingHandler{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestApplication_StartStop(t *testing.T) {
	a := newTestApp()

	var warmed atomic.Bool
	consumer := &stubConsumer{}
	a.SetConsumers(consumer)
	a.SetStarters(starterFunc(func(ctx context.Context) error {
		warmed.Store(true)
		return nil
	}))

	require.NoError(t, a.Start(context.Background()))
	assert.True(t, warmed.Load())

	require.NoError(t, a.Stop())
	assert.True(t, consumer.closed.Load())
}

func TestApplication_StarterFailure(t *testing.T) {
	a := newTestApp()
	a.SetStarters(
		starterFunc(func(context.Context) error { return nil }),
		starterFunc(func(context.Context) error { return errors.New("warm-up failed") }),
	)

	err := a.Start(context.Background())
	assert.ErrorContains(t, err, "warm-up failed")
}
