//go:build unit

package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	m := observability.NewMetrics()

	m.ObserveHTTP("/api/reservas/tarifas", http.MethodGet, http.StatusOK, 12*time.Millisecond)
	m.ObserveStoreCall("consultar_tarifas", "ok", 3*time.Millisecond)
	m.RateLimited()
	m.ObserveIdempotency("replay")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	out := string(body)

	assert.Contains(t, out, "reservas_http_requests_total")
	assert.Contains(t, out, `reservas_store_calls_total{outcome="ok",procedure="consultar_tarifas"} 1`)
	assert.Contains(t, out, "reservas_rate_limited_total 1")
	assert.Contains(t, out, `reservas_idempotency_events_total{event="replay"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *observability.Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("/x", http.MethodGet, http.StatusOK, time.Millisecond)
		m.ObserveStoreCall("p", "error", time.Millisecond)
		m.RateLimited()
		m.ObserveIdempotency("new")
	})
}
