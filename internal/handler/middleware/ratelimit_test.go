//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/middleware"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/observability"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/config"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClientRateLimiter(t *testing.T) {
	l := middleware.NewClientRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2})

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, l.Allow("10.0.0.2"), "clients have separate buckets")
}

func TestClientRateLimiter_MinimumBurst(t *testing.T) {
	l := middleware.NewClientRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 0})

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg config.RateLimitConfig) *gin.Engine {
		r := gin.New()
		r.GET("/api/reservas/tarifas", middleware.RateLimit(cfg, observability.NewMetrics()), func(c *gin.Context) {
			c.JSON(http.StatusOK, []any{})
		})
		return r
	}

	t.Run("rejects requests over the limit with 429", func(t *testing.T) {
		router := newRouter(config.RateLimitConfig{RPS: 0.001, Burst: 1})

		first := httptest.PerformRequest(t, router, http.MethodGet, "/api/reservas/tarifas", nil, nil)
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.PerformRequest(t, router, http.MethodGet, "/api/reservas/tarifas", nil, nil)
		httptest.AssertErrorResponse(t, second, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, second, map[string]string{"Retry-After": "1"})
	})

	t.Run("disabled when RPS is zero", func(t *testing.T) {
		router := newRouter(config.RateLimitConfig{RPS: 0, Burst: 1})

		for range 5 {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/reservas/tarifas", nil, nil)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
