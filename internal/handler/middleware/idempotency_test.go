//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/middleware"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/idempotency"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/tests/common/httptest"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationPath = "/api/reservas"

type IdempotencyTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	router  *gin.Engine
	calls   atomic.Int32
	status  int
	panics  bool
	reentry func() int
}

func (s *IdempotencyTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mr = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })
	store := idempotency.NewStore(client, time.Hour)

	s.calls.Store(0)
	s.status = http.StatusOK
	s.panics = false
	s.reentry = nil

	s.router = gin.New()
	s.router.Use(middleware.CustomRecovery())
	s.router.POST(reservationPath, middleware.Idempotency(store, nil), func(c *gin.Context) {
		n := s.calls.Add(1)
		if s.panics {
			panic("reservation handler failed")
		}
		if s.reentry != nil {
			c.JSON(http.StatusOK, gin.H{"nested": s.reentry()})
			return
		}
		c.JSON(s.status, gin.H{"idReserva": n, "exito": s.status < 500})
	})
}

func TestIdempotencySuite(t *testing.T) {
	suite.Run(t, new(IdempotencyTestSuite))
}

func (s *IdempotencyTestSuite) post(body any, key string) (int, string, http.Header) {
	headers := map[string]string{}
	if key != "" {
		headers[middleware.IdempotencyKeyHeader] = key
	}
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, reservationPath, body, headers)
	return rec.Code, rec.Body.String(), rec.Header()
}

func (s *IdempotencyTestSuite) TestWithoutKeyEveryRequestRuns() {
	body := map[string]any{"idHotel": 1}

	_, first, _ := s.post(body, "")
	_, second, _ := s.post(body, "")

	s.Equal(int32(2), s.calls.Load())
	s.NotEqual(first, second)
}

func (s *IdempotencyTestSuite) TestRepeatedKeyReplaysResponse() {
	body := map[string]any{"idHotel": 1, "idTipo": 2}

	code1, body1, h1 := s.post(body, "key-1")
	code2, body2, h2 := s.post(body, "key-1")

	s.Equal(http.StatusOK, code1)
	s.Equal(code1, code2)
	s.JSONEq(body1, body2)
	s.Empty(h1.Get(middleware.IdempotentReplayedHeader))
	s.Equal("true", h2.Get(middleware.IdempotentReplayedHeader))
	s.Equal(int32(1), s.calls.Load(), "handler must run once per key")
}

func (s *IdempotencyTestSuite) TestKeyReusedWithDifferentBody() {
	_, _, _ = s.post(map[string]any{"idHotel": 1}, "key-2")
	code, body, _ := s.post(map[string]any{"idHotel": 2}, "key-2")

	s.Equal(http.StatusConflict, code)
	s.Contains(body, "different request")
	s.Equal(int32(1), s.calls.Load())
}

func (s *IdempotencyTestSuite) TestConcurrentDuplicateIsRejected() {
	body := map[string]any{"idHotel": 1}
	s.reentry = func() int {
		s.reentry = nil
		code, _, _ := s.post(body, "key-3")
		return code
	}

	code, out, _ := s.post(body, "key-3")

	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"nested": 409}`, out)
	s.Equal(int32(1), s.calls.Load())
}

func (s *IdempotencyTestSuite) TestServerErrorReleasesKey() {
	body := map[string]any{"idHotel": 1}

	s.status = http.StatusInternalServerError
	code1, _, _ := s.post(body, "key-4")
	s.Equal(http.StatusInternalServerError, code1)

	s.status = http.StatusOK
	code2, _, h2 := s.post(body, "key-4")
	s.Equal(http.StatusOK, code2)
	s.Empty(h2.Get(middleware.IdempotentReplayedHeader))
	s.Equal(int32(2), s.calls.Load(), "a released key must run the handler again")
}

func (s *IdempotencyTestSuite) TestPanicReleasesKey() {
	body := map[string]any{"idHotel": 1}

	s.panics = true
	code1, _, _ := s.post(body, "key-6")
	s.Equal(http.StatusInternalServerError, code1)
	s.False(s.mr.Exists("idemp:key-6"), "claim must not outlive the panic")

	s.panics = false
	code2, _, h2 := s.post(body, "key-6")
	s.Equal(http.StatusOK, code2)
	s.Empty(h2.Get(middleware.IdempotentReplayedHeader))
	s.Equal(int32(2), s.calls.Load())
}

func (s *IdempotencyTestSuite) TestKeyTooLong() {
	code, body, _ := s.post(map[string]any{"idHotel": 1}, strings.Repeat("k", 256))

	s.Equal(http.StatusBadRequest, code)
	s.Contains(body, "Idempotency-Key")
	s.Equal(int32(0), s.calls.Load())
}

func (s *IdempotencyTestSuite) TestStoreUnavailableServesRequest() {
	s.mr.Close()

	code, _, _ := s.post(map[string]any{"idHotel": 1}, "key-5")

	s.Equal(http.StatusOK, code)
	s.Equal(int32(1), s.calls.Load())
}

func TestIdempotency_NilStorePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls int
	router := gin.New()
	router.POST(reservationPath, middleware.Idempotency(nil, nil), func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
	})

	headers := map[string]string{middleware.IdempotencyKeyHeader: "same"}
	for range 2 {
		rec := httptest.PerformRequest(t, router, http.MethodPost, reservationPath, map[string]any{}, headers)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, calls)
}
