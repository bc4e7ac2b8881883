package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/httperr"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/idempotency"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/observability"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader     = "Idempotency-Key"
	IdempotentReplayedHeader = "Idempotent-Replayed"
	maxIdempotencyKeyLength  = 255
)

type IdempotencyStore interface {
	Begin(ctx context.Context, key, requestHash string) (*idempotency.Record, error)
	Complete(ctx context.Context, key, requestHash string, statusCode int, body []byte) error
	Release(ctx context.Context, key string) error
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// Requests without the header, or with a nil store, pass straight through.
// 5xx responses release the key so the client can retry.
func Idempotency(store IdempotencyStore, m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || store == nil {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("idempotency key too long"), "Invalid Idempotency-Key", nil)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		hash := requestHash(c.Request.Method, c.Request.URL.Path, body)

		ctx := context.WithoutCancel(c.Request.Context())
		rec, err := store.Begin(ctx, key, hash)
		switch {
		case errs.Is(err, errs.ErrIdempotencyInProgress):
			m.ObserveIdempotency("in_progress")
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation request is currently being processed", nil)
			return
		case errs.Is(err, errs.ErrIdempotencyMismatch):
			m.ObserveIdempotency("mismatch")
			httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency-Key was already used with a different request", nil)
			return
		case err != nil:
			slog.Warn("idempotency store unavailable, serving request without it",
				"request_id", GetRequestID(c), "error", err.Error())
			c.Next()
			return
		case rec != nil:
			m.ObserveIdempotency("replay")
			c.Header(IdempotentReplayedHeader, "true")
			c.Data(rec.StatusCode, gin.MIMEJSON+"; charset=utf-8", rec.Body)
			c.Abort()
			return
		}

		m.ObserveIdempotency("new")
		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw

		// a panic ends up as a 500 in CustomRecovery, so the claim goes too
		defer func() {
			if r := recover(); r != nil {
				m.ObserveIdempotency("released")
				if err := store.Release(ctx, key); err != nil {
					slog.Warn("failed to release idempotency key", "key", key, "error", err.Error())
				}
				panic(r)
			}
		}()

		c.Next()

		status := cw.Status()
		if status >= http.StatusInternalServerError {
			m.ObserveIdempotency("released")
			if err := store.Release(ctx, key); err != nil {
				slog.Warn("failed to release idempotency key", "key", key, "error", err.Error())
			}
			return
		}
		if err := store.Complete(ctx, key, hash, status, cw.body.Bytes()); err != nil {
			slog.Warn("failed to store idempotent response", "key", key, "error", err.Error())
		}
	}
}

func requestHash(method, path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
