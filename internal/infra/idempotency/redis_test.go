//go:build unit

package idempotency_test

import (
	"context"
	"testing"
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/idempotency"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) (*idempotency.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return idempotency.NewStore(client, ttl), mr
}

func TestStore_Begin(t *testing.T) {
	ctx := context.Background()

	t.Run("first claim is new", func(t *testing.T) {
		s, mr := newStore(t, time.Hour)

		rec, err := s.Begin(ctx, "k1", "hash-a")

		require.NoError(t, err)
		assert.Nil(t, rec)
		assert.True(t, mr.Exists("idemp:k1"))
		assert.Equal(t, time.Hour, mr.TTL("idemp:k1"))
	})

	t.Run("second claim while in progress", func(t *testing.T) {
		s, _ := newStore(t, time.Hour)
		_, err := s.Begin(ctx, "k1", "hash-a")
		require.NoError(t, err)

		rec, err := s.Begin(ctx, "k1", "hash-a")

		assert.Nil(t, rec)
		assert.True(t, errs.Is(err, errs.ErrIdempotencyInProgress))
	})

	t.Run("different request with same key", func(t *testing.T) {
		s, _ := newStore(t, time.Hour)
		_, err := s.Begin(ctx, "k1", "hash-a")
		require.NoError(t, err)

		_, err = s.Begin(ctx, "k1", "hash-b")

		assert.True(t, errs.Is(err, errs.ErrIdempotencyMismatch))
	})

	t.Run("completed response is replayed", func(t *testing.T) {
		s, _ := newStore(t, time.Hour)
		_, err := s.Begin(ctx, "k1", "hash-a")
		require.NoError(t, err)
		body := []byte(`{"idReserva":55,"exito":true,"mensaje":"OK","totalCalculado":450.00}`)
		require.NoError(t, s.Complete(ctx, "k1", "hash-a", 200, body))

		rec, err := s.Begin(ctx, "k1", "hash-a")

		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, idempotency.StatusCompleted, rec.Status)
		assert.Equal(t, 200, rec.StatusCode)
		assert.JSONEq(t, string(body), string(rec.Body))
	})

	t.Run("released key can be claimed again", func(t *testing.T) {
		s, _ := newStore(t, time.Hour)
		_, err := s.Begin(ctx, "k1", "hash-a")
		require.NoError(t, err)
		require.NoError(t, s.Release(ctx, "k1"))

		rec, err := s.Begin(ctx, "k1", "hash-b")

		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("expired claim can be claimed again", func(t *testing.T) {
		s, mr := newStore(t, time.Minute)
		_, err := s.Begin(ctx, "k1", "hash-a")
		require.NoError(t, err)
		mr.FastForward(2 * time.Minute)

		rec, err := s.Begin(ctx, "k1", "hash-a")

		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}

// expiryRace makes the claimed key vanish between SET NX and GET, the way a
// TTL firing in that window would, for the first `races` attempts.
type expiryRace struct {
	mr     *miniredis.Miniredis
	key    string
	races  int
	claims int
}

func (h *expiryRace) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *expiryRace) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		switch cmd.Name() {
		case "set":
			h.claims++
			if h.races > 0 {
				_ = h.mr.Set(h.key, "held by another request")
			}
		case "get":
			if h.races > 0 {
				h.mr.Del(h.key)
				h.races--
			}
		}
		return next(ctx, cmd)
	}
}

func (h *expiryRace) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func newRacingStore(t *testing.T, races int) (*idempotency.Store, *expiryRace) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	hook := &expiryRace{mr: mr, key: "idemp:k1", races: races}
	client.AddHook(hook)
	return idempotency.NewStore(client, time.Hour), hook
}

func TestStore_BeginExpiryRace(t *testing.T) {
	ctx := context.Background()

	t.Run("claim succeeds after a single expiry", func(t *testing.T) {
		s, hook := newRacingStore(t, 1)

		rec, err := s.Begin(ctx, "k1", "hash-a")

		require.NoError(t, err)
		assert.Nil(t, rec)
		assert.Equal(t, 2, hook.claims)
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		s, hook := newRacingStore(t, 100)

		rec, err := s.Begin(ctx, "k1", "hash-a")

		require.Error(t, err)
		assert.Nil(t, rec)
		assert.Equal(t, 3, hook.claims)
		assert.False(t, errs.Is(err, errs.ErrIdempotencyInProgress))
	})
}

func TestStore_RedisDown(t *testing.T) {
	s, mr := newStore(t, time.Hour)
	mr.Close()

	_, err := s.Begin(context.Background(), "k1", "hash-a")

	assert.Error(t, err)
}
