// Package idempotency stores HTTP responses by Idempotency-Key in Redis.
// Only the serialized response is kept; no booking data is cached.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix        = "idemp:"
	maxClaimAttempts = 3
)

var errClaimContended = errs.New("key expired between claim and read on every attempt")

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Record struct {
	RequestHash string `json:"request_hash"`
	Status      string `json:"status"`
	StatusCode  int    `json:"status_code,omitempty"`
	Body        []byte `json:"body,omitempty"`
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Begin claims key for a request with the given hash.
// It returns (nil, nil) when the claim is new, the stored record when a
// completed response exists for the same hash, ErrIdempotencyInProgress when
// another request holds the claim, and ErrIdempotencyMismatch when the key was
// used for a different request.
func (s *Store) Begin(ctx context.Context, key, requestHash string) (*Record, error) {
	claim, err := json.Marshal(Record{RequestHash: requestHash, Status: StatusInProgress})
	if err != nil {
		return nil, err
	}

	// the key can expire between SETNX and GET; claim again a bounded number of times
	for range maxClaimAttempts {
		ok, err := s.client.SetNX(ctx, keyPrefix+key, claim, s.ttl).Result()
		if err != nil {
			return nil, errs.Wrap(err, "idempotency claim")
		}
		if ok {
			return nil, nil
		}

		existing, err := s.get(ctx, key)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			continue
		}
		if existing.RequestHash != requestHash {
			return nil, errs.ErrIdempotencyMismatch
		}
		if existing.Status != StatusCompleted {
			return nil, errs.ErrIdempotencyInProgress
		}
		return existing, nil
	}
	return nil, errs.Wrapf(errClaimContended, "idempotency claim for %q", key)
}

// Complete stores the final response under key, refreshing its TTL.
func (s *Store) Complete(ctx context.Context, key, requestHash string, statusCode int, body []byte) error {
	data, err := json.Marshal(Record{
		RequestHash: requestHash,
		Status:      StatusCompleted,
		StatusCode:  statusCode,
		Body:        body,
	})
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "idempotency complete")
	}
	return nil
}

// Release drops the claim so the request can be retried.
func (s *Store) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "idempotency release")
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (*Record, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "idempotency get")
	}
	var rec Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, errs.Wrap(err, "idempotency decode")
	}
	return &rec, nil
}
