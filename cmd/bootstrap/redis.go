package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/idempotency"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisModule provides the idempotency store only when REDIS_ADDR is set.
func RedisModule(cfg config.Config) fx.Option {
	if !cfg.Redis.Enabled() {
		slog.Info("redis not configured, idempotency keys are ignored")
		return fx.Options()
	}
	return fx.Module("redis",
		fx.Provide(
			NewRedisClient,
			NewIdempotencyStore,
		),
	)
}

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewIdempotencyStore(client *redis.Client, cfg config.Config) *idempotency.Store {
	return idempotency.NewStore(client, cfg.Redis.IdempotencyTTL)
}
