package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/infra/cache"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCacheBackend,
		cache.New,
	),
)

// NewCacheBackend prefers Redis and degrades to the in-process store when
// Redis is disabled or unreachable at startup. Cached reads never require
// Redis to be up.
func NewCacheBackend(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.Backend {
	if cfg.Redis.Disabled {
		logger.Info("redis disabled, using in-process cache")
		return cache.NewMemoryBackend(clock.NewRealClock())
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, falling back to in-process cache", "addr", cfg.Redis.Addr, "error", err)
		_ = client.Close()
		return cache.NewMemoryBackend(clock.NewRealClock())
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("redis cache connected", "addr", cfg.Redis.Addr)
	return cache.NewRedisBackend(client)
}
