package bootstrap

import (
	"context"
	"log/slog"

	"campfinder/internal/infra/ratelimit"
	"campfinder/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewAuthLimiter,
	),
)

// NewAuthLimiter shares counters through Redis when REDIS_ADDR is set and
// falls back to per-process buckets otherwise.
func NewAuthLimiter(lc fx.Lifecycle, cfg config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !cfg.Redis.Enabled() {
		slog.Info("redis disabled, using in-process rate limiter")
		return ratelimit.NewLocalLimiter(rl.AuthRequests, rl.AuthWindow)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable redis only degrades limiting, so startup continues
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return ratelimit.NewRedisLimiter(client, "campfinder:ratelimit", rl.AuthRequests, rl.AuthWindow)
}
