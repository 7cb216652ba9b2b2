package bootstrap

import (
	"context"

	"tripcart/internal/infra/cache"
	"tripcart/internal/pkg/config"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisCache,
	),
)

func NewRedisCache(lc fx.Lifecycle, cfg config.Config) *cache.RedisCache {
	c := cache.NewRedisCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}
