package redis_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"beacon/internal/config"
	"beacon/internal/infra"
	"beacon/pkg/tokencache"
)

var Module = fx.Provide(
	provideRedis,
	provideDenylist)

func provideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	client, err := infra.NewRedisClient(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideDenylist(client *redis.Client) tokencache.Denylist {
	return tokencache.NewRedisDenylist(client)
}
