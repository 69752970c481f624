package di

import (
	"context"

	"github.com/JoeShih716/go-game-gateway/internal/config"
	infraRedis "github.com/JoeShih716/go-game-gateway/internal/infrastructure/redis"
)

// InitializeRedisProvider initializes the Redis provider with config
// Without redis.addr the provider holds no clients.
func InitializeRedisProvider(_ context.Context, cfg *config.Config) (*infraRedis.Provider, error) {
	return infraRedis.NewProvider(cfg.Redis)
}
