package di

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-game-gateway/internal/config"
	localEvents "github.com/JoeShih716/go-game-gateway/internal/infrastructure/events/local"
	infraRedis "github.com/JoeShih716/go-game-gateway/internal/infrastructure/redis"
)

func testConfig() *config.Config {
	return &config.Config{
		Upstream: config.UpstreamConfig{UsersURL: "http://users", RoomsURL: "http://rooms", TimeoutSec: 1},
		Auth:     config.AuthConfig{JWTSecret: "secret", DecodeFailureStatus: 401},
		Redis:    config.RedisConfig{EventChannel: "gateway:lifecycle"},
	}
}

func TestProvideEventBus_FallsBackToLocal(t *testing.T) {
	cfg := testConfig()
	provider, err := infraRedis.NewProvider(cfg.Redis)
	require.NoError(t, err)

	bus := ProvideEventBus(cfg, provider, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.IsType(t, &localEvents.EventBus{}, bus)
}

func TestInitializeMySQL_Disabled(t *testing.T) {
	client, err := InitializeMySQL(context.Background(), testConfig())
	require.NoError(t, err)
	assert.Nil(t, client)

	repo, err := ProvideAuditRepository(context.Background(), client)
	require.NoError(t, err)
	assert.Nil(t, repo)
}

func TestProvideGatewayService(t *testing.T) {
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := ProvideHTTPClient(cfg, logger)

	svc := ProvideGatewayService(cfg,
		ProvideUserService(cfg, client),
		ProvideRoomService(cfg, client),
		ProvideTokenVerifier(cfg),
		nil, nil, logger,
	)

	require.NotNil(t, svc)
	assert.NotNil(t, svc.Resolver())
}
