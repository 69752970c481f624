package di

import (
	"log/slog"
	"time"

	"github.com/JoeShih716/go-game-gateway/internal/app/gateway/identity"
	"github.com/JoeShih716/go-game-gateway/internal/app/gateway/service"
	"github.com/JoeShih716/go-game-gateway/internal/config"
	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
	"github.com/JoeShih716/go-game-gateway/internal/infrastructure/auth/jwt"
	localEvents "github.com/JoeShih716/go-game-gateway/internal/infrastructure/events/local"
	redisEvents "github.com/JoeShih716/go-game-gateway/internal/infrastructure/events/redis"
	"github.com/JoeShih716/go-game-gateway/internal/infrastructure/httpclient"
	infraRedis "github.com/JoeShih716/go-game-gateway/internal/infrastructure/redis"
	roomRemote "github.com/JoeShih716/go-game-gateway/internal/infrastructure/room/remote"
	userRemote "github.com/JoeShih716/go-game-gateway/internal/infrastructure/user/remote"
)

// EventBus 同時可發布與訂閱的事件匯流排
type EventBus interface {
	ports.EventPublisher
	ports.EventSubscriber
}

// ProvideHTTPClient creates the transport shared by the users and rooms clients
func ProvideHTTPClient(cfg *config.Config, logger *slog.Logger) *httpclient.Client {
	timeout := time.Duration(cfg.Upstream.TimeoutSec) * time.Second
	return httpclient.New(timeout, logger.With("component", "httpclient"))
}

// ProvideUserService creates the users service client
func ProvideUserService(cfg *config.Config, client *httpclient.Client) ports.UserService {
	return userRemote.NewUserService(cfg.Upstream.UsersURL, client)
}

// ProvideRoomService creates the rooms service client
func ProvideRoomService(cfg *config.Config, client *httpclient.Client) ports.RoomService {
	return roomRemote.NewRoomService(cfg.Upstream.RoomsURL, client)
}

// ProvideTokenVerifier creates the accesstoken verifier
func ProvideTokenVerifier(cfg *config.Config) ports.TokenVerifier {
	if cfg.Auth.JWTSecret == "" {
		slog.Warn("JWT secret is empty; every accesstoken will be rejected")
	}
	return jwt.NewVerifier(cfg.Auth.JWTSecret)
}

// ProvideEventBus selects Redis pub/sub when configured, otherwise an in-process bus
func ProvideEventBus(cfg *config.Config, redisProvider *infraRedis.Provider, logger *slog.Logger) EventBus {
	if client := redisProvider.GetEvents(); client != nil {
		return redisEvents.NewEventBus(client, cfg.Redis.EventChannel, logger)
	}
	slog.Info("Redis not configured, lifecycle events stay in-process")
	return localEvents.NewEventBus()
}

// ProvideGatewayService wires the identity resolver and the session orchestrator
func ProvideGatewayService(
	cfg *config.Config,
	users ports.UserService,
	rooms ports.RoomService,
	verifier ports.TokenVerifier,
	publisher ports.EventPublisher,
	audit ports.AuditRepository,
	logger *slog.Logger,
) *service.GatewayService {
	resolver := identity.NewResolver(users, verifier, cfg.Auth.DecodeFailureStatus, logger.With("component", "identity"))
	return service.NewGatewayService(users, rooms, resolver, publisher, audit, logger.With("component", "gateway_service"))
}
