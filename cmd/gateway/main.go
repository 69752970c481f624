package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"github.com/JoeShih716/go-game-gateway/internal/app/gateway/handler"
	"github.com/JoeShih716/go-game-gateway/internal/app/gateway/session"
	"github.com/JoeShih716/go-game-gateway/internal/config"
	"github.com/JoeShih716/go-game-gateway/internal/di"
	infraRedis "github.com/JoeShih716/go-game-gateway/internal/infrastructure/redis"
	"github.com/JoeShih716/go-game-gateway/internal/kit/bootstrap"
	mysqlpkg "github.com/JoeShih716/go-game-gateway/pkg/mysql"
	"github.com/JoeShih716/go-game-gateway/pkg/wss"
)

// shutdownTimeout 等待進行中請求完成的上限
const shutdownTimeout = 10 * time.Second

func main() {
	// 1. 初始化 App (載入 Config, Logger)
	app := bootstrap.NewApp("gateway")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "Initializing dependencies concurrently...")

	// 2. 並行初始化資源 (Redis, MySQL)
	redisChan := make(chan *infraRedis.Provider, 1)
	mysqlChan := make(chan *mysqlpkg.Client, 1)
	errChan := make(chan error, 2)

	// Task A: Init Redis
	go func() {
		provider, err := di.InitializeRedisProvider(ctx, app.Config)
		if err != nil {
			errChan <- fmt.Errorf("redis init failed: %w", err)
			return
		}
		redisChan <- provider
	}()

	// Task B: Init MySQL
	go func() {
		client, err := di.InitializeMySQL(ctx, app.Config)
		if err != nil {
			errChan <- fmt.Errorf("mysql init failed: %w", err)
			return
		}
		mysqlChan <- client
	}()

	// 3. 收集初始化結果
	var redisProvider *infraRedis.Provider
	var mysqlClient *mysqlpkg.Client

	const numTasks = 2
	for i := 0; i < numTasks; i++ {
		select {
		case provider := <-redisChan:
			redisProvider = provider
			slog.Info("Redis initialized", "enabled", app.Config.Redis.Enabled())
		case client := <-mysqlChan:
			mysqlClient = client
			slog.Info("MySQL initialized", "enabled", app.Config.MySQL.Enabled())
		case err := <-errChan:
			slog.Error("Dependency initialization failed", "error", err)
			os.Exit(1)
		}
	}

	// 確保資源釋放
	defer func() {
		if redisProvider != nil {
			redisProvider.Close()
		}
		if mysqlClient != nil {
			mysqlClient.Close()
		}
	}()

	// 4. 初始化 Services (Wiring)
	auditRepo, err := di.ProvideAuditRepository(ctx, mysqlClient)
	if err != nil {
		slog.Error("Audit repository init failed", "error", err)
		os.Exit(1)
	}

	httpClient := di.ProvideHTTPClient(app.Config, app.Logger)
	userService := di.ProvideUserService(app.Config, httpClient)
	roomService := di.ProvideRoomService(app.Config, httpClient)
	verifier := di.ProvideTokenVerifier(app.Config)
	eventBus := di.ProvideEventBus(app.Config, redisProvider, app.Logger)

	gatewaySvc := di.ProvideGatewayService(app.Config, userService, roomService, verifier, eventBus, auditRepo, app.Logger)

	// 5. /events: Lifecycle 事件 -> websocket
	sessions := session.NewManager()
	relay := session.NewRelay(sessions, app.Logger)
	eventServer := wss.NewServer(ctx, wssConfig(app.Config.WSS), app.Logger)
	eventServer.Register(relay)
	if err := eventBus.Subscribe(ctx, relay.Broadcast); err != nil {
		slog.Error("Lifecycle event subscription failed", "error", err)
		os.Exit(1)
	}

	// Handler Layer
	httpHandler := handler.NewHandler(gatewaySvc, eventServer, app.Config.WSS.Path, app.Logger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", app.Config.App.Host, app.Config.App.Port),
		Handler:           httpHandler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC Health (k8s probes)
	healthServer := health.NewServer()
	var grpcServer *grpc.Server
	if app.Config.App.GrpcPort != 0 {
		grpcServer = grpc.NewServer(
			grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
				MinTime:             5 * time.Second,
				PermitWithoutStream: true,
			}),
		)
		healthpb.RegisterHealthServer(grpcServer, healthServer)
		reflection.Register(grpcServer)
	}

	// 6. 啟動服務
	app.Run(func() error {
		if grpcServer != nil {
			lis, err := net.Listen("tcp", fmt.Sprintf(":%d", app.Config.App.GrpcPort))
			if err != nil {
				return fmt.Errorf("failed to listen grpc: %w", err)
			}
			go func() {
				slog.Info("gRPC health listening", "port", app.Config.App.GrpcPort)
				if err := grpcServer.Serve(lis); err != nil {
					slog.Error("gRPC server error", "error", err)
				}
			}()
		}

		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		slog.Info("Gateway listening", "addr", httpServer.Addr, "users", app.Config.Upstream.UsersURL, "rooms", app.Config.Upstream.RoomsURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func() {
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("HTTP shutdown incomplete", "error", err)
		}
		if grpcServer != nil {
			grpcServer.GracefulStop()
		}
		// 停止事件訂閱並關閉所有 websocket
		cancel()
	})
}

func wssConfig(cfg config.WSSConfig) *wss.Config {
	out := wss.DefaultConfig()
	if cfg.ReadBufferSize > 0 {
		out.ReadBufferSize = cfg.ReadBufferSize
	}
	if cfg.WriteBufferSize > 0 {
		out.WriteBufferSize = cfg.WriteBufferSize
	}
	if cfg.WriteWaitSec > 0 {
		out.WriteWait = time.Duration(cfg.WriteWaitSec) * time.Second
	}
	if cfg.PongWaitSec > 0 {
		out.PongWait = time.Duration(cfg.PongWaitSec) * time.Second
	}
	if cfg.MaxMessageSize > 0 {
		out.MaxMessageSize = cfg.MaxMessageSize
	}
	out.AllowedOrigins = cfg.AllowedOrigins
	return out
}
