package redis

import (
	"fmt"
	"log/slog"

	"github.com/JoeShih716/go-game-gateway/internal/config"
	pkgRedis "github.com/JoeShih716/go-game-gateway/pkg/redis"
)

type DBName string

const (
	DBNameEvents DBName = "events"
)

// DBSupplier defines the interface for retrieving specific Redis DB clients
type DBSupplier interface {
	GetEvents() *pkgRedis.Client
	Close() error
}

type Provider struct {
	databases map[DBName]*pkgRedis.Client
}

// NewProvider creates the redis clients used by the gateway.
// An empty address yields a provider without clients.
func NewProvider(cfg config.RedisConfig) (*Provider, error) {
	clients := make(map[DBName]*pkgRedis.Client)
	if !cfg.Enabled() {
		return &Provider{databases: clients}, nil
	}

	client, err := pkgRedis.NewClient(pkgRedis.Config{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init redis db '%s': %w", DBNameEvents, err)
	}
	clients[DBNameEvents] = client

	return &Provider{databases: clients}, nil
}

// GetEvents returns the pub/sub client, or nil when redis is not configured
func (p *Provider) GetEvents() *pkgRedis.Client {
	if p == nil {
		return nil
	}
	if client, ok := p.databases[DBNameEvents]; ok {
		return client
	}
	slog.Debug("Redis events DB not configured")
	return nil
}

func (p *Provider) Close() error {
	for _, client := range p.databases {
		client.Close()
	}
	return nil
}

// ProvideRedisDB is to satisfy potential interface requirements
func (p *Provider) ProvideRedisDB() DBSupplier {
	return p
}
