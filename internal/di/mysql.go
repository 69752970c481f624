package di

import (
	"context"
	"time"

	"github.com/JoeShih716/go-game-gateway/internal/config"
	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
	persistence "github.com/JoeShih716/go-game-gateway/internal/infrastructure/persistence/mysql"
	mysqlpkg "github.com/JoeShih716/go-game-gateway/pkg/mysql"
)

// InitializeMySQL opens the audit database; nil client when mysql.host is empty
func InitializeMySQL(_ context.Context, cfg *config.Config) (*mysqlpkg.Client, error) {
	if !cfg.MySQL.Enabled() {
		return nil, nil
	}
	return mysqlpkg.NewClient(mysqlpkg.Config{
		DSN:             cfg.MySQL.DSN(),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
}

// ProvideAuditRepository migrates saga_audit and returns the repository.
// A nil client disables auditing (nil repository).
func ProvideAuditRepository(ctx context.Context, client *mysqlpkg.Client) (ports.AuditRepository, error) {
	if client == nil {
		return nil, nil
	}
	repo := persistence.NewAuditRepository(client)
	if err := repo.Migrate(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
