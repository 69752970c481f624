package ports

import (
	"context"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

// AuditRepository 記錄已結束的 Saga
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_audit_repository.go -package=mock_ports github.com/JoeShih716/go-game-gateway/internal/core/ports AuditRepository
type AuditRepository interface {
	// Record 寫入一筆 Audit
	Record(ctx context.Context, entry *domain.AuditEntry) error

	// ListByUser 依時間倒序取得使用者最近的 Audit
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.AuditEntry, error)
}
