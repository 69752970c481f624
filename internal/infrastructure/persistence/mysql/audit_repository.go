package mysql

import (
	"context"
	"fmt"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
	mysqlpkg "github.com/JoeShih716/go-game-gateway/pkg/mysql"
)

// ensure interface compliance
var _ ports.AuditRepository = (*AuditRepository)(nil)

// defaultListLimit ListByUser 未指定筆數時的上限
const defaultListLimit = 50

// AuditRepository 實作 ports.AuditRepository
type AuditRepository struct {
	client *mysqlpkg.Client
}

// NewAuditRepository 建立 MySQL Repository
func NewAuditRepository(client *mysqlpkg.Client) *AuditRepository {
	return &AuditRepository{
		client: client,
	}
}

// Migrate 建立或更新 saga_audit 資料表
func (r *AuditRepository) Migrate(ctx context.Context) error {
	if err := r.client.DB().WithContext(ctx).AutoMigrate(&domain.AuditEntry{}); err != nil {
		return fmt.Errorf("failed to migrate saga_audit: %w", err)
	}
	return nil
}

// Record 寫入一筆 Saga 結果
func (r *AuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	return r.client.DB().WithContext(ctx).Create(entry).Error
}

// ListByUser 依時間倒序取得使用者的 Saga 紀錄
func (r *AuditRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var entries []*domain.AuditEntry
	err := r.client.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
