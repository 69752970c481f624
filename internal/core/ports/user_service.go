package ports

import (
	"context"
	"encoding/json"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

// UserService 定義 Users 服務的遠端介面
// 所有錯誤皆為 *domain.Error
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_user_service.go -package=mock_ports github.com/JoeShih716/go-game-gateway/internal/core/ports UserService
type UserService interface {
	// SignUp 註冊，原樣回傳下游回應
	SignUp(ctx context.Context, details json.RawMessage) (json.RawMessage, error)
	// SignIn 登入，原樣回傳下游回應
	SignIn(ctx context.Context, details json.RawMessage) (json.RawMessage, error)
	// GetUserByID 根據 ID 取得使用者
	GetUserByID(ctx context.Context, id string) (*domain.UserRecord, error)
	// CreateTempAccount 建立臨時帳號
	CreateTempAccount(ctx context.Context, username string) (*domain.UserRecord, error)
	// DeleteTempAccount 刪除臨時帳號
	DeleteTempAccount(ctx context.Context, id string) error
}
