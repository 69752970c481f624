package ports

import (
	"context"
	"encoding/json"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

// RoomService 定義 Rooms 服務的遠端介面
// 所有錯誤皆為 *domain.Error
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_room_service.go -package=mock_ports github.com/JoeShih716/go-game-gateway/internal/core/ports RoomService
type RoomService interface {
	// GetOwnedRoom 取得使用者擁有的房間
	// 下游回 404 時不是錯誤，回傳的 OwnedRoom.Owned() 為 false
	GetOwnedRoom(ctx context.Context, userID string) (*domain.OwnedRoom, error)

	// Join 將使用者加入房間
	Join(ctx context.Context, roomCode string, user domain.UserRef) (json.RawMessage, error)

	// Create 建立由 user 擁有的房間
	Create(ctx context.Context, user domain.UserRef) (json.RawMessage, error)

	// Delete 刪除房間
	Delete(ctx context.Context, roomCode string) error

	// Leave 讓使用者離開所在房間
	Leave(ctx context.Context, userID string) error

	// GetRole 取得使用者在房間中的角色
	GetRole(ctx context.Context, userID string) (json.RawMessage, error)

	// StartGame 開始遊戲 (settings 原樣轉發)
	StartGame(ctx context.Context, userID string, settings json.RawMessage) (json.RawMessage, error)

	// EndGame 結束遊戲
	EndGame(ctx context.Context, userID string) (json.RawMessage, error)
}
