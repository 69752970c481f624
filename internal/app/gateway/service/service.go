package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/JoeShih716/go-game-gateway/internal/app/gateway/identity"
	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
)

// GatewayService 負責 Session 生命週期的編排 (Saga)
// 它組裝 Users / Rooms 兩個遠端服務，本身不保存任何請求狀態。
type GatewayService struct {
	users     ports.UserService
	rooms     ports.RoomService
	resolver  *identity.Resolver
	publisher ports.EventPublisher
	audit     ports.AuditRepository
	logger    *slog.Logger
}

// NewGatewayService 建立 Gateway Service
// publisher / audit 可為 nil (不發布事件、不寫 Audit)
func NewGatewayService(
	users ports.UserService,
	rooms ports.RoomService,
	resolver *identity.Resolver,
	publisher ports.EventPublisher,
	audit ports.AuditRepository,
	logger *slog.Logger,
) *GatewayService {
	return &GatewayService{
		users:     users,
		rooms:     rooms,
		resolver:  resolver,
		publisher: publisher,
		audit:     audit,
		logger:    logger,
	}
}

// Resolver 回傳 Identity Resolver (Handler 做 NormalizeID 用)
func (s *GatewayService) Resolver() *identity.Resolver {
	return s.resolver
}

// ---------------------------------------------------------
// Account (Passthrough)
// ---------------------------------------------------------

// SignUp 註冊
func (s *GatewayService) SignUp(ctx context.Context, details json.RawMessage) (json.RawMessage, error) {
	return s.users.SignUp(ctx, details)
}

// SignIn 登入
func (s *GatewayService) SignIn(ctx context.Context, details json.RawMessage) (json.RawMessage, error) {
	return s.users.SignIn(ctx, details)
}

// ---------------------------------------------------------
// Room / Game
// ---------------------------------------------------------

// CreateRoom 以登入身分建立房間
// 登入使用者不會新建帳號，因此沒有補償動作
func (s *GatewayService) CreateRoom(ctx context.Context, credential string) (json.RawMessage, error) {
	user, err := s.resolver.ResolveSignedIn(ctx, credential)
	if err != nil {
		s.record(ctx, domain.NewAuditEntry(domain.OpCreateRoom, "", "", err))
		return nil, err
	}

	resp, err := s.rooms.Create(ctx, user)
	s.record(ctx, domain.NewAuditEntry(domain.OpCreateRoom, user.ID, "", err))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewLifecycleEvent(domain.EventRoomCreated, user.ID, ""), resp)
	return resp, nil
}

// GetRole 取得使用者名稱與房間角色
func (s *GatewayService) GetRole(ctx context.Context, userID string) (*domain.RoleResult, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	role, err := s.rooms.GetRole(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.RoleResult{Role: role, Username: user.Username}, nil
}

// StartGame 開始遊戲，原樣回傳 Rooms 服務的回應
func (s *GatewayService) StartGame(ctx context.Context, userID string, settings json.RawMessage) (json.RawMessage, error) {
	resp, err := s.rooms.StartGame(ctx, userID, settings)
	s.record(ctx, domain.NewAuditEntry(domain.OpStartGame, userID, "", err))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewLifecycleEvent(domain.EventGameStarted, userID, ""), resp)
	return resp, nil
}

// EndGame 結束遊戲，原樣回傳 Rooms 服務的回應
func (s *GatewayService) EndGame(ctx context.Context, userID string) (json.RawMessage, error) {
	resp, err := s.rooms.EndGame(ctx, userID)
	s.record(ctx, domain.NewAuditEntry(domain.OpEndGame, userID, "", err))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewLifecycleEvent(domain.EventGameEnded, userID, ""), resp)
	return resp, nil
}

// GetOwnedRoom 取得使用者擁有的房間 (未擁有時回傳 Rooms 服務的 404 Body)
func (s *GatewayService) GetOwnedRoom(ctx context.Context, userID string) (json.RawMessage, error) {
	room, err := s.rooms.GetOwnedRoom(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(room.Raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	return room.Raw, nil
}

// GetUserExists 使用者是否存在
// 任何失敗 (404、500、網路錯誤) 都視為不存在，這是唯一吞掉錯誤的操作
func (s *GatewayService) GetUserExists(ctx context.Context, id string) bool {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.DebugContext(ctx, "User not found", "user_id", id)
		} else {
			s.logger.WarnContext(ctx, "User lookup failed, reporting as missing", "user_id", id, "error", err)
		}
		return false
	}
	return user != nil
}

// ---------------------------------------------------------
// Observability helpers
// ---------------------------------------------------------

// publish 發布事件，失敗只記錄不回傳
func (s *GatewayService) publish(ctx context.Context, event *domain.LifecycleEvent, payload json.RawMessage) {
	if s.publisher == nil {
		return
	}
	if len(payload) > 0 && json.Valid(payload) {
		event.Payload = payload
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish lifecycle event", "type", event.Type, "user_id", event.UserID, "error", err)
	}
}

// record 寫入 Audit，失敗只記錄不回傳
func (s *GatewayService) record(ctx context.Context, entry *domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.WarnContext(ctx, "Failed to record saga audit", "operation", entry.Operation, "user_id", entry.UserID, "error", err)
	}
}

// AuditTrail 取得使用者最近的 Saga 紀錄 (未啟用 Audit 時回傳空集合)
func (s *GatewayService) AuditTrail(ctx context.Context, userID string, limit int) ([]*domain.AuditEntry, error) {
	if s.audit == nil {
		return []*domain.AuditEntry{}, nil
	}
	entries, err := s.audit.ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list saga audit", "user_id", userID, "error", err)
		return nil, err
	}
	return entries, nil
}
