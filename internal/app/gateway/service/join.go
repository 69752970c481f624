package service

import (
	"context"
	"net/http"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

const (
	MsgRoomNotFound       = "Room not found"
	MsgMissingInformation = "Request does not contain the necessary information"
)

// JoinRequest 加入房間的請求
// Credential 與 Username 擇一，Credential 優先
type JoinRequest struct {
	Credential string
	Username   string
	RoomCode   string
}

// Join 加入房間
//
// 登入使用者: 解析身分 -> 加入房間，失敗不需補償。
// 匿名使用者: 建立臨時帳號 -> 加入房間，加入失敗時刪除剛建立的臨時帳號，
// 並回傳原本的加入錯誤 (補償本身的結果不影響回傳)。
func (s *GatewayService) Join(ctx context.Context, req JoinRequest) (*domain.JoinResult, error) {
	if req.RoomCode == "" {
		return nil, domain.NewValidationError(http.StatusNotFound, MsgRoomNotFound)
	}

	switch {
	case req.Credential != "":
		return s.joinSignedIn(ctx, req.Credential, req.RoomCode)
	case req.Username != "":
		return s.joinTemp(ctx, req.Username, req.RoomCode)
	default:
		return nil, domain.NewValidationError(http.StatusBadRequest, MsgMissingInformation)
	}
}

func (s *GatewayService) joinSignedIn(ctx context.Context, credential string, roomCode string) (*domain.JoinResult, error) {
	user, err := s.resolver.ResolveSignedIn(ctx, credential)
	if err != nil {
		s.record(ctx, domain.NewAuditEntry(domain.OpJoinSignedIn, "", roomCode, err))
		return nil, err
	}

	message, err := s.rooms.Join(ctx, roomCode, user)
	s.record(ctx, domain.NewAuditEntry(domain.OpJoinSignedIn, user.ID, roomCode, err))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewLifecycleEvent(domain.EventPlayerJoined, user.ID, roomCode), message)
	return &domain.JoinResult{Message: message, Details: user}, nil
}

func (s *GatewayService) joinTemp(ctx context.Context, username string, roomCode string) (*domain.JoinResult, error) {
	user, err := s.resolver.CreateTemp(ctx, username)
	if err != nil {
		s.record(ctx, domain.NewAuditEntry(domain.OpJoinTemp, "", roomCode, err))
		return nil, err
	}

	message, joinErr := s.rooms.Join(ctx, roomCode, user)
	if joinErr != nil {
		entry := domain.NewAuditEntry(domain.OpJoinTemp, user.ID, roomCode, joinErr)
		entry.Compensated = true
		if err := s.compensateTempAccount(ctx, user, roomCode); err != nil {
			entry.CompensationError = err.Error()
		}
		s.record(ctx, entry)
		return nil, joinErr
	}

	s.record(ctx, domain.NewAuditEntry(domain.OpJoinTemp, user.ID, roomCode, nil))
	s.publish(ctx, domain.NewLifecycleEvent(domain.EventPlayerJoined, user.ID, roomCode), message)
	return &domain.JoinResult{Message: message, Details: user}, nil
}

// compensateTempAccount 刪除 Join 失敗後遺留的臨時帳號
// 補償不隨請求取消；失敗只記錄並發布事件，錯誤內容只留在日誌與 Audit。
func (s *GatewayService) compensateTempAccount(ctx context.Context, user domain.UserRef, roomCode string) error {
	err := s.users.DeleteTempAccount(context.WithoutCancel(ctx), user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Compensation failed: temp account not deleted",
			"user_id", user.ID, "room_code", roomCode, "error", err)
		s.publish(ctx, domain.NewLifecycleEvent(domain.EventCompensationFailed, user.ID, roomCode), nil)
		return err
	}

	s.logger.InfoContext(ctx, "Compensation succeeded: temp account deleted", "user_id", user.ID, "room_code", roomCode)
	s.publish(ctx, domain.NewLifecycleEvent(domain.EventCompensationSucceeded, user.ID, roomCode), nil)
	return nil
}
