package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

// LeaveRoom 離開房間
//
//  1. 查詢使用者擁有的房間 (404 代表沒有擁有，不是錯誤)
//  2. 擁有房間: 刪除房間，再刪除名單中所有臨時帳號。已完成的刪除不回滾。
//  3. 未擁有: 離開所在房間，成功後若自己是臨時帳號則刪除。
func (s *GatewayService) LeaveRoom(ctx context.Context, userID string) error {
	room, err := s.rooms.GetOwnedRoom(ctx, userID)
	if err != nil {
		s.record(ctx, domain.NewAuditEntry(domain.OpLeaveRoom, userID, "", err))
		return err
	}

	roomCode := ""
	if room.Owned() {
		roomCode = room.RoomCode
		err = s.leaveOwnedRoom(ctx, userID, room)
	} else {
		err = s.leaveRoomNotOwned(ctx, userID)
	}

	s.record(ctx, domain.NewAuditEntry(domain.OpLeaveRoom, userID, roomCode, err))
	return err
}

func (s *GatewayService) leaveOwnedRoom(ctx context.Context, userID string, room *domain.OwnedRoom) error {
	if err := s.rooms.Delete(ctx, room.RoomCode); err != nil {
		return err
	}
	s.publish(ctx, domain.NewLifecycleEvent(domain.EventRoomDeleted, userID, room.RoomCode), nil)

	tempIDs, err := s.tempPlayerIDs(ctx, room)
	if err != nil {
		return err
	}

	for _, id := range tempIDs {
		if err := s.users.DeleteTempAccount(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "Failed to delete temp player after room deletion",
				"room_code", room.RoomCode, "user_id", id, "error", err)
			s.publish(ctx, domain.NewLifecycleEvent(domain.EventTempAccountDeleteError, id, room.RoomCode), nil)
			return err
		}
		s.publish(ctx, domain.NewLifecycleEvent(domain.EventTempAccountDeleted, id, room.RoomCode), nil)
	}
	return nil
}

// tempPlayerIDs 併發查詢所有玩家，收齊後過濾出臨時帳號 (保持名單順序)
func (s *GatewayService) tempPlayerIDs(ctx context.Context, room *domain.OwnedRoom) ([]string, error) {
	ids := room.PlayerIDs()
	records := make([]*domain.UserRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			user, err := s.lookupUser(gctx, id)
			if err != nil {
				return err
			}
			records[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	temps := make([]string, 0, len(ids))
	for i, user := range records {
		if user.IsTemporary() {
			temps = append(temps, ids[i])
		}
	}
	return temps, nil
}

func (s *GatewayService) leaveRoomNotOwned(ctx context.Context, userID string) error {
	if err := s.rooms.Leave(ctx, userID); err != nil {
		return err
	}
	s.publish(ctx, domain.NewLifecycleEvent(domain.EventPlayerLeft, userID, ""), nil)

	return s.deleteUserIfTemp(ctx, userID)
}

// deleteUserIfTemp 離開成功後的清理 (不是補償)
func (s *GatewayService) deleteUserIfTemp(ctx context.Context, userID string) error {
	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsTemporary() {
		return nil
	}

	if err := s.users.DeleteTempAccount(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "Failed to delete temp user after leaving", "user_id", userID, "error", err)
		s.publish(ctx, domain.NewLifecycleEvent(domain.EventTempAccountDeleteError, userID, ""), nil)
		return err
	}
	s.publish(ctx, domain.NewLifecycleEvent(domain.EventTempAccountDeleted, userID, ""), nil)
	return nil
}

// lookupUser 查詢使用者，缺少 ID 的紀錄視為下游格式錯誤
// 臨時帳號判斷會觸發刪除，不能以不完整的資料做決定
func (s *GatewayService) lookupUser(ctx context.Context, userID string) (*domain.UserRecord, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ID == "" {
		s.logger.WarnContext(ctx, "Malformed user record, skipping temp check", "user_id", userID)
		return nil, domain.NewUnavailableError()
	}
	return user, nil
}
