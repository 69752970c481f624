package session

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/pkg/wss"
)

const (
	// ParamUserID 連線時指定關注的使用者
	ParamUserID = "user_id"
	// ParamRoomCode 連線時指定關注的房間
	ParamRoomCode = "room_code"
)

// Relay 實作 wss.Subscriber，將 Lifecycle 事件轉送給關注的連線
type Relay struct {
	sessions *Manager
	logger   *slog.Logger
}

var _ wss.Subscriber = (*Relay)(nil)

// NewRelay 建立事件轉送器
func NewRelay(mgr *Manager, logger *slog.Logger) *Relay {
	return &Relay{
		sessions: mgr,
		logger:   logger.With("component", "event_relay"),
	}
}

// OnConnect 依 Query 參數建立 Session
func (r *Relay) OnConnect(conn wss.Client) {
	sess := &Session{
		ID:       conn.ID(),
		Conn:     conn,
		UserID:   conn.Param(ParamUserID),
		RoomCode: conn.Param(ParamRoomCode),
	}
	r.sessions.Add(sess)
	r.logger.Info("Event stream connected", "id", sess.ID, "user_id", sess.UserID, "room_code", sess.RoomCode, "online", r.sessions.Count())
}

// OnDisconnect 移除 Session
func (r *Relay) OnDisconnect(conn wss.Client) {
	r.sessions.Remove(conn.ID())
	r.logger.Info("Event stream disconnected", "id", conn.ID(), "online", r.sessions.Count())
}

// OnMessage 只處理 ping，其餘訊息忽略 (事件流是單向的)
func (r *Relay) OnMessage(conn wss.Client, msg []byte) {
	if strings.TrimSpace(string(msg)) == "ping" {
		_ = conn.SendMessage("pong")
	}
}

// Broadcast 將事件送給所有關注的連線
// 慢速連線 (發送佇列已滿) 直接略過，不阻塞其他連線
func (r *Relay) Broadcast(event *domain.LifecycleEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		r.logger.Error("Failed to marshal lifecycle event", "type", event.Type, "error", err)
		return
	}

	r.sessions.Range(func(s *Session) bool {
		if !s.Wants(event.UserID, event.RoomCode) {
			return true
		}
		if err := s.Conn.SendMessage(data); err != nil {
			r.logger.Warn("Dropped lifecycle event", "id", s.ID, "type", event.Type, "error", err)
		}
		return true
	})
}
