package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType Lifecycle 事件種類
type EventType string

const (
	EventPlayerJoined           EventType = "player.joined"
	EventPlayerLeft             EventType = "player.left"
	EventRoomCreated            EventType = "room.created"
	EventRoomDeleted            EventType = "room.deleted"
	EventGameStarted            EventType = "game.started"
	EventGameEnded              EventType = "game.ended"
	EventCompensationSucceeded  EventType = "compensation.succeeded"
	EventCompensationFailed     EventType = "compensation.failed"
	EventTempAccountDeleted     EventType = "temp_account.deleted"
	EventTempAccountDeleteError EventType = "temp_account.delete_failed"
)

// LifecycleEvent 在 Saga 的里程碑之後發布，供前端或其他服務觀察
type LifecycleEvent struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	UserID     string          `json:"user_id,omitempty"`
	RoomCode   string          `json:"room_code,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewLifecycleEvent 建立事件並配置唯一 ID
func NewLifecycleEvent(eventType EventType, userID, roomCode string) *LifecycleEvent {
	return &LifecycleEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		RoomCode:   roomCode,
		OccurredAt: time.Now().UTC(),
	}
}
