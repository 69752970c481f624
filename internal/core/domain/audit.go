package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operation Saga 操作名稱 (Audit 用)
type Operation string

const (
	OpJoinSignedIn Operation = "join_signed_in"
	OpJoinTemp     Operation = "join_temp"
	OpLeaveRoom    Operation = "leave_room"
	OpCreateRoom   Operation = "create_room"
	OpStartGame    Operation = "start_game"
	OpEndGame      Operation = "end_game"
)

// Outcome Saga 結果
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// AuditEntry 記錄一次已結束的 Saga。
// 只記錄結果，不作為恢復中斷 Saga 的依據。
type AuditEntry struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	Operation         Operation `gorm:"size:32;index" json:"operation"`
	UserID            string    `gorm:"size:64;index" json:"user_id"`
	RoomCode          string    `gorm:"size:64" json:"room_code,omitempty"`
	Outcome           Outcome   `gorm:"size:16" json:"outcome"`
	Status            int       `json:"status"`
	Message           string    `gorm:"type:text" json:"message,omitempty"`
	Compensated       bool      `json:"compensated"`
	CompensationError string    `gorm:"type:text" json:"compensation_error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName gorm table name
func (AuditEntry) TableName() string {
	return "saga_audit"
}

// NewAuditEntry 依 Saga 結果建立 AuditEntry
func NewAuditEntry(op Operation, userID, roomCode string, err error) *AuditEntry {
	entry := &AuditEntry{
		ID:        uuid.NewString(),
		Operation: op,
		UserID:    userID,
		RoomCode:  roomCode,
		Outcome:   OutcomeSuccess,
		Status:    200,
		CreatedAt: time.Now().UTC(),
	}
	if err != nil {
		e := AsError(err)
		entry.Outcome = OutcomeFailure
		entry.Status = e.Status
		entry.Message = e.Message
	}
	return entry
}
