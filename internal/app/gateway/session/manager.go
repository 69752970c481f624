package session

import (
	"sync"
	"sync/atomic"

	"github.com/JoeShih716/go-game-gateway/pkg/wss"
)

// Session 一條 /events 連線，以及它關注的使用者或房間
// UserID 與 RoomCode 皆為空時接收所有事件
type Session struct {
	ID       string
	Conn     wss.Client
	UserID   string
	RoomCode string
}

// Wants 此 Session 是否關注該事件
func (s *Session) Wants(userID, roomCode string) bool {
	if s.UserID == "" && s.RoomCode == "" {
		return true
	}
	if s.UserID != "" && s.UserID == userID {
		return true
	}
	return s.RoomCode != "" && s.RoomCode == roomCode
}

// Manager 負責管理所有事件訂閱的 Session
// 它是 Thread-Safe 的，支援並發讀寫。
type Manager struct {
	sessions sync.Map // Map[string]*Session
	count    int64    // 在線人數計數器
}

// NewManager 建立新的 Session 管理器
func NewManager() *Manager {
	return &Manager{}
}

// Add 新增一個 Session
func (m *Manager) Add(session *Session) {
	_, loaded := m.sessions.LoadOrStore(session.ID, session)
	if !loaded {
		atomic.AddInt64(&m.count, 1)
	}
}

// Remove 移除一個 Session
func (m *Manager) Remove(sessionID string) {
	_, loaded := m.sessions.LoadAndDelete(sessionID)
	if loaded {
		atomic.AddInt64(&m.count, -1)
	}
}

// Get 取得 Session
func (m *Manager) Get(sessionID string) (*Session, bool) {
	val, ok := m.sessions.Load(sessionID)
	if !ok {
		return nil, false
	}
	return val.(*Session), true
}

// Count 取得當前連線數
func (m *Manager) Count() int64 {
	return atomic.LoadInt64(&m.count)
}

// Range 遍歷所有 Session
// handler 回傳 false 則停止遍歷
func (m *Manager) Range(handler func(s *Session) bool) {
	m.sessions.Range(func(key, value any) bool {
		return handler(value.(*Session))
	})
}
