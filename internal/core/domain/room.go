package domain

import "encoding/json"

// Player 房間名單中的一位玩家
type Player struct {
	UserID string `json:"user_id"`
}

// OwnedRoom 是 Rooms 服務 getownedroom 的回應。
// Rooms 服務以 404 表示「此使用者沒有擁有房間」，此時 RoomCode 為空。
type OwnedRoom struct {
	RoomCode string   `json:"room_code"`
	Players  []Player `json:"players"`

	// Raw 為下游原始回應，對外轉發時原封不動輸出
	Raw json.RawMessage `json:"-"`
}

// Owned 使用者是否擁有此房間
func (r *OwnedRoom) Owned() bool {
	return r != nil && r.RoomCode != ""
}

// PlayerIDs 回傳房間內所有玩家的 UserID (保持名單順序)
func (r *OwnedRoom) PlayerIDs() []string {
	ids := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		ids = append(ids, p.UserID)
	}
	return ids
}

// RoleResult GetRole 的組合結果
type RoleResult struct {
	Role     json.RawMessage `json:"role"`
	Username string          `json:"username"`
}

// JoinResult Join 成功後的回應
type JoinResult struct {
	Message json.RawMessage `json:"message"`
	Details UserRef         `json:"details"`
}
