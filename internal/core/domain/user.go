package domain

// UserRef 代表一次請求中解析出的正規身分 (Canonical Identity)。
// 所有下游呼叫都使用這組 ID / Username，不做任何持久化。
//
// JSON 欄位沿用下游服務的格式 (`_id`)。
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// UserRecord 是 Users 服務回傳的使用者資料
type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	LoggedIn bool   `json:"logged_in"`
}

// IsTemporary 判斷是否為臨時帳號
// Users 服務回報未登入 (logged_in == false) 的帳號即為臨時帳號。
func (u *UserRecord) IsTemporary() bool {
	return !u.LoggedIn
}

// NewUserRef 建立 UserRef
//
// 參數:
//
//	id: string - 使用者 ID
//	username: string - 使用者名稱
//
// 回傳值:
//
//	UserRef: 正規身分
func NewUserRef(id string, username string) UserRef {
	return UserRef{ID: id, Username: username}
}
