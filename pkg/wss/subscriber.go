package wss

//go:generate mockgen -destination=../../test/mocks/pkg/wss/mock_client.go -package=mock_wss github.com/JoeShih716/go-game-gateway/pkg/wss Client

// Client 是業務層看到的單一連線
type Client interface {
	// ID 連線唯一識別碼
	ID() string
	// Param 取得升級請求的 Query 參數
	Param(key string) string
	// SendMessage 將訊息放入發送佇列 ([]byte / string 原樣送出，其他型別轉 JSON)
	SendMessage(msg any) error
	// Close 主動關閉連線
	Close()
}

// Subscriber 接收連線事件的業務處理器
// 回呼在 hub 的 goroutine 或 readPump 中執行，實作不可阻塞
type Subscriber interface {
	OnConnect(conn Client)
	OnDisconnect(conn Client)
	OnMessage(conn Client, msg []byte)
}
