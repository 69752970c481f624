package wss

import "time"

// Config WebSocket 伺服器設定
type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
	// AllowedOrigins 為空時只允許同源連線
	AllowedOrigins []string

	WriteWait      time.Duration // 單次寫入逾時
	PongWait       time.Duration // 等待 Pong 的逾時
	PingPeriod     time.Duration // Ping 週期 (0 = PongWait 的 9/10)
	MaxMessageSize int64         // 單一訊息上限
	SendBufferSize int           // 每條連線的發送佇列長度
}

// DefaultConfig 回傳一組可直接使用的預設值
func DefaultConfig() *Config {
	return &Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		WriteWait:       10 * time.Second,
		PongWait:        60 * time.Second,
		MaxMessageSize:  4096,
		SendBufferSize:  256,
	}
}
