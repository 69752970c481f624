package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config 定義 Redis 連線配置
type Config struct {
	Addr     string // Redis 伺服器地址 (e.g., "localhost:6379")
	Password string // Redis 密碼 (若無則留空)
	DB       int    // 使用的資料庫編號
}

// Client 封裝 redis.Client 以提供更簡易的介面
type Client struct {
	rdb *redis.Client
}

// NewClient 建立並回傳一個新的 Redis 客戶端實例
//
// 參數:
//
//	cfg: Config - Redis 連線配置資訊
//
// 回傳值:
//
//	*Client: 封裝後的 Redis 客戶端實例
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config) (*Client, error) {

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連線
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close 關閉 Redis 連線
//
// 回傳值:
//
//	error: 若關閉失敗則回傳錯誤
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping 檢查連線狀態
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
