package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config 定義 MySQL 連線配置
type Config struct {
	DSN             string        // gorm mysql driver 連線字串
	MaxOpenConns    int           // 最大連線數 (0 = 不限制)
	MaxIdleConns    int           // 最大閒置連線數
	ConnMaxLifetime time.Duration // 連線最長存活時間
	LogLevel        logger.LogLevel
}

// Client 封裝 *gorm.DB
type Client struct {
	db *gorm.DB
}

// NewClient 建立並回傳一個新的 MySQL 客戶端實例
//
// 參數:
//
//	cfg: Config - MySQL 連線配置資訊
//
// 回傳值:
//
//	*Client: 封裝後的客戶端實例
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config) (*Client, error) {
	level := cfg.LogLevel
	if level == 0 {
		level = logger.Warn
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &Client{db: db}, nil
}

// NewClientFromDB 以既有的 *gorm.DB 建立 Client (測試用其他 Dialector)
func NewClientFromDB(db *gorm.DB) *Client {
	return &Client{db: db}
}

// DB 回傳底層 *gorm.DB
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Close 關閉連線
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
