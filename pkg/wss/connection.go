package wss

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrSendBufferFull 發送佇列已滿 (慢速客戶端)
var ErrSendBufferFull = errors.New("wss: send buffer full")

// ErrConnectionClosed 連線已關閉
var ErrConnectionClosed = errors.New("wss: connection closed")

// connection 實作 Client，包裝單一 websocket.Conn
type connection struct {
	id     string
	hub    *hub
	conn   *websocket.Conn
	params url.Values
	logger *slog.Logger

	send      chan []byte
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

var _ Client = (*connection)(nil)

func newConnection(h *hub, conn *websocket.Conn, r *http.Request, bufferSize int, logger *slog.Logger) *connection {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	id := uuid.NewString()
	return &connection{
		id:     id,
		hub:    h,
		conn:   conn,
		params: r.URL.Query(),
		logger: logger.With("conn_id", id),
		send:   make(chan []byte, bufferSize),
	}
}

func (c *connection) ID() string {
	return c.id
}

func (c *connection) Param(key string) string {
	return c.params.Get(key)
}

// SendMessage 非阻塞寫入發送佇列
func (c *connection) SendMessage(msg any) error {
	var data []byte
	switch v := msg.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		data = b
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrConnectionClosed
	}
	select {
	case c.send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (c *connection) Close() {
	c.closeOnce.Do(func() {
		_ = c.conn.Close()
	})
}

// markClosed 在 send channel 被關閉前呼叫，避免 SendMessage 寫入已關閉的 channel
func (c *connection) markClosed() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// readPump 讀取客戶端訊息，結束時註銷連線
func (c *connection) readPump(cfg *Config) {
	defer func() {
		c.hub.leave(c)
		c.Close()
	}()

	if cfg.MaxMessageSize > 0 {
		c.conn.SetReadLimit(cfg.MaxMessageSize)
	}
	if cfg.PongWait > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
		})
	}

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read error", "error", err)
			}
			return
		}
		c.hub.dispatch(c, message)
	}
}

// writePump 將發送佇列寫到連線，並定期送出 Ping
func (c *connection) writePump(cfg *Config) {
	period := cfg.PingPeriod
	if period <= 0 {
		period = 54 * time.Second
	}
	ticker := time.NewTicker(period)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.setWriteDeadline(cfg)
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.setWriteDeadline(cfg)
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) setWriteDeadline(cfg *Config) {
	if cfg.WriteWait > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
	}
}
