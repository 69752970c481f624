package wss

import (
	"context"
	"log/slog"
	"sync"
)

// hub 管理所有連線的註冊與註銷，並把事件分派給 Subscriber
type hub struct {
	ctx    context.Context
	logger *slog.Logger

	clients    map[*connection]struct{}
	register   chan *connection
	unregister chan *connection

	mu          sync.RWMutex
	subscribers []Subscriber
}

func newHub(ctx context.Context, logger *slog.Logger) *hub {
	return &hub{
		ctx:        ctx,
		logger:     logger,
		clients:    make(map[*connection]struct{}),
		register:   make(chan *connection),
		unregister: make(chan *connection),
	}
}

func (h *hub) registerSubscriber(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers = append(h.subscribers, s)
}

func (h *hub) snapshotSubscribers() []Subscriber {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Subscriber, len(h.subscribers))
	copy(out, h.subscribers)
	return out
}

// run hub 主迴圈，ctx 結束時關閉所有連線
func (h *hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			for _, s := range h.snapshotSubscribers() {
				s.OnConnect(c)
			}
			h.logger.Debug("client registered", "id", c.id, "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; !ok {
				continue
			}
			delete(h.clients, c)
			c.markClosed()
			close(c.send)
			for _, s := range h.snapshotSubscribers() {
				s.OnDisconnect(c)
			}
			h.logger.Debug("client unregistered", "id", c.id, "clients", len(h.clients))

		case <-h.ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				c.markClosed()
				close(c.send)
				for _, s := range h.snapshotSubscribers() {
					s.OnDisconnect(c)
				}
			}
			return
		}
	}
}

// dispatch 將收到的訊息交給所有 Subscriber
func (h *hub) dispatch(c *connection, msg []byte) {
	for _, s := range h.snapshotSubscribers() {
		s.OnMessage(c, msg)
	}
}

// leave 通知 hub 註銷連線；hub 已停止時直接返回
func (h *hub) leave(c *connection) {
	select {
	case h.unregister <- c:
	case <-h.ctx.Done():
	}
}
