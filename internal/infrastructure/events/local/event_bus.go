package local

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
)

var (
	_ ports.EventPublisher  = (*EventBus)(nil)
	_ ports.EventSubscriber = (*EventBus)(nil)
)

// EventBus 單一實例內的事件匯流排 (未設定 Redis 時使用)
// Publish 會同步呼叫所有訂閱者
type EventBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]func(event *domain.LifecycleEvent)
}

// NewEventBus 建立記憶體事件匯流排
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[int]func(event *domain.LifecycleEvent))}
}

// Publish 發布事件
func (b *EventBus) Publish(_ context.Context, event *domain.LifecycleEvent) error {
	b.mu.RLock()
	handlers := make([]func(*domain.LifecycleEvent), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

// Subscribe 註冊訂閱者，ctx 結束時自動取消
func (b *EventBus) Subscribe(ctx context.Context, handler func(event *domain.LifecycleEvent)) error {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}()
	return nil
}
