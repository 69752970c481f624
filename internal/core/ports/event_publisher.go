package ports

import (
	"context"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

// EventPublisher 發布 Lifecycle 事件
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_event_publisher.go -package=mock_ports github.com/JoeShih716/go-game-gateway/internal/core/ports EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.LifecycleEvent) error
}

// EventSubscriber 訂閱 Lifecycle 事件
type EventSubscriber interface {
	// Subscribe 啟動背景訂閱，handler 在背景 goroutine 被呼叫
	Subscribe(ctx context.Context, handler func(event *domain.LifecycleEvent)) error
}
