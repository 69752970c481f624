package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
	pkgRedis "github.com/JoeShih716/go-game-gateway/pkg/redis"
)

// Broker 是 pkg/redis.Client 的 Pub/Sub 子集
type Broker interface {
	Publish(ctx context.Context, channel string, message any) error
	Subscribe(ctx context.Context, channel string, handler pkgRedis.MessageHandler) error
}

var (
	_ ports.EventPublisher  = (*EventBus)(nil)
	_ ports.EventSubscriber = (*EventBus)(nil)
	_ Broker                = (*pkgRedis.Client)(nil)
)

// EventBus 透過 Redis Pub/Sub 發布 Lifecycle 事件 (JSON)
// 多個 Gateway 實例共用同一個頻道，每個實例都能轉送所有事件。
type EventBus struct {
	broker  Broker
	channel string
	logger  *slog.Logger
}

// NewEventBus 建立 Redis 事件匯流排
//
// 參數:
//
//	broker: Broker - Redis 客戶端
//	channel: string - 發布/訂閱的頻道
//	logger: *slog.Logger - 日誌
func NewEventBus(broker Broker, channel string, logger *slog.Logger) *EventBus {
	return &EventBus{
		broker:  broker,
		channel: channel,
		logger:  logger.With("component", "redis_event_bus", "channel", channel),
	}
}

// Publish 發布事件
func (b *EventBus) Publish(ctx context.Context, event *domain.LifecycleEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := b.broker.Publish(ctx, b.channel, data); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}
	return nil
}

// Subscribe 訂閱事件，無法解析的訊息記錄後略過
func (b *EventBus) Subscribe(ctx context.Context, handler func(event *domain.LifecycleEvent)) error {
	return b.broker.Subscribe(ctx, b.channel, func(payload string) {
		var event domain.LifecycleEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			b.logger.Warn("Discarding malformed lifecycle event", "error", err)
			return
		}
		handler(&event)
	})
}
