package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/item"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/broker"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
)

// MenuListener consumes menu change events published by the admin backend and
// drops the local caches so the next hierarchy request sees fresh data.
type MenuListener struct {
	consumer *broker.KafkaConsumer
	uc       item.UseCase
	logger   logger.ZapLogger
}

func NewMenuListener(consumer *broker.KafkaConsumer, uc item.UseCase, logger logger.ZapLogger) *MenuListener {
	return &MenuListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *MenuListener) Start(ctx context.Context) {
	l.logger.Info("Starting menu events listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping menu events listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type MenuChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

// menuEventTypes are the event types that change what the grouping functions
// would return.
var menuEventTypes = map[string]bool{
	"CategoryCreated": true,
	"CategoryUpdated": true,
	"CategoryDeleted": true,
	"MenuItemCreated": true,
	"MenuItemUpdated": true,
	"MenuItemDeleted": true,
}

func (l *MenuListener) processMessage(ctx context.Context, value []byte) {
	var event MenuChangedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if !menuEventTypes[event.EventType] {
		return
	}

	l.logger.Info("Processing menu change event",
		zap.String("event_type", event.EventType),
		zap.String("entity_id", event.EntityID),
	)
	l.uc.InvalidateCaches(ctx)
}
