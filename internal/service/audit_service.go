package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/events"
)

// AuditService logs every board event for operator visibility.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to all board events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventNoticePosted,
		events.EventUserRegistered,
		events.EventUserApproved,
		events.EventUserRejected,
		events.EventCategoryAdded,
	} {
		a.dispatcher.Subscribe(eventType, a.handleEvent)
	}
}

func (a *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	a.logger.Info("board event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("entity_id", event.EntityID),
		zap.Time("timestamp", event.Timestamp),
		zap.Any("payload", event.Payload))
	return nil
}
