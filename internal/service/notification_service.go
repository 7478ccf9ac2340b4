package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/query-service/internal/config"
	"github.com/spec-kit/query-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventQueryCreated, n.handleQueryCreated)
	n.dispatcher.Subscribe(events.EventQueryStatusChanged, n.handleQueryStatusChanged)
	n.dispatcher.Subscribe(events.EventQueryAssigned, n.handleQueryAssigned)
	n.dispatcher.Subscribe(events.EventQueryResolved, n.handleQueryResolved)
}

func (n *NotificationService) handleQueryCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("QueryCreated", zap.String("query_id", event.QueryID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleQueryStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("QueryStatusChanged", zap.String("query_id", event.QueryID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleQueryAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("QueryAssigned", zap.String("query_id", event.QueryID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleQueryResolved(ctx context.Context, event events.Event) error {
	n.logger.Info("QueryResolved", zap.String("query_id", event.QueryID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("query_id", event.QueryID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("query_id", event.QueryID),
		zap.String("event_type", string(event.Type)))
}
