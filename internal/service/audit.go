package service

import (
	"context"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"go.uber.org/zap"
)

// publishAudit публикует событие после завершенного действия.
// Ошибка публикации логируется и не отменяет действие.
func publishAudit(ctx context.Context, publisher domain.AuditPublisher, logger *zap.Logger, event domain.AuditEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Error("failed to publish audit event",
			zap.String("event_type", string(event.EventType)),
			zap.String("order_id", event.OrderID),
			zap.String("user_id", event.UserID),
			zap.Error(err),
		)
	}
}
