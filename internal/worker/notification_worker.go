package worker

import (
	"go.uber.org/zap"

	"github.com/dayflow/hr-service/internal/config"
	"github.com/dayflow/hr-service/internal/events"
	"github.com/dayflow/hr-service/internal/service"
)

// StartNotificationWorker attaches the notification fan-out to dispatcher so
// every domain event is forwarded to the configured channel.
func StartNotificationWorker(dispatcher events.Dispatcher, publisher service.Publisher, cfg config.NotificationConfig, logger *zap.Logger) *service.NotificationService {
	if dispatcher == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ns := service.NewNotificationService(dispatcher, publisher, logger, cfg)
	ns.RegisterHandlers()
	logger.Info("notification worker started", zap.String("channel", cfg.Channel))
	return ns
}
