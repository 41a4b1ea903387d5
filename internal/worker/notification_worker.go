package worker

import (
	"go.uber.org/zap"

	"github.com/guisandroni/classroom-service/internal/service"
)

// StartNotificationWorker subscribes the notification handlers to the
// enrollment event stream. Delivery is in-process and synchronous with the
// publishing request.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker started")
}
