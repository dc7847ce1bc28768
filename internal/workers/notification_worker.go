package workers

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"talentbridge_backend/internal/logger"
	"talentbridge_backend/internal/services"
)

// NotificationWorker deletes read notifications past the retention window.
type NotificationWorker struct {
	notificationService services.NotificationService
	schedule            string
	retentionDays       int
	cron                *cron.Cron
}

func NewNotificationWorker(notificationService services.NotificationService, schedule string, retentionDays int) *NotificationWorker {
	return &NotificationWorker{
		notificationService: notificationService,
		schedule:            schedule,
		retentionDays:       retentionDays,
		cron:                cron.New(),
	}
}

func (w *NotificationWorker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, w.cleanOldNotifications)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	w.cron.Start()
	logger.Info("notification cleanup worker started", "schedule", w.schedule, "retention_days", w.retentionDays)
	return nil
}

func (w *NotificationWorker) Stop() {
	w.cron.Stop()
}

func (w *NotificationWorker) cleanOldNotifications() {
	deleted, err := w.notificationService.CleanOldNotifications(w.retentionDays)
	logger.WorkerLog("notification_cleanup", "clean_old_notifications", err)
	if err == nil && deleted > 0 {
		logger.Info("old notifications removed", "count", deleted)
	}
}
