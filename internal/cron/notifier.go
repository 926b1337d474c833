package cron

import (
	"log"
	"time"

	"github.com/projetvet/projetvet-go/internal/application"
	"github.com/projetvet/projetvet-go/internal/config"
)

const dispatchBatchSize = 50

// StartNotificationDispatcher drains the pending notification queue every
// NOTIFY_INTERVAL seconds, starting with one pass at boot.
func StartNotificationDispatcher(notifService *application.NotificationService) {
	interval := time.Duration(config.NotifyInterval) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}

	go func() {
		log.Printf("Starting notification dispatcher (interval: %s)", interval)

		if err := notifService.DispatchPending(dispatchBatchSize); err != nil {
			log.Printf("Failed to dispatch pending notifications: %v", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := notifService.DispatchPending(dispatchBatchSize); err != nil {
				log.Printf("Failed to dispatch pending notifications: %v", err)
			}
		}
	}()
}
