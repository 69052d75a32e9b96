package logging

import (
	"log/slog"
	"time"

	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"gorm.io/gorm"
)

const (
	logRetention  = 30 * 24 * time.Hour
	sweepInterval = 24 * time.Hour
)

// StartCleanup launches a background sweeper that prunes system_logs rows
// older than the retention window. Close done to stop it.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepLogs(db)
			case <-done:
				return
			}
		}
	}()
}

func sweepLogs(db *gorm.DB) {
	cutoff := time.Now().Add(-logRetention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
