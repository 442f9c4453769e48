package cron

import (
	"time"

	bookingRepo "medibook/database/repository/booking"
	"medibook/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartCompletionSweeper schedules the hourly job that flips booked
// appointments whose slot has fully elapsed to completed, so they stop
// counting against the doctor's availability history views.
func StartCompletionSweeper(repo bookingRepo.BookingRepository) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	if _, err := c.AddFunc("@every 1h", func() {
		n, err := repo.MarkCompletedBefore(time.Now())
		if err != nil {
			logger.Error("Completion sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Sugar().Infof("Completion sweep marked %d bookings as completed", n)
		}
	}); err != nil {
		logger.Fatal("Failed to schedule completion sweeper", zap.Error(err))
	}
	c.Start()
	return c
}
