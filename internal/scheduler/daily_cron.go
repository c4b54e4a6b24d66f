package cron

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/jobs"
)

// StartDailyCronJobs schedules the background maintenance work.
func StartDailyCronJobs(prefetcher *jobs.PrayerPrefetcher) {
	c := cron.New()

	// Warm prayer time caches right after midnight.
	c.AddFunc("5 0 * * *", func() {
		if err := prefetcher.RunDailyPrefetch(context.Background()); err != nil {
			logrus.WithError(err).Error("RunDailyPrefetch failed")
		}
	})

	// Daily onboarding health report.
	c.AddFunc("0 8 * * *", func() {
		if err := prefetcher.ReportMissingLocations(context.Background()); err != nil {
			logrus.WithError(err).Error("ReportMissingLocations failed")
		}
	})

	c.Start()
}
