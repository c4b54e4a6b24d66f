package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/prayer"
	"github.com/zenithapp/zenith-server/internal/repository"
)

// PrayerPrefetcher warms the prayer time API for every stored user
// location shortly after midnight, so the first tracker request of the
// day hits a warm upstream cache instead of timing out.
type PrayerPrefetcher struct {
	UserRepo *repository.UserRepository
	Client   *prayer.Client
}

// NewPrayerPrefetcher creates a new instance of PrayerPrefetcher.
func NewPrayerPrefetcher(userRepo *repository.UserRepository, client *prayer.Client) *PrayerPrefetcher {
	return &PrayerPrefetcher{
		UserRepo: userRepo,
		Client:   client,
	}
}

// RunDailyPrefetch fetches today's timings for each distinct coordinate.
// Individual fetch failures are logged and skipped: the tracker falls
// back to the local calculation anyway.
func (p *PrayerPrefetcher) RunDailyPrefetch(ctx context.Context) error {
	users, err := p.UserRepo.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %v", err)
	}

	today := time.Now()
	seen := make(map[string]bool)
	fetched, failed := 0, 0

	// Always include the default location.
	locations := []prayer.Location{prayer.DefaultLocation}
	for _, user := range users {
		if user.Location == nil {
			continue
		}
		locations = append(locations, prayer.Location{Lat: user.Location.Lat, Lng: user.Location.Lng})
	}

	for _, loc := range locations {
		// Dedupe on a coarse grid: timings barely differ within ~0.1 degree.
		key := fmt.Sprintf("%.1f,%.1f", loc.Lat, loc.Lng)
		if seen[key] {
			continue
		}
		seen[key] = true

		if _, err := p.Client.FetchTimings(ctx, today, loc); err != nil {
			logrus.WithError(err).WithField("location", key).Warn("Prayer prefetch failed")
			failed++
			continue
		}
		fetched++
	}

	logrus.WithFields(logrus.Fields{
		"fetched": fetched,
		"failed":  failed,
	}).Info("Prayer prefetch completed")
	return nil
}

// ReportMissingLocations logs accounts that finished signup but never
// stored a coordinate, so stale onboarding shows up in the ops log.
func (p *PrayerPrefetcher) ReportMissingLocations(ctx context.Context) error {
	users, err := p.UserRepo.GetUsersWithoutLocation(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users without location: %v", err)
	}

	if len(users) > 0 {
		logrus.WithField("count", len(users)).Info("Users without stored location")
	}
	return nil
}
