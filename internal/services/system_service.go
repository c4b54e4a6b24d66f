package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/internal/repository"
)

// SystemService manages global settings, currently the worldwide Hijri
// calibration offset used when a new moon sighting diverges from the
// tabular calendar.
type SystemService struct {
	settings *repository.SettingRepository
}

// NewSystemService creates a new instance of SystemService.
func NewSystemService(settings *repository.SettingRepository) *SystemService {
	return &SystemService{settings: settings}
}

// GetHijriOffset returns the current global offset, defaulting to zero.
func (s *SystemService) GetHijriOffset(ctx context.Context) (int, error) {
	return s.settings.GetInt(ctx, models.HijriOffsetKey, 0)
}

// UpdateHijriOffset stores a new global offset. Values outside the
// +/-3 day band are rejected, not clamped: an out-of-range request is
// almost certainly a mistake and silently correcting it would hide it.
func (s *SystemService) UpdateHijriOffset(ctx context.Context, offset int) error {
	if offset < -models.MaxHijriOffset || offset > models.MaxHijriOffset {
		return fmt.Errorf("hijri offset must be between -%d and %d", models.MaxHijriOffset, models.MaxHijriOffset)
	}

	if err := s.settings.SetInt(ctx, models.HijriOffsetKey, offset); err != nil {
		return fmt.Errorf("failed to store hijri offset: %v", err)
	}

	logrus.WithField("offset", offset).Info("Global hijri offset updated")
	return nil
}
