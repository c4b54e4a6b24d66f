package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/internal/repository"
	"github.com/zenithapp/zenith-server/pkg/email"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackService handles user feedback submission and the admin
// moderation view.
type FeedbackService struct {
	repo       *repository.FeedbackRepository
	adminEmail string
}

// NewFeedbackService creates a new instance of FeedbackService.
func NewFeedbackService(repo *repository.FeedbackRepository, adminEmail string) *FeedbackService {
	return &FeedbackService{
		repo:       repo,
		adminEmail: adminEmail,
	}
}

var validCategories = map[string]bool{
	"bug":     true,
	"feature": true,
	"ui":      true,
	"other":   true,
}

// SubmitFeedback validates and stores a feedback entry, then notifies
// the admin mailbox. Mail failure never fails the submission.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	fb.Message = strings.TrimSpace(fb.Message)

	if fb.Message == "" {
		return nil, fmt.Errorf("feedback message must not be empty")
	}
	if len(fb.Message) > 1000 {
		return nil, fmt.Errorf("feedback message must not exceed 1000 characters")
	}
	if fb.Rating < 1 || fb.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if fb.Category == "" {
		fb.Category = "other"
	}
	if !validCategories[fb.Category] {
		return nil, fmt.Errorf("unknown feedback category: %s", fb.Category)
	}

	created, err := s.repo.CreateFeedback(ctx, fb)
	if err != nil {
		return nil, fmt.Errorf("failed to store feedback: %v", err)
	}

	if s.adminEmail != "" {
		subject := fmt.Sprintf("[Zenith] Feedback baru (%s, %d/5)", created.Category, created.Rating)
		body := fmt.Sprintf("Dari: %s\n\n%s", created.UserEmail, created.Message)
		if err := email.SendEmail(s.adminEmail, subject, body); err != nil {
			logrus.WithError(err).Warn("Failed to forward feedback email")
		}
	}

	return created, nil
}

// GetAllFeedback lists all feedback entries, newest first (admin).
func (s *FeedbackService) GetAllFeedback(ctx context.Context) ([]models.Feedback, error) {
	return s.repo.GetAllFeedback(ctx)
}

// MarkRead flags a feedback entry as handled (admin).
func (s *FeedbackService) MarkRead(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid feedback ID: %v", err)
	}
	return s.repo.MarkRead(ctx, objID)
}
