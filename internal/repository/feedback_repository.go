package repository

import (
	"context"
	"time"

	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedbackRepository handles user-submitted feedback documents.
type FeedbackRepository struct {
	collection *mongo.Collection
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{
		collection: db.Collection("feedback"),
	}
}

// CreateFeedback inserts a new feedback entry.
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	fb.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, fb)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert feedback")
		return nil, err
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		fb.ID = insertedID
	}

	logger.Log.WithField("feedback_id", fb.ID.Hex()).Info("Feedback created successfully")
	return fb, nil
}

// GetAllFeedback lists feedback newest first (admin page).
func (r *FeedbackRepository) GetAllFeedback(ctx context.Context) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch feedback")
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Feedback
	for cursor.Next(ctx) {
		var fb models.Feedback
		if err := cursor.Decode(&fb); err != nil {
			logger.Log.WithError(err).Error("Failed to decode feedback")
			return nil, err
		}
		items = append(items, fb)
	}
	return items, nil
}

// MarkRead flags a feedback entry as handled.
func (r *FeedbackRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("feedback_id", id.Hex()).Error("Failed to mark feedback read")
	}
	return err
}
