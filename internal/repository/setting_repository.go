package repository

import (
	"context"
	"time"

	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingRepository handles the global key/value settings collection.
type SettingRepository struct {
	collection *mongo.Collection
}

// NewSettingRepository creates a new instance of SettingRepository.
func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{
		collection: db.Collection("system_settings"),
	}
}

// GetInt reads an integer setting, returning the fallback when the key
// does not exist yet.
func (r *SettingRepository) GetInt(ctx context.Context, key string, fallback int) (int, error) {
	var setting models.SystemSetting
	err := r.collection.FindOne(ctx, bson.M{"key": key}).Decode(&setting)
	if err == mongo.ErrNoDocuments {
		return fallback, nil
	}
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Error("Failed to read setting")
		return fallback, err
	}
	return setting.Value, nil
}

// SetInt upserts an integer setting.
func (r *SettingRepository) SetInt(ctx context.Context, key string, value int) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"key": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Error("Failed to write setting")
		return err
	}

	logger.Log.WithFields(map[string]interface{}{
		"key":   key,
		"value": value,
	}).Info("Setting updated successfully")
	return nil
}
