package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogRepository handles database operations for daily worship logs.
// Every mutation is an upsert on the (user_id, date) compound key, so
// the first write of a day creates the log implicitly.
type LogRepository struct {
	collection *mongo.Collection
}

// NewLogRepository creates a new instance of LogRepository.
func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{
		collection: db.Collection("daily_logs"),
	}
}

// EnsureIndexes creates the unique compound index guaranteeing one log
// per user per day.
func (r *LogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetLog fetches one user's log for one date. Returns (nil, nil) when
// the day has no log yet: absence is a normal state, not an error.
func (r *LogRepository) GetLog(ctx context.Context, userID, date string) (*models.DailyLog, error) {
	var log models.DailyLog
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&log)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		logger.Log.WithError(err).WithFields(map[string]interface{}{
			"user_id": userID,
			"date":    date,
		}).Error("Failed to fetch daily log")
		return nil, err
	}

	if log.Checklists == nil {
		log.Checklists = []string{}
	}
	if log.Counters == nil {
		log.Counters = map[string]int{}
	}
	return &log, nil
}

// ToggleHabit flips the habit id in the checklist set. Reads the current
// state first, then applies $addToSet or $pull with upsert, mirroring
// the one-log-per-day contract.
func (r *LogRepository) ToggleHabit(ctx context.Context, userID, date, habitID string) (bool, error) {
	existing, err := r.GetLog(ctx, userID, date)
	if err != nil {
		return false, err
	}

	checked := existing != nil && existing.HasCompleted(habitID)

	var update bson.M
	if checked {
		update = bson.M{
			"$pull": bson.M{"checklists": habitID},
			"$set":  bson.M{"updated_at": time.Now()},
		}
	} else {
		update = bson.M{
			"$addToSet":    bson.M{"checklists": habitID},
			"$set":         bson.M{"updated_at": time.Now()},
			"$setOnInsert": bson.M{"created_at": time.Now()},
		}
	}

	_, err = r.collection.UpdateOne(
		ctx,
		bson.M{"user_id": userID, "date": date},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Log.WithError(err).WithField("habit_id", habitID).Error("Failed to toggle habit")
		return checked, err
	}

	return !checked, nil
}

// SetCounter records a counter habit's value for the day.
func (r *LogRepository) SetCounter(ctx context.Context, userID, date, habitID string, value int) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"user_id": userID, "date": date},
		bson.M{
			"$set": bson.M{
				fmt.Sprintf("counters.%s", habitID): value,
				"updated_at":                        time.Now(),
			},
			"$setOnInsert": bson.M{"created_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Log.WithError(err).WithField("habit_id", habitID).Error("Failed to set counter")
	}
	return err
}

// SetNote stores the free-text reflection for the day.
func (r *LogRepository) SetNote(ctx context.Context, userID, date, note string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"user_id": userID, "date": date},
		bson.M{
			"$set":         bson.M{"notes": note, "updated_at": time.Now()},
			"$setOnInsert": bson.M{"created_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// SetMenstruating flags the day as exempt from physical acts.
func (r *LogRepository) SetMenstruating(ctx context.Context, userID, date string, value bool) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"user_id": userID, "date": date},
		bson.M{
			"$set":         bson.M{"is_menstruating": value, "updated_at": time.Now()},
			"$setOnInsert": bson.M{"created_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetYearLogs fetches all logs for a user whose date falls in the given
// year, via a prefix match on the date string.
func (r *LogRepository) GetYearLogs(ctx context.Context, userID string, year int) ([]models.DailyLog, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$regex": fmt.Sprintf("^%d", year)},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to fetch year logs")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.DailyLog
	for cursor.Next(ctx) {
		var log models.DailyLog
		if err := cursor.Decode(&log); err != nil {
			logger.Log.WithError(err).Error("Failed to decode daily log")
			return nil, err
		}
		logs = append(logs, log)
	}

	logger.Log.WithFields(map[string]interface{}{
		"user_id": userID,
		"year":    year,
		"count":   len(logs),
	}).Info("Year logs fetched successfully")

	return logs, nil
}
