package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyLog stores one user's worship record for one calendar day.
// The (user_id, date) pair is unique: exactly one log per user per day,
// created on first write and mutated in place afterwards.
type DailyLog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"user_id" json:"userId"`

	// Date is stored as "YYYY-MM-DD" so it stays timezone safe.
	Date string `bson:"date" json:"date"`

	// Checklists holds the ids of completed checkbox habits.
	Checklists []string `bson:"checklists" json:"checklists"`

	// Counters maps counter habit ids to their recorded values.
	Counters map[string]int `bson:"counters" json:"counters"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	// IsMenstruating marks the day as exempt from physical acts; the
	// analyzer treats obligatory-prayer compliance as 100% on such days.
	IsMenstruating bool `bson:"is_menstruating" json:"isMenstruating"`
	IsFasting      bool `bson:"is_fasting" json:"isFasting"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// CompletedCount returns how many checklist entries the log carries.
func (l *DailyLog) CompletedCount() int {
	return len(l.Checklists)
}

// HasCompleted reports whether the given habit id is checked off.
func (l *DailyLog) HasCompleted(habitID string) bool {
	for _, id := range l.Checklists {
		if id == habitID {
			return true
		}
	}
	return false
}

// WeekdayOf parses the log date and returns its weekday (0=Sunday).
func (l *DailyLog) WeekdayOf() (int, error) {
	t, err := time.Parse("2006-01-02", l.Date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}
