package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a user-submitted report shown on the admin page.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"userId"`
	UserEmail string             `bson:"user_email,omitempty" json:"userEmail,omitempty"`
	Category  string             `bson:"category" json:"category"` // bug | feature | ui | other
	Rating    int                `bson:"rating" json:"rating"`     // 1 - 5
	Message   string             `bson:"message" json:"message"`
	IsRead    bool               `bson:"is_read" json:"isRead"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
