package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is the user's stored coordinate, used for prayer time
// calculation. City is display-only and never feeds any calculation.
type GeoPoint struct {
	Lat  float64 `bson:"lat" json:"lat"`
	Lng  float64 `bson:"lng" json:"lng"`
	City string  `bson:"city,omitempty" json:"city,omitempty"`
}

// Preferences holds the per-user worship settings read on every
// eligibility and scoring computation.
type Preferences struct {
	IsMenstruating bool            `bson:"is_menstruating" json:"isMenstruating"`
	ActiveHabits   map[string]bool `bson:"active_habits" json:"activeHabits"`
}

// User represents an account in the Zenith habit tracker.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Username       string             `bson:"username" json:"username"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	DisplayName    string             `bson:"display_name,omitempty" json:"displayName,omitempty"`
	PhotoURL       string             `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	Gender         string             `bson:"gender" json:"gender"` // "male" or "female"
	Role           string             `bson:"role" json:"role"`

	Onboarded   bool        `bson:"onboarded" json:"onboarded"`
	Location    *GeoPoint   `bson:"location,omitempty" json:"location,omitempty"`
	Preferences Preferences `bson:"preferences" json:"preferences"`

	// HijriOffset is the per-user calibration in days, added to the
	// global offset before conversion. Clamped to [-3, 3].
	HijriOffset int `bson:"hijri_offset" json:"hijriOffset"`

	IsVerified  bool      `bson:"is_verified" json:"isVerified"`
	VerifyToken string    `bson:"verify_token,omitempty" json:"-"`
	LastActive  time.Time `bson:"last_active,omitempty" json:"lastActive,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
