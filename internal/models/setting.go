package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SystemSetting is a generic key/value document for global knobs,
// currently only the global Hijri day offset.
type SystemSetting struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key       string             `bson:"key" json:"key"`
	Value     int                `bson:"value" json:"value"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// HijriOffsetKey names the global Hijri calibration setting. The tabular
// conversion drifts up to a day from moon sighting; an admin corrects it
// here within [-3, 3].
const HijriOffsetKey = "global_hijri_offset"

// MaxHijriOffset bounds both the global and the per-user calibration.
const MaxHijriOffset = 3
