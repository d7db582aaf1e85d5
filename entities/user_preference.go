package entities

import (
	"github.com/google/uuid"
)

// UserPreference holds one row per user. The unique index on UserID is the
// safeguard that keeps concurrent get-or-create calls from inserting twice.
// Single-tenant deployments use uuid.Nil as the key of the one global row.
type UserPreference struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	TargetRatio float64   `json:"target_ratio"`

	Timestamp
}
