package entities

import (
	"github.com/google/uuid"
)

// FoodItem stores macro density in grams per 100 grams of food. The composite
// unique index backs the skip-on-duplicate semantics of the bulk CSV import.
type FoodItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string     `gorm:"uniqueIndex:idx_food_items_identity" json:"name"`
	ProteinPer100g float64    `gorm:"uniqueIndex:idx_food_items_identity" json:"protein"`
	FatPer100g     float64    `gorm:"uniqueIndex:idx_food_items_identity" json:"fat"`
	CarbsPer100g   float64    `gorm:"uniqueIndex:idx_food_items_identity" json:"carbs"`
	CreatedByID    *uuid.UUID `json:"created_by,omitempty"`

	Creator *User `gorm:"foreignKey:CreatedByID" json:"-"`
	Timestamp
}
