package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string     `json:"name"`
	Instructions string     `gorm:"type:text" json:"instructions"`
	Servings     int        `json:"servings"`
	IsPublic     bool       `gorm:"default:false" json:"is_public"`
	CreatedByID  *uuid.UUID `json:"created_by,omitempty"`

	Creator     *User              `gorm:"foreignKey:CreatedByID" json:"-"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Timestamp
}

// RecipeIngredient rows are owned by their recipe. Updates never diff them:
// the whole set is deleted and recreated in one transaction.
type RecipeIngredient struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID   uuid.UUID `json:"recipe_id"`
	FoodItemID uuid.UUID `json:"food_item_id"`
	Grams      float64   `json:"grams"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
}
