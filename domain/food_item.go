package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateFoodItem = "food item created successfully"
	MessageSuccessUpdateFoodItem = "food item updated successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessBulkUpload     = "food items imported successfully"

	MessageFailedCreateFoodItem = "failed to create food item"
	MessageFailedUpdateFoodItem = "failed to update food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedBulkUpload     = "failed to process CSV file"

	ErrFoodItemNotFound    = errors.New("food item not found")
	ErrMissingFoodItemName = errors.New("food item name is required")
	ErrInvalidNumericValue = errors.New("invalid numeric value")
	ErrNoValidFoodItems    = errors.New("no valid food items found in CSV")
	ErrEmptyUpload         = errors.New("no file uploaded")
)

type (
	// Macro fields arrive as text from form inputs and are parsed at this
	// boundary, mirroring how the UI submits them.
	CreateFoodItemRequest struct {
		Name    string `json:"name" validate:"required"`
		Protein string `json:"protein" validate:"required"`
		Fat     string `json:"fat" validate:"required"`
		Carbs   string `json:"carbs" validate:"required"`
	}

	UpdateFoodItemRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		Protein string `json:"protein" validate:"omitempty"`
		Fat     string `json:"fat" validate:"omitempty"`
		Carbs   string `json:"carbs" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Protein   float64   `json:"protein"`
		Fat       float64   `json:"fat"`
		Carbs     float64   `json:"carbs"`
		CreatedAt time.Time `json:"created_at"`
	}

	BulkUploadResponse struct {
		Success  bool     `json:"success"`
		Imported int      `json:"imported"`
		Total    int      `json:"total"`
		Errors   []string `json:"errors,omitempty"`
	}
)
