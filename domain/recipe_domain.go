package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrInvalidServings          = errors.New("servings must be a positive integer")
	ErrInvalidGrams             = errors.New("grams must be a number")
)

type (
	IngredientRequest struct {
		FoodItemID string `json:"food_item_id" validate:"required,uuid"`
		Grams      string `json:"grams" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name         string              `json:"name" validate:"required"`
		Instructions string              `json:"instructions" validate:"required"`
		Servings     string              `json:"servings" validate:"required"`
		IsPublic     bool                `json:"is_public"`
		Ingredients  []IngredientRequest `json:"ingredients" validate:"required,dive"`
	}

	// Nil Ingredients keeps the existing set; a non-nil slice replaces it
	// wholesale. A nil Instructions pointer keeps the text, an empty string
	// clears it.
	UpdateRecipeRequest struct {
		Name         string              `json:"name" validate:"omitempty"`
		Instructions *string             `json:"instructions"`
		Servings     string              `json:"servings" validate:"omitempty"`
		IsPublic     *bool               `json:"is_public"`
		Ingredients  []IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	IngredientResponse struct {
		ID       string           `json:"id"`
		Grams    float64          `json:"grams"`
		FoodItem FoodItemResponse `json:"food_item"`
	}

	NutritionSummary struct {
		TotalProtein       float64 `json:"total_protein"`
		TotalFat           float64 `json:"total_fat"`
		TotalCarbs         float64 `json:"total_carbs"`
		TotalCalories      int     `json:"total_calories"`
		CaloriesPerServing int     `json:"calories_per_serving"`
		KetoRatio          float64 `json:"keto_ratio"`
		TargetRatio        float64 `json:"target_ratio"`
		RatioStatus        string  `json:"ratio_status"`
	}

	RecipeResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Servings  int       `json:"servings"`
		IsPublic  bool      `json:"is_public"`
		CreatedBy string    `json:"created_by,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Instructions string               `json:"instructions"`
		Ingredients  []IngredientResponse `json:"ingredients"`
		Nutrition    NutritionSummary     `json:"nutrition"`
	}
)
