package recipe

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"keto-tracker/domain"
	"keto-tracker/entities"
	"keto-tracker/pkg/access"
	"keto-tracker/pkg/food"
	"keto-tracker/pkg/nutrition"
	"keto-tracker/pkg/preference"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, actor access.Actor) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, actor access.Actor, scope access.ListScope) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, actor access.Actor) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, actor access.Actor) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, id string, actor access.Actor) error
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		foodRepository    food.FoodRepository
		preferenceService preference.PreferenceService
		policy            access.Policy
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	foodRepository food.FoodRepository,
	preferenceService preference.PreferenceService,
	policy access.Policy,
) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		foodRepository:    foodRepository,
		preferenceService: preferenceService,
		policy:            policy,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, actor access.Actor) (domain.RecipeDetailResponse, error) {
	servings, err := parseServings(req.Servings)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredients, err := s.buildIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		Name:         req.Name,
		Instructions: req.Instructions,
		Servings:     servings,
		IsPublic:     req.IsPublic,
		CreatedByID:  createdByID(actor),
	}
	for i := range ingredients {
		ingredients[i].RecipeID = recipe.ID
	}
	recipe.Ingredients = ingredients

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return s.toDetailResponse(ctx, recipe, actor), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, actor access.Actor, scope access.ListScope) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		if !s.policy.CanList(recipe, actor, scope) {
			continue
		}
		response = append(response, toRecipeResponse(recipe))
	}
	return response, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, actor access.Actor) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if !s.policy.CanRead(recipe, actor) {
		return domain.RecipeDetailResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	return s.toDetailResponse(ctx, recipe, actor), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, actor access.Actor) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if !s.policy.CanMutate(recipe, actor) {
		return domain.RecipeDetailResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.Servings != "" {
		servings, err := parseServings(req.Servings)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Servings = servings
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}

	replaceIngredients := req.Ingredients != nil
	var ingredients []entities.RecipeIngredient
	if replaceIngredients {
		ingredients, err = s.buildIngredients(ctx, req.Ingredients)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, replaceIngredients, ingredients); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	updated, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return s.toDetailResponse(ctx, updated, actor), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, actor access.Actor) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if !s.policy.CanMutate(recipe, actor) {
		return domain.ErrUnauthorizedRecipeAccess
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

// buildIngredients resolves every requested ingredient against the catalog
// before anything is written, so a bad reference fails the whole request.
func (s *recipeService) buildIngredients(ctx context.Context, reqs []domain.IngredientRequest) ([]entities.RecipeIngredient, error) {
	ingredients := make([]entities.RecipeIngredient, 0, len(reqs))
	for _, req := range reqs {
		foodItemID, err := uuid.Parse(req.FoodItemID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		grams, err := strconv.ParseFloat(req.Grams, 64)
		if err != nil {
			return nil, domain.ErrInvalidGrams
		}

		foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrFoodItemNotFound
			}
			return nil, err
		}

		ingredients = append(ingredients, entities.RecipeIngredient{
			ID:         uuid.New(),
			FoodItemID: foodItemID,
			Grams:      grams,
			FoodItem:   foodItem,
		})
	}
	return ingredients, nil
}

func (s *recipeService) toDetailResponse(ctx context.Context, recipe *entities.Recipe, actor access.Actor) domain.RecipeDetailResponse {
	portions := make([]nutrition.Portion, 0, len(recipe.Ingredients))
	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		var foodItem domain.FoodItemResponse
		if ing.FoodItem != nil {
			foodItem = domain.FoodItemResponse{
				ID:        ing.FoodItem.ID.String(),
				Name:      ing.FoodItem.Name,
				Protein:   ing.FoodItem.ProteinPer100g,
				Fat:       ing.FoodItem.FatPer100g,
				Carbs:     ing.FoodItem.CarbsPer100g,
				CreatedAt: ing.FoodItem.CreatedAt,
			}
			portions = append(portions, nutrition.Portion{
				ProteinPer100g: ing.FoodItem.ProteinPer100g,
				FatPer100g:     ing.FoodItem.FatPer100g,
				CarbsPer100g:   ing.FoodItem.CarbsPer100g,
				Grams:          ing.Grams,
			})
		}
		ingredients = append(ingredients, domain.IngredientResponse{
			ID:       ing.ID.String(),
			Grams:    ing.Grams,
			FoodItem: foodItem,
		})
	}

	summary := nutrition.ComputeMacros(portions, recipe.Servings)

	targetRatio := domain.DefaultTargetRatio
	if pref, err := s.preferenceService.GetPreference(ctx, actor); err == nil {
		targetRatio = pref.TargetRatio
	}

	return domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Instructions:   recipe.Instructions,
		Ingredients:    ingredients,
		Nutrition: domain.NutritionSummary{
			TotalProtein:       summary.TotalProtein,
			TotalFat:           summary.TotalFat,
			TotalCarbs:         summary.TotalCarbs,
			TotalCalories:      summary.TotalCalories,
			CaloriesPerServing: summary.CaloriesPerServing,
			KetoRatio:          summary.KetoRatio,
			TargetRatio:        targetRatio,
			RatioStatus:        string(nutrition.ClassifyRatio(summary.KetoRatio, targetRatio)),
		},
	}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	response := domain.RecipeResponse{
		ID:        recipe.ID.String(),
		Name:      recipe.Name,
		Servings:  recipe.Servings,
		IsPublic:  recipe.IsPublic,
		CreatedAt: recipe.CreatedAt,
	}
	if recipe.CreatedByID != nil {
		response.CreatedBy = recipe.CreatedByID.String()
	}
	return response
}

func parseServings(raw string) (int, error) {
	servings, err := strconv.Atoi(raw)
	if err != nil || servings < 1 {
		return 0, domain.ErrInvalidServings
	}
	return servings, nil
}

func createdByID(actor access.Actor) *uuid.UUID {
	if !actor.IsAuthenticated() {
		return nil
	}
	parsed, err := uuid.Parse(actor.UserID)
	if err != nil {
		return nil
	}
	return &parsed
}
