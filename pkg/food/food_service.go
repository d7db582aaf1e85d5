package food

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"keto-tracker/domain"
	"keto-tracker/entities"
	"keto-tracker/internal/utils/storage"
)

type (
	FoodService interface {
		CreateFoodItem(ctx context.Context, req domain.CreateFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context) ([]domain.FoodItemResponse, error)
		BulkUpload(ctx context.Context, content string, userID string) (domain.BulkUploadResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) CreateFoodItem(ctx context.Context, req domain.CreateFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	protein, fat, carbs, err := parseMacros(req.Protein, req.Fat, req.Carbs)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	foodItem := &entities.FoodItem{
		ID:             uuid.New(),
		Name:           req.Name,
		ProteinPer100g: protein,
		FatPer100g:     fat,
		CarbsPer100g:   carbs,
		CreatedByID:    parseOptionalUserID(userID),
	}

	if err := s.foodRepository.CreateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}
	if req.Protein != "" {
		value, err := strconv.ParseFloat(req.Protein, 64)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidNumericValue
		}
		foodItem.ProteinPer100g = value
	}
	if req.Fat != "" {
		value, err := strconv.ParseFloat(req.Fat, 64)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidNumericValue
		}
		foodItem.FatPer100g = value
	}
	if req.Carbs != "" {
		value, err := strconv.ParseFloat(req.Carbs, 64)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidNumericValue
		}
		foodItem.CarbsPer100g = value
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string) error {
	if _, err := s.foodRepository.GetFoodItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}
	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}
	return response, nil
}

// BulkUpload archives the raw CSV, parses it tolerantly, and commits the
// usable rows with skip-on-duplicate semantics. Bad lines are reported, not
// fatal; the call only fails when nothing could be imported.
func (s *foodService) BulkUpload(ctx context.Context, content string, userID string) (domain.BulkUploadResponse, error) {
	if s.s3 != nil {
		key := fmt.Sprintf("food-imports/%s.csv", uuid.New().String())
		if _, err := s.s3.UploadFile(key, []byte(content), "text/csv"); err != nil {
			log.Printf("failed to archive CSV upload: %v", err)
		}
	}

	parsed := ParseFoodItemsCSV(content)

	if len(parsed.Items) == 0 {
		return domain.BulkUploadResponse{
			Success: false,
			Total:   parsed.Total,
			Errors:  parsed.Errors,
		}, domain.ErrNoValidFoodItems
	}

	createdBy := parseOptionalUserID(userID)
	foodItems := make([]*entities.FoodItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		foodItems = append(foodItems, &entities.FoodItem{
			ID:             uuid.New(),
			Name:           item.Name,
			ProteinPer100g: item.Protein,
			FatPer100g:     item.Fat,
			CarbsPer100g:   item.Carbs,
			CreatedByID:    createdBy,
		})
	}

	imported, err := s.foodRepository.BulkCreateFoodItems(ctx, foodItems)
	if err != nil {
		return domain.BulkUploadResponse{}, err
	}

	return domain.BulkUploadResponse{
		Success:  true,
		Imported: int(imported),
		Total:    parsed.Total,
		Errors:   parsed.Errors,
	}, nil
}

func parseMacros(protein, fat, carbs string) (float64, float64, float64, error) {
	proteinValue, errProtein := strconv.ParseFloat(protein, 64)
	fatValue, errFat := strconv.ParseFloat(fat, 64)
	carbsValue, errCarbs := strconv.ParseFloat(carbs, 64)
	if errProtein != nil || errFat != nil || errCarbs != nil {
		return 0, 0, 0, domain.ErrInvalidNumericValue
	}
	return proteinValue, fatValue, carbsValue, nil
}

func parseOptionalUserID(userID string) *uuid.UUID {
	if userID == "" {
		return nil
	}
	parsed, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	return &parsed
}

func toFoodItemResponse(foodItem *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:        foodItem.ID.String(),
		Name:      foodItem.Name,
		Protein:   foodItem.ProteinPer100g,
		Fat:       foodItem.FatPer100g,
		Carbs:     foodItem.CarbsPer100g,
		CreatedAt: foodItem.CreatedAt,
	}
}
