package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"keto-tracker/internal/api/handlers"
	"keto-tracker/internal/api/routes"
	"keto-tracker/internal/middleware"
	"keto-tracker/internal/utils"
	"keto-tracker/internal/utils/storage"
	"keto-tracker/pkg/access"
	"keto-tracker/pkg/food"
	"keto-tracker/pkg/jwt"
	"keto-tracker/pkg/preference"
	"keto-tracker/pkg/recipe"
	"keto-tracker/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	policy := access.ForMode(utils.GetConfig("APP_MODE"))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	preferenceRepository := preference.NewPreferenceRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, s3)
	preferenceService := preference.NewPreferenceService(preferenceRepository, policy)
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository, preferenceService, policy)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		FoodHandler:       foodHandler,
		RecipeHandler:     recipeHandler,
		PreferenceHandler: preferenceHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
		Policy:            policy,
	}
	routesConfig.Setup()
	return app, nil
}
