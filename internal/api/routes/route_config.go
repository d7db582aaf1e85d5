package routes

import (
	"github.com/gofiber/fiber/v2"

	"keto-tracker/internal/api/handlers"
	"keto-tracker/internal/middleware"
	"keto-tracker/pkg/access"
	"keto-tracker/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	FoodHandler       handlers.FoodHandler
	RecipeHandler     handlers.RecipeHandler
	PreferenceHandler handlers.PreferenceHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
	Policy            access.Policy
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Recipes()
	c.Preferences()
	c.GuestRoute()
}

// mutateGuard enforces auth on write endpoints in community mode; in
// single-tenant mode it only resolves identity when a token happens to be
// present.
func (c *Config) mutateGuard() fiber.Handler {
	if c.Policy.RequiresAuth() {
		return c.Middleware.AuthMiddleware(c.JWTService)
	}
	return c.Middleware.OptionalAuthMiddleware(c.JWTService)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")

	foodItems.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.FoodHandler.GetFoodItemDetails)

	foodItems.Post("", c.mutateGuard(), c.FoodHandler.CreateFoodItem)
	foodItems.Patch("/:id", c.mutateGuard(), c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.mutateGuard(), c.FoodHandler.DeleteFoodItem)
	foodItems.Post("/bulk-upload", c.mutateGuard(), c.FoodHandler.BulkUploadFoodItems)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)

	recipes.Post("", c.mutateGuard(), c.RecipeHandler.CreateRecipe)
	recipes.Patch("/:id", c.mutateGuard(), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.mutateGuard(), c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Preferences() {
	preferences := c.App.Group("/api/v1/preferences")

	preferences.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.PreferenceHandler.GetPreference)
	preferences.Patch("", c.mutateGuard(), c.PreferenceHandler.UpdatePreference)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
