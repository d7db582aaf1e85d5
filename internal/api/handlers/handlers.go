package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"keto-tracker/domain"
	"keto-tracker/pkg/access"
)

// actorFromCtx reads the identity the auth middleware resolved, falling back
// to anonymous when none is set.
func actorFromCtx(c *fiber.Ctx) access.Actor {
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		return access.Authenticated(userID)
	}
	return access.Anonymous()
}

// statusCode maps domain errors onto HTTP status categories. Permission
// failures stay 403, never downgraded to 404.
func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidNumericValue),
		errors.Is(err, domain.ErrMissingFoodItemName),
		errors.Is(err, domain.ErrInvalidServings),
		errors.Is(err, domain.ErrInvalidGrams),
		errors.Is(err, domain.ErrInvalidTargetRatio),
		errors.Is(err, domain.ErrNoValidFoodItems),
		errors.Is(err, domain.ErrEmptyUpload),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
