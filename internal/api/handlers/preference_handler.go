package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"keto-tracker/domain"
	"keto-tracker/internal/api/presenters"
	"keto-tracker/pkg/preference"
)

type (
	PreferenceHandler interface {
		GetPreference(c *fiber.Ctx) error
		UpdatePreference(c *fiber.Ctx) error
	}

	preferenceHandler struct {
		preferenceService preference.PreferenceService
		validator         *validator.Validate
	}
)

func NewPreferenceHandler(preferenceService preference.PreferenceService, validator *validator.Validate) PreferenceHandler {
	return &preferenceHandler{
		preferenceService: preferenceService,
		validator:         validator,
	}
}

func (h *preferenceHandler) GetPreference(c *fiber.Ctx) error {
	res, err := h.preferenceService.GetPreference(c.Context(), actorFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetPreference, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPreference)
}

func (h *preferenceHandler) UpdatePreference(c *fiber.Ctx) error {
	req := new(domain.UpdatePreferenceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePreference, err)
	}

	res, err := h.preferenceService.SetPreference(c.Context(), actorFromCtx(c), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdatePreference, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePreference)
}
