package domain

import "errors"

// DefaultTargetRatio is the keto ratio a user starts with before setting one.
const DefaultTargetRatio = 3.0

var (
	MessageSuccessGetPreference    = "preference retrieved successfully"
	MessageSuccessUpdatePreference = "preference updated successfully"

	MessageFailedGetPreference    = "failed to fetch preferences"
	MessageFailedUpdatePreference = "failed to update preferences"

	ErrInvalidTargetRatio = errors.New("target ratio must be a number")
)

type (
	UpdatePreferenceRequest struct {
		TargetRatio string `json:"target_ratio" validate:"required"`
	}

	PreferenceResponse struct {
		TargetRatio float64 `json:"target_ratio"`
	}
)
