package preference

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"keto-tracker/domain"
	"keto-tracker/entities"
	"keto-tracker/pkg/access"
)

type (
	PreferenceService interface {
		// GetPreference returns the actor's target ratio, lazily creating the
		// row with the default on first read.
		GetPreference(ctx context.Context, actor access.Actor) (domain.PreferenceResponse, error)
		SetPreference(ctx context.Context, actor access.Actor, req domain.UpdatePreferenceRequest) (domain.PreferenceResponse, error)
	}

	preferenceService struct {
		preferenceRepository PreferenceRepository
		policy               access.Policy
	}
)

func NewPreferenceService(preferenceRepository PreferenceRepository, policy access.Policy) PreferenceService {
	return &preferenceService{
		preferenceRepository: preferenceRepository,
		policy:               policy,
	}
}

func (s *preferenceService) GetPreference(ctx context.Context, actor access.Actor) (domain.PreferenceResponse, error) {
	key, persisted := s.preferenceKey(actor)
	if !persisted {
		// Anonymous callers in community mode read the default without
		// creating a row.
		return domain.PreferenceResponse{TargetRatio: domain.DefaultTargetRatio}, nil
	}

	preference, err := s.getOrCreate(ctx, key, domain.DefaultTargetRatio)
	if err != nil {
		return domain.PreferenceResponse{}, err
	}
	return domain.PreferenceResponse{TargetRatio: preference.TargetRatio}, nil
}

func (s *preferenceService) SetPreference(ctx context.Context, actor access.Actor, req domain.UpdatePreferenceRequest) (domain.PreferenceResponse, error) {
	ratio, err := strconv.ParseFloat(req.TargetRatio, 64)
	if err != nil {
		return domain.PreferenceResponse{}, domain.ErrInvalidTargetRatio
	}

	key, persisted := s.preferenceKey(actor)
	if !persisted {
		return domain.PreferenceResponse{}, domain.ErrUserNotAllowed
	}

	preference, err := s.getOrCreate(ctx, key, ratio)
	if err != nil {
		return domain.PreferenceResponse{}, err
	}

	if preference.TargetRatio != ratio {
		preference.TargetRatio = ratio
		if err := s.preferenceRepository.Update(ctx, preference); err != nil {
			return domain.PreferenceResponse{}, err
		}
	}

	return domain.PreferenceResponse{TargetRatio: preference.TargetRatio}, nil
}

// getOrCreate is the upsert both operations share: insert-if-absent guarded
// by the unique key, then read back whichever row won.
func (s *preferenceService) getOrCreate(ctx context.Context, key uuid.UUID, ratio float64) (*entities.UserPreference, error) {
	preference, err := s.preferenceRepository.GetByUserID(ctx, key)
	if err == nil {
		return preference, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &entities.UserPreference{
		ID:          uuid.New(),
		UserID:      key,
		TargetRatio: ratio,
	}
	if _, err := s.preferenceRepository.Insert(ctx, created); err != nil {
		return nil, err
	}

	// Re-read regardless of who won the insert race.
	return s.preferenceRepository.GetByUserID(ctx, key)
}

// preferenceKey maps the actor to the row key: the user id in community mode,
// uuid.Nil for the single global row in single-tenant mode. The second return
// is false when nothing should be persisted for this actor.
func (s *preferenceService) preferenceKey(actor access.Actor) (uuid.UUID, bool) {
	if !s.policy.RequiresAuth() {
		return uuid.Nil, true
	}
	if !actor.IsAuthenticated() {
		return uuid.Nil, false
	}
	parsed, err := uuid.Parse(actor.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}
