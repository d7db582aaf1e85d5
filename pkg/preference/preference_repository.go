package preference

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"keto-tracker/entities"
)

type (
	PreferenceRepository interface {
		GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserPreference, error)
		// Insert creates the row unless one already exists for the user,
		// reporting whether this call created it. The unique index on user_id
		// makes the losing writer of a create race a no-op.
		Insert(ctx context.Context, preference *entities.UserPreference) (bool, error)
		Update(ctx context.Context, preference *entities.UserPreference) error
	}

	preferenceRepository struct {
		db *gorm.DB
	}
)

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserPreference, error) {
	var preference entities.UserPreference
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&preference).Error; err != nil {
		return nil, err
	}
	return &preference, nil
}

func (r *preferenceRepository) Insert(ctx context.Context, preference *entities.UserPreference) (bool, error) {
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(preference)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *preferenceRepository) Update(ctx context.Context, preference *entities.UserPreference) error {
	return r.db.WithContext(ctx).Save(preference).Error
}
