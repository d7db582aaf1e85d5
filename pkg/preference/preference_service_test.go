package preference

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"keto-tracker/domain"
	"keto-tracker/entities"
	"keto-tracker/pkg/access"
)

type fakePreferenceRepository struct {
	rows    map[uuid.UUID]*entities.UserPreference
	inserts int
}

func newFakePreferenceRepository() *fakePreferenceRepository {
	return &fakePreferenceRepository{rows: make(map[uuid.UUID]*entities.UserPreference)}
}

func (r *fakePreferenceRepository) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.UserPreference, error) {
	row, ok := r.rows[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *row
	return &copied, nil
}

func (r *fakePreferenceRepository) Insert(_ context.Context, preference *entities.UserPreference) (bool, error) {
	r.inserts++
	if _, ok := r.rows[preference.UserID]; ok {
		return false, nil
	}
	copied := *preference
	r.rows[preference.UserID] = &copied
	return true, nil
}

func (r *fakePreferenceRepository) Update(_ context.Context, preference *entities.UserPreference) error {
	copied := *preference
	r.rows[preference.UserID] = &copied
	return nil
}

// racingPreferenceRepository simulates losing a create race: the caller sees
// record-not-found, then its insert is beaten by a concurrent writer whose row
// carries a different ratio.
type racingPreferenceRepository struct {
	fakePreferenceRepository
	winner *entities.UserPreference
}

func (r *racingPreferenceRepository) Insert(_ context.Context, _ *entities.UserPreference) (bool, error) {
	r.rows[r.winner.UserID] = r.winner
	r.inserts++
	return false, nil
}

func TestGetPreferenceCreatesDefaultOnFirstRead(t *testing.T) {
	repo := newFakePreferenceRepository()
	service := NewPreferenceService(repo, access.CommunityPolicy{})
	actor := access.Authenticated(uuid.NewString())

	resp, err := service.GetPreference(context.Background(), actor)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTargetRatio, resp.TargetRatio)
	assert.Equal(t, 1, repo.inserts)

	again, err := service.GetPreference(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, resp, again)
	assert.Equal(t, 1, repo.inserts, "second read hits the existing row")
}

func TestGetPreferenceAnonymousCommunityReadsDefaultUnpersisted(t *testing.T) {
	repo := newFakePreferenceRepository()
	service := NewPreferenceService(repo, access.CommunityPolicy{})

	resp, err := service.GetPreference(context.Background(), access.Anonymous())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTargetRatio, resp.TargetRatio)
	assert.Empty(t, repo.rows)
	assert.Zero(t, repo.inserts)
}

func TestSetPreferenceAnonymousCommunityRejected(t *testing.T) {
	service := NewPreferenceService(newFakePreferenceRepository(), access.CommunityPolicy{})

	_, err := service.SetPreference(context.Background(), access.Anonymous(), domain.UpdatePreferenceRequest{
		TargetRatio: "3.5",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestSetPreferenceRejectsNonNumericRatio(t *testing.T) {
	service := NewPreferenceService(newFakePreferenceRepository(), access.CommunityPolicy{})

	_, err := service.SetPreference(context.Background(), access.Authenticated(uuid.NewString()), domain.UpdatePreferenceRequest{
		TargetRatio: "high",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTargetRatio)
}

func TestSetPreferenceUpserts(t *testing.T) {
	repo := newFakePreferenceRepository()
	service := NewPreferenceService(repo, access.CommunityPolicy{})
	actor := access.Authenticated(uuid.NewString())

	created, err := service.SetPreference(context.Background(), actor, domain.UpdatePreferenceRequest{
		TargetRatio: "3.5",
	})
	require.NoError(t, err)
	assert.Equal(t, 3.5, created.TargetRatio)

	updated, err := service.SetPreference(context.Background(), actor, domain.UpdatePreferenceRequest{
		TargetRatio: "4",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.TargetRatio)
	assert.Len(t, repo.rows, 1, "updates never grow a second row")
}

func TestGetPreferenceSurvivesLostCreateRace(t *testing.T) {
	userID := uuid.New()
	repo := &racingPreferenceRepository{
		fakePreferenceRepository: *newFakePreferenceRepository(),
		winner: &entities.UserPreference{
			ID:          uuid.New(),
			UserID:      userID,
			TargetRatio: 3.8,
		},
	}
	service := NewPreferenceService(repo, access.CommunityPolicy{})

	resp, err := service.GetPreference(context.Background(), access.Authenticated(userID.String()))

	require.NoError(t, err)
	assert.Equal(t, 3.8, resp.TargetRatio, "the winner's row is read back, not the loser's default")
}

func TestSingleTenantSharesOneGlobalRow(t *testing.T) {
	repo := newFakePreferenceRepository()
	service := NewPreferenceService(repo, access.SingleTenantPolicy{})

	// Anonymous callers can write in single-tenant mode.
	set, err := service.SetPreference(context.Background(), access.Anonymous(), domain.UpdatePreferenceRequest{
		TargetRatio: "3.2",
	})
	require.NoError(t, err)
	assert.Equal(t, 3.2, set.TargetRatio)

	// A differently identified caller still reads the same row.
	got, err := service.GetPreference(context.Background(), access.Authenticated(uuid.NewString()))
	require.NoError(t, err)
	assert.Equal(t, 3.2, got.TargetRatio)

	require.Len(t, repo.rows, 1)
	_, ok := repo.rows[uuid.Nil]
	assert.True(t, ok, "the global row is keyed by the nil UUID")
}
