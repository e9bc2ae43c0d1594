package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/settings/models"
	"github.com/m04kA/parlourease/pkg/logger"
	"github.com/m04kA/parlourease/pkg/ptr"
)

type memoryRepo struct {
	settings domain.SalonSettings
	err      error
}

func (r *memoryRepo) Get(ctx context.Context) (*domain.SalonSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	s := r.settings
	return &s, nil
}

func (r *memoryRepo) Update(ctx context.Context, settings *domain.SalonSettings) (*domain.SalonSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.settings = *settings
	s := r.settings
	return &s, nil
}

func TestService_UpdateFestivalMode(t *testing.T) {
	svc := NewService(&memoryRepo{}, logger.Discard())
	ctx := context.Background()

	resp, err := svc.Update(ctx, &models.UpdateSettingsRequest{FestivalMode: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, resp.FestivalMode)
	assert.Equal(t, 30, resp.SlotIntervalMinutes)
	assert.Equal(t, "09:00", resp.OpeningTime)
	assert.Equal(t, "18:00", resp.ClosingTime)

	festival, err := svc.FestivalMode(ctx)
	require.NoError(t, err)
	assert.True(t, festival)
}

func TestService_UpdateRequiresValue(t *testing.T) {
	svc := NewService(&memoryRepo{}, logger.Discard())

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_GetRepositoryError(t *testing.T) {
	svc := NewService(&memoryRepo{err: errors.New("db down")}, logger.Discard())

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
