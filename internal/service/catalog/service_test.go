package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/catalog/models"
	"github.com/m04kA/parlourease/pkg/logger"
)

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if s, ok := args.Get(0).(*domain.Service); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepo) List(ctx context.Context) ([]*domain.Service, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]*domain.Service); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, collection string) error {
	return m.Called(ctx, collection).Error(0)
}

func TestService_Add(t *testing.T) {
	repo := &mockServiceRepo{}
	pub := &mockPublisher{}
	svc := NewService(repo, pub, logger.Discard())
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(s *domain.Service) bool {
		return s.Name == "Bridal Makeup" && s.Icon == domain.IconGem
	})).Return(&domain.Service{
		ID:              "s-9",
		Name:            "Bridal Makeup",
		Price:           200,
		DurationMinutes: 120,
		Icon:            domain.IconGem,
		CreatedAt:       time.Now(),
	}, nil)
	pub.On("Publish", ctx, domain.CollectionServices).Return(nil)

	resp, err := svc.Add(ctx, &models.AddServiceRequest{Name: " Bridal Makeup ", Price: 200, Duration: 120, Icon: "Gem"})
	require.NoError(t, err)

	assert.Equal(t, "s-9", resp.ID)
	assert.Equal(t, "bridal", resp.Glyph)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestService_Add_ValidationFailsBeforeWrite(t *testing.T) {
	repo := &mockServiceRepo{}
	pub := &mockPublisher{}
	svc := NewService(repo, pub, logger.Discard())

	_, err := svc.Add(context.Background(), &models.AddServiceRequest{Name: "X", Price: -1, Duration: 0, Icon: "Crown"})

	require.ErrorIs(t, err, ErrInvalidInput)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestService_Add_PublishFailureDoesNotFailWrite(t *testing.T) {
	repo := &mockServiceRepo{}
	pub := &mockPublisher{}
	svc := NewService(repo, pub, logger.Discard())
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(&domain.Service{ID: "s-1", Name: "Facial", Icon: "Sparkles"}, nil)
	pub.On("Publish", ctx, domain.CollectionServices).Return(errors.New("broker down"))

	_, err := svc.Add(ctx, &models.AddServiceRequest{Name: "Facial", Price: 75, Duration: 75, Icon: "Sparkles"})
	assert.NoError(t, err)
}

func TestService_List_ResolvesUnknownIcon(t *testing.T) {
	repo := &mockServiceRepo{}
	svc := NewService(repo, &mockPublisher{}, logger.Discard())
	ctx := context.Background()

	repo.On("List", ctx).Return([]*domain.Service{
		{ID: "s1", Name: "Facial", Icon: "Sparkles"},
		{ID: "s2", Name: "Threading", Icon: "Needle"},
	}, nil)

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "facial", resp.Services[0].Glyph)
	assert.Equal(t, domain.DefaultIcon.Glyph, resp.Services[1].Glyph)
	assert.Equal(t, domain.DefaultIcon.Token, resp.Services[1].Icon)
}
