package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) SaveReview(ctx context.Context, review models.Review) (uuid.UUID, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockReviewRepository) UpdateReviewFields(ctx context.Context, reviewID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, reviewID, updates)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func (m *MockReviewRepository) GetReviewByID(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetReviews(ctx context.Context, publishedOnly, featuredOnly bool, limit int) ([]models.Review, error) {
	args := m.Called(ctx, publishedOnly, featuredOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func newTestService(repo *MockReviewRepository, c *cache.Cache) *ReviewService {
	return NewReviewService(slog.Default(), repo, c)
}

func TestListPublishedReviews_FeaturedCapped(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReviewRepository)
	c := cache.New(time.Minute, time.Minute)
	service := newTestService(repo, c)

	featured := []models.Review{
		{ID: uuid.New(), Name: "Anna", Rating: 5, Featured: true, Published: true},
		{ID: uuid.New(), Name: "Erik", Rating: 5, Featured: true, Published: true},
		{ID: uuid.New(), Name: "Maja", Rating: 4, Featured: true, Published: true},
	}

	repo.On("GetReviews", ctx, true, true, 3).Return(featured, nil).Once()

	got, err := service.ListPublishedReviews(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, got, 3)

	// Second read comes from cache, no extra repository call.
	got, err = service.ListPublishedReviews(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	repo.AssertExpectations(t)
}

func TestListPublishedReviews_All(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReviewRepository)
	c := cache.New(time.Minute, time.Minute)
	service := newTestService(repo, c)

	repo.On("GetReviews", ctx, true, false, 0).
		Return([]models.Review{{ID: uuid.New(), Published: true}}, nil).Once()

	got, err := service.ListPublishedReviews(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}

func TestCreateReview_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReviewRepository)
	c := cache.New(time.Minute, time.Minute)
	service := newTestService(repo, c)

	c.Set(cache.KeyReviews, []models.Review{})
	c.Set(cache.KeyFeaturedReviews, []models.Review{})

	id := uuid.New()
	created := &models.Review{ID: id, Name: "Anna", Rating: 5, Published: true}

	repo.On("SaveReview", ctx, mock.AnythingOfType("models.Review")).Return(id, nil)
	repo.On("GetReviewByID", ctx, id).Return(created, nil)

	got, err := service.CreateReview(ctx, dto.CreateReviewRequest{Name: "Anna", Rating: 5, Content: "Wonderful", Published: true})

	assert.NoError(t, err)
	assert.Equal(t, created, got)

	_, ok := c.Get(cache.KeyReviews)
	assert.False(t, ok)
	_, ok = c.Get(cache.KeyFeaturedReviews)
	assert.False(t, ok)
	repo.AssertExpectations(t)
}

func TestUpdateReview_BuildsFieldMap(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReviewRepository)
	c := cache.New(time.Minute, time.Minute)
	service := newTestService(repo, c)

	id := uuid.New()
	featured := true
	rating := 4

	repo.On("UpdateReviewFields", ctx, id, map[string]interface{}{
		"featured": true,
		"rating":   4,
	}).Return(nil)
	repo.On("GetReviewByID", ctx, id).Return(&models.Review{ID: id, Featured: true, Rating: 4}, nil)

	got, err := service.UpdateReview(ctx, id, dto.UpdateReviewRequest{Featured: &featured, Rating: &rating})

	assert.NoError(t, err)
	assert.True(t, got.Featured)
	repo.AssertExpectations(t)
}
