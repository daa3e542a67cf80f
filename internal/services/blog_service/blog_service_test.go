package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBlogRepository) UpdateBlogPostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, postID, updates)
	return args.Error(0)
}

func (m *MockBlogRepository) DeleteBlogPost(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBlogRepository) GetBlogPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBlogPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.BlogPost, error) {
	args := m.Called(ctx, slug, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBlogPosts(ctx context.Context, publishedOnly bool, page, perPage int) ([]models.BlogPost, int, error) {
	args := m.Called(ctx, publishedOnly, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.BlogPost), args.Int(1), args.Error(2)
}

func newTestService(repo *MockBlogRepository) *BlogService {
	return NewBlogService(slog.Default(), repo, cache.New(time.Minute, time.Minute))
}

func TestCreatePost_PublishedStampsTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	service := newTestService(repo)

	id := uuid.New()
	repo.On("SaveBlogPost", ctx, mock.MatchedBy(func(p models.BlogPost) bool {
		return p.Published && p.PublishedAt != nil
	})).Return(id, nil)
	repo.On("GetBlogPostByID", ctx, id).Return(&models.BlogPost{ID: id}, nil)

	_, err := service.CreatePost(ctx, dto.CreateBlogPostRequest{
		Title:     "Midsummer wedding at Lofoten",
		Content:   "...",
		Published: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreatePost_DraftHasNoTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	service := newTestService(repo)

	id := uuid.New()
	repo.On("SaveBlogPost", ctx, mock.MatchedBy(func(p models.BlogPost) bool {
		return !p.Published && p.PublishedAt == nil && p.Slug == "midsummer-wedding-at-lofoten"
	})).Return(id, nil)
	repo.On("GetBlogPostByID", ctx, id).Return(&models.BlogPost{ID: id}, nil)

	_, err := service.CreatePost(ctx, dto.CreateBlogPostRequest{
		Title:   "Midsummer Wedding at Lofoten",
		Content: "...",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreatePost_SlugTaken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	service := newTestService(repo)

	repo.On("SaveBlogPost", ctx, mock.Anything).Return(uuid.Nil, storage.ErrConflict)

	_, err := service.CreatePost(ctx, dto.CreateBlogPostRequest{
		Title:   "Midsummer wedding",
		Slug:    "midsummer-wedding",
		Content: "...",
	})

	assert.ErrorIs(t, err, ErrSlugTaken)
	repo.AssertExpectations(t)
}

func TestUpdatePost_FirstPublishStampsTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	service := newTestService(repo)

	id := uuid.New()
	published := true

	repo.On("GetBlogPostByID", ctx, id).Return(&models.BlogPost{ID: id, Published: false}, nil).Once()
	repo.On("UpdateBlogPostFields", ctx, id, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, stamped := updates["published_at"]
		return updates["published"] == true && stamped
	})).Return(nil)
	repo.On("GetBlogPostByID", ctx, id).Return(&models.BlogPost{ID: id, Published: true}, nil)

	_, err := service.UpdatePost(ctx, id, dto.UpdateBlogPostRequest{Published: &published})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdatePost_RepublishKeepsOriginalTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	service := newTestService(repo)

	id := uuid.New()
	published := true
	firstPublished := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	repo.On("GetBlogPostByID", ctx, id).
		Return(&models.BlogPost{ID: id, Published: false, PublishedAt: &firstPublished}, nil).Once()
	repo.On("UpdateBlogPostFields", ctx, id, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, stamped := updates["published_at"]
		return updates["published"] == true && !stamped
	})).Return(nil)
	repo.On("GetBlogPostByID", ctx, id).
		Return(&models.BlogPost{ID: id, Published: true, PublishedAt: &firstPublished}, nil)

	_, err := service.UpdatePost(ctx, id, dto.UpdateBlogPostRequest{Published: &published})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListPublishedPosts_ClampsPagination(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	service := newTestService(repo)

	repo.On("GetBlogPosts", ctx, true, 1, 10).
		Return([]models.BlogPost{{ID: uuid.New()}}, 1, nil).Once()

	got, err := service.ListPublishedPosts(ctx, 0, 500)

	assert.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.PerPage)
	assert.Equal(t, 1, got.TotalCount)
	repo.AssertExpectations(t)
}

func TestGetPublishedPost_Cached(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogRepository)
	service := newTestService(repo)

	post := &models.BlogPost{ID: uuid.New(), Slug: "midsummer-wedding", Published: true}
	repo.On("GetBlogPostBySlug", ctx, "midsummer-wedding", true).Return(post, nil).Once()

	got, err := service.GetPublishedPost(ctx, "midsummer-wedding")
	assert.NoError(t, err)
	assert.Equal(t, post, got)

	got, err = service.GetPublishedPost(ctx, "midsummer-wedding")
	assert.NoError(t, err)
	assert.Equal(t, post, got)
	repo.AssertExpectations(t)
}
