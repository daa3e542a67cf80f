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

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project models.Project) (uuid.UUID, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProjectRepository) UpdateProjectFields(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, projectID, updates)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetProjects(ctx context.Context, category string, publishedOnly bool) ([]models.Project, error) {
	args := m.Called(ctx, category, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error) {
	args := m.Called(ctx, media)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaRepository) UpdateMediaFields(ctx context.Context, mediaID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, mediaID, updates)
	return args.Error(0)
}

func (m *MockMediaRepository) DeleteMedia(ctx context.Context, mediaID uuid.UUID) error {
	args := m.Called(ctx, mediaID)
	return args.Error(0)
}

func (m *MockMediaRepository) FindByID(ctx context.Context, mediaID uuid.UUID) (*models.Media, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaRepository) GetMediaByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.Media, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Media), args.Error(1)
}

func (m *MockMediaRepository) GetAllMedia(ctx context.Context) ([]models.Media, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Media), args.Error(1)
}

func newTestService(repo *MockProjectRepository, media *MockMediaRepository) (*ProjectService, *cache.Cache) {
	c := cache.New(time.Minute, time.Minute)
	return NewProjectService(slog.Default(), repo, media, c), c
}

func TestCreateProject_UsesProvidedSlug(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	service, _ := newTestService(repo, new(MockMediaRepository))

	id := uuid.New()
	repo.On("SaveProject", ctx, mock.MatchedBy(func(p models.Project) bool {
		return p.Slug == "anna-erik-summer-wedding"
	})).Return(id, nil)
	repo.On("GetProjectByID", ctx, id).Return(&models.Project{ID: id}, nil)

	_, err := service.CreateProject(ctx, dto.CreateProjectRequest{
		Title:    "Anna & Erik Summer Wedding",
		Slug:     "anna-erik-summer-wedding",
		Category: models.CategoryWeddingPhoto,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateProject_InvalidCategory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	service, _ := newTestService(repo, new(MockMediaRepository))

	_, err := service.CreateProject(ctx, dto.CreateProjectRequest{
		Title:    "Anna & Erik",
		Category: "corporate",
	})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	repo.AssertNotCalled(t, "SaveProject")
}

func TestCreateProject_SlugTaken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	service, _ := newTestService(repo, new(MockMediaRepository))

	repo.On("SaveProject", ctx, mock.Anything).Return(uuid.Nil, storage.ErrConflict)

	_, err := service.CreateProject(ctx, dto.CreateProjectRequest{
		Title:    "Anna & Erik",
		Slug:     "anna-erik",
		Category: models.CategoryWeddingVideo,
	})

	assert.ErrorIs(t, err, ErrSlugTaken)
	repo.AssertExpectations(t)
}

func TestGetPublishedProject_HidesUnpublished(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	service, c := newTestService(repo, new(MockMediaRepository))

	repo.On("GetProjectBySlug", ctx, "anna-erik").
		Return(&models.Project{ID: uuid.New(), Slug: "anna-erik", Published: false}, nil)

	_, err := service.GetPublishedProject(ctx, "anna-erik")

	assert.ErrorIs(t, err, storage.ErrNotFound)

	// A draft never lands in the public cache.
	_, ok := c.Get(cache.KeyProject("anna-erik"))
	assert.False(t, ok)
	repo.AssertExpectations(t)
}

func TestListPublishedProjects_Cached(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	service, _ := newTestService(repo, new(MockMediaRepository))

	projects := []models.Project{{ID: uuid.New(), Published: true}}
	repo.On("GetProjects", ctx, models.CategoryWeddingPhoto, true).Return(projects, nil).Once()

	got, err := service.ListPublishedProjects(ctx, models.CategoryWeddingPhoto)
	assert.NoError(t, err)
	assert.Equal(t, projects, got)

	got, err = service.ListPublishedProjects(ctx, models.CategoryWeddingPhoto)
	assert.NoError(t, err)
	assert.Equal(t, projects, got)
	repo.AssertExpectations(t)
}

func TestUpdateProject_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	service, c := newTestService(repo, new(MockMediaRepository))

	id := uuid.New()
	published := true

	c.Set(cache.KeyProjects(""), []models.Project{})
	c.Set(cache.KeyProject("anna-erik"), &models.Project{})

	repo.On("UpdateProjectFields", ctx, id, map[string]interface{}{
		"published": true,
	}).Return(nil)
	repo.On("GetProjectByID", ctx, id).Return(&models.Project{ID: id, Published: true}, nil)

	_, err := service.UpdateProject(ctx, id, dto.UpdateProjectRequest{Published: &published})

	assert.NoError(t, err)

	_, ok := c.Get(cache.KeyProjects(""))
	assert.False(t, ok)
	_, ok = c.Get(cache.KeyProject("anna-erik"))
	assert.False(t, ok)
	repo.AssertExpectations(t)
}

func TestGetPublishedProjectMedia(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	mediaRepo := new(MockMediaRepository)
	service, _ := newTestService(repo, mediaRepo)

	projectID := uuid.New()
	repo.On("GetProjectBySlug", ctx, "anna-erik").
		Return(&models.Project{ID: projectID, Slug: "anna-erik", Published: true}, nil)
	mediaRepo.On("GetMediaByProjectID", ctx, projectID).
		Return([]models.Media{{ID: uuid.New(), ProjectID: &projectID}}, nil)

	got, err := service.GetPublishedProjectMedia(ctx, "anna-erik")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
	mediaRepo.AssertExpectations(t)
}
