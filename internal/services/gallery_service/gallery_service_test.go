package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) SaveGallery(ctx context.Context, gallery models.ClientGallery) (uuid.UUID, error) {
	args := m.Called(ctx, gallery)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGalleryRepository) UpdateGalleryFields(ctx context.Context, galleryID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, galleryID, updates)
	return args.Error(0)
}

func (m *MockGalleryRepository) DeleteGallery(ctx context.Context, galleryID uuid.UUID) error {
	args := m.Called(ctx, galleryID)
	return args.Error(0)
}

func (m *MockGalleryRepository) GetGalleryByID(ctx context.Context, galleryID uuid.UUID) (*models.ClientGallery, error) {
	args := m.Called(ctx, galleryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClientGallery), args.Error(1)
}

func (m *MockGalleryRepository) GetGalleryBySlug(ctx context.Context, slug string) (*models.ClientGallery, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClientGallery), args.Error(1)
}

func (m *MockGalleryRepository) IncrementViewCount(ctx context.Context, galleryID uuid.UUID) error {
	args := m.Called(ctx, galleryID)
	return args.Error(0)
}

func (m *MockGalleryRepository) GetGalleries(ctx context.Context) ([]models.ClientGallery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClientGallery), args.Error(1)
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

func newTestService(repo *MockGalleryRepository, media *MockMediaRepository) *GalleryService {
	return NewGalleryService(slog.Default(), repo, media)
}

func hashPassword(t *testing.T, password string) []byte {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return hash
}

func TestAccessGallery_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGalleryRepository)
	mediaRepo := new(MockMediaRepository)
	service := newTestService(repo, mediaRepo)

	projectID := uuid.New()
	gallery := &models.ClientGallery{
		ID:              uuid.New(),
		ProjectID:       projectID,
		Slug:            "anna-erik",
		PasswordHash:    hashPassword(t, "sommar26"),
		ClientName:      "Anna & Erik",
		DownloadEnabled: true,
	}
	media := []models.Media{{ID: uuid.New(), ProjectID: &projectID}}

	repo.On("GetGalleryBySlug", ctx, "anna-erik").Return(gallery, nil)
	repo.On("IncrementViewCount", ctx, gallery.ID).Return(nil)
	mediaRepo.On("GetMediaByProjectID", ctx, projectID).Return(media, nil)

	resp, err := service.AccessGallery(ctx, "anna-erik", "sommar26")

	assert.NoError(t, err)
	assert.Equal(t, "anna-erik", resp.Slug)
	assert.True(t, resp.DownloadEnabled)
	assert.Len(t, resp.Media, 1)
	repo.AssertExpectations(t)
	mediaRepo.AssertExpectations(t)
}

func TestAccessGallery_WrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGalleryRepository)
	mediaRepo := new(MockMediaRepository)
	service := newTestService(repo, mediaRepo)

	gallery := &models.ClientGallery{
		ID:           uuid.New(),
		Slug:         "anna-erik",
		PasswordHash: hashPassword(t, "sommar26"),
	}

	repo.On("GetGalleryBySlug", ctx, "anna-erik").Return(gallery, nil)

	_, err := service.AccessGallery(ctx, "anna-erik", "wrong")

	assert.ErrorIs(t, err, storage.ErrInvalidPassword)
	repo.AssertNotCalled(t, "IncrementViewCount")
}

func TestAccessGallery_Expired(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGalleryRepository)
	mediaRepo := new(MockMediaRepository)
	service := newTestService(repo, mediaRepo)

	expired := time.Now().Add(-time.Hour)
	gallery := &models.ClientGallery{
		ID:           uuid.New(),
		Slug:         "anna-erik",
		PasswordHash: hashPassword(t, "sommar26"),
		ExpiresAt:    &expired,
	}

	repo.On("GetGalleryBySlug", ctx, "anna-erik").Return(gallery, nil)

	// Even the right password does not open an expired gallery.
	_, err := service.AccessGallery(ctx, "anna-erik", "sommar26")

	assert.ErrorIs(t, err, storage.ErrGalleryExpired)
	repo.AssertNotCalled(t, "IncrementViewCount")
}

func TestAccessGallery_ViewCountFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGalleryRepository)
	mediaRepo := new(MockMediaRepository)
	service := newTestService(repo, mediaRepo)

	projectID := uuid.New()
	gallery := &models.ClientGallery{
		ID:           uuid.New(),
		ProjectID:    projectID,
		Slug:         "anna-erik",
		PasswordHash: hashPassword(t, "sommar26"),
	}

	repo.On("GetGalleryBySlug", ctx, "anna-erik").Return(gallery, nil)
	repo.On("IncrementViewCount", ctx, gallery.ID).Return(assert.AnError)
	mediaRepo.On("GetMediaByProjectID", ctx, projectID).Return([]models.Media{}, nil)

	resp, err := service.AccessGallery(ctx, "anna-erik", "sommar26")

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	repo.AssertExpectations(t)
}

func TestCreateGallery_SlugFromClientName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGalleryRepository)
	mediaRepo := new(MockMediaRepository)
	service := newTestService(repo, mediaRepo)

	id := uuid.New()
	repo.On("SaveGallery", ctx, mock.MatchedBy(func(g models.ClientGallery) bool {
		return g.Slug == "anna-erik" && len(g.PasswordHash) > 0
	})).Return(id, nil)
	repo.On("GetGalleryByID", ctx, id).Return(&models.ClientGallery{ID: id, Slug: "anna-erik"}, nil)

	got, err := service.CreateGallery(ctx, dto.CreateGalleryRequest{
		ProjectID:  uuid.New(),
		Password:   "sommar26",
		ClientName: "Anna & Erik",
	})

	assert.NoError(t, err)
	assert.Equal(t, "anna-erik", got.Slug)
	repo.AssertExpectations(t)
}

func TestCreateGallery_SlugTaken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGalleryRepository)
	mediaRepo := new(MockMediaRepository)
	service := newTestService(repo, mediaRepo)

	repo.On("SaveGallery", ctx, mock.Anything).Return(uuid.Nil, storage.ErrConflict)

	_, err := service.CreateGallery(ctx, dto.CreateGalleryRequest{
		ProjectID:  uuid.New(),
		Password:   "sommar26",
		ClientName: "Anna & Erik",
	})

	assert.ErrorIs(t, err, ErrSlugTaken)
	repo.AssertExpectations(t)
}
