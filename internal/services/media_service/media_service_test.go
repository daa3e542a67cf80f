package services

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, file *multipart.FileHeader, subPath string) (string, int64, error) {
	args := m.Called(ctx, file, subPath)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStorage) Delete(ctx context.Context, filePath string) error {
	args := m.Called(ctx, filePath)
	return args.Error(0)
}

func (m *MockFileStorage) GetFullPath(relativePath string) string {
	args := m.Called(relativePath)
	return args.String(0)
}

func (m *MockFileStorage) PublicURL(relativePath string) string {
	args := m.Called(relativePath)
	return args.String(0)
}

func (m *MockFileStorage) BaseURL() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFileStorage) GetBaseDir() string {
	args := m.Called()
	return args.String(0)
}

func newTestService(repo *MockMediaRepository, fs *MockFileStorage) (*MediaService, *cache.Cache) {
	c := cache.New(time.Minute, time.Minute)
	return NewMediaService(slog.Default(), repo, fs, c), c
}

func testFileHeader(filename, mimeType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: filename,
		Header:   textproto.MIMEHeader{"Content-Type": []string{mimeType}},
	}
}

func TestUploadMedia_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	fs := new(MockFileStorage)
	service, _ := newTestService(repo, fs)

	projectID := uuid.New()
	file := testFileHeader("wedding.jpg", "image/jpeg")

	fs.On("Save", ctx, file, "projects/"+projectID.String()).
		Return("projects/"+projectID.String()+"/wedding.jpg", int64(1024), nil)
	fs.On("PublicURL", "projects/"+projectID.String()+"/wedding.jpg").
		Return("http://studio.local/uploads/projects/" + projectID.String() + "/wedding.jpg")

	created := &models.Media{ID: uuid.New(), ProjectID: &projectID, MediaType: models.MediaTypeImage}
	repo.On("CreateMedia", ctx, mock.MatchedBy(func(media *models.Media) bool {
		return media.FileSize == 1024 && media.MimeType == "image/jpeg"
	})).Return(created, nil)

	got, err := service.UploadMedia(ctx, dto.UploadMediaRequest{
		ProjectID: &projectID,
		MediaType: models.MediaTypeImage,
		File:      file,
	})

	assert.NoError(t, err)
	assert.Equal(t, created, got)
	repo.AssertExpectations(t)
	fs.AssertExpectations(t)
}

func TestUploadMedia_InvalidType(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	fs := new(MockFileStorage)
	service, _ := newTestService(repo, fs)

	_, err := service.UploadMedia(ctx, dto.UploadMediaRequest{
		MediaType: "document",
		File:      testFileHeader("doc.pdf", "application/pdf"),
	})

	assert.Error(t, err)
	fs.AssertNotCalled(t, "Save")
}

func TestUploadMedia_DatabaseFailureRemovesFile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	fs := new(MockFileStorage)
	service, _ := newTestService(repo, fs)

	file := testFileHeader("wedding.jpg", "image/jpeg")

	fs.On("Save", ctx, file, "library").Return("library/wedding.jpg", int64(512), nil)
	fs.On("PublicURL", "library/wedding.jpg").Return("http://studio.local/uploads/library/wedding.jpg")
	repo.On("CreateMedia", ctx, mock.Anything).Return(nil, assert.AnError)
	fs.On("Delete", ctx, "library/wedding.jpg").Return(nil)

	_, err := service.UploadMedia(ctx, dto.UploadMediaRequest{
		MediaType: models.MediaTypeImage,
		File:      file,
	})

	assert.Error(t, err)
	fs.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestListMedia_ByProject(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	service, _ := newTestService(repo, new(MockFileStorage))

	projectID := uuid.New()
	media := []models.Media{{ID: uuid.New(), ProjectID: &projectID}}
	repo.On("GetMediaByProjectID", ctx, projectID).Return(media, nil)

	got, err := service.ListMedia(ctx, &projectID)

	assert.NoError(t, err)
	assert.Equal(t, media, got)
	repo.AssertExpectations(t)
}

func TestListMedia_All(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	service, _ := newTestService(repo, new(MockFileStorage))

	repo.On("GetAllMedia", ctx).Return([]models.Media{{ID: uuid.New()}}, nil)

	got, err := service.ListMedia(ctx, nil)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}

func TestUploadMedia_InvalidatesProjectCache(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	fs := new(MockFileStorage)
	service, c := newTestService(repo, fs)

	projectID := uuid.New()
	c.Set(cache.KeyProjectMedia("anna-erik"), []models.Media{})

	file := testFileHeader("wedding.jpg", "image/jpeg")
	fs.On("Save", ctx, file, "projects/"+projectID.String()).
		Return("projects/"+projectID.String()+"/wedding.jpg", int64(1024), nil)
	fs.On("PublicURL", mock.Anything).Return("http://studio.local/uploads/wedding.jpg")
	repo.On("CreateMedia", ctx, mock.Anything).
		Return(&models.Media{ID: uuid.New(), ProjectID: &projectID}, nil)

	_, err := service.UploadMedia(ctx, dto.UploadMediaRequest{
		ProjectID: &projectID,
		MediaType: models.MediaTypeImage,
		File:      file,
	})

	assert.NoError(t, err)

	_, ok := c.Get(cache.KeyProjectMedia("anna-erik"))
	assert.False(t, ok)
}
