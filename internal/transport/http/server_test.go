package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	httprouters "nordlys_studio/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) UpdateProject(ctx context.Context, projectID uuid.UUID, req dto.UpdateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectService) GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) GetPublishedProject(ctx context.Context, slug string) (*models.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) ListPublishedProjects(ctx context.Context, category string) ([]models.Project, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectService) ListAllProjects(ctx context.Context, category string) ([]models.Project, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectService) GetPublishedProjectMedia(ctx context.Context, slug string) ([]models.Media, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Media), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitContact(ctx context.Context, req dto.CreateContactRequest) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockContactService) UpdateStatus(ctx context.Context, contactID uuid.UUID, status string) error {
	args := m.Called(ctx, contactID, status)
	return args.Error(0)
}

func (m *MockContactService) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

func (m *MockContactService) ListContacts(ctx context.Context, statusFilter string) ([]models.Contact, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

type MockSubscriberService struct {
	mock.Mock
}

func (m *MockSubscriberService) Subscribe(ctx context.Context, req dto.SubscribeRequest) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSubscriberService) UpdateStatus(ctx context.Context, subscriberID uuid.UUID, status string) error {
	args := m.Called(ctx, subscriberID, status)
	return args.Error(0)
}

func (m *MockSubscriberService) DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	args := m.Called(ctx, subscriberID)
	return args.Error(0)
}

func (m *MockSubscriberService) ListSubscribers(ctx context.Context, statusFilter string) ([]models.Subscriber, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) ExportCSV(ctx context.Context, statusFilter string) ([]byte, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (*models.ClientGallery, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClientGallery), args.Error(1)
}

func (m *MockGalleryService) UpdateGallery(ctx context.Context, galleryID uuid.UUID, req dto.UpdateGalleryRequest) (*models.ClientGallery, error) {
	args := m.Called(ctx, galleryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClientGallery), args.Error(1)
}

func (m *MockGalleryService) DeleteGallery(ctx context.Context, galleryID uuid.UUID) error {
	args := m.Called(ctx, galleryID)
	return args.Error(0)
}

func (m *MockGalleryService) ListGalleries(ctx context.Context) ([]models.ClientGallery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClientGallery), args.Error(1)
}

func (m *MockGalleryService) AccessGallery(ctx context.Context, slug, password string) (*dto.GalleryAccessResponse, error) {
	args := m.Called(ctx, slug, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GalleryAccessResponse), args.Error(1)
}

func (m *MockGalleryService) GalleryMedia(ctx context.Context, slug string) ([]models.Media, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Media), args.Error(1)
}

func newTestRouters(
	projects *MockProjectService,
	contacts *MockContactService,
	subscribers *MockSubscriberService,
	galleries *MockGalleryService,
) *httprouters.Routers {
	return httprouters.NewRouter(
		slog.Default(),
		nil, nil,
		projects,
		nil, nil,
		contacts,
		nil, nil,
		subscribers,
		galleries,
		nil, nil, nil, nil,
	)
}

func TestCreateProject_MissingSlug(t *testing.T) {
	e := newTestEcho()
	projects := new(MockProjectService)
	routers := newTestRouters(projects, nil, nil, nil)

	body := `{"title":"Anna & Erik","category":"wedding-photo"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := routers.CreateProject(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	projects.AssertNotCalled(t, "CreateProject")
}

func TestCreateProject_Created(t *testing.T) {
	e := newTestEcho()
	projects := new(MockProjectService)
	routers := newTestRouters(projects, nil, nil, nil)

	id := uuid.New()
	projects.On("CreateProject", mock.Anything, mock.MatchedBy(func(req dto.CreateProjectRequest) bool {
		return req.Slug == "anna-erik"
	})).Return(&models.Project{ID: id, Slug: "anna-erik"}, nil)

	body := `{"title":"Anna & Erik","slug":"anna-erik","category":"wedding-photo"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := routers.CreateProject(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
	projects.AssertExpectations(t)
}

func TestSubmitContact_Created(t *testing.T) {
	e := newTestEcho()
	contacts := new(MockContactService)
	routers := newTestRouters(nil, contacts, nil, nil)

	id := uuid.New()
	contacts.On("SubmitContact", mock.Anything, mock.MatchedBy(func(req dto.CreateContactRequest) bool {
		return req.Email == "anna@example.com"
	})).Return(id, nil)

	body := `{"name":"Anna","email":"anna@example.com","message":"We are getting married in June"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := routers.SubmitContact(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
	contacts.AssertExpectations(t)
}

func TestSubmitContact_MissingMessage(t *testing.T) {
	e := newTestEcho()
	contacts := new(MockContactService)
	routers := newTestRouters(nil, contacts, nil, nil)

	body := `{"name":"Anna","email":"anna@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := routers.SubmitContact(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	contacts.AssertNotCalled(t, "SubmitContact")
}

func TestExportSubscribers_Attachment(t *testing.T) {
	e := newTestEcho()
	subscribers := new(MockSubscriberService)
	routers := newTestRouters(nil, nil, subscribers, nil)

	csv := []byte("email,name,status,source,subscribed\nbride@example.com,Anna,active,website,2026-03-14\n")
	subscribers.On("ExportCSV", mock.Anything, "").Return(csv, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/subscribers/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := routers.ExportSubscribers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="subscribers.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, string(csv), rec.Body.String())
	subscribers.AssertExpectations(t)
}

func TestExportSubscribers_Empty(t *testing.T) {
	e := newTestEcho()
	subscribers := new(MockSubscriberService)
	routers := newTestRouters(nil, nil, subscribers, nil)

	subscribers.On("ExportCSV", mock.Anything, "").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/subscribers/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := routers.ExportSubscribers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	subscribers.AssertExpectations(t)
}

func TestAccessGallery_WrongPassword(t *testing.T) {
	e := newTestEcho()
	galleries := new(MockGalleryService)
	routers := newTestRouters(nil, nil, nil, galleries)

	galleries.On("AccessGallery", mock.Anything, "anna-erik", "wrong").
		Return(nil, storage.ErrInvalidPassword)

	body := `{"password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/galleries/anna-erik/access", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("anna-erik")

	err := routers.AccessGallery(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	galleries.AssertExpectations(t)
}

func TestAccessGallery_Unlocked(t *testing.T) {
	e := newTestEcho()
	galleries := new(MockGalleryService)
	routers := newTestRouters(nil, nil, nil, galleries)

	expires := time.Now().Add(14 * 24 * time.Hour)
	galleries.On("AccessGallery", mock.Anything, "anna-erik", "sommar26").
		Return(&dto.GalleryAccessResponse{
			Slug:       "anna-erik",
			ClientName: "Anna & Erik",
			ExpiresAt:  &expires,
			Media:      []models.Media{},
		}, nil)

	body := `{"password":"sommar26"}`
	req := httptest.NewRequest(http.MethodPost, "/api/galleries/anna-erik/access", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("anna-erik")

	err := routers.AccessGallery(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "anna-erik")
	galleries.AssertExpectations(t)
}
