package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"
	"nordlys_studio/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "nordlys_studio/docs"
)

type UserService interface {
	Login(ctx context.Context, email, password string) (models.AdminUser, error)
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (models.AdminUser, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type TokenService interface {
	GenerateTokens(ctx context.Context, user models.AdminUser) (*models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, req dto.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	GetPublishedProject(ctx context.Context, slug string) (*models.Project, error)
	ListPublishedProjects(ctx context.Context, category string) ([]models.Project, error)
	ListAllProjects(ctx context.Context, category string) ([]models.Project, error)
	GetPublishedProjectMedia(ctx context.Context, slug string) ([]models.Media, error)
}

type MediaService interface {
	UploadMedia(ctx context.Context, input dto.UploadMediaRequest) (*models.Media, error)
	UpdateMedia(ctx context.Context, mediaID uuid.UUID, req dto.UpdateMediaRequest) (*models.Media, error)
	DeleteMedia(ctx context.Context, mediaID uuid.UUID) error
	GetMedia(ctx context.Context, mediaID uuid.UUID) (*models.Media, error)
	ListMedia(ctx context.Context, projectID *uuid.UUID) ([]models.Media, error)
}

type PageService interface {
	CreatePage(ctx context.Context, req dto.CreatePageRequest) (*models.Page, error)
	UpdatePage(ctx context.Context, pageID uuid.UUID, req dto.UpdatePageRequest) error
	DeletePage(ctx context.Context, pageID uuid.UUID) error
	GetPublishedPage(ctx context.Context, slug string) (*models.Page, error)
	ListPages(ctx context.Context) ([]models.Page, error)
}

type ContactService interface {
	SubmitContact(ctx context.Context, req dto.CreateContactRequest) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, contactID uuid.UUID, status string) error
	DeleteContact(ctx context.Context, contactID uuid.UUID) error
	ListContacts(ctx context.Context, statusFilter string) ([]models.Contact, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*models.Review, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req dto.UpdateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	ListPublishedReviews(ctx context.Context, featuredOnly bool) ([]models.Review, error)
	ListAllReviews(ctx context.Context) ([]models.Review, error)
}

type BlogService interface {
	CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
	GetPublishedPost(ctx context.Context, slug string) (*models.BlogPost, error)
	ListPublishedPosts(ctx context.Context, page, perPage int) (*dto.BlogPostListResponse, error)
	ListAllPosts(ctx context.Context, page, perPage int) (*dto.BlogPostListResponse, error)
}

type SubscriberService interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, subscriberID uuid.UUID, status string) error
	DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error
	ListSubscribers(ctx context.Context, statusFilter string) ([]models.Subscriber, error)
	ExportCSV(ctx context.Context, statusFilter string) ([]byte, error)
}

type GalleryService interface {
	CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (*models.ClientGallery, error)
	UpdateGallery(ctx context.Context, galleryID uuid.UUID, req dto.UpdateGalleryRequest) (*models.ClientGallery, error)
	DeleteGallery(ctx context.Context, galleryID uuid.UUID) error
	ListGalleries(ctx context.Context) ([]models.ClientGallery, error)
	AccessGallery(ctx context.Context, slug, password string) (*dto.GalleryAccessResponse, error)
	GalleryMedia(ctx context.Context, slug string) ([]models.Media, error)
}

type BookingService interface {
	RequestBooking(ctx context.Context, req dto.CreateBookingRequest) (uuid.UUID, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, req dto.UpdateBookingRequest) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) error
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
	ListBookings(ctx context.Context, statusFilter string) ([]models.Booking, error)
	BlockDate(ctx context.Context, req dto.CreateBlockedDateRequest) (uuid.UUID, error)
	UnblockDate(ctx context.Context, blockedID uuid.UUID) error
	BlockedDates(ctx context.Context) ([]models.BlockedDate, error)
}

type SettingsService interface {
	UpsertSetting(ctx context.Context, req dto.UpsertSettingRequest) (*models.SiteSetting, error)
	DeleteSetting(ctx context.Context, key string) error
	ListSettings(ctx context.Context) ([]models.SiteSetting, error)
	PublicSettings(ctx context.Context) (map[string]string, error)
	CreateHeroSlide(ctx context.Context, req dto.CreateHeroSlideRequest) (uuid.UUID, error)
	UpdateHeroSlide(ctx context.Context, slideID uuid.UUID, req dto.UpdateHeroSlideRequest) error
	DeleteHeroSlide(ctx context.Context, slideID uuid.UUID) error
	ActiveHeroSlides(ctx context.Context) ([]models.HeroSlide, error)
	ListHeroSlides(ctx context.Context) ([]models.HeroSlide, error)
}

type CmsService interface {
	PublicNavigation(ctx context.Context) (*dto.NavigationResponse, error)
	PublicLanding(ctx context.Context) (*dto.LandingResponse, error)
	CreateNavigationItem(ctx context.Context, req dto.CreateNavigationItemRequest) (uuid.UUID, error)
	UpdateNavigationItem(ctx context.Context, itemID uuid.UUID, req dto.UpdateNavigationItemRequest) error
	DeleteNavigationItem(ctx context.Context, itemID uuid.UUID) error
	ListNavigationItems(ctx context.Context) ([]models.NavigationItem, error)
	CreateLandingSection(ctx context.Context, req dto.CreateLandingSectionRequest) (uuid.UUID, error)
	UpdateLandingSection(ctx context.Context, sectionID uuid.UUID, req dto.UpdateLandingSectionRequest) error
	DeleteLandingSection(ctx context.Context, sectionID uuid.UUID) error
	ListLandingSections(ctx context.Context) ([]models.LandingSection, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

type Routers struct {
	log               *slog.Logger
	UserService       UserService
	TokenService      TokenService
	ProjectService    ProjectService
	MediaService      MediaService
	PageService       PageService
	ContactService    ContactService
	ReviewService     ReviewService
	BlogService       BlogService
	SubscriberService SubscriberService
	GalleryService    GalleryService
	BookingService    BookingService
	SettingsService   SettingsService
	CmsService        CmsService
	StatsService      StatsService
}

func NewRouter(
	log *slog.Logger,
	userService UserService,
	tokenService TokenService,
	projectService ProjectService,
	mediaService MediaService,
	pageService PageService,
	contactService ContactService,
	reviewService ReviewService,
	blogService BlogService,
	subscriberService SubscriberService,
	galleryService GalleryService,
	bookingService BookingService,
	settingsService SettingsService,
	cmsService CmsService,
	statsService StatsService,
) *Routers {
	return &Routers{
		log:               log,
		UserService:       userService,
		TokenService:      tokenService,
		ProjectService:    projectService,
		MediaService:      mediaService,
		PageService:       pageService,
		ContactService:    contactService,
		ReviewService:     reviewService,
		BlogService:       blogService,
		SubscriberService: subscriberService,
		GalleryService:    galleryService,
		BookingService:    bookingService,
		SettingsService:   settingsService,
		CmsService:        cmsService,
		StatsService:      statsService,
	}
}

var ErrInvalidUUID = errors.New("not valid UUID")

// respondError maps storage sentinel errors onto HTTP statuses; everything
// unrecognized becomes a 500.
func (r *Routers) respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, storage.ErrConflict):
		return c.JSON(http.StatusConflict, response.ErrConflict)
	case errors.Is(err, storage.ErrNoUpdates):
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("no_updates", "No fields to update"))
	case errors.Is(err, storage.ErrGalleryExpired), errors.Is(err, storage.ErrInvalidPassword):
		return c.JSON(http.StatusForbidden, response.ErrGalleryAccessDenied)
	default:
		return c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Status:  "error",
			Error:   "internal_error",
			Details: "Internal server error",
		})
	}
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return id, nil
}
