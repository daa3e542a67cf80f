package repository

import (
	"context"
	"time"

	"nordlys_studio/internal/domain/models"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	SaveProject(ctx context.Context, project models.Project) (uuid.UUID, error)
	UpdateProjectFields(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetProjects(ctx context.Context, category string, publishedOnly bool) ([]models.Project, error)
}

type MediaRepository interface {
	CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error)
	UpdateMediaFields(ctx context.Context, mediaID uuid.UUID, updates map[string]interface{}) error
	DeleteMedia(ctx context.Context, mediaID uuid.UUID) error
	FindByID(ctx context.Context, mediaID uuid.UUID) (*models.Media, error)
	GetMediaByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.Media, error)
	GetAllMedia(ctx context.Context) ([]models.Media, error)
}

type PageRepository interface {
	SavePage(ctx context.Context, page models.Page) (uuid.UUID, error)
	UpdatePageFields(ctx context.Context, pageID uuid.UUID, updates map[string]interface{}) error
	DeletePage(ctx context.Context, pageID uuid.UUID) error
	GetPageBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Page, error)
	GetPages(ctx context.Context) ([]models.Page, error)
}

type ContactRepository interface {
	SaveContact(ctx context.Context, contact models.Contact) (uuid.UUID, error)
	UpdateContactStatus(ctx context.Context, contactID uuid.UUID, status string) error
	DeleteContact(ctx context.Context, contactID uuid.UUID) error
	GetContactByID(ctx context.Context, contactID uuid.UUID) (*models.Contact, error)
	GetContacts(ctx context.Context, statusFilter string) ([]models.Contact, error)
}

type ReviewRepository interface {
	SaveReview(ctx context.Context, review models.Review) (uuid.UUID, error)
	UpdateReviewFields(ctx context.Context, reviewID uuid.UUID, updates map[string]interface{}) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	GetReviewByID(ctx context.Context, reviewID uuid.UUID) (*models.Review, error)
	GetReviews(ctx context.Context, publishedOnly, featuredOnly bool, limit int) ([]models.Review, error)
}

type SettingsRepository interface {
	UpsertSetting(ctx context.Context, setting models.SiteSetting) (*models.SiteSetting, error)
	DeleteSetting(ctx context.Context, key string) error
	GetSettingByKey(ctx context.Context, key string) (*models.SiteSetting, error)
	GetSettings(ctx context.Context) ([]models.SiteSetting, error)

	SaveHeroSlide(ctx context.Context, slide models.HeroSlide) (uuid.UUID, error)
	UpdateHeroSlideFields(ctx context.Context, slideID uuid.UUID, updates map[string]interface{}) error
	DeleteHeroSlide(ctx context.Context, slideID uuid.UUID) error
	GetHeroSlides(ctx context.Context, activeOnly bool) ([]models.HeroSlide, error)
}

type BlogRepository interface {
	SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error)
	UpdateBlogPostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error
	DeleteBlogPost(ctx context.Context, postID uuid.UUID) error
	GetBlogPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.BlogPost, error)
	GetBlogPosts(ctx context.Context, publishedOnly bool, page, perPage int) ([]models.BlogPost, int, error)
}

type SubscriberRepository interface {
	SaveSubscriber(ctx context.Context, subscriber models.Subscriber) (uuid.UUID, error)
	UpdateSubscriberStatus(ctx context.Context, subscriberID uuid.UUID, status string) error
	DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error
	GetSubscriberByID(ctx context.Context, subscriberID uuid.UUID) (*models.Subscriber, error)
	GetSubscribers(ctx context.Context, statusFilter string) ([]models.Subscriber, error)
}

type GalleryRepository interface {
	SaveGallery(ctx context.Context, gallery models.ClientGallery) (uuid.UUID, error)
	UpdateGalleryFields(ctx context.Context, galleryID uuid.UUID, updates map[string]interface{}) error
	DeleteGallery(ctx context.Context, galleryID uuid.UUID) error
	GetGalleryByID(ctx context.Context, galleryID uuid.UUID) (*models.ClientGallery, error)
	GetGalleryBySlug(ctx context.Context, slug string) (*models.ClientGallery, error)
	IncrementViewCount(ctx context.Context, galleryID uuid.UUID) error
	GetGalleries(ctx context.Context) ([]models.ClientGallery, error)
}

type BookingRepository interface {
	SaveBooking(ctx context.Context, booking models.Booking) (uuid.UUID, error)
	UpdateBookingFields(ctx context.Context, bookingID uuid.UUID, updates map[string]interface{}) error
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status string) error
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
	GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	GetBookings(ctx context.Context, statusFilter string) ([]models.Booking, error)

	SaveBlockedDate(ctx context.Context, blocked models.BlockedDate) (uuid.UUID, error)
	DeleteBlockedDate(ctx context.Context, blockedID uuid.UUID) error
	GetBlockedDates(ctx context.Context) ([]models.BlockedDate, error)
}

type CmsRepository interface {
	SaveNavigationItem(ctx context.Context, item models.NavigationItem) (uuid.UUID, error)
	UpdateNavigationItemFields(ctx context.Context, itemID uuid.UUID, updates map[string]interface{}) error
	DeleteNavigationItem(ctx context.Context, itemID uuid.UUID) error
	GetNavigationItems(ctx context.Context, activeOnly bool) ([]models.NavigationItem, error)

	SaveLandingSection(ctx context.Context, section models.LandingSection) (uuid.UUID, error)
	UpdateLandingSectionFields(ctx context.Context, sectionID uuid.UUID, updates map[string]interface{}) error
	DeleteLandingSection(ctx context.Context, sectionID uuid.UUID) error
	GetLandingSections(ctx context.Context, activeOnly bool) ([]models.LandingSection, error)
}

type StatsRepository interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user models.AdminUser) (uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (models.AdminUser, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.AdminUser, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}
