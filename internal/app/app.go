package app

import (
	"context"
	"log/slog"
	"time"

	httpapp "nordlys_studio/internal/app/http"
	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/config"
	"nordlys_studio/internal/repository"
	blogservice "nordlys_studio/internal/services/blog_service"
	bookingservice "nordlys_studio/internal/services/booking_service"
	cmsservice "nordlys_studio/internal/services/cms_service"
	contactservice "nordlys_studio/internal/services/contact_service"
	galleryservice "nordlys_studio/internal/services/gallery_service"
	mediaservice "nordlys_studio/internal/services/media_service"
	pageservice "nordlys_studio/internal/services/page_service"
	projectservice "nordlys_studio/internal/services/project_service"
	reviewservice "nordlys_studio/internal/services/review_service"
	settingsservice "nordlys_studio/internal/services/settings_service"
	statsservice "nordlys_studio/internal/services/stats_service"
	subscriberservice "nordlys_studio/internal/services/subscriber_service"
	tokenservice "nordlys_studio/internal/services/token_service"
	userservice "nordlys_studio/internal/services/user_service"
	filestorage "nordlys_studio/internal/storage/filestorage"
	redisapp "nordlys_studio/internal/storage/redis"
	httprouters "nordlys_studio/internal/transport/http"
)

const (
	cacheTTL             = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute
)

type App struct {
	HTTPServer *httpapp.Server

	repo  *repository.Repository
	redis *redisapp.Client
}

func New(log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		panic(err)
	}

	queryCache := cache.New(cacheTTL, cacheCleanupInterval)
	tokenRepo := repository.NewRedisTokenRepo(redisClient)

	routers := httprouters.NewRouter(
		log,
		userservice.NewUserService(log, repo.User),
		tokenservice.NewTokenService(tokenRepo, cfg.TokenSecret),
		projectservice.NewProjectService(log, repo.Project, repo.Media, queryCache),
		mediaservice.NewMediaService(log, repo.Media, fileStorage, queryCache),
		pageservice.NewPageService(log, repo.Page, queryCache),
		contactservice.NewContactService(log, repo.Contact, queryCache),
		reviewservice.NewReviewService(log, repo.Review, queryCache),
		blogservice.NewBlogService(log, repo.Blog, queryCache),
		subscriberservice.NewSubscriberService(log, repo.Subscriber, queryCache),
		galleryservice.NewGalleryService(log, repo.Gallery, repo.Media),
		bookingservice.NewBookingService(log, repo.Booking, queryCache),
		settingsservice.NewSettingsService(log, repo.Settings, queryCache),
		cmsservice.NewCmsService(log, repo.Cms, queryCache),
		statsservice.NewStatsService(repo.Stats, queryCache),
	)

	server := httpapp.New(log, cfg.SessionSecret, cfg.TokenSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      redisClient,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		panic(err)
	}
	a.repo.Close()
	a.redis.Close()
}
