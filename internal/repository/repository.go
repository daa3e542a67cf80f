package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool

	Project    ProjectRepository
	Media      MediaRepository
	Page       PageRepository
	Contact    ContactRepository
	Review     ReviewRepository
	Settings   SettingsRepository
	Blog       BlogRepository
	Subscriber SubscriberRepository
	Gallery    GalleryRepository
	Booking    BookingRepository
	Cms        CmsRepository
	Stats      StatsRepository
	User       UserRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewRepositoryWithPool(db), nil
}

func NewRepositoryWithPool(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:         db,
		Project:    NewProjectRepository(db),
		Media:      NewMediaRepository(db),
		Page:       NewPageRepository(db),
		Contact:    NewContactRepository(db),
		Review:     NewReviewRepository(db),
		Settings:   NewSettingsRepository(db),
		Blog:       NewBlogRepository(db),
		Subscriber: NewSubscriberRepository(db),
		Gallery:    NewGalleryRepository(db),
		Booking:    NewBookingRepository(db),
		Cms:        NewCmsRepository(db),
		Stats:      NewStatsRepository(db),
		User:       NewUserRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}
