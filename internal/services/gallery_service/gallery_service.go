package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/lib/slug"
	"nordlys_studio/internal/repository"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrSlugTaken = errors.New("slug already taken")

type GalleryService struct {
	log   *slog.Logger
	repo  repository.GalleryRepository
	media repository.MediaRepository
}

func NewGalleryService(
	log *slog.Logger,
	repo repository.GalleryRepository,
	media repository.MediaRepository,
) *GalleryService {
	return &GalleryService{log: log, repo: repo, media: media}
}

func (s *GalleryService) CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (*models.ClientGallery, error) {
	const op = "gallery_service.CreateGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("project_id", req.ProjectID.String()),
	)

	log.Info("creating client gallery")

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	gallery := models.ClientGallery{
		ProjectID:       req.ProjectID,
		Slug:            req.Slug,
		PasswordHash:    passHash,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ExpiresAt:       req.ExpiresAt,
		DownloadEnabled: req.DownloadEnabled,
	}

	if gallery.Slug == "" {
		gallery.Slug = slug.Make(req.ClientName)
	}

	id, err := s.repo.SaveGallery(ctx, gallery)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Warn("slug conflict", slog.String("slug", gallery.Slug))
			return nil, fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		log.Error("failed to save gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery created", slog.String("gallery_id", id.String()))
	return s.repo.GetGalleryByID(ctx, id)
}

func (s *GalleryService) UpdateGallery(ctx context.Context, galleryID uuid.UUID, req dto.UpdateGalleryRequest) (*models.ClientGallery, error) {
	const op = "gallery_service.UpdateGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	log.Info("updating gallery")

	updates := make(map[string]interface{})

	if req.ProjectID != nil {
		updates["project_id"] = *req.ProjectID
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Password != nil {
		passHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		updates["password_hash"] = passHash
	}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientEmail != nil {
		updates["client_email"] = *req.ClientEmail
	}
	if req.ExpiresAt != nil {
		updates["expires_at"] = *req.ExpiresAt
	}
	if req.DownloadEnabled != nil {
		updates["download_enabled"] = *req.DownloadEnabled
	}

	if err := s.repo.UpdateGalleryFields(ctx, galleryID, updates); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		log.Error("failed to update gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery updated")
	return s.repo.GetGalleryByID(ctx, galleryID)
}

func (s *GalleryService) DeleteGallery(ctx context.Context, galleryID uuid.UUID) error {
	const op = "gallery_service.DeleteGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	if err := s.repo.DeleteGallery(ctx, galleryID); err != nil {
		log.Error("failed to delete gallery", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery deleted")
	return nil
}

func (s *GalleryService) ListGalleries(ctx context.Context) ([]models.ClientGallery, error) {
	const op = "gallery_service.ListGalleries"

	galleries, err := s.repo.GetGalleries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, nil
}

// AccessGallery verifies the password against the stored hash and checks
// expiry. A successful access bumps the view counter and returns the
// gallery media. Wrong password and expired gallery come back as distinct
// sentinel errors so the handler can answer accordingly.
func (s *GalleryService) AccessGallery(ctx context.Context, gallerySlug, password string) (*dto.GalleryAccessResponse, error) {
	const op = "gallery_service.AccessGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", gallerySlug),
	)

	log.Info("gallery access attempt")

	gallery, err := s.repo.GetGalleryBySlug(ctx, gallerySlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if gallery.Expired(time.Now()) {
		log.Info("gallery expired")
		return nil, fmt.Errorf("%s: %w", op, storage.ErrGalleryExpired)
	}

	if err := bcrypt.CompareHashAndPassword(gallery.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid gallery password")
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidPassword)
	}

	if err := s.repo.IncrementViewCount(ctx, gallery.ID); err != nil {
		log.Warn("failed to increment view count", sl.Err(err))
	}

	media, err := s.media.GetMediaByProjectID(ctx, gallery.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery unlocked")
	return &dto.GalleryAccessResponse{
		Slug:            gallery.Slug,
		ClientName:      gallery.ClientName,
		DownloadEnabled: gallery.DownloadEnabled,
		ExpiresAt:       gallery.ExpiresAt,
		Media:           media,
	}, nil
}

// GalleryMedia serves the media listing for an already unlocked gallery.
// Expiry is re-checked on every call.
func (s *GalleryService) GalleryMedia(ctx context.Context, gallerySlug string) ([]models.Media, error) {
	const op = "gallery_service.GalleryMedia"

	gallery, err := s.repo.GetGalleryBySlug(ctx, gallerySlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if gallery.Expired(time.Now()) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrGalleryExpired)
	}

	media, err := s.media.GetMediaByProjectID(ctx, gallery.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return media, nil
}
