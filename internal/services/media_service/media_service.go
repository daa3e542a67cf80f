package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/repository"
	storage "nordlys_studio/internal/storage/filestorage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

type MediaService struct {
	log         *slog.Logger
	repo        repository.MediaRepository
	fileStorage storage.FileStorage
	cache       *cache.Cache
}

func NewMediaService(
	log *slog.Logger,
	repo repository.MediaRepository,
	fileStorage storage.FileStorage,
	c *cache.Cache,
) *MediaService {
	return &MediaService{
		log:         log,
		repo:        repo,
		fileStorage: fileStorage,
		cache:       c,
	}
}

// UploadMedia stores the file first, then the database row. If the row
// insert fails the file is removed again so storage never leaks orphans.
func (s *MediaService) UploadMedia(ctx context.Context, input dto.UploadMediaRequest) (*models.Media, error) {
	const op = "media_service.UploadMedia"

	log := s.log.With(
		slog.String("op", op),
		slog.String("media_type", input.MediaType),
	)

	log.Info("uploading media")

	if !models.ValidMediaType(input.MediaType) {
		return nil, fmt.Errorf("%s: invalid media type %q", op, input.MediaType)
	}

	subPath := "library"
	if input.ProjectID != nil {
		subPath = filepath.Join("projects", input.ProjectID.String())
	}

	filePath, fileSize, err := s.fileStorage.Save(ctx, input.File, subPath)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	media := &models.Media{
		ProjectID: input.ProjectID,
		MediaType: input.MediaType,
		URL:       s.fileStorage.PublicURL(filePath),
		Title:     input.Title,
		Alt:       input.Alt,
		SortOrder: input.SortOrder,
		FileSize:  fileSize,
		MimeType:  input.File.Header.Get("Content-Type"),
	}

	created, err := s.repo.CreateMedia(ctx, media)
	if err != nil {
		_ = s.fileStorage.Delete(ctx, filePath)
		log.Error("failed to save media to database", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateProjects()

	log.Info("media uploaded", slog.String("media_id", created.ID.String()))
	return created, nil
}

func (s *MediaService) UpdateMedia(ctx context.Context, mediaID uuid.UUID, req dto.UpdateMediaRequest) (*models.Media, error) {
	const op = "media_service.UpdateMedia"
	log := s.log.With(
		slog.String("op", op),
		slog.String("media_id", mediaID.String()),
	)

	updates := make(map[string]interface{})

	if req.ProjectID != nil {
		updates["project_id"] = *req.ProjectID
	}
	if req.MediaType != nil {
		if !models.ValidMediaType(*req.MediaType) {
			return nil, fmt.Errorf("%s: invalid media type %q", op, *req.MediaType)
		}
		updates["media_type"] = *req.MediaType
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Alt != nil {
		updates["alt"] = *req.Alt
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if err := s.repo.UpdateMediaFields(ctx, mediaID, updates); err != nil {
		log.Error("failed to update media", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateProjects()

	log.Info("media updated")
	return s.repo.FindByID(ctx, mediaID)
}

func (s *MediaService) DeleteMedia(ctx context.Context, mediaID uuid.UUID) error {
	const op = "media_service.DeleteMedia"
	log := s.log.With(
		slog.String("op", op),
		slog.String("media_id", mediaID.String()),
	)

	log.Info("deleting media")

	if err := s.repo.DeleteMedia(ctx, mediaID); err != nil {
		log.Error("failed to delete media", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateProjects()

	log.Info("media deleted")
	return nil
}

func (s *MediaService) GetMedia(ctx context.Context, mediaID uuid.UUID) (*models.Media, error) {
	const op = "media_service.GetMedia"

	media, err := s.repo.FindByID(ctx, mediaID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return media, nil
}

func (s *MediaService) ListMedia(ctx context.Context, projectID *uuid.UUID) ([]models.Media, error) {
	const op = "media_service.ListMedia"

	var (
		media []models.Media
		err   error
	)
	if projectID != nil {
		media, err = s.repo.GetMediaByProjectID(ctx, *projectID)
	} else {
		media, err = s.repo.GetAllMedia(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return media, nil
}
