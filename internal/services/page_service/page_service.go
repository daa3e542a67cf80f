package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/repository"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

var ErrSlugTaken = errors.New("slug already taken")

type PageService struct {
	log   *slog.Logger
	repo  repository.PageRepository
	cache *cache.Cache
}

func NewPageService(log *slog.Logger, repo repository.PageRepository, c *cache.Cache) *PageService {
	return &PageService{log: log, repo: repo, cache: c}
}

func (s *PageService) CreatePage(ctx context.Context, req dto.CreatePageRequest) (*models.Page, error) {
	const op = "page_service.CreatePage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", req.Slug),
	)

	log.Info("creating page")

	page := models.Page{
		Slug:            req.Slug,
		Title:           req.Title,
		Content:         req.Content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	}

	id, err := s.repo.SavePage(ctx, page)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Warn("slug conflict")
			return nil, fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		log.Error("failed to save page", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidatePages()

	log.Info("page created", slog.String("page_id", id.String()))
	return s.repo.GetPageBySlug(ctx, page.Slug, false)
}

func (s *PageService) UpdatePage(ctx context.Context, pageID uuid.UUID, req dto.UpdatePageRequest) error {
	const op = "page_service.UpdatePage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("page_id", pageID.String()),
	)

	log.Info("updating page")

	updates := make(map[string]interface{})

	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.MetaTitle != nil {
		updates["meta_title"] = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		updates["meta_description"] = *req.MetaDescription
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}

	if err := s.repo.UpdatePageFields(ctx, pageID, updates); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		log.Error("failed to update page", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidatePages()

	log.Info("page updated")
	return nil
}

func (s *PageService) DeletePage(ctx context.Context, pageID uuid.UUID) error {
	const op = "page_service.DeletePage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("page_id", pageID.String()),
	)

	log.Info("deleting page")

	if err := s.repo.DeletePage(ctx, pageID); err != nil {
		log.Error("failed to delete page", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidatePages()

	log.Info("page deleted")
	return nil
}

// GetPublishedPage serves the public page endpoint from cache when warm.
func (s *PageService) GetPublishedPage(ctx context.Context, slug string) (*models.Page, error) {
	const op = "page_service.GetPublishedPage"

	if cached, ok := s.cache.Get(cache.KeyPage(slug)); ok {
		return cached.(*models.Page), nil
	}

	page, err := s.repo.GetPageBySlug(ctx, slug, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(cache.KeyPage(slug), page)
	return page, nil
}

func (s *PageService) GetPage(ctx context.Context, slug string) (*models.Page, error) {
	const op = "page_service.GetPage"

	page, err := s.repo.GetPageBySlug(ctx, slug, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

func (s *PageService) ListPages(ctx context.Context) ([]models.Page, error) {
	const op = "page_service.ListPages"

	pages, err := s.repo.GetPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pages, nil
}
