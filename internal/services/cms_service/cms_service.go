package services

import (
	"context"
	"fmt"
	"log/slog"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/repository"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

const (
	SourceCms     = "cms"
	SourceDefault = "default"
)

// Compiled-in fallbacks served when no active CMS rows exist, so the public
// site never renders an empty menu or landing page.
var (
	defaultNavigation = []models.NavigationItem{
		{Label: "Portfolio", Href: "/portfolio", DisplayOrder: 1, IsActive: true},
		{Label: "Films", Href: "/films", DisplayOrder: 2, IsActive: true},
		{Label: "Blog", Href: "/blog", DisplayOrder: 3, IsActive: true},
		{Label: "About", Href: "/about", DisplayOrder: 4, IsActive: true},
		{Label: "Contact", Href: "/contact", DisplayOrder: 5, IsActive: true},
	}

	defaultLanding = []models.LandingSection{
		{SectionKey: "hero", Title: "Timeless wedding stories", DisplayOrder: 1, IsActive: true},
		{SectionKey: "portfolio", Title: "Selected work", DisplayOrder: 2, IsActive: true},
		{SectionKey: "reviews", Title: "Kind words", DisplayOrder: 3, IsActive: true},
		{SectionKey: "contact", Title: "Get in touch", DisplayOrder: 4, IsActive: true},
	}
)

type CmsService struct {
	log   *slog.Logger
	repo  repository.CmsRepository
	cache *cache.Cache
}

func NewCmsService(log *slog.Logger, repo repository.CmsRepository, c *cache.Cache) *CmsService {
	return &CmsService{log: log, repo: repo, cache: c}
}

// PublicNavigation returns the active menu, falling back to the compiled-in
// one when the CMS set is empty. The response is tagged with its source.
func (s *CmsService) PublicNavigation(ctx context.Context) (*dto.NavigationResponse, error) {
	const op = "cms_service.PublicNavigation"

	if cached, ok := s.cache.Get(cache.KeyNavigation); ok {
		return cached.(*dto.NavigationResponse), nil
	}

	items, err := s.repo.GetNavigationItems(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	response := &dto.NavigationResponse{Source: SourceCms, Items: items}
	if len(items) == 0 {
		response = &dto.NavigationResponse{Source: SourceDefault, Items: defaultNavigation}
	}

	s.cache.Set(cache.KeyNavigation, response)
	return response, nil
}

func (s *CmsService) PublicLanding(ctx context.Context) (*dto.LandingResponse, error) {
	const op = "cms_service.PublicLanding"

	if cached, ok := s.cache.Get(cache.KeyLanding); ok {
		return cached.(*dto.LandingResponse), nil
	}

	sections, err := s.repo.GetLandingSections(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	response := &dto.LandingResponse{Source: SourceCms, Sections: sections}
	if len(sections) == 0 {
		response = &dto.LandingResponse{Source: SourceDefault, Sections: defaultLanding}
	}

	s.cache.Set(cache.KeyLanding, response)
	return response, nil
}

func (s *CmsService) CreateNavigationItem(ctx context.Context, req dto.CreateNavigationItemRequest) (uuid.UUID, error) {
	const op = "cms_service.CreateNavigationItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("label", req.Label),
	)

	log.Info("creating navigation item")

	id, err := s.repo.SaveNavigationItem(ctx, models.NavigationItem{
		Label:        req.Label,
		Href:         req.Href,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		log.Error("failed to save navigation item", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyNavigation)

	log.Info("navigation item created", slog.String("item_id", id.String()))
	return id, nil
}

func (s *CmsService) UpdateNavigationItem(ctx context.Context, itemID uuid.UUID, req dto.UpdateNavigationItemRequest) error {
	const op = "cms_service.UpdateNavigationItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
	)

	updates := make(map[string]interface{})

	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.Href != nil {
		updates["href"] = *req.Href
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.repo.UpdateNavigationItemFields(ctx, itemID, updates); err != nil {
		log.Error("failed to update navigation item", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyNavigation)

	log.Info("navigation item updated")
	return nil
}

func (s *CmsService) DeleteNavigationItem(ctx context.Context, itemID uuid.UUID) error {
	const op = "cms_service.DeleteNavigationItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
	)

	if err := s.repo.DeleteNavigationItem(ctx, itemID); err != nil {
		log.Error("failed to delete navigation item", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyNavigation)

	log.Info("navigation item deleted")
	return nil
}

func (s *CmsService) ListNavigationItems(ctx context.Context) ([]models.NavigationItem, error) {
	const op = "cms_service.ListNavigationItems"

	items, err := s.repo.GetNavigationItems(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *CmsService) CreateLandingSection(ctx context.Context, req dto.CreateLandingSectionRequest) (uuid.UUID, error) {
	const op = "cms_service.CreateLandingSection"
	log := s.log.With(
		slog.String("op", op),
		slog.String("section_key", req.SectionKey),
	)

	log.Info("creating landing section")

	id, err := s.repo.SaveLandingSection(ctx, models.LandingSection{
		SectionKey:   req.SectionKey,
		Title:        req.Title,
		Body:         req.Body,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		log.Error("failed to save landing section", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyLanding)

	log.Info("landing section created", slog.String("section_id", id.String()))
	return id, nil
}

func (s *CmsService) UpdateLandingSection(ctx context.Context, sectionID uuid.UUID, req dto.UpdateLandingSectionRequest) error {
	const op = "cms_service.UpdateLandingSection"
	log := s.log.With(
		slog.String("op", op),
		slog.String("section_id", sectionID.String()),
	)

	updates := make(map[string]interface{})

	if req.SectionKey != nil {
		updates["section_key"] = *req.SectionKey
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.repo.UpdateLandingSectionFields(ctx, sectionID, updates); err != nil {
		log.Error("failed to update landing section", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyLanding)

	log.Info("landing section updated")
	return nil
}

func (s *CmsService) DeleteLandingSection(ctx context.Context, sectionID uuid.UUID) error {
	const op = "cms_service.DeleteLandingSection"
	log := s.log.With(
		slog.String("op", op),
		slog.String("section_id", sectionID.String()),
	)

	if err := s.repo.DeleteLandingSection(ctx, sectionID); err != nil {
		log.Error("failed to delete landing section", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyLanding)

	log.Info("landing section deleted")
	return nil
}

func (s *CmsService) ListLandingSections(ctx context.Context) ([]models.LandingSection, error) {
	const op = "cms_service.ListLandingSections"

	sections, err := s.repo.GetLandingSections(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sections, nil
}
