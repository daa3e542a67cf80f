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
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

var ErrInvalidSettingType = errors.New("invalid setting type")

type SettingsService struct {
	log   *slog.Logger
	repo  repository.SettingsRepository
	cache *cache.Cache
}

func NewSettingsService(log *slog.Logger, repo repository.SettingsRepository, c *cache.Cache) *SettingsService {
	return &SettingsService{log: log, repo: repo, cache: c}
}

func (s *SettingsService) UpsertSetting(ctx context.Context, req dto.UpsertSettingRequest) (*models.SiteSetting, error) {
	const op = "settings_service.UpsertSetting"
	log := s.log.With(
		slog.String("op", op),
		slog.String("key", req.Key),
	)

	log.Info("upserting setting")

	if !models.ValidSettingType(req.Type) {
		log.Warn("invalid setting type", slog.String("type", req.Type))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSettingType)
	}

	setting, err := s.repo.UpsertSetting(ctx, models.SiteSetting{
		Key:   req.Key,
		Value: req.Value,
		Type:  req.Type,
	})
	if err != nil {
		log.Error("failed to upsert setting", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeySettings)

	log.Info("setting upserted")
	return setting, nil
}

func (s *SettingsService) DeleteSetting(ctx context.Context, key string) error {
	const op = "settings_service.DeleteSetting"
	log := s.log.With(
		slog.String("op", op),
		slog.String("key", key),
	)

	if err := s.repo.DeleteSetting(ctx, key); err != nil {
		log.Error("failed to delete setting", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeySettings)

	log.Info("setting deleted")
	return nil
}

func (s *SettingsService) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	const op = "settings_service.ListSettings"

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

// PublicSettings flattens all settings into a key/value map for the site.
func (s *SettingsService) PublicSettings(ctx context.Context) (map[string]string, error) {
	const op = "settings_service.PublicSettings"

	if cached, ok := s.cache.Get(cache.KeySettings); ok {
		return cached.(map[string]string), nil
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	public := make(map[string]string, len(settings))
	for _, setting := range settings {
		public[setting.Key] = setting.Value
	}

	s.cache.Set(cache.KeySettings, public)
	return public, nil
}

func (s *SettingsService) CreateHeroSlide(ctx context.Context, req dto.CreateHeroSlideRequest) (uuid.UUID, error) {
	const op = "settings_service.CreateHeroSlide"
	log := s.log.With(slog.String("op", op))

	log.Info("creating hero slide")

	id, err := s.repo.SaveHeroSlide(ctx, models.HeroSlide{
		ImageURL:  req.ImageURL,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		CTAText:   req.CTAText,
		CTALink:   req.CTALink,
		SortOrder: req.SortOrder,
		Active:    req.Active,
	})
	if err != nil {
		log.Error("failed to save hero slide", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyHeroSlides)

	log.Info("hero slide created", slog.String("slide_id", id.String()))
	return id, nil
}

func (s *SettingsService) UpdateHeroSlide(ctx context.Context, slideID uuid.UUID, req dto.UpdateHeroSlideRequest) error {
	const op = "settings_service.UpdateHeroSlide"
	log := s.log.With(
		slog.String("op", op),
		slog.String("slide_id", slideID.String()),
	)

	updates := make(map[string]interface{})

	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.CTAText != nil {
		updates["cta_text"] = *req.CTAText
	}
	if req.CTALink != nil {
		updates["cta_link"] = *req.CTALink
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if err := s.repo.UpdateHeroSlideFields(ctx, slideID, updates); err != nil {
		log.Error("failed to update hero slide", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyHeroSlides)

	log.Info("hero slide updated")
	return nil
}

func (s *SettingsService) DeleteHeroSlide(ctx context.Context, slideID uuid.UUID) error {
	const op = "settings_service.DeleteHeroSlide"
	log := s.log.With(
		slog.String("op", op),
		slog.String("slide_id", slideID.String()),
	)

	if err := s.repo.DeleteHeroSlide(ctx, slideID); err != nil {
		log.Error("failed to delete hero slide", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyHeroSlides)

	log.Info("hero slide deleted")
	return nil
}

// ActiveHeroSlides backs the public hero carousel.
func (s *SettingsService) ActiveHeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	const op = "settings_service.ActiveHeroSlides"

	if cached, ok := s.cache.Get(cache.KeyHeroSlides); ok {
		return cached.([]models.HeroSlide), nil
	}

	slides, err := s.repo.GetHeroSlides(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(cache.KeyHeroSlides, slides)
	return slides, nil
}

func (s *SettingsService) ListHeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	const op = "settings_service.ListHeroSlides"

	slides, err := s.repo.GetHeroSlides(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slides, nil
}
