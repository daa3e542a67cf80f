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

// featuredLimit caps the featured strip on the landing page.
const featuredLimit = 3

type ReviewService struct {
	log   *slog.Logger
	repo  repository.ReviewRepository
	cache *cache.Cache
}

func NewReviewService(log *slog.Logger, repo repository.ReviewRepository, c *cache.Cache) *ReviewService {
	return &ReviewService{log: log, repo: repo, cache: c}
}

func (s *ReviewService) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*models.Review, error) {
	const op = "review_service.CreateReview"
	log := s.log.With(
		slog.String("op", op),
		slog.String("name", req.Name),
	)

	log.Info("creating review")

	review := models.Review{
		Name:      req.Name,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Rating:    req.Rating,
		Content:   req.Content,
		Featured:  req.Featured,
		Published: req.Published,
	}

	id, err := s.repo.SaveReview(ctx, review)
	if err != nil {
		log.Error("failed to save review", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate()

	log.Info("review created", slog.String("review_id", id.String()))
	return s.repo.GetReviewByID(ctx, id)
}

func (s *ReviewService) UpdateReview(ctx context.Context, reviewID uuid.UUID, req dto.UpdateReviewRequest) (*models.Review, error) {
	const op = "review_service.UpdateReview"
	log := s.log.With(
		slog.String("op", op),
		slog.String("review_id", reviewID.String()),
	)

	log.Info("updating review")

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}

	if err := s.repo.UpdateReviewFields(ctx, reviewID, updates); err != nil {
		log.Error("failed to update review", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate()

	log.Info("review updated")
	return s.repo.GetReviewByID(ctx, reviewID)
}

func (s *ReviewService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	const op = "review_service.DeleteReview"
	log := s.log.With(
		slog.String("op", op),
		slog.String("review_id", reviewID.String()),
	)

	if err := s.repo.DeleteReview(ctx, reviewID); err != nil {
		log.Error("failed to delete review", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate()

	log.Info("review deleted")
	return nil
}

// ListPublishedReviews backs the public endpoint. With featuredOnly set the
// result is capped at three entries.
func (s *ReviewService) ListPublishedReviews(ctx context.Context, featuredOnly bool) ([]models.Review, error) {
	const op = "review_service.ListPublishedReviews"

	key := cache.KeyReviews
	limit := 0
	if featuredOnly {
		key = cache.KeyFeaturedReviews
		limit = featuredLimit
	}

	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Review), nil
	}

	reviews, err := s.repo.GetReviews(ctx, true, featuredOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(key, reviews)
	return reviews, nil
}

func (s *ReviewService) ListAllReviews(ctx context.Context) ([]models.Review, error) {
	const op = "review_service.ListAllReviews"

	reviews, err := s.repo.GetReviews(ctx, false, false, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reviews, nil
}

func (s *ReviewService) invalidate() {
	s.cache.Invalidate(cache.KeyReviews, cache.KeyFeaturedReviews)
}
