package services

import (
	"bytes"
	"context"
	"encoding/csv"
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

var (
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrInvalidStatus     = errors.New("invalid subscriber status")
)

type SubscriberService struct {
	log   *slog.Logger
	repo  repository.SubscriberRepository
	cache *cache.Cache
}

func NewSubscriberService(log *slog.Logger, repo repository.SubscriberRepository, c *cache.Cache) *SubscriberService {
	return &SubscriberService{log: log, repo: repo, cache: c}
}

// Subscribe handles the public newsletter form. Duplicate emails surface as
// ErrAlreadySubscribed so the handler can answer idempotently.
func (s *SubscriberService) Subscribe(ctx context.Context, req dto.SubscribeRequest) (uuid.UUID, error) {
	const op = "subscriber_service.Subscribe"
	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	log.Info("subscribing")

	source := req.Source
	if source == "" {
		source = "website"
	}

	subscriber := models.Subscriber{
		Email:  req.Email,
		Name:   req.Name,
		Status: models.SubscriberStatusActive,
		Source: source,
	}

	id, err := s.repo.SaveSubscriber(ctx, subscriber)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("email already subscribed")
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrAlreadySubscribed)
		}
		log.Error("failed to save subscriber", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("subscribed", slog.String("subscriber_id", id.String()))
	return id, nil
}

func (s *SubscriberService) UpdateStatus(ctx context.Context, subscriberID uuid.UUID, status string) error {
	const op = "subscriber_service.UpdateStatus"
	log := s.log.With(
		slog.String("op", op),
		slog.String("subscriber_id", subscriberID.String()),
		slog.String("status", status),
	)

	if !models.ValidSubscriberStatus(status) {
		log.Warn("invalid status")
		return fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	if err := s.repo.UpdateSubscriberStatus(ctx, subscriberID, status); err != nil {
		log.Error("failed to update subscriber status", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("subscriber status updated")
	return nil
}

func (s *SubscriberService) DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	const op = "subscriber_service.DeleteSubscriber"
	log := s.log.With(
		slog.String("op", op),
		slog.String("subscriber_id", subscriberID.String()),
	)

	if err := s.repo.DeleteSubscriber(ctx, subscriberID); err != nil {
		log.Error("failed to delete subscriber", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("subscriber deleted")
	return nil
}

func (s *SubscriberService) ListSubscribers(ctx context.Context, statusFilter string) ([]models.Subscriber, error) {
	const op = "subscriber_service.ListSubscribers"

	if statusFilter != "" && !models.ValidSubscriberStatus(statusFilter) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	subscribers, err := s.repo.GetSubscribers(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subscribers, nil
}

// ExportCSV renders all subscribers matching the filter as CSV. An empty
// result returns (nil, nil) so the handler can answer 204.
func (s *SubscriberService) ExportCSV(ctx context.Context, statusFilter string) ([]byte, error) {
	const op = "subscriber_service.ExportCSV"
	log := s.log.With(slog.String("op", op))

	subscribers, err := s.ListSubscribers(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(subscribers) == 0 {
		log.Info("no subscribers to export")
		return nil, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"email", "name", "status", "source", "subscribed"}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, sub := range subscribers {
		status := sub.Status
		if status == "" {
			status = models.SubscriberStatusActive
		}
		record := []string{
			sub.Email,
			sub.Name,
			status,
			sub.Source,
			sub.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("subscribers exported", slog.Int("count", len(subscribers)))
	return buf.Bytes(), nil
}
