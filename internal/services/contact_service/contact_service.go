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

var ErrInvalidStatus = errors.New("invalid contact status")

type ContactService struct {
	log   *slog.Logger
	repo  repository.ContactRepository
	cache *cache.Cache
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository, c *cache.Cache) *ContactService {
	return &ContactService{log: log, repo: repo, cache: c}
}

// SubmitContact handles the public contact form. Status always starts "new"
// regardless of what the client sent.
func (s *ContactService) SubmitContact(ctx context.Context, req dto.CreateContactRequest) (uuid.UUID, error) {
	const op = "contact_service.SubmitContact"
	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	log.Info("submitting contact inquiry")

	contact := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventDate: req.EventDate,
		EventType: req.EventType,
		Message:   req.Message,
		Status:    models.ContactStatusNew,
	}

	id, err := s.repo.SaveContact(ctx, contact)
	if err != nil {
		log.Error("failed to save contact", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("contact saved", slog.String("contact_id", id.String()))
	return id, nil
}

func (s *ContactService) UpdateStatus(ctx context.Context, contactID uuid.UUID, status string) error {
	const op = "contact_service.UpdateStatus"
	log := s.log.With(
		slog.String("op", op),
		slog.String("contact_id", contactID.String()),
		slog.String("status", status),
	)

	if !models.ValidContactStatus(status) {
		log.Warn("invalid status")
		return fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	if err := s.repo.UpdateContactStatus(ctx, contactID, status); err != nil {
		log.Error("failed to update contact status", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("contact status updated")
	return nil
}

func (s *ContactService) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	const op = "contact_service.DeleteContact"
	log := s.log.With(
		slog.String("op", op),
		slog.String("contact_id", contactID.String()),
	)

	if err := s.repo.DeleteContact(ctx, contactID); err != nil {
		log.Error("failed to delete contact", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("contact deleted")
	return nil
}

func (s *ContactService) GetContact(ctx context.Context, contactID uuid.UUID) (*models.Contact, error) {
	const op = "contact_service.GetContact"

	contact, err := s.repo.GetContactByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context, statusFilter string) ([]models.Contact, error) {
	const op = "contact_service.ListContacts"

	if statusFilter != "" && !models.ValidContactStatus(statusFilter) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	contacts, err := s.repo.GetContacts(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}
