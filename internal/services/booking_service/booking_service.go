package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/repository"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrDateBlocked   = errors.New("date is blocked")
)

type BookingService struct {
	log   *slog.Logger
	repo  repository.BookingRepository
	cache *cache.Cache
}

func NewBookingService(log *slog.Logger, repo repository.BookingRepository, c *cache.Cache) *BookingService {
	return &BookingService{log: log, repo: repo, cache: c}
}

// RequestBooking handles the public booking form. A request for a blocked
// date is rejected up front; status always starts "pending".
func (s *BookingService) RequestBooking(ctx context.Context, req dto.CreateBookingRequest) (uuid.UUID, error) {
	const op = "booking_service.RequestBooking"
	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.ClientEmail),
	)

	log.Info("booking request")

	blocked, err := s.repo.GetBlockedDates(ctx)
	if err != nil {
		log.Error("failed to load blocked dates", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, b := range blocked {
		if sameDay(b.Date, req.Date) {
			log.Info("date is blocked", slog.Time("date", req.Date))
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrDateBlocked)
		}
	}

	booking := models.Booking{
		Date:        req.Date,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		EventType:   req.EventType,
		Location:    req.Location,
		Notes:       req.Notes,
		Status:      models.BookingStatusPending,
	}

	id, err := s.repo.SaveBooking(ctx, booking)
	if err != nil {
		log.Error("failed to save booking", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("booking saved", slog.String("booking_id", id.String()))
	return id, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, bookingID uuid.UUID, req dto.UpdateBookingRequest) (*models.Booking, error) {
	const op = "booking_service.UpdateBooking"
	log := s.log.With(
		slog.String("op", op),
		slog.String("booking_id", bookingID.String()),
	)

	log.Info("updating booking")

	updates := make(map[string]interface{})

	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientEmail != nil {
		updates["client_email"] = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		updates["client_phone"] = *req.ClientPhone
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		if !models.ValidBookingStatus(*req.Status) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
		}
		updates["status"] = *req.Status
	}

	if err := s.repo.UpdateBookingFields(ctx, bookingID, updates); err != nil {
		log.Error("failed to update booking", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("booking updated")
	return s.repo.GetBookingByID(ctx, bookingID)
}

func (s *BookingService) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) error {
	const op = "booking_service.UpdateStatus"
	log := s.log.With(
		slog.String("op", op),
		slog.String("booking_id", bookingID.String()),
		slog.String("status", status),
	)

	if !models.ValidBookingStatus(status) {
		log.Warn("invalid status")
		return fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	if err := s.repo.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		log.Error("failed to update booking status", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("booking status updated")
	return nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	const op = "booking_service.DeleteBooking"
	log := s.log.With(
		slog.String("op", op),
		slog.String("booking_id", bookingID.String()),
	)

	if err := s.repo.DeleteBooking(ctx, bookingID); err != nil {
		log.Error("failed to delete booking", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyDashboardStats)

	log.Info("booking deleted")
	return nil
}

func (s *BookingService) ListBookings(ctx context.Context, statusFilter string) ([]models.Booking, error) {
	const op = "booking_service.ListBookings"

	if statusFilter != "" && !models.ValidBookingStatus(statusFilter) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	bookings, err := s.repo.GetBookings(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *BookingService) BlockDate(ctx context.Context, req dto.CreateBlockedDateRequest) (uuid.UUID, error) {
	const op = "booking_service.BlockDate"
	log := s.log.With(
		slog.String("op", op),
		slog.Time("date", req.Date),
	)

	log.Info("blocking date")

	id, err := s.repo.SaveBlockedDate(ctx, models.BlockedDate{
		Date:   req.Date,
		Reason: req.Reason,
	})
	if err != nil {
		log.Error("failed to block date", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyBlockedDates)

	log.Info("date blocked", slog.String("blocked_id", id.String()))
	return id, nil
}

func (s *BookingService) UnblockDate(ctx context.Context, blockedID uuid.UUID) error {
	const op = "booking_service.UnblockDate"
	log := s.log.With(
		slog.String("op", op),
		slog.String("blocked_id", blockedID.String()),
	)

	if err := s.repo.DeleteBlockedDate(ctx, blockedID); err != nil {
		log.Error("failed to unblock date", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(cache.KeyBlockedDates)

	log.Info("date unblocked")
	return nil
}

// BlockedDates serves the public availability calendar from cache.
func (s *BookingService) BlockedDates(ctx context.Context) ([]models.BlockedDate, error) {
	const op = "booking_service.BlockedDates"

	if cached, ok := s.cache.Get(cache.KeyBlockedDates); ok {
		return cached.([]models.BlockedDate), nil
	}

	blocked, err := s.repo.GetBlockedDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(cache.KeyBlockedDates, blocked)
	return blocked, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
