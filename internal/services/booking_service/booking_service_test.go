package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking models.Booking) (uuid.UUID, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBookingRepository) UpdateBookingFields(ctx context.Context, bookingID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, bookingID, updates)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status string) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepository) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBookings(ctx context.Context, statusFilter string) ([]models.Booking, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) SaveBlockedDate(ctx context.Context, blocked models.BlockedDate) (uuid.UUID, error) {
	args := m.Called(ctx, blocked)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBookingRepository) DeleteBlockedDate(ctx context.Context, blockedID uuid.UUID) error {
	args := m.Called(ctx, blockedID)
	return args.Error(0)
}

func (m *MockBookingRepository) GetBlockedDates(ctx context.Context) ([]models.BlockedDate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlockedDate), args.Error(1)
}

func newTestService(repo *MockBookingRepository) (*BookingService, *cache.Cache) {
	c := cache.New(time.Minute, time.Minute)
	return NewBookingService(slog.Default(), repo, c), c
}

func TestRequestBooking_ForcesPendingStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBookingRepository)
	service, _ := newTestService(repo)

	id := uuid.New()
	date := time.Date(2026, 6, 20, 14, 0, 0, 0, time.UTC)

	repo.On("GetBlockedDates", ctx).Return([]models.BlockedDate{}, nil)
	repo.On("SaveBooking", ctx, mock.MatchedBy(func(b models.Booking) bool {
		return b.Status == models.BookingStatusPending
	})).Return(id, nil)

	got, err := service.RequestBooking(ctx, dto.CreateBookingRequest{
		Date:        date,
		ClientName:  "Anna",
		ClientEmail: "anna@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, id, got)
	repo.AssertExpectations(t)
}

func TestRequestBooking_BlockedDate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBookingRepository)
	service, _ := newTestService(repo)

	// Same calendar day, different time of day, still blocked.
	blockedAt := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	requested := time.Date(2026, 6, 20, 16, 30, 0, 0, time.UTC)

	repo.On("GetBlockedDates", ctx).Return([]models.BlockedDate{
		{ID: uuid.New(), Date: blockedAt, Reason: "own wedding"},
	}, nil)

	_, err := service.RequestBooking(ctx, dto.CreateBookingRequest{
		Date:        requested,
		ClientName:  "Anna",
		ClientEmail: "anna@example.com",
	})

	assert.ErrorIs(t, err, ErrDateBlocked)
	repo.AssertNotCalled(t, "SaveBooking")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBookingRepository)
	service, _ := newTestService(repo)

	err := service.UpdateStatus(ctx, uuid.New(), "maybe")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateBookingStatus")
}

func TestBlockDate_InvalidatesCalendar(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBookingRepository)
	service, c := newTestService(repo)

	c.Set(cache.KeyBlockedDates, []models.BlockedDate{})

	id := uuid.New()
	repo.On("SaveBlockedDate", ctx, mock.AnythingOfType("models.BlockedDate")).Return(id, nil)

	got, err := service.BlockDate(ctx, dto.CreateBlockedDateRequest{
		Date:   time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		Reason: "holiday",
	})

	assert.NoError(t, err)
	assert.Equal(t, id, got)

	_, ok := c.Get(cache.KeyBlockedDates)
	assert.False(t, ok)
	repo.AssertExpectations(t)
}

func TestBlockedDates_Cached(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBookingRepository)
	service, _ := newTestService(repo)

	blocked := []models.BlockedDate{{ID: uuid.New(), Date: time.Now()}}
	repo.On("GetBlockedDates", ctx).Return(blocked, nil).Once()

	got, err := service.BlockedDates(ctx)
	assert.NoError(t, err)
	assert.Equal(t, blocked, got)

	got, err = service.BlockedDates(ctx)
	assert.NoError(t, err)
	assert.Equal(t, blocked, got)
	repo.AssertExpectations(t)
}
