package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) SaveSubscriber(ctx context.Context, subscriber models.Subscriber) (uuid.UUID, error) {
	args := m.Called(ctx, subscriber)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSubscriberRepository) UpdateSubscriberStatus(ctx context.Context, subscriberID uuid.UUID, status string) error {
	args := m.Called(ctx, subscriberID, status)
	return args.Error(0)
}

func (m *MockSubscriberRepository) DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	args := m.Called(ctx, subscriberID)
	return args.Error(0)
}

func (m *MockSubscriberRepository) GetSubscriberByID(ctx context.Context, subscriberID uuid.UUID) (*models.Subscriber, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) GetSubscribers(ctx context.Context, statusFilter string) ([]models.Subscriber, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscriber), args.Error(1)
}

func newTestService(repo *MockSubscriberRepository) *SubscriberService {
	return NewSubscriberService(slog.Default(), repo, cache.New(time.Minute, time.Minute))
}

func TestSubscribe_DefaultsSourceAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSubscriberRepository)
	service := newTestService(repo)

	id := uuid.New()
	repo.On("SaveSubscriber", ctx, mock.MatchedBy(func(sub models.Subscriber) bool {
		return sub.Source == "website" && sub.Status == models.SubscriberStatusActive
	})).Return(id, nil)

	got, err := service.Subscribe(ctx, dto.SubscribeRequest{Email: "bride@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, id, got)
	repo.AssertExpectations(t)
}

func TestSubscribe_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSubscriberRepository)
	service := newTestService(repo)

	repo.On("SaveSubscriber", ctx, mock.Anything).
		Return(uuid.Nil, storage.ErrConflict)

	_, err := service.Subscribe(ctx, dto.SubscribeRequest{Email: "bride@example.com"})

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSubscriberRepository)
	service := newTestService(repo)

	err := service.UpdateStatus(ctx, uuid.New(), "paused")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateSubscriberStatus")
}

func TestListSubscribers_InvalidFilter(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSubscriberRepository)
	service := newTestService(repo)

	_, err := service.ListSubscribers(ctx, "paused")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "GetSubscribers")
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSubscriberRepository)
	service := newTestService(repo)

	subscribed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	repo.On("GetSubscribers", ctx, "").Return([]models.Subscriber{
		{
			Email:     "bride@example.com",
			Name:      "Anna",
			Status:    models.SubscriberStatusActive,
			Source:    "website",
			CreatedAt: subscribed,
		},
		{
			// Status left empty on old rows renders as active.
			Email:     "groom@example.com",
			Source:    "instagram",
			CreatedAt: subscribed.AddDate(0, 1, 0),
		},
	}, nil)

	data, err := service.ExportCSV(ctx, "")

	assert.NoError(t, err)
	expected := "email,name,status,source,subscribed\n" +
		"bride@example.com,Anna,active,website,2026-03-14\n" +
		"groom@example.com,,active,instagram,2026-04-14\n"
	assert.Equal(t, expected, string(data))
	repo.AssertExpectations(t)
}

func TestExportCSV_Empty(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSubscriberRepository)
	service := newTestService(repo)

	repo.On("GetSubscribers", ctx, "").Return([]models.Subscriber{}, nil)

	data, err := service.ExportCSV(ctx, "")

	assert.NoError(t, err)
	assert.Nil(t, data)
	repo.AssertExpectations(t)
}
