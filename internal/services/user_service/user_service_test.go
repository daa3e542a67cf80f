package services

import (
	"context"
	"log/slog"
	"testing"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.AdminUser) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UserByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.AdminUser), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.AdminUser, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.AdminUser), args.Error(1)
}

func (m *MockUserRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func newTestService(repo *MockUserRepository) *UserService {
	return NewUserService(slog.Default(), repo)
}

func hashPassword(t *testing.T, password string) []byte {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return hash
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := newTestService(repo)

	user := models.AdminUser{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		PassHash: hashPassword(t, "correct-password"),
		IsAdmin:  true,
	}

	repo.On("UserByEmail", ctx, "admin@example.com").Return(user, nil)

	got, err := service.Login(ctx, "admin@example.com", "correct-password")

	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := newTestService(repo)

	user := models.AdminUser{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		PassHash: hashPassword(t, "correct-password"),
	}

	repo.On("UserByEmail", ctx, "admin@example.com").Return(user, nil)

	_, err := service.Login(ctx, "admin@example.com", "wrong-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := newTestService(repo)

	repo.On("UserByEmail", ctx, "nobody@example.com").
		Return(models.AdminUser{}, storage.ErrUserNotFound)

	// An unknown email is reported the same way as a wrong password.
	_, err := service.Login(ctx, "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertExpectations(t)
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := newTestService(repo)

	id := uuid.New()
	repo.On("SaveUser", ctx, mock.MatchedBy(func(user models.AdminUser) bool {
		return user.Email == "new@example.com" &&
			bcrypt.CompareHashAndPassword(user.PassHash, []byte("secret-password")) == nil
	})).Return(id, nil)

	got, err := service.RegisterUser(ctx, dto.RegisterUserRequest{
		Email:    "new@example.com",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, id, got)
	repo.AssertExpectations(t)
}

func TestRegisterUser_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := newTestService(repo)

	repo.On("SaveUser", ctx, mock.Anything).Return(uuid.Nil, storage.ErrUserExists)

	_, err := service.RegisterUser(ctx, dto.RegisterUserRequest{
		Email:    "taken@example.com",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	repo.AssertExpectations(t)
}

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := newTestService(repo)

	userID := uuid.New()
	repo.On("IsAdmin", ctx, userID).Return(true, nil)

	isAdmin, err := service.IsAdmin(ctx, userID)

	assert.NoError(t, err)
	assert.True(t, isAdmin)
	repo.AssertExpectations(t)
}
