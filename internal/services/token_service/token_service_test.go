package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"nordlys_studio/internal/domain/models"
	libjwt "nordlys_studio/internal/lib/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	args := m.Called(ctx, userID, token, exp)
	return args.Error(0)
}

func (m *MockTokenRepository) GetRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	args := m.Called(ctx, userID, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteAllUserTokens(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

const testSecret = "test-secret"

var (
	testUser = models.AdminUser{
		ID:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Email: "admin@example.com",
	}
	testCtx = context.Background()
)

func TestGenerateTokens_Success(t *testing.T) {
	repo := new(MockTokenRepository)
	service := NewTokenService(repo, testSecret)

	repo.On("SaveRefreshToken", testCtx, testUser.ID.String(), mock.Anything, mock.Anything).
		Return(nil)

	tokens, err := service.GenerateTokens(testCtx, testUser)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, testUser.ID, tokens.UserID)
	repo.AssertExpectations(t)
}

func TestGenerateTokens_RepoError(t *testing.T) {
	repo := new(MockTokenRepository)
	service := NewTokenService(repo, testSecret)

	expectedErr := errors.New("storage error")
	repo.On("SaveRefreshToken", testCtx, testUser.ID.String(), mock.Anything, mock.Anything).
		Return(expectedErr)

	tokens, err := service.GenerateTokens(testCtx, testUser)

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, tokens)
	repo.AssertExpectations(t)
}

func TestRefreshTokens_Success(t *testing.T) {
	repo := new(MockTokenRepository)
	service := NewTokenService(repo, testSecret)

	refreshToken, _ := libjwt.NewToken(testUser, testSecret, time.Hour)

	repo.On("GetRefreshToken", testCtx, testUser.ID.String(), refreshToken).
		Return(true, nil)
	repo.On("DeleteRefreshToken", testCtx, testUser.ID.String(), refreshToken).
		Return(nil)
	repo.On("SaveRefreshToken", testCtx, testUser.ID.String(), mock.Anything, mock.Anything).
		Return(nil)

	newTokens, err := service.RefreshTokens(testCtx, refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, newTokens.AccessToken)
	assert.NotEmpty(t, newTokens.RefreshToken)
	repo.AssertExpectations(t)
}

func TestRefreshTokens_InvalidToken(t *testing.T) {
	repo := new(MockTokenRepository)
	service := NewTokenService(repo, testSecret)

	_, err := service.RefreshTokens(testCtx, "invalid.token.string")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_WrongSecret(t *testing.T) {
	repo := new(MockTokenRepository)
	service := NewTokenService(repo, testSecret)

	refreshToken, _ := libjwt.NewToken(testUser, "other-secret", time.Hour)

	_, err := service.RefreshTokens(testCtx, refreshToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_TokenNotInStorage(t *testing.T) {
	repo := new(MockTokenRepository)
	service := NewTokenService(repo, testSecret)

	refreshToken, _ := libjwt.NewToken(testUser, testSecret, time.Hour)

	repo.On("GetRefreshToken", testCtx, testUser.ID.String(), refreshToken).
		Return(false, nil)

	_, err := service.RefreshTokens(testCtx, refreshToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
	repo.AssertExpectations(t)
}

func TestRevokeAll(t *testing.T) {
	repo := new(MockTokenRepository)
	service := NewTokenService(repo, testSecret)

	repo.On("DeleteAllUserTokens", testCtx, testUser.ID.String()).
		Return(nil)

	err := service.RevokeAll(testCtx, testUser.ID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
