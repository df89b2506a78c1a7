package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/pkg/auth"
)

// MockAdminRepository реализует repository.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByUsername(username string) (*entity.Admin, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByID(id uint) (*entity.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) Create(admin *entity.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	jwtService, err := auth.NewJWTService("test-secret-key", 1)
	require.NoError(t, err)
	return jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	// Arrange
	admin := &entity.Admin{ID: 1, Username: "admin", Name: "Администратор"}
	require.NoError(t, admin.SetPassword("correct-password"))

	mockAdminRepo := new(MockAdminRepository)
	mockAdminRepo.On("GetByUsername", "admin").Return(admin, nil)

	jwtService := newTestJWTService(t)
	authService := NewAuthService(mockAdminRepo, jwtService)

	// Act
	token, gotAdmin, err := authService.Login("admin", "correct-password")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(1), gotAdmin.ID)

	// Токен должен разбираться обратно с теми же claims
	claims, err := jwtService.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	// Arrange
	admin := &entity.Admin{ID: 1, Username: "admin"}
	require.NoError(t, admin.SetPassword("correct-password"))

	mockAdminRepo := new(MockAdminRepository)
	mockAdminRepo.On("GetByUsername", "admin").Return(admin, nil)

	authService := NewAuthService(mockAdminRepo, newTestJWTService(t))

	// Act
	token, gotAdmin, err := authService.Login("admin", "wrong-password")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Empty(t, token)
	assert.Nil(t, gotAdmin)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	// Arrange: неизвестное имя неотличимо от неверного пароля
	mockAdminRepo := new(MockAdminRepository)
	mockAdminRepo.On("GetByUsername", "ghost").Return(nil, apperrors.ErrNotFound)

	authService := NewAuthService(mockAdminRepo, newTestJWTService(t))

	// Act
	token, gotAdmin, err := authService.Login("ghost", "any-password")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Empty(t, token)
	assert.Nil(t, gotAdmin)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	// Arrange
	mockAdminRepo := new(MockAdminRepository)
	authService := NewAuthService(mockAdminRepo, newTestJWTService(t))

	// Act & Assert
	_, _, err := authService.Login("", "password")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = authService.Login("admin", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	mockAdminRepo.AssertNotCalled(t, "GetByUsername")
}
