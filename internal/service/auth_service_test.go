package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sportshub/internal/auth"
	apperrors "sportshub/internal/errors"
	"sportshub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

// MockPasswordResetRepository is a mock implementation of PasswordResetRepository.
type MockPasswordResetRepository struct {
	mock.Mock
}

func (m *MockPasswordResetRepository) Upsert(ctx context.Context, reset *model.PasswordReset) error {
	args := m.Called(ctx, reset)
	return args.Error(0)
}

func (m *MockPasswordResetRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.PasswordReset, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PasswordReset), args.Error(1)
}

func (m *MockPasswordResetRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendResetCode(ctx context.Context, to, code string) error {
	args := m.Called(ctx, to, code)
	return args.Error(0)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(userRepo *MockUserRepository, resetRepo *MockPasswordResetRepository, m *MockMailer) AuthService {
	return NewAuthService(userRepo, resetRepo, auth.NewJWTService("test-secret"), m)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			email: "new@college.edu",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@college.edu").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "email already taken",
			email: "taken@college.edu",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@college.edu").Return(&model.User{Email: "taken@college.edu"}, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)
			svc := newTestService(userRepo, new(MockPasswordResetRepository), new(MockMailer))

			user, err := svc.Register(context.Background(), "A Student", tt.email, "secret1", model.RoleStudent, "S-100")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.RoleStudent, user.Role)
				// Plaintext must never be stored; the hash must verify.
				assert.NotEqual(t, "secret1", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	stored := func() *model.User {
		return &model.User{
			ID:           userID,
			Name:         "A",
			Email:        "a@x.com",
			PasswordHash: hashPassword(t, "secret1"),
			Role:         model.RoleStudent,
		}
	}

	tests := []struct {
		name          string
		password      string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			password: "secret1",
			role:     model.RoleStudent,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(stored(), nil)
			},
		},
		{
			name:     "unknown email reports invalid credentials",
			password: "secret1",
			role:     model.RoleStudent,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "not-the-password",
			role:     model.RoleStudent,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(stored(), nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "role mismatch with correct password",
			password: "secret1",
			role:     model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(stored(), nil)
			},
			expectedError: apperrors.ErrRoleMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)
			svc := newTestService(userRepo, new(MockPasswordResetRepository), new(MockMailer))

			token, user, err := svc.Login(context.Background(), "a@x.com", tt.password, tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)

			// The token must decode to the stored identity with a 7 day horizon.
			claims, err := auth.NewJWTService("test-secret").ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, model.RoleStudent, claims.Role)
			expectedExpiry := time.Now().Add(auth.TokenExpiry)
			assert.WithinDuration(t, expectedExpiry, claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

func TestAuthService_ForgotPassword(t *testing.T) {
	userID := uuid.New()
	user := &model.User{ID: userID, Email: "a@x.com", Role: model.RoleStudent}

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
		svc := newTestService(userRepo, new(MockPasswordResetRepository), new(MockMailer))

		err := svc.ForgotPassword(context.Background(), "nobody@x.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("issues six digit code with ten minute expiry", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

		resetRepo := new(MockPasswordResetRepository)
		var stored *model.PasswordReset
		resetRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.PasswordReset")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*model.PasswordReset)
			}).Return(nil)

		m := new(MockMailer)
		m.On("SendResetCode", mock.Anything, "a@x.com", mock.AnythingOfType("string")).Return(nil)

		svc := newTestService(userRepo, resetRepo, m)
		require.NoError(t, svc.ForgotPassword(context.Background(), "a@x.com"))

		require.NotNil(t, stored)
		assert.Equal(t, userID, stored.UserID)
		assert.Regexp(t, `^\d{6}$`, stored.Code)
		assert.WithinDuration(t, time.Now().Add(resetCodeTTL), stored.ExpiresAt, 5*time.Second)
		m.AssertCalled(t, "SendResetCode", mock.Anything, "a@x.com", stored.Code)
	})

	t.Run("mail failure surfaces as delivery error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

		resetRepo := new(MockPasswordResetRepository)
		resetRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		m := new(MockMailer)
		m.On("SendResetCode", mock.Anything, "a@x.com", mock.Anything).Return(fmt.Errorf("smtp down"))

		svc := newTestService(userRepo, resetRepo, m)
		err := svc.ForgotPassword(context.Background(), "a@x.com")
		assert.ErrorIs(t, err, apperrors.ErrDeliveryFailed)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	userID := uuid.New()
	user := &model.User{ID: userID, Email: "a@x.com"}

	tests := []struct {
		name          string
		code          string
		reset         *model.PasswordReset
		resetErr      error
		expectedError error
	}{
		{
			name:  "valid code before expiry",
			code:  "123456",
			reset: &model.PasswordReset{UserID: userID, Code: "123456", ExpiresAt: time.Now().Add(time.Minute)},
		},
		{
			name:  "valid one second before expiry",
			code:  "123456",
			reset: &model.PasswordReset{UserID: userID, Code: "123456", ExpiresAt: time.Now().Add(time.Second)},
		},
		{
			name:          "rejected at expiry instant",
			code:          "123456",
			reset:         &model.PasswordReset{UserID: userID, Code: "123456", ExpiresAt: time.Now()},
			expectedError: apperrors.ErrInvalidOrExpiredCode,
		},
		{
			name:          "rejected one second after expiry",
			code:          "123456",
			reset:         &model.PasswordReset{UserID: userID, Code: "123456", ExpiresAt: time.Now().Add(-time.Second)},
			expectedError: apperrors.ErrInvalidOrExpiredCode,
		},
		{
			name:          "wrong code",
			code:          "654321",
			reset:         &model.PasswordReset{UserID: userID, Code: "123456", ExpiresAt: time.Now().Add(time.Minute)},
			expectedError: apperrors.ErrInvalidOrExpiredCode,
		},
		{
			name:          "no ticket issued",
			code:          "123456",
			resetErr:      gorm.ErrRecordNotFound,
			expectedError: apperrors.ErrInvalidOrExpiredCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

			resetRepo := new(MockPasswordResetRepository)
			if tt.resetErr != nil {
				resetRepo.On("FindByUserID", mock.Anything, userID).Return(nil, tt.resetErr)
			} else {
				resetRepo.On("FindByUserID", mock.Anything, userID).Return(tt.reset, nil)
			}

			svc := newTestService(userRepo, resetRepo, new(MockMailer))
			err := svc.VerifyOTP(context.Background(), "a@x.com", tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			// Verification never consumes the ticket.
			resetRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	userID := uuid.New()
	oldHash := hashPassword(t, "old-password")
	user := &model.User{ID: userID, Email: "a@x.com", PasswordHash: oldHash}

	t.Run("success stores new hash and clears ticket", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

		var newHash string
		userRepo.On("UpdatePasswordHash", mock.Anything, userID, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				newHash = args.String(2)
			}).Return(nil)

		resetRepo := new(MockPasswordResetRepository)
		resetRepo.On("FindByUserID", mock.Anything, userID).
			Return(&model.PasswordReset{UserID: userID, Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}, nil)
		resetRepo.On("DeleteByUserID", mock.Anything, userID).Return(nil)

		svc := newTestService(userRepo, resetRepo, new(MockMailer))
		require.NoError(t, svc.ResetPassword(context.Background(), "a@x.com", "123456", "new-password"))

		// The new password verifies against the stored hash; the old one does not.
		require.NotEmpty(t, newHash)
		assert.NotEqual(t, oldHash, newHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("old-password")))
		resetRepo.AssertCalled(t, "DeleteByUserID", mock.Anything, userID)
	})

	t.Run("same code fails after reset", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

		// Ticket was cleared by the first reset.
		resetRepo := new(MockPasswordResetRepository)
		resetRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := newTestService(userRepo, resetRepo, new(MockMailer))
		err := svc.ResetPassword(context.Background(), "a@x.com", "123456", "another-password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredCode)
	})

	t.Run("expired code", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

		resetRepo := new(MockPasswordResetRepository)
		resetRepo.On("FindByUserID", mock.Anything, userID).
			Return(&model.PasswordReset{UserID: userID, Code: "123456", ExpiresAt: time.Now().Add(-time.Second)}, nil)

		svc := newTestService(userRepo, resetRepo, new(MockMailer))
		err := svc.ResetPassword(context.Background(), "a@x.com", "123456", "another-password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredCode)
		userRepo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGenerateResetCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateResetCode()
		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}
