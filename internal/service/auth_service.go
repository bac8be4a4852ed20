package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sportshub/internal/auth"
	apperrors "sportshub/internal/errors"
	"sportshub/internal/mailer"
	"sportshub/internal/model"
	"sportshub/internal/repository"
)

const (
	bcryptCost = 10
	// resetCodeTTL is how long an issued reset code stays valid.
	resetCodeTTL = 10 * time.Minute
)

// AuthService handles registration, login and the password reset flow.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role, studentID string) (*model.User, error)
	Login(ctx context.Context, email, password, role string) (token string, user *model.User, err error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	resetRepo  repository.PasswordResetRepository
	jwtService *auth.JWTService
	mailer     mailer.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	jwtService *auth.JWTService,
	mailer mailer.Mailer,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		resetRepo:  resetRepo,
		jwtService: jwtService,
		mailer:     mailer,
	}
}

// Register creates a new account with a hashed password.
func (s *authService) Register(ctx context.Context, name, email, password, role, studentID string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		StudentID:    studentID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the email/password/role triple and mints a bearer token.
// A missing account and a wrong password are reported identically so that
// login cannot be used to probe which emails are registered.
func (s *authService) Login(ctx context.Context, email, password, role string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if user.Role != role {
		return "", nil, apperrors.ErrRoleMismatch
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// ForgotPassword issues a 6-digit reset code, stores it with a 10-minute
// expiry and emails it to the account. A repeated request replaces the
// previous code, so only the most recently issued one is ever valid.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("generate reset code: %w", err)
	}

	reset := &model.PasswordReset{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}
	if err := s.resetRepo.Upsert(ctx, reset); err != nil {
		return fmt.Errorf("store reset code: %w", err)
	}

	if err := s.mailer.SendResetCode(ctx, user.Email, code); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDeliveryFailed, err)
	}

	return nil
}

// VerifyOTP checks the code without consuming it, so clients may call it
// repeatedly before submitting the new password.
func (s *authService) VerifyOTP(ctx context.Context, email, code string) error {
	_, err := s.matchResetCode(ctx, email, code)
	return err
}

// ResetPassword re-checks the code, stores the new password hash and clears
// the ticket. The same code can never pass this step twice.
func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.matchResetCode(ctx, email, code)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, user.ID, string(hashedPassword)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.resetRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return fmt.Errorf("clear reset code: %w", err)
	}

	return nil
}

// matchResetCode returns the owning user when a live ticket matches the
// supplied email and code. Every failure mode collapses to the same error
// so responses do not reveal whether the account exists.
func (s *authService) matchResetCode(ctx context.Context, email, code string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidOrExpiredCode
	}

	reset, err := s.resetRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.ErrInvalidOrExpiredCode
	}

	if reset.Code != code || reset.Expired(time.Now()) {
		return nil, apperrors.ErrInvalidOrExpiredCode
	}

	return user, nil
}

// generateResetCode returns a random 6-digit numeric code.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
