package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "sportshub/internal/errors"
	"sportshub/internal/model"
	"sportshub/internal/repository"
)

// RegistrationService handles team registrations.
type RegistrationService interface {
	Create(ctx context.Context, registration *model.Registration) error
	List(ctx context.Context) ([]model.Registration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Registration, error)
}

type registrationService struct {
	registrationRepo repository.RegistrationRepository
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(registrationRepo repository.RegistrationRepository) RegistrationService {
	return &registrationService{registrationRepo: registrationRepo}
}

func (s *registrationService) Create(ctx context.Context, registration *model.Registration) error {
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

func (s *registrationService) List(ctx context.Context) ([]model.Registration, error) {
	return s.registrationRepo.List(ctx)
}

func (s *registrationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Registration, error) {
	if !model.ValidRegistrationStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	affected, err := s.registrationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update registration status: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.ErrNotFound
	}

	return s.registrationRepo.FindByID(ctx, id)
}
