package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "sportshub/internal/errors"
	"sportshub/internal/model"
	"sportshub/internal/repository"
)

// ScheduleService handles event schedules.
type ScheduleService interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	Update(ctx context.Context, id uuid.UUID, schedule *model.Schedule) (*model.Schedule, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	GetByEvent(ctx context.Context, eventID uuid.UUID) (*model.Schedule, error)
	List(ctx context.Context) ([]model.Schedule, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) Create(ctx context.Context, schedule *model.Schedule) error {
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) Update(ctx context.Context, id uuid.UUID, schedule *model.Schedule) (*model.Schedule, error) {
	existing, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find schedule: %w", err)
	}

	schedule.ID = existing.ID
	schedule.CreatedBy = existing.CreatedBy
	schedule.CreatedAt = existing.CreatedAt
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.scheduleRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *scheduleService) Get(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) GetByEvent(ctx context.Context, eventID uuid.UUID) (*model.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find schedule by event: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) List(ctx context.Context) ([]model.Schedule, error) {
	return s.scheduleRepo.List(ctx)
}
