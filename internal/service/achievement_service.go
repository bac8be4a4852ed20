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

// AchievementService handles achievement CRUD.
type AchievementService interface {
	Create(ctx context.Context, achievement *model.Achievement) error
	Update(ctx context.Context, id uuid.UUID, achievement *model.Achievement) (*model.Achievement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Achievement, error)
	List(ctx context.Context) ([]model.Achievement, error)
}

type achievementService struct {
	achievementRepo repository.AchievementRepository
}

// NewAchievementService creates a new achievement service.
func NewAchievementService(achievementRepo repository.AchievementRepository) AchievementService {
	return &achievementService{achievementRepo: achievementRepo}
}

func (s *achievementService) Create(ctx context.Context, achievement *model.Achievement) error {
	if err := s.achievementRepo.Create(ctx, achievement); err != nil {
		return fmt.Errorf("create achievement: %w", err)
	}
	return nil
}

func (s *achievementService) Update(ctx context.Context, id uuid.UUID, achievement *model.Achievement) (*model.Achievement, error) {
	existing, err := s.achievementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find achievement: %w", err)
	}

	achievement.ID = existing.ID
	achievement.CreatedAt = existing.CreatedAt
	if err := s.achievementRepo.Update(ctx, achievement); err != nil {
		return nil, fmt.Errorf("update achievement: %w", err)
	}
	return achievement, nil
}

func (s *achievementService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.achievementRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete achievement: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *achievementService) Get(ctx context.Context, id uuid.UUID) (*model.Achievement, error) {
	achievement, err := s.achievementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find achievement: %w", err)
	}
	return achievement, nil
}

func (s *achievementService) List(ctx context.Context) ([]model.Achievement, error) {
	return s.achievementRepo.List(ctx)
}
