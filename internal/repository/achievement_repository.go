package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportshub/internal/model"
)

// GroupCount is a grouped aggregate row (by level or by sport).
type GroupCount struct {
	Key   string `json:"key" gorm:"column:group_key"`
	Count int64  `json:"count"`
}

// AchievementRepository defines achievement persistence operations.
type AchievementRepository interface {
	Create(ctx context.Context, achievement *model.Achievement) error
	Update(ctx context.Context, achievement *model.Achievement) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Achievement, error)
	List(ctx context.Context) ([]model.Achievement, error)
	ListRecent(ctx context.Context, limit int) ([]model.Achievement, error)
	Count(ctx context.Context) (int64, error)
	CountByLevel(ctx context.Context) ([]GroupCount, error)
	CountBySport(ctx context.Context) ([]GroupCount, error)
}

type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository builds a GORM-backed repository.
func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(ctx context.Context, achievement *model.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

func (r *achievementRepository) Update(ctx context.Context, achievement *model.Achievement) error {
	return r.db.WithContext(ctx).Save(achievement).Error
}

func (r *achievementRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Achievement{})
	return res.RowsAffected, res.Error
}

func (r *achievementRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Achievement, error) {
	var achievement model.Achievement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *achievementRepository) List(ctx context.Context) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := r.db.WithContext(ctx).Order("year DESC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) ListRecent(ctx context.Context, limit int) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Achievement{}).Count(&count).Error
	return count, err
}

func (r *achievementRepository) CountByLevel(ctx context.Context) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.WithContext(ctx).Model(&model.Achievement{}).
		Select("level AS group_key, COUNT(*) AS count").
		Group("level").
		Scan(&rows).Error
	return rows, err
}

func (r *achievementRepository) CountBySport(ctx context.Context) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.WithContext(ctx).Model(&model.Achievement{}).
		Select("sport_type AS group_key, COUNT(*) AS count").
		Group("sport_type").
		Scan(&rows).Error
	return rows, err
}
