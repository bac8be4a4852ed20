package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportshub/internal/model"
)

// RegistrationRepository defines team registration persistence operations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *model.Registration) error
	List(ctx context.Context) ([]model.Registration, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Registration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository builds a GORM-backed repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, registration *model.Registration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) List(ctx context.Context) ([]model.Registration, error) {
	var registrations []model.Registration
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Registration, error) {
	var registration model.Registration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&registration).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
