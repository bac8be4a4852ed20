package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportshub/internal/model"
)

// PasswordResetRepository persists one-time reset codes, keyed by user id.
type PasswordResetRepository interface {
	// Upsert stores the ticket, replacing any previous one for the same user.
	Upsert(ctx context.Context, reset *model.PasswordReset) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.PasswordReset, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository builds a GORM-backed repository.
func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Upsert(ctx context.Context, reset *model.PasswordReset) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "updated_at"}),
	}).Create(reset).Error
}

func (r *passwordResetRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *passwordResetRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PasswordReset{}).Error
}
