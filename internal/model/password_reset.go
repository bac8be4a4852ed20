package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is the one-time code issued for a forgot-password request.
// At most one live row exists per user: a new request overwrites the old one.
type PasswordReset struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	Code      string    `json:"-" gorm:"size:6;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the code is no longer usable at the given instant.
func (p *PasswordReset) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
