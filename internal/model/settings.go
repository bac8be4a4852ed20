package model

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the single site-wide configuration row. The repository
// creates it with defaults on first read, so exactly one row ever exists.
type Settings struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	RegistrationEnabled bool      `json:"registration_enabled" gorm:"not null;default:true"`
	GoogleCalendarID    string    `json:"google_calendar_id,omitempty" gorm:"size:255"`
	UpdatedBy           uuid.UUID `json:"updated_by,omitempty" gorm:"type:char(36)"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
