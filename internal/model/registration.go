package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration review statuses.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// Registration is a team sign-up submitted through the public form.
type Registration struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CollegeName      string    `json:"college_name" gorm:"size:255;not null"`
	TeamName         string    `json:"team_name" gorm:"size:255;not null"`
	Sport            string    `json:"sport" gorm:"size:100;not null"`
	CaptainName      string    `json:"captain_name" gorm:"size:255;not null"`
	Email            string    `json:"email" gorm:"size:255;not null"`
	Phone            string    `json:"phone" gorm:"size:50;not null"`
	TeamSize         int       `json:"team_size" gorm:"not null"`
	AlternateContact string    `json:"alternate_contact,omitempty" gorm:"size:50"`
	Status           string    `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID, lowercases the email and defaults the status.
func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Status == "" {
		r.Status = RegistrationPending
	}
	return nil
}

// ValidRegistrationStatus reports whether s is a known review status.
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return true
	}
	return false
}
