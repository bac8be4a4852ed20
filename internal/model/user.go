package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a portal account can hold.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User represents a portal account, either an admin or a student.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null;index"`
	StudentID    string    `json:"student_id,omitempty" gorm:"size:100"`
	Sport        string    `json:"sport,omitempty" gorm:"size:100"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID and lowercases the email before inserting.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// ValidRole reports whether role is one of the two supported tiers.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStudent
}
