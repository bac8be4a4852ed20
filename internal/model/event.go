package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is stored as a JSON array column.
type StringList []string

// Event represents a sports event published on the portal.
type Event struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Type        string     `json:"type" gorm:"size:50;not null"`
	Description string     `json:"description" gorm:"type:text"`
	StartDate   time.Time  `json:"start_date" gorm:"not null;index"`
	EndDate     time.Time  `json:"end_date" gorm:"not null"`
	Venue       string     `json:"venue" gorm:"size:255;not null"`
	Sports      StringList `json:"sports" gorm:"serializer:json"`
	BrochureURL string     `json:"brochure_url,omitempty" gorm:"size:512"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedBy   uuid.UUID  `json:"created_by,omitempty" gorm:"type:char(36)"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate sets the UUID before inserting.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
