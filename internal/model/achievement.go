package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement categories and classifications.
const (
	CategoryGold   = "Gold"
	CategorySilver = "Silver"
	CategoryBronze = "Bronze"

	ClassificationGroup      = "Group"
	ClassificationIndividual = "Individual"
)

// Achievement records a medal or placement won by a student or team.
type Achievement struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SportType       string    `json:"sport_type" gorm:"size:100;not null;index"`
	ParticipantName string    `json:"participant_name" gorm:"size:255;not null"`
	Position        string    `json:"position" gorm:"size:100;not null"`
	Year            string    `json:"year" gorm:"size:10;not null;index"`
	Category        string    `json:"category" gorm:"size:20;not null"`
	Classification  string    `json:"classification" gorm:"size:20;not null"`
	Level           string    `json:"level" gorm:"size:100;not null;index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID before inserting.
func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
