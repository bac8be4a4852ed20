package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleItem is a single timetable entry within a day.
type ScheduleItem struct {
	Time  string `json:"time"`
	Event string `json:"event"`
	Venue string `json:"venue"`
	Type  string `json:"type"` // sport, ceremony or cultural
}

// ScheduleDay groups the items planned for one day.
type ScheduleDay struct {
	DayName string         `json:"day_name"`
	Items   []ScheduleItem `json:"items"`
}

// ScheduleDays is stored as a JSON document column.
type ScheduleDays []ScheduleDay

// Schedule is the day-by-day timetable published for an event.
type Schedule struct {
	ID          uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
	EventID     *uuid.UUID   `json:"event_id,omitempty" gorm:"type:char(36);index"`
	Days        ScheduleDays `json:"days" gorm:"serializer:json"`
	CreatedBy   uuid.UUID    `json:"created_by,omitempty" gorm:"type:char(36)"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// BeforeCreate sets the UUID before inserting.
func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
