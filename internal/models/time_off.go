package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeOff struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salon_id"`
	StaffID uuid.UUID `gorm:"type:uuid;index;not null" json:"staff_id"`

	StartAt time.Time `gorm:"not null" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`
	Reason  string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *TimeOff) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
