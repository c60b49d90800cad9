package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff é o profissional que atende; não precisa ter login.
type Staff struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salon_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Phone  string `gorm:"size:20" json:"phone"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
