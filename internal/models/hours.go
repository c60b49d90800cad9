package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalonHours: uma linha por salão por dia da semana (0=domingo..6=sábado).
type SalonHours struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SalonID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_salon_day;not null" json:"salon_id"`
	DayOfWeek int       `gorm:"uniqueIndex:idx_salon_day" json:"day_of_week"`

	OpenTime  string `gorm:"size:8" json:"open_time"`
	CloseTime string `gorm:"size:8" json:"close_time"`
	IsClosed  bool   `json:"is_closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *SalonHours) BeforeCreate(tx *gorm.DB) error {
	ensureID(&h.ID)
	return nil
}

// StaffHours sobrescreve SalonHours para um profissional.
// Campos nulos herdam do salão (início/fim) ou indicam ausência de pausa.
type StaffHours struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SalonID   uuid.UUID `gorm:"type:uuid;index;not null" json:"salon_id"`
	StaffID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_staff_day;not null" json:"staff_id"`
	DayOfWeek int       `gorm:"uniqueIndex:idx_staff_day" json:"day_of_week"`

	StartTime  *string `gorm:"size:8" json:"start_time"`
	EndTime    *string `gorm:"size:8" json:"end_time"`
	IsOff      bool    `json:"is_off"`
	BreakStart *string `gorm:"size:8" json:"break_start"`
	BreakEnd   *string `gorm:"size:8" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *StaffHours) BeforeCreate(tx *gorm.DB) error {
	ensureID(&h.ID)
	return nil
}
