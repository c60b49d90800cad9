package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salon_id"`

	StaffID uuid.UUID `gorm:"type:uuid;index;not null" json:"staff_id"`
	Staff   Staff     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"staff"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	AppointmentStart time.Time `gorm:"index;not null" json:"appointment_start"`
	AppointmentEnd   time.Time `gorm:"not null" json:"appointment_end"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}
