package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User é quem acessa o painel do salão.
type User struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index" json:"salon_id"`
	Salon   Salon     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"salon"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'owner'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
