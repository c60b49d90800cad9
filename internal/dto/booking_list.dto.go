package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookingListDTO struct {
	ID               uuid.UUID `json:"id"`
	StaffID          uuid.UUID `json:"staff_id"`
	StaffName        string    `json:"staff_name"`
	ServiceID        uuid.UUID `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	AppointmentStart time.Time `json:"appointment_start"`
	AppointmentEnd   time.Time `json:"appointment_end"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
}
