package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Snapshot é o retrato da agenda usado pelo gerador e pelo validador.
type Snapshot struct {
	SalonHours []scheduling.SalonDayRule
	StaffHours []scheduling.StaffDayRule
	Bookings   []scheduling.Booking
	TimeOff    []scheduling.TimeOff
}

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Service / Staff --------
	GetService(
		ctx context.Context,
		salonID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	GetStaff(
		ctx context.Context,
		salonID uuid.UUID,
		staffID uuid.UUID,
	) (*models.Staff, error)

	// -------- Scheduling --------
	// LoadSnapshot traz as regras do salão, as do profissional e os
	// agendamentos/folgas que intersectam [from, to).
	LoadSnapshot(
		ctx context.Context,
		salonID uuid.UUID,
		staffID uuid.UUID,
		from time.Time,
		to time.Time,
	) (*Snapshot, error)

	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		salonID uuid.UUID,
		bookingID uuid.UUID,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// staffID = uuid.Nil lista todos os profissionais.
	ListBookingsForPeriod(
		ctx context.Context,
		salonID uuid.UUID,
		staffID uuid.UUID,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)
}
