package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// notFound traduz ErrRecordNotFound para o código de negócio da entidade.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "salon_not_found")
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, notFound(err, "salon_not_found")
	}
	return &salon, nil
}

// --------------------------------------------------
// Service / Staff
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	salonID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ? AND active = true", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &service, nil
}

func (r *BookingGormRepository) GetStaff(
	ctx context.Context,
	salonID uuid.UUID,
	staffID uuid.UUID,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ? AND active = true", staffID, salonID).
		First(&staff).Error; err != nil {
		return nil, notFound(err, "staff_not_found")
	}
	return &staff, nil
}

// --------------------------------------------------
// Snapshot
// --------------------------------------------------

func (r *BookingGormRepository) LoadSnapshot(
	ctx context.Context,
	salonID uuid.UUID,
	staffID uuid.UUID,
	from time.Time,
	to time.Time,
) (*domain.Snapshot, error) {

	db := r.db.WithContext(ctx)

	var salonHours []models.SalonHours
	if err := db.
		Where("salon_id = ?", salonID).
		Order("day_of_week ASC").
		Find(&salonHours).Error; err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		SalonHours: domain.SalonRules(salonHours),
		StaffHours: []scheduling.StaffDayRule{},
		Bookings:   []scheduling.Booking{},
		TimeOff:    []scheduling.TimeOff{},
	}

	if staffID == uuid.Nil {
		return snap, nil
	}

	var staffHours []models.StaffHours
	if err := db.
		Where("salon_id = ? AND staff_id = ?", salonID, staffID).
		Find(&staffHours).Error; err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := db.
		Select("id", "staff_id", "service_id", "status", "appointment_start", "appointment_end").
		Where(
			"salon_id = ? AND staff_id = ? AND status IN ? AND appointment_start < ? AND appointment_end > ?",
			salonID,
			staffID,
			[]string{string(scheduling.StatusPending), string(scheduling.StatusConfirmed)},
			to,
			from,
		).
		Order("appointment_start ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	var timeOff []models.TimeOff
	if err := db.
		Where(
			"salon_id = ? AND staff_id = ? AND start_at < ? AND end_at > ?",
			salonID,
			staffID,
			to,
			from,
		).
		Find(&timeOff).Error; err != nil {
		return nil, err
	}

	snap.StaffHours = domain.StaffRules(staffHours)
	snap.Bookings = domain.Records(bookings)
	snap.TimeOff = domain.TimeOffRecords(timeOff)

	return snap, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	salonID uuid.UUID,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", bookingID, salonID).
		First(&b).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit("Staff", "Service").Create(b).Error
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit("Staff", "Service").Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	salonID uuid.UUID,
	staffID uuid.UUID,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Service").
		Where(
			"salon_id = ? AND appointment_start >= ? AND appointment_start < ?",
			salonID,
			from,
			to,
		)

	if staffID != uuid.Nil {
		q = q.Where("staff_id = ?", staffID)
	}

	var out []models.Booking
	if err := q.Order("appointment_start ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
