package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

// Execute lista o dia do calendário; staffID = uuid.Nil traz todos os profissionais.
func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	staffID uuid.UUID,
	dateStr string,
) ([]dto.BookingListDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	date, err := timezone.ParseDate(dateStr, salon.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start := scheduling.StartOfDay(date)
	end := start.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		salon.ID,
		staffID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:               b.ID,
			StaffID:          b.StaffID,
			StaffName:        b.Staff.Name,
			ServiceID:        b.ServiceID,
			ServiceName:      b.Service.Name,
			CustomerName:     b.CustomerName,
			CustomerPhone:    b.CustomerPhone,
			AppointmentStart: b.AppointmentStart,
			AppointmentEnd:   b.AppointmentEnd,
			Status:           b.Status,
			Notes:            b.Notes,
		})
	}

	return out, nil
}
