package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// RescheduleBookingInput cobre arrastar (Start), redimensionar (End),
// trocar profissional (StaffID) e trocar serviço (ServiceID) no calendário.
// Campos nulos mantêm o valor atual.
type RescheduleBookingInput struct {
	SalonID   uuid.UUID
	BookingID uuid.UUID

	StaffID   *uuid.UUID
	ServiceID *uuid.UUID
	Start     *time.Time
	End       *time.Time

	ActorID *uuid.UUID
}

type RescheduleBooking struct {
	repo  domain.Repository
	guard scheduleGuard
	audit *audit.Dispatcher
}

func NewRescheduleBooking(
	repo domain.Repository,
	locker lock.Locker,
	lockTTL time.Duration,
	audit *audit.Dispatcher,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:  repo,
		guard: scheduleGuard{repo: repo, locker: locker, lockTTL: lockTTL},
		audit: audit,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, salon.ID, in.BookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(scheduling.Status(b.Status)); err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	staffID := b.StaffID
	if in.StaffID != nil && *in.StaffID != b.StaffID {
		if _, err := uc.repo.GetStaff(ctx, salon.ID, *in.StaffID); err != nil {
			return nil, err
		}
		staffID = *in.StaffID
	}

	serviceID := b.ServiceID
	duration := b.AppointmentEnd.Sub(b.AppointmentStart)
	if in.ServiceID != nil && *in.ServiceID != b.ServiceID {
		service, err := uc.repo.GetService(ctx, salon.ID, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		serviceID = service.ID
		duration = time.Duration(service.DurationMinutes) * time.Minute
	}

	start := b.AppointmentStart.In(loc)
	if in.Start != nil {
		start = in.Start.In(loc)
	}

	end := start.Add(duration)
	if in.End != nil {
		end = in.End.In(loc)
	}

	previous := map[string]any{
		"staff_id": b.StaffID,
		"start":    b.AppointmentStart,
		"end":      b.AppointmentEnd,
	}

	_, err = uc.guard.commit(
		ctx,
		salon.ID,
		scheduling.Proposal{
			StaffID:          staffID,
			Start:            start,
			End:              end,
			ExcludeBookingID: b.ID,
		},
		func(ctx context.Context) error {
			b.StaffID = staffID
			b.ServiceID = serviceID
			b.AppointmentStart = start
			b.AppointmentEnd = end
			return uc.repo.UpdateBooking(ctx, b)
		},
	)
	if err != nil {
		return nil, err
	}

	metrics.IncBooking("rescheduled")
	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   in.ActorID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"from": previous,
			"to": map[string]any{
				"staff_id": staffID,
				"start":    start,
				"end":      end,
			},
		},
	})

	return b, nil
}
