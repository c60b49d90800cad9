package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ChangeBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	bookingID uuid.UUID,
	next scheduling.Status,
	actorID *uuid.UUID,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, salon.ID, bookingID)
	if err != nil {
		return nil, err
	}

	previous := b.Status
	now := timezone.NowIn(salon.Timezone)
	if err := domain.ChangeStatus(b, next, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBooking(string(next))
	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   actorID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   b.Status,
		},
	})

	return b, nil
}
