package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type AvailabilityInput struct {
	SalonID   uuid.UUID
	StaffID   uuid.UUID
	ServiceID uuid.UUID
	Date      string // YYYY-MM-DD, no fuso do salão

	// Now substitui o relógio (clientes determinísticos / testes).
	Now *time.Time
}

type AvailabilityResult struct {
	Date  string            `json:"date"`
	Slots []scheduling.Slot `json:"slots"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	date, err := timezone.ParseDate(in.Date, salon.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	service, err := uc.repo.GetService(ctx, salon.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if in.StaffID != uuid.Nil {
		if _, err := uc.repo.GetStaff(ctx, salon.ID, in.StaffID); err != nil {
			return nil, err
		}
	}

	dayStart := scheduling.StartOfDay(date)
	snap, err := uc.repo.LoadSnapshot(ctx, salon.ID, in.StaffID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	if in.Now != nil {
		now = *in.Now
	}

	dayRule, staffRule := scheduling.RulesFor(snap.SalonHours, snap.StaffHours, in.StaffID, date)

	earliest := now.Add(minAdvance(salon))
	slots := make([]scheduling.Slot, 0)
	for s := range scheduling.Slots(scheduling.SlotQuery{
		Date:            date,
		StaffID:         in.StaffID,
		DayRule:         dayRule,
		StaffRule:       staffRule,
		DurationMinutes: service.DurationMinutes,
		Bookings:        snap.Bookings,
		TimeOff:         snap.TimeOff,
		Now:             now,
	}) {
		// antecedência do salão maior que a da grade
		if s.Start.Before(earliest) {
			continue
		}
		slots = append(slots, s)
	}

	metrics.AddSlotsGenerated(len(slots))

	return &AvailabilityResult{
		Date:  in.Date,
		Slots: slots,
	}, nil
}
