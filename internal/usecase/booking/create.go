package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID   uuid.UUID
	StaffID   uuid.UUID
	ServiceID uuid.UUID

	CustomerName  string
	CustomerPhone string

	Date  string
	Time  string
	Notes string

	// FromAdmin: criado pelo painel (nasce confirmado, sem antecedência mínima).
	FromAdmin bool
	ActorID   *uuid.UUID

	Now *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	guard scheduleGuard
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	locker lock.Locker,
	lockTTL time.Duration,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		guard: scheduleGuard{repo: repo, locker: locker, lockTTL: lockTTL},
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Salão
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, httperr.ErrBusiness("missing_customer_name")
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no fuso do salão
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(in.Date, in.Time, salon.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3️⃣ Antecedência mínima (só fluxo público)
	// --------------------------------------------------
	if !in.FromAdmin {
		now := timezone.NowIn(salon.Timezone)
		if in.Now != nil {
			now = *in.Now
		}
		if start.Before(now.Add(minAdvance(salon))) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// 4️⃣ Serviço e profissional
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, salon.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	if in.StaffID != uuid.Nil {
		if _, err := uc.repo.GetStaff(ctx, salon.ID, in.StaffID); err != nil {
			return nil, err
		}
	}

	b := &models.Booking{
		SalonID:          salon.ID,
		StaffID:          in.StaffID,
		ServiceID:        service.ID,
		CustomerName:     strings.TrimSpace(in.CustomerName),
		CustomerPhone:    strings.TrimSpace(in.CustomerPhone),
		AppointmentStart: start,
		AppointmentEnd:   end,
		Status:           string(domain.InitialStatus(in.FromAdmin)),
		Notes:            in.Notes,
	}

	// --------------------------------------------------
	// 5️⃣ Validação + gravação com a agenda travada
	// --------------------------------------------------
	d, err := uc.guard.commit(
		ctx,
		salon.ID,
		scheduling.Proposal{StaffID: in.StaffID, Start: start, End: end},
		func(ctx context.Context) error {
			return uc.repo.CreateBooking(ctx, b)
		},
	)
	if err != nil {
		if d.Reason == scheduling.ReasonOverlapsExistingBooking {
			uc.audit.Dispatch(audit.Event{
				SalonID: salon.ID,
				UserID:  in.ActorID,
				Action:  "booking_conflict",
				Entity:  "booking",
				Metadata: map[string]any{
					"staff_id": in.StaffID,
					"start":    start,
					"end":      end,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	metrics.IncBooking("created")
	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   in.ActorID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
