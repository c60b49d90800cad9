package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const lockRetry = 25 * time.Millisecond

// scheduleGuard valida uma proposta contra a agenda e grava, tudo com a agenda
// do profissional travada.
type scheduleGuard struct {
	repo    domain.Repository
	locker  lock.Locker
	lockTTL time.Duration
}

func (g scheduleGuard) commit(
	ctx context.Context,
	salonID uuid.UUID,
	p scheduling.Proposal,
	write func(ctx context.Context) error,
) (scheduling.Decision, error) {

	// sem profissional não há agenda para travar
	if p.StaffID == uuid.Nil {
		d := scheduling.Validate(p)
		metrics.IncValidation(result(d))
		return d, d.Err()
	}

	lockCtx, cancel := context.WithTimeout(ctx, g.lockTTL)
	defer cancel()

	release, err := lock.Acquire(lockCtx, g.locker, lock.StaffKey(p.StaffID), g.lockTTL, lockRetry)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return scheduling.Decision{}, httperr.ErrBusiness("schedule_busy")
		}
		return scheduling.Decision{}, err
	}
	defer release()

	from := scheduling.StartOfDay(p.Start)
	to := from.AddDate(0, 0, 1)
	if p.End.After(to) {
		to = p.End
	}

	snap, err := g.repo.LoadSnapshot(ctx, salonID, p.StaffID, from, to)
	if err != nil {
		return scheduling.Decision{}, err
	}

	p.SalonHours = snap.SalonHours
	p.StaffHours = snap.StaffHours
	p.Bookings = snap.Bookings
	p.TimeOff = snap.TimeOff

	d := scheduling.Validate(p)
	metrics.IncValidation(result(d))
	if !d.OK {
		return d, d.Err()
	}

	if err := write(ctx); err != nil {
		if httperr.IsExclusionConflict(err) {
			d = scheduling.Decision{Reason: scheduling.ReasonOverlapsExistingBooking}
			return d, d.Err()
		}
		return d, err
	}

	return d, nil
}

func result(d scheduling.Decision) string {
	if d.OK {
		return "ok"
	}
	return string(d.Reason)
}

// minAdvance nunca fica abaixo da antecedência mínima da grade.
func minAdvance(salon *models.Salon) time.Duration {
	d := time.Duration(salon.MinAdvanceMinutes) * time.Minute
	if d < scheduling.LeadTime {
		return scheduling.LeadTime
	}
	return d
}
