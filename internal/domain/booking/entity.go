package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ChangeStatus(b *models.Booking, next scheduling.Status, now time.Time) error {
	if err := CanTransition(scheduling.Status(b.Status), next); err != nil {
		return err
	}

	b.Status = string(next)
	switch next {
	case scheduling.StatusConfirmed:
		b.ConfirmedAt = &now
	case scheduling.StatusCancelled:
		b.CancelledAt = &now
	}
	return nil
}
