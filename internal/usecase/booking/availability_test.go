package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func slotStarts(slots []scheduling.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.Format("15:04"))
	}
	return out
}

func TestGetAvailabilitySkipsBusyStaff(t *testing.T) {
	repo := newFakeRepo()
	service := repo.addService(30)
	ana := repo.addStaff("Ana")
	repo.addBooking(ana.ID, scheduling.StatusConfirmed, local(monday, "10:00"), local(monday, "10:30"))
	repo.addBooking(ana.ID, scheduling.StatusCancelled, local(monday, "11:00"), local(monday, "11:30"))

	now := sundayNoon()
	out, err := NewGetAvailability(repo).Execute(context.Background(), AvailabilityInput{
		SalonID:   repo.salon.ID,
		StaffID:   ana.ID,
		ServiceID: service.ID,
		Date:      monday,
		Now:       &now,
	})
	require.NoError(t, err)

	starts := slotStarts(out.Slots)
	// 09:00..17:30 de 15 em 15 = 35; a reserva das 10:00 tira 09:45, 10:00 e 10:15
	assert.Len(t, starts, 32)
	assert.Equal(t, "09:00", starts[0])
	assert.Equal(t, "17:30", starts[len(starts)-1])
	assert.NotContains(t, starts, "10:00")
	assert.Contains(t, starts, "10:30")
	assert.Contains(t, starts, "11:00")
	assert.Equal(t, monday, out.Date)
}

func TestGetAvailabilityUsesSalonMinAdvance(t *testing.T) {
	repo := newFakeRepo()
	repo.salon.MinAdvanceMinutes = 60
	service := repo.addService(30)
	ana := repo.addStaff("Ana")

	now := local(monday, "09:00")
	out, err := NewGetAvailability(repo).Execute(context.Background(), AvailabilityInput{
		SalonID:   repo.salon.ID,
		StaffID:   ana.ID,
		ServiceID: service.ID,
		Date:      monday,
		Now:       &now,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Slots)
	assert.Equal(t, "10:00", out.Slots[0].Start.Format("15:04"))
}

func TestGetAvailabilityClosedDayIsEmptyNotNil(t *testing.T) {
	repo := newFakeRepo()
	service := repo.addService(30)

	now := sundayNoon()
	out, err := NewGetAvailability(repo).Execute(context.Background(), AvailabilityInput{
		SalonID:   repo.salon.ID,
		ServiceID: service.ID,
		Date:      "2026-03-08",
		Now:       &now,
	})
	require.NoError(t, err)
	assert.NotNil(t, out.Slots)
	assert.Empty(t, out.Slots)
}

func TestGetAvailabilityErrors(t *testing.T) {
	repo := newFakeRepo()
	service := repo.addService(30)
	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID: repo.salon.ID, ServiceID: service.ID, Date: "02/03/2026",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), AvailabilityInput{
		SalonID: repo.salon.ID, ServiceID: uuid.New(), Date: monday,
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	_, err = uc.Execute(context.Background(), AvailabilityInput{
		SalonID: repo.salon.ID, StaffID: uuid.New(), ServiceID: service.ID, Date: monday,
	})
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}
