package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to scheduling.Status
		ok       bool
	}{
		{scheduling.StatusPending, scheduling.StatusConfirmed, true},
		{scheduling.StatusPending, scheduling.StatusCancelled, true},
		{scheduling.StatusPending, scheduling.StatusNoShow, true},
		{scheduling.StatusConfirmed, scheduling.StatusCancelled, true},
		{scheduling.StatusConfirmed, scheduling.StatusNoShow, true},
		{scheduling.StatusConfirmed, scheduling.StatusPending, false},
		{scheduling.StatusCancelled, scheduling.StatusConfirmed, false},
		{scheduling.StatusNoShow, scheduling.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		})
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	err := CanTransition(scheduling.StatusPending, scheduling.Status("done"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestChangeStatusStampsTimes(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(scheduling.StatusPending)}

	require.NoError(t, ChangeStatus(b, scheduling.StatusConfirmed, now))
	assert.Equal(t, "confirmed", b.Status)
	require.NotNil(t, b.ConfirmedAt)

	require.NoError(t, ChangeStatus(b, scheduling.StatusCancelled, now))
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)

	assert.Error(t, ChangeStatus(b, scheduling.StatusConfirmed, now))
	assert.Equal(t, "cancelled", b.Status)
}

func TestCanReschedule(t *testing.T) {
	assert.NoError(t, CanReschedule(scheduling.StatusPending))
	assert.NoError(t, CanReschedule(scheduling.StatusConfirmed))
	assert.Error(t, CanReschedule(scheduling.StatusNoShow))
}

func TestStaffRulesNullableFields(t *testing.T) {
	start := "09:00"
	rows := []models.StaffHours{{DayOfWeek: 2, StartTime: &start, IsOff: false}}

	got := StaffRules(rows)

	require.Len(t, got, 1)
	assert.Equal(t, "09:00", got[0].StartTime)
	assert.Equal(t, "", got[0].EndTime)
	assert.Equal(t, "", got[0].BreakStart)
}
