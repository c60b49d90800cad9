package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindowSalonOnly(t *testing.T) {
	w, ok := ResolveWindow(weekSalonHours("10:00", "20:00"), nil, uuid.Nil, monday)

	require.True(t, ok)
	assert.Equal(t, at("10:00"), w.Start)
	assert.Equal(t, at("20:00"), w.End)
	assert.Nil(t, w.Break)
}

func TestResolveWindowClosedOrMissingSalonDay(t *testing.T) {
	sunday := monday.AddDate(0, 0, -1)

	_, ok := ResolveWindow(weekSalonHours("10:00", "20:00"), nil, uuid.Nil, sunday)
	assert.False(t, ok, "salão fechado")

	_, ok = ResolveWindow(nil, nil, uuid.New(), monday)
	assert.False(t, ok, "sem regra")
}

func TestResolveWindowStaffOverridePrecedence(t *testing.T) {
	staffID := uuid.New()
	staff := []StaffDayRule{{
		StaffID:    staffID,
		DayOfWeek:  int(time.Monday),
		StartTime:  "12:00",
		EndTime:    "18:00",
		BreakStart: "14:00",
		BreakEnd:   "14:30",
	}}

	w, ok := ResolveWindow(weekSalonHours("10:00", "20:00"), staff, staffID, monday)

	require.True(t, ok)
	assert.Equal(t, at("12:00"), w.Start)
	assert.Equal(t, at("18:00"), w.End)
	require.NotNil(t, w.Break)
	assert.Equal(t, at("14:00"), w.Break.Start)
	assert.Equal(t, at("14:30"), w.Break.End)
}

func TestResolveWindowStaffMissingBoundsFallBackToSalon(t *testing.T) {
	staffID := uuid.New()
	staff := []StaffDayRule{{StaffID: staffID, DayOfWeek: int(time.Monday), EndTime: "16:00"}}

	w, ok := ResolveWindow(weekSalonHours("10:00", "20:00"), staff, staffID, monday)

	require.True(t, ok)
	assert.Equal(t, at("10:00"), w.Start)
	assert.Equal(t, at("16:00"), w.End)
}

func TestResolveWindowStaffRuleIgnoresSalonClosed(t *testing.T) {
	staffID := uuid.New()
	salon := []SalonDayRule{{DayOfWeek: int(time.Monday), OpenTime: "10:00", CloseTime: "20:00", IsClosed: true}}
	staff := []StaffDayRule{{StaffID: staffID, DayOfWeek: int(time.Monday), StartTime: "11:00", EndTime: "15:00"}}

	w, ok := ResolveWindow(salon, staff, staffID, monday)

	require.True(t, ok)
	assert.Equal(t, at("11:00"), w.Start)
}

func TestResolveWindowStaffOffOrInverted(t *testing.T) {
	staffID := uuid.New()
	salon := weekSalonHours("10:00", "20:00")

	off := []StaffDayRule{{StaffID: staffID, DayOfWeek: int(time.Monday), IsOff: true}}
	_, ok := ResolveWindow(salon, off, staffID, monday)
	assert.False(t, ok)

	inverted := []StaffDayRule{{StaffID: staffID, DayOfWeek: int(time.Monday), StartTime: "18:00", EndTime: "09:00"}}
	_, ok = ResolveWindow(salon, inverted, staffID, monday)
	assert.False(t, ok)
}

func TestResolveWindowOtherStaffRuleNotApplied(t *testing.T) {
	staff := []StaffDayRule{{StaffID: uuid.New(), DayOfWeek: int(time.Monday), IsOff: true}}

	w, ok := ResolveWindow(weekSalonHours("10:00", "20:00"), staff, uuid.New(), monday)

	require.True(t, ok)
	assert.Equal(t, at("10:00"), w.Start)
}

func TestResolveWindowBreakNeedsBothBounds(t *testing.T) {
	staffID := uuid.New()
	staff := []StaffDayRule{{
		StaffID:    staffID,
		DayOfWeek:  int(time.Monday),
		StartTime:  "10:00",
		EndTime:    "18:00",
		BreakStart: "13:00",
	}}

	w, ok := ResolveWindow(nil, staff, staffID, monday)

	require.True(t, ok)
	assert.Nil(t, w.Break)
}
