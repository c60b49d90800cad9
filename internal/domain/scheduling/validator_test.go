package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func staffWithBreak(staffID uuid.UUID) []StaffDayRule {
	return []StaffDayRule{{
		StaffID:    staffID,
		DayOfWeek:  int(time.Monday),
		StartTime:  "10:00",
		EndTime:    "18:00",
		BreakStart: "13:00",
		BreakEnd:   "14:00",
	}}
}

func proposal(staffID uuid.UUID, start, end string) Proposal {
	return Proposal{
		StaffID:    staffID,
		Start:      at(start),
		End:        at(end),
		SalonHours: weekSalonHours("10:00", "20:00"),
		StaffHours: staffWithBreak(staffID),
	}
}

func TestValidateReasons(t *testing.T) {
	staffID := uuid.New()

	tests := []struct {
		name   string
		mutate func(p *Proposal)
		want   Reason
	}{
		{"missing employee", func(p *Proposal) { p.StaffID = uuid.Nil }, ReasonNoEmployeeSelected},
		{"zero start", func(p *Proposal) { p.Start = time.Time{} }, ReasonInvalidRange},
		{"end equals start", func(p *Proposal) { p.End = p.Start }, ReasonInvalidRange},
		{"end before start", func(p *Proposal) { p.Start, p.End = p.End, p.Start }, ReasonInvalidRange},
		{"staff off", func(p *Proposal) { p.StaffHours[0].IsOff = true }, ReasonClosedDay},
		{"salon closed without staff rule", func(p *Proposal) {
			p.StaffHours = nil
			p.Start, p.End = p.Start.AddDate(0, 0, -1), p.End.AddDate(0, 0, -1)
		}, ReasonClosedDay},
		{"before opening", func(p *Proposal) { p.Start = at("09:45") }, ReasonOutsideWorkingHours},
		{"after staff end", func(p *Proposal) { p.Start, p.End = at("17:45"), at("18:15") }, ReasonOutsideWorkingHours},
		{"inside break", func(p *Proposal) { p.Start, p.End = at("13:15"), at("13:45") }, ReasonInsideBreak},
		{"overlaps booking", func(p *Proposal) {
			p.Bookings = []Booking{booking(staffID, StatusPending, "11:00", "11:30")}
		}, ReasonOverlapsExistingBooking},
		{"time off", func(p *Proposal) {
			p.TimeOff = []TimeOff{{StaffID: staffID, StartAt: at("10:45"), EndAt: at("12:00")}}
		}, ReasonStaffUnavailable},
		{"booking wins over time off", func(p *Proposal) {
			p.Bookings = []Booking{booking(staffID, StatusConfirmed, "11:00", "11:30")}
			p.TimeOff = []TimeOff{{StaffID: staffID, StartAt: at("10:45"), EndAt: at("12:00")}}
		}, ReasonOverlapsExistingBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := proposal(staffID, "11:00", "11:30")
			tt.mutate(&p)

			got := Validate(p)

			assert.False(t, got.OK)
			assert.Equal(t, tt.want, got.Reason)
			assert.True(t, httperr.IsBusiness(got.Err(), string(tt.want)))
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	staffID := uuid.New()
	other := uuid.New()

	p := proposal(staffID, "11:00", "11:30")
	p.Bookings = []Booking{
		booking(staffID, StatusCancelled, "11:00", "11:30"),
		booking(staffID, StatusNoShow, "11:00", "11:30"),
		booking(other, StatusConfirmed, "11:00", "11:30"),
		booking(staffID, StatusConfirmed, "10:30", "11:00"),
		booking(staffID, StatusConfirmed, "11:30", "12:00"),
	}
	p.TimeOff = []TimeOff{{StaffID: other, StartAt: at("10:00"), EndAt: at("18:00")}}

	got := Validate(p)

	assert.Equal(t, Decision{OK: true}, got)
	assert.NoError(t, got.Err())
}

func TestValidateBreakRejection(t *testing.T) {
	staffID := uuid.New()

	got := Validate(proposal(staffID, "12:45", "13:30"))

	assert.Equal(t, Decision{OK: false, Reason: ReasonInsideBreak}, got)
}

func TestValidateBreakEdgesTouchOnly(t *testing.T) {
	staffID := uuid.New()

	assert.True(t, Validate(proposal(staffID, "12:30", "13:00")).OK)
	assert.True(t, Validate(proposal(staffID, "14:00", "14:30")).OK)
}

func TestValidateEditExclusion(t *testing.T) {
	staffID := uuid.New()
	x := booking(staffID, StatusConfirmed, "15:00", "15:30")

	p := proposal(staffID, "15:00", "15:30")
	p.Bookings = []Booking{x}

	assert.Equal(t, Decision{OK: false, Reason: ReasonOverlapsExistingBooking}, Validate(p))

	p.ExcludeBookingID = x.ID
	assert.Equal(t, Decision{OK: true}, Validate(p))
}

func TestValidateSalonWindowWithoutStaffRule(t *testing.T) {
	staffID := uuid.New()
	p := proposal(staffID, "19:00", "20:00")
	p.StaffHours = nil

	assert.True(t, Validate(p).OK)

	p.End = at("20:15")
	assert.Equal(t, ReasonOutsideWorkingHours, Validate(p).Reason)
}

// Todo horário oferecido pelo gerador precisa ser aceito pelo validador
// com o mesmo retrato da agenda.
func TestGeneratorValidatorConsistency(t *testing.T) {
	staffID := uuid.New()
	other := uuid.New()

	salon := weekSalonHours("09:00", "19:00")
	staff := []StaffDayRule{{
		StaffID:    staffID,
		DayOfWeek:  int(time.Monday),
		StartTime:  "08:00",
		BreakStart: "12:10",
		BreakEnd:   "13:05",
	}}
	bookings := []Booking{
		booking(staffID, StatusConfirmed, "09:30", "10:15"),
		booking(staffID, StatusPending, "15:00", "15:40"),
		booking(staffID, StatusCancelled, "16:00", "17:00"),
		booking(other, StatusConfirmed, "10:30", "11:30"),
	}
	timeOff := []TimeOff{{StaffID: staffID, StartAt: at("17:20"), EndAt: at("18:00")}}

	for _, duration := range []int{15, 30, 45, 50, 60, 90} {
		dayRule, staffRule := RulesFor(salon, staff, staffID, monday)
		slots := GenerateSlots(SlotQuery{
			Date:            monday,
			StaffID:         staffID,
			DayRule:         dayRule,
			StaffRule:       staffRule,
			DurationMinutes: duration,
			Bookings:        bookings,
			TimeOff:         timeOff,
			Now:             at("08:00"),
		})
		require.NotEmpty(t, slots, "duração %d", duration)

		for _, s := range slots {
			d := Validate(Proposal{
				StaffID:    staffID,
				Start:      s.Start,
				End:        s.End,
				Bookings:   bookings,
				TimeOff:    timeOff,
				SalonHours: salon,
				StaffHours: staff,
			})
			assert.True(t, d.OK, "duração %d, slot %s: %s", duration, s.Start.Format("15:04"), d.Reason)
		}
	}
}
