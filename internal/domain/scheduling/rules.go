package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// Busy indica se o agendamento ocupa a agenda do profissional.
// cancelled e no_show são transparentes para colisão.
func (s Status) Busy() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Rules
// ===============================

// SalonDayRule é o expediente padrão do salão para um dia da semana (0=domingo..6=sábado).
type SalonDayRule struct {
	DayOfWeek int
	OpenTime  string
	CloseTime string
	IsClosed  bool
}

// StaffDayRule sobrescreve o expediente do salão para um profissional.
// Campos vazios significam ausência; StartTime/EndTime ausentes herdam do salão.
type StaffDayRule struct {
	StaffID    uuid.UUID
	DayOfWeek  int
	StartTime  string
	EndTime    string
	IsOff      bool
	BreakStart string
	BreakEnd   string
}

type TimeOff struct {
	StaffID uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

func (t TimeOff) Interval() Interval {
	return Interval{Start: t.StartAt, End: t.EndAt}
}

type Booking struct {
	ID        uuid.UUID
	StaffID   uuid.UUID
	ServiceID uuid.UUID
	Status    Status
	Start     time.Time
	End       time.Time
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// ===============================
// Lookups
// ===============================

func FindSalonRule(rules []SalonDayRule, weekday time.Weekday) (SalonDayRule, bool) {
	for _, r := range rules {
		if r.DayOfWeek == int(weekday) {
			return r, true
		}
	}
	return SalonDayRule{}, false
}

// FindStaffRule nunca encontra nada para uuid.Nil (consulta sem filtro de profissional).
func FindStaffRule(rules []StaffDayRule, staffID uuid.UUID, weekday time.Weekday) (StaffDayRule, bool) {
	if staffID == uuid.Nil {
		return StaffDayRule{}, false
	}
	for _, r := range rules {
		if r.StaffID == staffID && r.DayOfWeek == int(weekday) {
			return r, true
		}
	}
	return StaffDayRule{}, false
}

// RulesFor separa as regras que valem para staffID na data informada.
func RulesFor(
	salon []SalonDayRule,
	staff []StaffDayRule,
	staffID uuid.UUID,
	date time.Time,
) (*SalonDayRule, *StaffDayRule) {

	var dayRule *SalonDayRule
	if r, ok := FindSalonRule(salon, date.Weekday()); ok {
		dayRule = &r
	}

	var staffRule *StaffDayRule
	if r, ok := FindStaffRule(staff, staffID, date.Weekday()); ok {
		staffRule = &r
	}

	return dayRule, staffRule
}
