package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Reason Codes
// ===============================

type Reason string

const (
	ReasonNoEmployeeSelected      Reason = "NO_EMPLOYEE_SELECTED"
	ReasonInvalidRange            Reason = "INVALID_RANGE"
	ReasonClosedDay               Reason = "CLOSED_DAY"
	ReasonOutsideWorkingHours     Reason = "OUTSIDE_WORKING_HOURS"
	ReasonInsideBreak             Reason = "INSIDE_BREAK"
	ReasonOverlapsExistingBooking Reason = "OVERLAPS_EXISTING_BOOKING"
	ReasonStaffUnavailable        Reason = "STAFF_UNAVAILABLE"
)

// Decision é o resultado da validação; Reason só vem preenchido quando OK=false.
type Decision struct {
	OK     bool   `json:"ok"`
	Reason Reason `json:"reason,omitempty"`
}

func accept() Decision {
	return Decision{OK: true}
}

func reject(r Reason) Decision {
	return Decision{OK: false, Reason: r}
}

// Err converte a recusa em erro de negócio com o próprio código do motivo.
func (d Decision) Err() error {
	if d.OK {
		return nil
	}
	return httperr.ErrBusiness(string(d.Reason))
}

// ===============================
// Validator
// ===============================

// Proposal é um agendamento novo ou editado, com o retrato da agenda no momento.
// ExcludeBookingID remove o próprio agendamento da checagem de colisão numa edição.
type Proposal struct {
	StaffID uuid.UUID
	Start   time.Time
	End     time.Time

	Bookings []Booking
	TimeOff  []TimeOff

	SalonHours []SalonDayRule
	StaffHours []StaffDayRule

	ExcludeBookingID uuid.UUID
}

// Validate aplica as regras na ordem abaixo; a primeira falha decide o motivo.
func Validate(p Proposal) Decision {
	if p.StaffID == uuid.Nil {
		return reject(ReasonNoEmployeeSelected)
	}

	requested := Interval{Start: p.Start, End: p.End}
	if !requested.Valid() {
		return reject(ReasonInvalidRange)
	}

	w, ok := ResolveWindow(p.SalonHours, p.StaffHours, p.StaffID, p.Start)
	if !ok {
		return reject(ReasonClosedDay)
	}

	if requested.Start.Before(w.Start) || requested.End.After(w.End) {
		return reject(ReasonOutsideWorkingHours)
	}

	if w.InBreak(requested) {
		return reject(ReasonInsideBreak)
	}

	for _, b := range p.Bookings {
		if b.StaffID != p.StaffID || !b.Status.Busy() {
			continue
		}
		if p.ExcludeBookingID != uuid.Nil && b.ID == p.ExcludeBookingID {
			continue
		}
		if requested.Overlaps(b.Interval()) {
			return reject(ReasonOverlapsExistingBooking)
		}
	}

	for _, off := range p.TimeOff {
		if off.StaffID != p.StaffID {
			continue
		}
		if requested.Overlaps(off.Interval()) {
			return reject(ReasonStaffUnavailable)
		}
	}

	return accept()
}
