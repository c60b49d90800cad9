package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Window é o expediente efetivo de um profissional numa data, em hora local.
type Window struct {
	Start time.Time
	End   time.Time
	Break *Interval
}

func (w Window) Interval() Interval {
	return Interval{Start: w.Start, End: w.End}
}

// InBreak reporta se iv intersecta a pausa. Pausa invertida ou vazia não bloqueia nada.
func (w Window) InBreak(iv Interval) bool {
	return w.Break != nil && w.Break.Valid() && iv.Overlaps(*w.Break)
}

// ResolveWindow resolve o expediente de staffID em date.
//
// Existindo regra do profissional para o dia, só ela é usada (com fallback para
// open/close do salão nos limites ausentes). Sem regra do profissional, vale a
// regra do salão, sem pausa. ok=false significa dia fechado.
func ResolveWindow(
	salon []SalonDayRule,
	staff []StaffDayRule,
	staffID uuid.UUID,
	date time.Time,
) (Window, bool) {

	salonRule, hasSalonRule := FindSalonRule(salon, date.Weekday())

	if staffRule, ok := FindStaffRule(staff, staffID, date.Weekday()); ok {
		return staffWindow(staffRule, salonRule, date)
	}

	if !hasSalonRule {
		return Window{}, false
	}
	return salonWindow(salonRule, date)
}

func salonWindow(rule SalonDayRule, date time.Time) (Window, bool) {
	if rule.IsClosed {
		return Window{}, false
	}

	w := Window{
		Start: At(date, rule.OpenTime),
		End:   At(date, rule.CloseTime),
	}
	if !w.End.After(w.Start) {
		return Window{}, false
	}
	return w, true
}

func staffWindow(rule StaffDayRule, salon SalonDayRule, date time.Time) (Window, bool) {
	if rule.IsOff {
		return Window{}, false
	}

	w := Window{
		Start: At(date, firstNonEmpty(rule.StartTime, salon.OpenTime)),
		End:   At(date, firstNonEmpty(rule.EndTime, salon.CloseTime)),
	}
	if !w.End.After(w.Start) {
		return Window{}, false
	}

	if rule.BreakStart != "" && rule.BreakEnd != "" {
		w.Break = &Interval{
			Start: At(date, rule.BreakStart),
			End:   At(date, rule.BreakEnd),
		}
	}

	return w, true
}
