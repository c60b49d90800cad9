package validators

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// O motor de agenda é tolerante a configuração ruim (hora malformada vira 00:00,
// janela invertida fica vazia). Quem barra configuração ruim é a escrita.

func ValidateSalonDay(r scheduling.SalonDayRule) error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return httperr.ErrBusiness("invalid_day_of_week")
	}
	if r.IsClosed {
		return nil
	}

	opening, ok1 := clock(r.OpenTime)
	closing, ok2 := clock(r.CloseTime)
	if !ok1 || !ok2 {
		return httperr.ErrBusiness("invalid_time_format")
	}
	if opening >= closing {
		return httperr.ErrBusiness("invalid_hours_range")
	}
	return nil
}

func ValidateStaffDay(r scheduling.StaffDayRule) error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return httperr.ErrBusiness("invalid_day_of_week")
	}
	if r.IsOff {
		return nil
	}

	start, okStart := optionalClock(r.StartTime)
	end, okEnd := optionalClock(r.EndTime)
	if !okStart || !okEnd {
		return httperr.ErrBusiness("invalid_time_format")
	}
	if r.StartTime != "" && r.EndTime != "" && start >= end {
		return httperr.ErrBusiness("invalid_hours_range")
	}

	// pausa: os dois ou nenhum
	if (r.BreakStart == "") != (r.BreakEnd == "") {
		return httperr.ErrBusiness("incomplete_break")
	}
	if r.BreakStart == "" {
		return nil
	}

	bs, ok1 := clock(r.BreakStart)
	be, ok2 := clock(r.BreakEnd)
	if !ok1 || !ok2 {
		return httperr.ErrBusiness("invalid_time_format")
	}
	if bs >= be {
		return httperr.ErrBusiness("invalid_break_range")
	}
	return nil
}

// clock devolve minutos desde a meia-noite.
func clock(hm string) (int, bool) {
	h, m, ok := scheduling.ParseClock(hm)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func optionalClock(hm string) (int, bool) {
	if hm == "" {
		return 0, true
	}
	return clock(hm)
}
