package booking

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Conversões linha → registro do motor, feitas uma única vez na fronteira.

func SalonRules(rows []models.SalonHours) []scheduling.SalonDayRule {
	out := make([]scheduling.SalonDayRule, 0, len(rows))
	for _, r := range rows {
		out = append(out, scheduling.SalonDayRule{
			DayOfWeek: r.DayOfWeek,
			OpenTime:  r.OpenTime,
			CloseTime: r.CloseTime,
			IsClosed:  r.IsClosed,
		})
	}
	return out
}

func StaffRules(rows []models.StaffHours) []scheduling.StaffDayRule {
	out := make([]scheduling.StaffDayRule, 0, len(rows))
	for _, r := range rows {
		out = append(out, scheduling.StaffDayRule{
			StaffID:    r.StaffID,
			DayOfWeek:  r.DayOfWeek,
			StartTime:  deref(r.StartTime),
			EndTime:    deref(r.EndTime),
			IsOff:      r.IsOff,
			BreakStart: deref(r.BreakStart),
			BreakEnd:   deref(r.BreakEnd),
		})
	}
	return out
}

func TimeOffRecords(rows []models.TimeOff) []scheduling.TimeOff {
	out := make([]scheduling.TimeOff, 0, len(rows))
	for _, r := range rows {
		out = append(out, scheduling.TimeOff{
			StaffID: r.StaffID,
			StartAt: r.StartAt,
			EndAt:   r.EndAt,
		})
	}
	return out
}

func Record(b models.Booking) scheduling.Booking {
	return scheduling.Booking{
		ID:        b.ID,
		StaffID:   b.StaffID,
		ServiceID: b.ServiceID,
		Status:    scheduling.Status(b.Status),
		Start:     b.AppointmentStart,
		End:       b.AppointmentEnd,
	}
}

func Records(rows []models.Booking) []scheduling.Booking {
	out := make([]scheduling.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, Record(r))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
