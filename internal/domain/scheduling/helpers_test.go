package scheduling

import (
	"time"

	"github.com/google/uuid"
)

var salonTZ = time.FixedZone("BRT", -3*60*60)

// monday é 2026-03-02, uma segunda-feira.
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, salonTZ)

func at(hm string) time.Time {
	return At(monday, hm)
}

func weekSalonHours(open, close string) []SalonDayRule {
	rules := make([]SalonDayRule, 0, 7)
	for d := 0; d < 7; d++ {
		rules = append(rules, SalonDayRule{
			DayOfWeek: d,
			OpenTime:  open,
			CloseTime: close,
			IsClosed:  d == int(time.Sunday),
		})
	}
	return rules
}

func booking(staffID uuid.UUID, status Status, start, end string) Booking {
	return Booking{
		ID:      uuid.New(),
		StaffID: staffID,
		Status:  status,
		Start:   at(start),
		End:     at(end),
	}
}

func starts(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.Format("15:04"))
	}
	return out
}
