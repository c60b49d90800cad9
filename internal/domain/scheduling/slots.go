package scheduling

import (
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	// GridStep é o passo fixo da grade de horários.
	GridStep = 15 * time.Minute
	// LeadTime é a antecedência mínima entre "agora" e o início de um horário.
	LeadTime = GridStep
)

type SlotQuery struct {
	Date time.Time

	// StaffID filtra Bookings e TimeOff; uuid.Nil considera todos.
	StaffID uuid.UUID

	DayRule   *SalonDayRule
	StaffRule *StaffDayRule

	DurationMinutes int

	Bookings []Booking
	TimeOff  []TimeOff

	Now time.Time
}

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (s Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// Slots percorre o expediente efetivo em passos de GridStep e entrega, em ordem
// crescente, cada horário livre com a duração do serviço. A sequência é finita e
// pode ser percorrida novamente.
func Slots(q SlotQuery) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		w, ok := q.window()
		if !ok {
			return
		}

		duration := time.Duration(q.DurationMinutes) * time.Minute
		if duration <= 0 {
			return
		}

		busy := q.busy()
		earliest := q.Now.Add(LeadTime)

		for s := w.Start; s.Before(w.End); s = s.Add(GridStep) {
			slot := Interval{Start: s, End: s.Add(duration)}

			// não cabe antes do fechamento; os próximos também não cabem
			if slot.End.After(w.End) {
				return
			}
			if s.Before(earliest) {
				continue
			}
			if w.InBreak(slot) {
				continue
			}
			if overlapsAny(slot, busy) {
				continue
			}

			if !yield(Slot{Start: slot.Start, End: slot.End}) {
				return
			}
		}
	}
}

func GenerateSlots(q SlotQuery) []Slot {
	out := slices.Collect(Slots(q))
	if out == nil {
		return []Slot{}
	}
	return out
}

// window intersecta o expediente do salão com o do profissional.
// Salão fechado (ou sem regra) e profissional de folga não geram horários.
func (q SlotQuery) window() (Window, bool) {
	if q.DayRule == nil {
		return Window{}, false
	}

	w, ok := salonWindow(*q.DayRule, q.Date)
	if !ok {
		return Window{}, false
	}

	if q.StaffRule != nil {
		sw, ok := staffWindow(*q.StaffRule, *q.DayRule, q.Date)
		if !ok {
			return Window{}, false
		}
		w.Start = later(w.Start, sw.Start)
		w.End = earlier(w.End, sw.End)
		w.Break = sw.Break
	}

	if !w.End.After(w.Start) {
		return Window{}, false
	}
	return w, true
}

func (q SlotQuery) busy() []Interval {
	out := make([]Interval, 0, len(q.Bookings)+len(q.TimeOff))

	for _, b := range q.Bookings {
		if !b.Status.Busy() {
			continue
		}
		if q.StaffID != uuid.Nil && b.StaffID != q.StaffID {
			continue
		}
		out = append(out, b.Interval())
	}

	for _, off := range q.TimeOff {
		if q.StaffID != uuid.Nil && off.StaffID != q.StaffID {
			continue
		}
		out = append(out, off.Interval())
	}

	return out
}
