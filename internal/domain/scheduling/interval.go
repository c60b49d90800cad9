package scheduling

import "time"

// Interval é sempre semiaberto: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Valid() bool {
	return !i.Start.IsZero() && !i.End.IsZero() && i.End.After(i.Start)
}

// Overlaps: [a,b) intersecta [c,d) sse a < d && b > c.
// Intervalos que apenas se tocam não colidem.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func overlapsAny(iv Interval, others []Interval) bool {
	for _, o := range others {
		if iv.Overlaps(o) {
			return true
		}
	}
	return false
}
