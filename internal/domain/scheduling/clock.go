package scheduling

import (
	"strings"
	"time"
)

var clockLayouts = []string{"15:04", "15:04:05"}

// ParseClock lê um horário "HH:MM" (ou "HH:MM:SS", formato das colunas time do Postgres).
func ParseClock(hm string) (hour, minute int, ok bool) {
	hm = strings.TrimSpace(hm)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, hm); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}

// At compõe um horário de parede sobre o dia de date, no fuso de date.
// Valores inválidos caem em 00:00.
func At(date time.Time, hm string) time.Time {
	h, m, _ := ParseClock(hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		h, m, 0, 0,
		date.Location(),
	)
}

// StartOfDay devolve a meia-noite local de date.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
