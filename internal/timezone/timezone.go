package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

var defaultTimezone = DefaultTimezone

// SetDefault troca o fuso usado quando o salão não tem um válido.
func SetDefault(tz string) {
	if IsValid(tz) {
		defaultTimezone = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(defaultTimezone))
}

// NowIn é o único ponto que lê o relógio; o motor de agenda recebe "agora" como parâmetro.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// FromMillis converte um instante em epoch ms para o fuso do salão.
func FromMillis(ms int64, tz string) time.Time {
	return time.UnixMilli(ms).In(Location(tz))
}

func ParseDate(dateStr, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}

func ParseDateTime(dateStr, timeStr, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, Location(tz))
}
