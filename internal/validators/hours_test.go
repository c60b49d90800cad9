package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func code(err error) string {
	c, _ := httperr.Code(err)
	return c
}

func TestValidateSalonDay(t *testing.T) {
	tests := []struct {
		name string
		rule scheduling.SalonDayRule
		want string
	}{
		{"ok", scheduling.SalonDayRule{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"}, ""},
		{"fechado ignora horas", scheduling.SalonDayRule{DayOfWeek: 0, IsClosed: true}, ""},
		{"dia fora", scheduling.SalonDayRule{DayOfWeek: 7, OpenTime: "09:00", CloseTime: "18:00"}, "invalid_day_of_week"},
		{"malformado", scheduling.SalonDayRule{DayOfWeek: 1, OpenTime: "9h", CloseTime: "18:00"}, "invalid_time_format"},
		{"invertido", scheduling.SalonDayRule{DayOfWeek: 1, OpenTime: "18:00", CloseTime: "09:00"}, "invalid_hours_range"},
		{"vazio", scheduling.SalonDayRule{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "09:00"}, "invalid_hours_range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, code(ValidateSalonDay(tt.rule)))
		})
	}
}

func TestValidateStaffDay(t *testing.T) {
	tests := []struct {
		name string
		rule scheduling.StaffDayRule
		want string
	}{
		{"herda do salão", scheduling.StaffDayRule{DayOfWeek: 1}, ""},
		{"com pausa", scheduling.StaffDayRule{DayOfWeek: 1, StartTime: "10:00", EndTime: "19:00", BreakStart: "12:00", BreakEnd: "13:00"}, ""},
		{"folga ignora horas", scheduling.StaffDayRule{DayOfWeek: 1, IsOff: true, StartTime: "x"}, ""},
		{"invertido", scheduling.StaffDayRule{DayOfWeek: 1, StartTime: "19:00", EndTime: "10:00"}, "invalid_hours_range"},
		{"pausa incompleta", scheduling.StaffDayRule{DayOfWeek: 1, BreakStart: "12:00"}, "incomplete_break"},
		{"pausa invertida", scheduling.StaffDayRule{DayOfWeek: 1, BreakStart: "13:00", BreakEnd: "12:00"}, "invalid_break_range"},
		{"malformado", scheduling.StaffDayRule{DayOfWeek: 1, EndTime: "25:00"}, "invalid_time_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, code(ValidateStaffDay(tt.rule)))
		})
	}
}
