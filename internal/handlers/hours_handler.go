package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type HoursHandler struct {
	db *gorm.DB
}

func NewHoursHandler(db *gorm.DB) *HoursHandler {
	return &HoursHandler{db: db}
}

// --------------------------------------------------
// Requests
// --------------------------------------------------

type SalonDayConfig struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

type SalonHoursUpdateRequest struct {
	Days []SalonDayConfig `json:"days" binding:"required,dive"`
}

// StaffDayConfig: start/end nulos herdam do salão; pausa nula = sem pausa.
type StaffDayConfig struct {
	DayOfWeek  int     `json:"day_of_week" binding:"min=0,max=6"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	IsOff      bool    `json:"is_off"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
}

type StaffHoursUpdateRequest struct {
	Days []StaffDayConfig `json:"days" binding:"required,dive"`
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (h *HoursHandler) GetSalon(c *gin.Context) {
	var hours []models.SalonHours
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", middleware.SalonID(c)).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_hours", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *HoursHandler) UpdateSalon(c *gin.Context) {
	salonID := middleware.SalonID(c)

	var req SalonHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := map[int]bool{}
	rows := make([]models.SalonHours, 0, len(req.Days))
	for _, d := range req.Days {
		if seen[d.DayOfWeek] {
			httperr.BadRequest(c, "duplicated_day", "Dia da semana repetido.")
			return
		}
		seen[d.DayOfWeek] = true

		rows = append(rows, models.SalonHours{
			SalonID:   salonID,
			DayOfWeek: d.DayOfWeek,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			IsClosed:  d.IsClosed,
		})
	}

	for _, rule := range domain.SalonRules(rows) {
		if err := validators.ValidateSalonDay(rule); err != nil {
			writeError(c, err, "invalid_hours", "Horário inválido.")
			return
		}
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", salonID).Delete(&models.SalonHours{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_hours", "Erro ao salvar horários.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

// staffOfSalon garante que :id pertence ao salão do token.
func (h *HoursHandler) staffOfSalon(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	salonID := middleware.SalonID(c)
	staffID, ok := uuidParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	var member models.Staff
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND salon_id = ?", staffID, salonID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "staff_not_found", "Profissional não encontrado.")
			return uuid.Nil, uuid.Nil, false
		}
		httperr.Internal(c, "failed_to_get_staff", "Erro ao buscar profissional.")
		return uuid.Nil, uuid.Nil, false
	}

	return salonID, staffID, true
}

func (h *HoursHandler) GetStaff(c *gin.Context) {
	salonID, staffID, ok := h.staffOfSalon(c)
	if !ok {
		return
	}

	var hours []models.StaffHours
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ? AND staff_id = ?", salonID, staffID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_hours", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *HoursHandler) UpdateStaff(c *gin.Context) {
	salonID, staffID, ok := h.staffOfSalon(c)
	if !ok {
		return
	}

	var req StaffHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := map[int]bool{}
	rows := make([]models.StaffHours, 0, len(req.Days))
	for _, d := range req.Days {
		if seen[d.DayOfWeek] {
			httperr.BadRequest(c, "duplicated_day", "Dia da semana repetido.")
			return
		}
		seen[d.DayOfWeek] = true

		rows = append(rows, models.StaffHours{
			SalonID:    salonID,
			StaffID:    staffID,
			DayOfWeek:  d.DayOfWeek,
			StartTime:  emptyToNil(d.StartTime),
			EndTime:    emptyToNil(d.EndTime),
			IsOff:      d.IsOff,
			BreakStart: emptyToNil(d.BreakStart),
			BreakEnd:   emptyToNil(d.BreakEnd),
		})
	}

	for _, rule := range domain.StaffRules(rows) {
		if err := validators.ValidateStaffDay(rule); err != nil {
			writeError(c, err, "invalid_hours", "Horário inválido.")
			return
		}
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("salon_id = ? AND staff_id = ?", salonID, staffID).
			Delete(&models.StaffHours{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_hours", "Erro ao salvar horários.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
