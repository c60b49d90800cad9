package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// TimeOffHandler: folgas/ausências pontuais de um profissional.
// Reaproveita a checagem de posse de HoursHandler.
type TimeOffHandler struct {
	db    *gorm.DB
	hours *HoursHandler
}

func NewTimeOffHandler(db *gorm.DB) *TimeOffHandler {
	return &TimeOffHandler{db: db, hours: NewHoursHandler(db)}
}

type CreateTimeOffRequest struct {
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Reason  string    `json:"reason"`
}

func (h *TimeOffHandler) List(c *gin.Context) {
	salonID, staffID, ok := h.hours.staffOfSalon(c)
	if !ok {
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ? AND staff_id = ?", salonID, staffID)

	// por padrão só as que ainda não terminaram
	if c.Query("all") != "true" {
		q = q.Where("end_at > ?", time.Now())
	}

	var out []models.TimeOff
	if err := q.Order("start_at ASC").Find(&out).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_off", "Erro ao listar folgas.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *TimeOffHandler) Create(c *gin.Context) {
	salonID, staffID, ok := h.hours.staffOfSalon(c)
	if !ok {
		return
	}

	var req CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !req.StartAt.Before(req.EndAt) {
		httperr.BadRequest(c, "invalid_time_off_range", "Início da folga deve ser antes do fim.")
		return
	}

	row := models.TimeOff{
		SalonID: salonID,
		StaffID: staffID,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
		Reason:  req.Reason,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&row).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_off", "Erro ao registrar folga.")
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	salonID, staffID, ok := h.hours.staffOfSalon(c)
	if !ok {
		return
	}

	timeOffID, ok := uuidParam(c, "timeOffId")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND salon_id = ? AND staff_id = ?", timeOffID, salonID, staffID).
		Delete(&models.TimeOff{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_time_off", "Erro ao remover folga.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "time_off_not_found", "Folga não encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}
