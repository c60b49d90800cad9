package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// PORTS
////////////////////////////////////////////////////////

type salonFinder interface {
	GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error)
}

type availabilityExecutor interface {
	Execute(ctx context.Context, in ucBooking.AvailabilityInput) (*ucBooking.AvailabilityResult, error)
}

type bookingCreator interface {
	Execute(ctx context.Context, in ucBooking.CreateBookingInput) (*models.Booking, error)
}

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	salons       salonFinder
	availability availabilityExecutor
	create       bookingCreator

	// allowClockOverride libera ?at= fora de produção.
	allowClockOverride bool
}

func NewPublicHandler(
	db *gorm.DB,
	salons salonFinder,
	availability availabilityExecutor,
	create bookingCreator,
	allowClockOverride bool,
) *PublicHandler {
	return &PublicHandler{
		db:                 db,
		salons:             salons,
		availability:       availability,
		create:             create,
		allowClockOverride: allowClockOverride,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	StaffID       uuid.UUID `json:"staff_id"`
	Date          string    `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string    `json:"time" binding:"required"` // HH:mm
	Notes         string    `json:"notes"`
}

func (h *PublicHandler) salon(c *gin.Context) (*models.Salon, bool) {
	salon, err := h.salons.GetSalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err, "failed_to_get_salon", "Erro ao buscar salão.")
		return nil, false
	}
	return salon, true
}

////////////////////////////////////////////////////////
// SERVICES + STAFF
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ? AND active = true", salon.ID)

	if category := strings.TrimSpace(strings.ToLower(c.Query("category"))); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	var staff []models.Staff
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ? AND active = true", salon.ID).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
		"staff":    staff,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	staffID, ok := optionalUUIDQuery(c, "staff_id")
	if !ok {
		return
	}

	salon, ok := h.salon(c)
	if !ok {
		return
	}

	out, err := h.availability.Execute(
		c.Request.Context(),
		ucBooking.AvailabilityInput{
			SalonID:   salon.ID,
			StaffID:   staffID,
			ServiceID: serviceID,
			Date:      dateStr,
			Now:       clockOverride(c, h.allowClockOverride, salon.Timezone),
		},
	)
	if err != nil {
		writeError(c, err, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	salon, ok := h.salon(c)
	if !ok {
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			SalonID:       salon.ID,
			StaffID:       req.StaffID,
			ServiceID:     req.ServiceID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
			Now:           clockOverride(c, h.allowClockOverride, salon.Timezone),
		},
	)
	if err != nil {
		writeError(c, err, "failed_to_create_booking", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, b)
}
