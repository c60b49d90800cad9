package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// PORTS
// ======================================================

type bookingRescheduler interface {
	Execute(ctx context.Context, in ucBooking.RescheduleBookingInput) (*models.Booking, error)
}

type bookingStatusChanger interface {
	Execute(
		ctx context.Context,
		salonID uuid.UUID,
		bookingID uuid.UUID,
		next scheduling.Status,
		actorID *uuid.UUID,
	) (*models.Booking, error)
}

type bookingLister interface {
	Execute(
		ctx context.Context,
		salonID uuid.UUID,
		staffID uuid.UUID,
		date string,
	) ([]dto.BookingListDTO, error)
}

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       bookingCreator
	reschedule   bookingRescheduler
	changeStatus bookingStatusChanger
	listByDate   bookingLister
}

func NewBookingHandler(
	create bookingCreator,
	reschedule bookingRescheduler,
	changeStatus bookingStatusChanger,
	listByDate bookingLister,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		reschedule:   reschedule,
		changeStatus: changeStatus,
		listByDate:   listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone"`
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	StaffID       uuid.UUID `json:"staff_id"`
	Date          string    `json:"date" binding:"required"`
	Time          string    `json:"time" binding:"required"`
	Notes         string    `json:"notes"`
}

// RescheduleBookingRequest: arrastar/redimensionar no calendário.
// Campos omitidos mantêm o valor atual.
type RescheduleBookingRequest struct {
	StaffID   *uuid.UUID `json:"staff_id"`
	ServiceID *uuid.UUID `json:"service_id"`
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			SalonID:       middleware.SalonID(c),
			StaffID:       req.StaffID,
			ServiceID:     req.ServiceID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
			FromAdmin:     true,
			ActorID:       middleware.UserID(c),
		},
	)
	if err != nil {
		writeError(c, err, "failed_to_create_booking", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	staffID, ok := optionalUUIDQuery(c, "staff_id")
	if !ok {
		return
	}

	out, err := h.listByDate.Execute(
		c.Request.Context(),
		middleware.SalonID(c),
		staffID,
		dateStr,
	)
	if err != nil {
		writeError(c, err, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.StaffID == nil && req.ServiceID == nil && req.Start == nil && req.End == nil {
		httperr.BadRequest(c, "nothing_to_update", "Nada para alterar.")
		return
	}

	b, err := h.reschedule.Execute(
		c.Request.Context(),
		ucBooking.RescheduleBookingInput{
			SalonID:   middleware.SalonID(c),
			BookingID: id,
			StaffID:   req.StaffID,
			ServiceID: req.ServiceID,
			Start:     req.Start,
			End:       req.End,
			ActorID:   middleware.UserID(c),
		},
	)
	if err != nil {
		writeError(c, err, "failed_to_reschedule_booking", "Erro ao remarcar agendamento.")
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.changeStatus.Execute(
		c.Request.Context(),
		middleware.SalonID(c),
		id,
		scheduling.Status(req.Status),
		middleware.UserID(c),
	)
	if err != nil {
		writeError(c, err, "failed_to_change_status", "Erro ao alterar status.")
		return
	}

	c.JSON(http.StatusOK, b)
}
