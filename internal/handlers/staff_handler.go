package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type CreateStaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type UpdateStaffRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (h *StaffHandler) List(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", middleware.SalonID(c)).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	member := models.Staff{
		SalonID: middleware.SalonID(c),
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Active:  true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Erro ao cadastrar profissional.")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var member models.Staff
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND salon_id = ?", id, middleware.SalonID(c)).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "staff_not_found", "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "Erro ao buscar profissional.")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		member.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Erro ao salvar profissional.")
		return
	}

	c.JSON(http.StatusOK, member)
}
