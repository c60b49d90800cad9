package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	SalonName     string `json:"salon_name" binding:"required"`
	SalonSlug     string `json:"salon_slug" binding:"required"`
	SalonPhone    string `json:"salon_phone"`
	SalonAddress  string `json:"salon_address"`
	SalonTimezone string `json:"salon_timezone"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// defaultSalonHours: seg-sáb 09:00-18:00, domingo fechado.
func defaultSalonHours(salon *models.Salon) []models.SalonHours {
	out := make([]models.SalonHours, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		row := models.SalonHours{SalonID: salon.ID, DayOfWeek: int(d)}
		if d == time.Sunday {
			row.IsClosed = true
		} else {
			row.OpenTime = "09:00"
			row.CloseTime = "18:00"
		}
		out = append(out, row)
	}
	return out
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.SalonSlug))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	tz := h.config.DefaultTimezone
	if req.SalonTimezone != "" {
		tz = req.SalonTimezone
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	salon := models.Salon{
		Name:              strings.TrimSpace(req.SalonName),
		Slug:              slug,
		Phone:             req.SalonPhone,
		Address:           req.SalonAddress,
		Timezone:          tz,
		MinAdvanceMinutes: 15,
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "owner",
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Salon{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("slug_already_exists")
		}

		if err := tx.Where("email = ?", email).Model(&models.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("email_already_exists")
		}

		if err := tx.Create(&salon).Error; err != nil {
			return err
		}

		hours := defaultSalonHours(&salon)
		if err := tx.Create(&hours).Error; err != nil {
			return err
		}

		user.SalonID = salon.ID
		return tx.Omit("Salon").Create(&user).Error
	})
	if err != nil {
		if httperr.IsBusiness(err, "email_already_exists") {
			httperr.Conflict(c, "email_already_exists", "E-mail já cadastrado.")
			return
		}
		writeError(c, err, "failed_to_register", "Erro ao cadastrar salão.")
		return
	}

	token, err := middleware.IssueToken(h.config.JWTSecret, user.ID, salon.ID, user.Role, time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userView(&user),
		"salon": salon,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Salon").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	token, err := middleware.IssueToken(h.config.JWTSecret, user.ID, user.SalonID, user.Role, time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userView(&user),
		"salon": user.Salon,
		"token": token,
	})
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"name":     u.Name,
		"email":    u.Email,
		"phone":    u.Phone,
		"role":     u.Role,
		"salon_id": u.SalonID,
	}
}
