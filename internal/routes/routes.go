package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

// Deps são os singletons montados no main.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger zerolog.Logger
	Locker lock.Locker
	Audit  *audit.Dispatcher

	// Ready responde /readyz; nil = sempre pronto.
	Ready func() error
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(d.Logger))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		d.Locker,
		d.Config.BookingLockTTL,
		d.Audit,
	)

	rescheduleBookingUC := ucBooking.NewRescheduleBooking(
		bookingRepo,
		d.Locker,
		d.Config.BookingLockTTL,
		d.Audit,
	)

	changeStatusUC := ucBooking.NewChangeBookingStatus(
		bookingRepo,
		d.Audit,
	)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(
		bookingRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)
	salonHandler := handlers.NewSalonHandler(d.DB)

	serviceHandler := handlers.NewServiceHandler(d.DB)
	staffHandler := handlers.NewStaffHandler(d.DB)
	hoursHandler := handlers.NewHoursHandler(d.DB)
	timeOffHandler := handlers.NewTimeOffHandler(d.DB)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		rescheduleBookingUC,
		changeStatusUC,
		listBookingsByDateUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	publicHandler := handlers.NewPublicHandler(
		d.DB,
		bookingRepo,
		availabilityUC,
		createBookingUC,
		!d.Config.IsProduction(),
	)

	// ======================================================
	// 🩺 OPERAÇÃO
	// ======================================================
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		if d.Ready != nil {
			if err := d.Ready(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/salon/hours", hoursHandler.GetSalon)
			secured.PUT("/me/salon/hours", hoursHandler.UpdateSalon)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)
			secured.PATCH("/me/staff/:id", staffHandler.Update)

			secured.GET("/me/staff/:id/hours", hoursHandler.GetStaff)
			secured.PUT("/me/staff/:id/hours", hoursHandler.UpdateStaff)

			secured.GET("/me/staff/:id/time-off", timeOffHandler.List)
			secured.POST("/me/staff/:id/time-off", timeOffHandler.Create)
			secured.DELETE("/me/staff/:id/time-off/:timeOffId", timeOffHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.PATCH("/me/bookings/:id", bookingHandler.Reschedule)
			secured.PATCH("/me/bookings/:id/status", bookingHandler.ChangeStatus)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
