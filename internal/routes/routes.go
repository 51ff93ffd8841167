package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/salonbook/salon-api/internal/audit"
	"github.com/salonbook/salon-api/internal/cache"
	"github.com/salonbook/salon-api/internal/config"
	"github.com/salonbook/salon-api/internal/handlers"
	infraRepo "github.com/salonbook/salon-api/internal/infra/repository"
	"github.com/salonbook/salon-api/internal/middleware"
	"github.com/salonbook/salon-api/internal/notify"
	ucBooking "github.com/salonbook/salon-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	logger *zerolog.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	notifier := notify.New(rdb, "salon:bookings", logger)
	slotCache := cache.NewSlotCache(rdb, cfg.CacheTTL, logger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.SlotIntervalMinutes,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifier,
		auditDispatcher,
		cfg.SalonTimezone,
		cfg.MinAdvanceMinutes,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		notifier,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	customerHandler := handlers.NewCustomerHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listBookingsUC,
		slotCache,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		availabilityUC,
		createBookingUC,
		cancelBookingUC,
		slotCache,
		cfg.SalonTimezone,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers/:id/availability", publicHandler.Availability)
			publicAPI.POST("/barbers/:id/bookings", publicHandler.CreateBooking)
			publicAPI.PATCH("/bookings/:id/cancel", publicHandler.CancelBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/customers", customerHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/availability", availabilityHandler.GetWeekly)
			secured.PUT("/me/availability", availabilityHandler.UpdateWeekly)
			secured.GET("/me/availability/exceptions", availabilityHandler.ListExceptions)
			secured.POST("/me/availability/exceptions", availabilityHandler.CreateExceptionRange)
			secured.DELETE("/me/availability/exceptions", availabilityHandler.DeleteExceptions)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
