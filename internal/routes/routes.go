package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/atelierserenite/wellness-api/internal/audit"
	"github.com/atelierserenite/wellness-api/internal/booking"
	"github.com/atelierserenite/wellness-api/internal/cache"
	"github.com/atelierserenite/wellness-api/internal/config"
	domain "github.com/atelierserenite/wellness-api/internal/domain/appointment"
	"github.com/atelierserenite/wellness-api/internal/handlers"
	infraRepo "github.com/atelierserenite/wellness-api/internal/infra/repository"
	"github.com/atelierserenite/wellness-api/internal/middleware"
	"github.com/atelierserenite/wellness-api/internal/notify"
	ucAppointment "github.com/atelierserenite/wellness-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	repo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var sender notify.Sender = notify.NopSender{}
	if cfg.MailEnabled() {
		sender = notify.NewSMTPSender(cfg)
	}
	mailDispatcher := notify.NewDispatcher(sender)
	events := notify.NewEventPublisher(cfg.AMQPUrl)
	bookingNotifier := notify.NewBookingNotifier(mailDispatcher, events, cfg.AdminEmail)

	catalog := cache.NewCatalog(rdb)

	var sessions booking.Store = booking.NewMemoryStore()
	if rdb != nil {
		sessions = booking.NewRedisStore(rdb)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, auditDispatcher, bookingNotifier)
	listAppointmentsUC := ucAppointment.NewListAppointments(repo, cfg.Timezone)
	countAppointmentsUC := ucAppointment.NewCountAppointments(repo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(repo, auditDispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(repo, domain.DefaultHours(), cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, mailDispatcher)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, catalog)
	clientHandler := handlers.NewClientHandler(db, repo)
	activityHandler := handlers.NewActivityHandler(db)
	publicHandler := handlers.NewPublicHandler(repo, catalog, availabilityUC)
	bookingHandler := handlers.NewBookingHandler(sessions)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		countAppointmentsUC,
		updateAppointmentUC,
		repo,
	)

	// ======================================================
	// PUBLIC (storefront + wizard)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/services", publicHandler.ListServices)
		api.GET("/times", publicHandler.ListTimes)

		api.POST("/booking", bookingHandler.Start)
		api.GET("/booking/:id", bookingHandler.Get)
		api.POST("/booking/:id/next", bookingHandler.Next)
		api.POST("/booking/:id/prev", bookingHandler.Prev)
		api.POST("/booking/:id/select", bookingHandler.Select)
	}

	// Final wizard submission
	r.POST("/appointments/add", appointmentHandler.Add)

	// ======================================================
	// AUTH
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/verify/:token", authHandler.VerifyEmail)
	r.POST("/auth/forgot-password", authHandler.ForgotPassword)
	r.POST("/auth/reset-password", authHandler.ResetPassword)

	// ======================================================
	// PRIVATE
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)

		admin := secured.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			admin.POST("/appointments", appointmentHandler.List)
			admin.POST("/appointments/client/:id", appointmentHandler.ListForClient)
			admin.POST("/appointments/count", appointmentHandler.CountForDay)
			admin.POST("/appointments/count/:clientId", appointmentHandler.CountForWeek)
			admin.PATCH("/appointments/:id", appointmentHandler.Update)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			admin.GET("/clients", clientHandler.List)
			admin.GET("/clients/:id", clientHandler.Get)
			admin.POST("/clients", clientHandler.Create)
			admin.PATCH("/clients/:id", clientHandler.Update)
			admin.DELETE("/clients/:id", clientHandler.Delete)
			admin.PATCH("/clients/:id/preferences", clientHandler.UpdatePreferences)

			// ------------------------------
			// SERVICES
			// ------------------------------
			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/activity", activityHandler.List)
		}
	}
}
