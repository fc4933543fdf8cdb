package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/urbanbarber/api/internal/audit"
	"github.com/urbanbarber/api/internal/cache"
	"github.com/urbanbarber/api/internal/config"
	"github.com/urbanbarber/api/internal/handlers"
	infraRepo "github.com/urbanbarber/api/internal/infra/repository"
	"github.com/urbanbarber/api/internal/middleware"
	"github.com/urbanbarber/api/internal/token"
	ucAppointment "github.com/urbanbarber/api/internal/usecase/appointment"
	ucAuth "github.com/urbanbarber/api/internal/usecase/auth"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	identityRepo := infraRepo.NewIdentityGormRepository(db)

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	catalogCache := cache.NewCatalog(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(identityRepo, auditDispatcher)
	loginUC := ucAuth.NewLogin(identityRepo, issuer, auditDispatcher)
	profileUC := ucAuth.NewGetProfile(identityRepo)

	createAppointmentUC := ucAppointment.NewCreate(appointmentRepo, auditDispatcher, cfg.Timezone)
	listAppointmentsUC := ucAppointment.NewList(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGet(appointmentRepo)
	deleteAppointmentUC := ucAppointment.NewDelete(appointmentRepo, auditDispatcher)
	markPaidUC := ucAppointment.NewMarkPaid(appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, profileUC)
	barberHandler := handlers.NewBarberHandler(db, catalogCache)
	serviceHandler := handlers.NewServiceHandler(db, catalogCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		deleteAppointmentUC,
		markPaidUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/profile", middleware.RequireAuth(issuer), authHandler.Profile)

		// ------------------------------
		// CATALOG (public)
		// ------------------------------
		api.GET("/barberos", barberHandler.List)
		api.GET("/barberos/:id", barberHandler.Get)
		api.GET("/servicios", serviceHandler.List)
		api.GET("/servicios/:id", serviceHandler.Get)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------

		// creation stays open to walk-ins; a token, when present, binds
		// the booking to its subject
		api.POST("/citas", middleware.OptionalAuth(issuer), appointmentHandler.Create)

		secured := api.Group("/citas")
		secured.Use(middleware.RequireAuth(issuer))
		{
			secured.GET("", appointmentHandler.List)
			secured.GET("/:id", appointmentHandler.Get)
			secured.DELETE("/:id", appointmentHandler.Delete)
			secured.PUT("/:id/pagar", appointmentHandler.MarkPaid)
		}
	}
}
