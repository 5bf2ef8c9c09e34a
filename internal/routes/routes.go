package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/joannaarruda/salao-ia-api/internal/audit"
	"github.com/joannaarruda/salao-ia-api/internal/cache"
	"github.com/joannaarruda/salao-ia-api/internal/config"
	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/handlers"
	infraRepo "github.com/joannaarruda/salao-ia-api/internal/infra/repository"
	"github.com/joannaarruda/salao-ia-api/internal/middleware"
	ucAppointment "github.com/joannaarruda/salao-ia-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.NewAvailability(
		rdb,
		time.Duration(cfg.AvailabilityCacheTTLSec)*time.Second,
	)

	grid := domain.Grid{
		DayStart:    cfg.ScheduleDayStart,
		DayEnd:      cfg.ScheduleDayEnd,
		SlotMinutes: cfg.SlotMinutes,
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
		cfg.Timezone,
		cfg.MedicalHistoryMaxAgeDays,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
		availabilityCache,
		cfg.Timezone,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
		grid,
		cfg.Timezone,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, cfg.Timezone)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo, cfg.Timezone)
	listMyUC := ucAppointment.NewListMyAppointments(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		updateStatusUC,
		availabilityUC,
		listByDateUC,
		listByMonthUC,
		listMyUC,
		cfg.Timezone,
	)

	medicalHandler := handlers.NewMedicalHandler(db, auditDispatcher)
	strandTestHandler := handlers.NewStrandTestHandler(db, auditDispatcher)
	attendanceHandler := handlers.NewAttendanceHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PÚBLICO
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/professionals", professionalHandler.List)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/my", appointmentHandler.ListMy)
			secured.GET("/appointments/professional", appointmentHandler.ListByDate)
			secured.GET("/appointments/professional/month", appointmentHandler.ListByMonth)
			secured.GET("/appointments/available", appointmentHandler.Availability)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			// ------------------------------
			// FICHA TÉCNICA / HISTÓRICO
			// ------------------------------
			secured.POST("/medical/history", medicalHandler.UpsertHistory)
			secured.GET("/medical/history", medicalHandler.GetMyHistory)
			secured.GET("/medical/history/:clientID", medicalHandler.GetClientHistory)

			secured.POST("/medical/consultations", medicalHandler.CreateConsultation)
			secured.GET("/medical/consultations/client/:clientID", medicalHandler.ListClientConsultations)

			secured.POST("/strand-tests", strandTestHandler.Create)
			secured.GET("/strand-tests/client/:clientID", strandTestHandler.ListByClient)

			secured.POST("/attendance", attendanceHandler.Create)
			secured.GET("/attendance/client/:clientID", attendanceHandler.ListByClient)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
