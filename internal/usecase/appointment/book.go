package appointment

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/joannaarruda/salao-ia-api/internal/audit"
	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/domain/medical"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/models"
	"github.com/joannaarruda/salao-ia-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID       string
	ProfessionalID string

	// ISO local do salão: "2006-01-02T15:04" (segundos opcionais)
	DateTime string

	Services models.ServiceList

	Notes         string
	UseAI         bool
	AIPreferences string

	WantsConsultation bool
	WantsStrandTest   bool
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache

	tz                string
	historyMaxAgeDays int
}

func NewBookAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	cache AvailabilityCache,
	tz string,
	historyMaxAgeDays int,
) *BookAppointment {
	return &BookAppointment{
		repo:              repo,
		audit:             auditD,
		cache:             cache,
		tz:                tz,
		historyMaxAgeDays: historyMaxAgeDays,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Serviços: lista não vazia, durações dentro do limite
	// --------------------------------------------------
	if len(in.Services) == 0 {
		return nil, httperr.ErrBusinessDetails(httperr.CodeInvalidSchedule, map[string]any{
			"reason": "empty_services",
		})
	}

	for _, s := range in.Services {
		d := s.DurationOrDefault()
		if d < models.MinServiceDurationMin || d > models.MaxServiceDurationMin {
			return nil, httperr.ErrBusinessDetails(httperr.CodeInvalidSchedule, map[string]any{
				"reason":       "invalid_duration",
				"service_type": s.Type,
			})
		}
	}

	// --------------------------------------------------
	// 2. Data/hora no timezone do salão, sempre no futuro
	// --------------------------------------------------
	start, err := parseLocalDateTime(in.DateTime, uc.tz)
	if err != nil {
		return nil, httperr.ErrBusinessDetails(httperr.CodeInvalidSchedule, map[string]any{
			"reason": "invalid_datetime",
		})
	}

	now := timezone.NowIn(uc.tz)
	if !start.After(now) {
		return nil, httperr.ErrBusinessDetails(httperr.CodeInvalidSchedule, map[string]any{
			"reason": "past_datetime",
		})
	}

	// --------------------------------------------------
	// 3. Profissional
	// --------------------------------------------------
	if _, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusinessDetails(httperr.CodeNotFound, map[string]any{
				"entity": "professional",
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Gate de elegibilidade (antes do conflito de horário)
	// --------------------------------------------------
	history, err := uc.repo.GetMedicalHistoryByClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	if err := medical.CheckEligibility(in.Services, history, now, uc.historyMaxAgeDays); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Conflito de horário no dia
	// --------------------------------------------------
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.ProfessionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	totalDuration := in.Services.TotalDurationMin()
	if w := domain.FindConflict(existing, start, totalDuration); w != nil {
		return nil, httperr.ErrBusinessDetails(httperr.CodeTimeConflict, map[string]any{
			"window": w.String(),
		})
	}

	// --------------------------------------------------
	// 6. Criação (o repositório refaz a checagem sob lock)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:          in.ClientID,
		ProfessionalID:    in.ProfessionalID,
		StartTime:         start,
		Services:          in.Services,
		Status:            string(domain.InitialStatus()),
		Notes:             in.Notes,
		UseAI:             in.UseAI,
		AIPreferences:     in.AIPreferences,
		WantsConsultation: in.WantsConsultation,
		WantsStrandTest:   in.WantsStrandTest,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Consulta automática (melhor esforço: nunca desfaz o booking)
	// --------------------------------------------------
	if in.WantsConsultation {
		uc.createConsultation(ctx, ap)
	}

	uc.cache.Invalidate(ctx, in.ProfessionalID, start.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *BookAppointment) createConsultation(ctx context.Context, ap *models.Appointment) {
	kinds := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		kinds = append(kinds, string(s.Type))
	}

	appointmentID := ap.ID
	consultation := &models.Consultation{
		ClientID:        ap.ClientID,
		ProfessionalID:  ap.ProfessionalID,
		AppointmentID:   &appointmentID,
		Objective:       strings.Join(kinds, ", "),
		ClientWishes:    ap.Notes,
		WantsStrandTest: ap.WantsStrandTest,
	}

	if err := uc.repo.CreateConsultation(ctx, consultation); err != nil {
		log.Println("consultation create failed:", err)

		uc.audit.Dispatch(audit.Event{
			UserID:   &ap.ClientID,
			Action:   "consultation_create_failed",
			Entity:   "appointment",
			EntityID: &appointmentID,
			Metadata: map[string]any{"error": err.Error()},
		})
	}
}

func parseLocalDateTime(value, tz string) (time.Time, error) {
	loc := timezone.Location(tz)

	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc); err == nil {
		return t, nil
	}

	return time.ParseInLocation("2006-01-02T15:04", value, loc)
}
