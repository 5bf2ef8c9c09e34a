package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joannaarruda/salao-ia-api/internal/audit"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/httpresp"
	"github.com/joannaarruda/salao-ia-api/internal/middleware"
	"github.com/joannaarruda/salao-ia-api/internal/models"
)

type AttendanceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAttendanceHandler(db *gorm.DB, auditD *audit.Dispatcher) *AttendanceHandler {
	return &AttendanceHandler{db: db, audit: auditD}
}

type CreateAttendanceRequest struct {
	AppointmentID     string   `json:"appointment_id" binding:"required"`
	ProductsUsed      []string `json:"products_used"`
	TechniquesApplied []string `json:"techniques_applied"`
	ProcessingTimeMin *int     `json:"processing_time_min"`
	TechnicalNotes    string   `json:"technical_notes"`

	Satisfaction       *int   `json:"satisfaction"`
	AllergicReaction   bool   `json:"allergic_reaction"`
	ReactionDetails    string `json:"reaction_details"`
	NextRecommendation string `json:"next_recommendation"`
}

// ============================================================
// POST /api/attendance — profissional registra a ficha do atendimento
// ============================================================
func (h *AttendanceHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleProfessional {
		httperr.Forbidden(c, "forbidden", "Apenas profissionais.")
		return
	}

	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Satisfaction != nil && (*req.Satisfaction < 1 || *req.Satisfaction > 5) {
		httperr.BadRequest(c, "invalid_satisfaction", "Satisfação deve estar entre 1 e 5.")
		return
	}

	// 1. Busca o agendamento para validar dono e estado
	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", req.AppointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_appointment", "Erro ao buscar agendamento.")
		return
	}

	if ap.ProfessionalID != professionalID {
		httperr.Forbidden(c, "forbidden", "Agendamento pertence a outro profissional.")
		return
	}

	// 2. Cria a ficha vinculada ao agendamento
	record := models.AttendanceRecord{
		AppointmentID:      ap.ID,
		ClientID:           ap.ClientID,
		ProfessionalID:     professionalID,
		ProductsUsed:       req.ProductsUsed,
		TechniquesApplied:  req.TechniquesApplied,
		ProcessingTimeMin:  req.ProcessingTimeMin,
		TechnicalNotes:     req.TechnicalNotes,
		Satisfaction:       req.Satisfaction,
		AllergicReaction:   req.AllergicReaction,
		ReactionDetails:    req.ReactionDetails,
		NextRecommendation: req.NextRecommendation,
	}

	if err := h.db.Create(&record).Error; err != nil {
		httperr.Internal(c, "failed_to_create_attendance", "Erro ao registrar ficha de atendimento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &professionalID,
		Action:   "attendance_created",
		Entity:   "attendance_record",
		EntityID: &record.ID,
	})

	httpresp.Created(c, record)
}

// GET /api/attendance/client/:clientID
func (h *AttendanceHandler) ListByClient(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)
	clientID := c.Param("clientID")

	if role != models.RoleProfessional && role != models.RoleAdmin && userID != clientID {
		httperr.Forbidden(c, "forbidden", "Sem permissão.")
		return
	}

	var records []models.AttendanceRecord
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_attendance", "Erro ao listar fichas de atendimento.")
		return
	}

	httpresp.List(c, records)
}
