package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joannaarruda/salao-ia-api/internal/audit"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/httpresp"
	"github.com/joannaarruda/salao-ia-api/internal/middleware"
	"github.com/joannaarruda/salao-ia-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type MedicalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMedicalHandler(db *gorm.DB, auditD *audit.Dispatcher) *MedicalHandler {
	return &MedicalHandler{db: db, audit: auditD}
}

// ======================================================
// REQUESTS
// ======================================================

type MedicalHistoryRequest struct {
	Allergies   []string `json:"allergies"`
	Medications []string `json:"medications"`

	RecentChemicalTreatment bool     `json:"recent_chemical_treatment"`
	PreviousTreatments      []string `json:"previous_treatments"`
	FrequentPoolSwimming    bool     `json:"frequent_pool_swimming"`

	Notes string `json:"notes"`
}

type ConsultationRequest struct {
	ClientID         string `json:"client_id" binding:"required"`
	AppointmentID    string `json:"appointment_id"`
	Objective        string `json:"objective" binding:"required"`
	CurrentHairState string `json:"current_hair_state"`
	ClientWishes     string `json:"client_wishes"`
	Summary          string `json:"summary"`
	Recommendations  string `json:"recommendations"`
	WantsStrandTest  bool   `json:"wants_strand_test"`
}

// ======================================================
// HISTÓRICO MÉDICO
// ======================================================

// UpsertHistory cria ou atualiza a ficha do próprio cliente. Atualizar
// renova o UpdatedAt, que é o que destrava os serviços químicos.
func (h *MedicalHandler) UpsertHistory(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	var req MedicalHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var history models.MedicalHistory
	err := h.db.Where("client_id = ?", clientID).First(&history).Error

	isNew := err == gorm.ErrRecordNotFound
	if err != nil && !isNew {
		httperr.Internal(c, "failed_to_load_history", "Erro ao buscar histórico.")
		return
	}

	history.ClientID = clientID
	history.Allergies = req.Allergies
	history.Medications = req.Medications
	history.RecentChemicalTreatment = req.RecentChemicalTreatment
	history.PreviousTreatments = req.PreviousTreatments
	history.FrequentPoolSwimming = req.FrequentPoolSwimming
	history.Notes = req.Notes

	if err := h.db.Save(&history).Error; err != nil {
		httperr.Internal(c, "failed_to_save_history", "Erro ao salvar histórico.")
		return
	}

	action := "medical_history_updated"
	if isNew {
		action = "medical_history_created"
	}
	h.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   action,
		Entity:   "medical_history",
		EntityID: &history.ID,
	})

	if isNew {
		httpresp.Created(c, history)
		return
	}
	httpresp.OK(c, history)
}

func (h *MedicalHandler) GetMyHistory(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)
	h.getHistory(c, clientID)
}

// GetClientHistory: profissional/admin consultando a ficha de um cliente.
func (h *MedicalHandler) GetClientHistory(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != models.RoleProfessional && role != models.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "Sem permissão.")
		return
	}

	h.getHistory(c, c.Param("clientID"))
}

func (h *MedicalHandler) getHistory(c *gin.Context, clientID string) {
	var history models.MedicalHistory
	if err := h.db.Where("client_id = ?", clientID).First(&history).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "history_not_found", "Histórico médico não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_history", "Erro ao buscar histórico.")
		return
	}

	httpresp.OK(c, history)
}

// ======================================================
// CONSULTAS
// ======================================================

func (h *MedicalHandler) CreateConsultation(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleProfessional {
		httperr.Forbidden(c, "forbidden", "Apenas profissionais.")
		return
	}

	var req ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	consultation := models.Consultation{
		ClientID:         req.ClientID,
		ProfessionalID:   professionalID,
		Objective:        req.Objective,
		CurrentHairState: req.CurrentHairState,
		ClientWishes:     req.ClientWishes,
		Summary:          req.Summary,
		Recommendations:  req.Recommendations,
		WantsStrandTest:  req.WantsStrandTest,
	}
	if req.AppointmentID != "" {
		appointmentID := req.AppointmentID
		consultation.AppointmentID = &appointmentID
	}

	if err := h.db.Create(&consultation).Error; err != nil {
		httperr.Internal(c, "failed_to_create_consultation", "Erro ao criar consulta.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &professionalID,
		Action:   "consultation_created",
		Entity:   "consultation",
		EntityID: &consultation.ID,
	})

	httpresp.Created(c, consultation)
}

func (h *MedicalHandler) ListClientConsultations(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)
	clientID := c.Param("clientID")

	// profissional/admin, ou o próprio cliente
	if role != models.RoleProfessional && role != models.RoleAdmin && userID != clientID {
		httperr.Forbidden(c, "forbidden", "Sem permissão.")
		return
	}

	var consultations []models.Consultation
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&consultations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_consultations", "Erro ao listar consultas.")
		return
	}

	httpresp.List(c, consultations)
}
