package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/httpresp"
	"github.com/joannaarruda/salao-ia-api/internal/middleware"
	"github.com/joannaarruda/salao-ia-api/internal/models"
	ucAppointment "github.com/joannaarruda/salao-ia-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC         *ucAppointment.BookAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	availabilityUC *ucAppointment.GetAvailability
	listByDateUC   *ucAppointment.ListAppointmentsByDate
	listByMonthUC  *ucAppointment.ListAppointmentsByMonth
	listMyUC       *ucAppointment.ListMyAppointments

	tz string
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	availabilityUC *ucAppointment.GetAvailability,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	listMyUC *ucAppointment.ListMyAppointments,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:         bookUC,
		updateStatusUC: updateStatusUC,
		availabilityUC: availabilityUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		listMyUC:       listMyUC,
		tz:             tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID string             `json:"professional_id" binding:"required"`
	DateTime       string             `json:"date_time" binding:"required"`
	Services       models.ServiceList `json:"services" binding:"required,min=1,dive"`

	Notes         string `json:"notes"`
	UseAI         bool   `json:"use_ai"`
	AIPreferences string `json:"ai_preferences"`

	WantsConsultation bool `json:"wants_consultation"`
	WantsStrandTest   bool `json:"wants_strand_test"`
}

type UpdateStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	CancelReason string `json:"cancel_reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientID:          clientID,
		ProfessionalID:    req.ProfessionalID,
		DateTime:          req.DateTime,
		Services:          req.Services,
		Notes:             req.Notes,
		UseAI:             req.UseAI,
		AIPreferences:     req.AIPreferences,
		WantsConsultation: req.WantsConsultation,
		WantsStrandTest:   req.WantsStrandTest,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err, "Não foi possível agendar.") {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: c.Param("id"),
		NewStatus:     domain.Status(req.Status),
		ActorID:       actorID,
		ActorRole:     actorRole,
		CancelReason:  req.CancelReason,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err, "Não foi possível atualizar o status.") {
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	professionalID := c.Query("professional_id")
	dateStr := c.Query("date")
	if professionalID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_parameters", "Profissional e data obrigatórios.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return
	}

	resp, err := h.availabilityUC.Execute(c.Request.Context(), professionalID, dateStr, duration)
	if err != nil {
		if httperr.WriteBusiness(c, err, "Não foi possível calcular a disponibilidade.") {
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao consultar disponibilidade.")
		return
	}

	httpresp.OK(c, resp)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMy(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)
	status := c.Query("status")

	aps, err := h.listMyUC.Execute(c.Request.Context(), clientID, status)
	if err != nil {
		if httperr.WriteBusiness(c, err, "Filtro inválido.") {
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleProfessional && role != models.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "Apenas profissionais.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseSalonDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), professionalID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleProfessional && role != models.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "Apenas profissionais.")
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), professionalID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}
