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

type StrandTestHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewStrandTestHandler(db *gorm.DB, auditD *audit.Dispatcher) *StrandTestHandler {
	return &StrandTestHandler{db: db, audit: auditD}
}

type CreateStrandTestRequest struct {
	ClientID       string `json:"client_id" binding:"required"`
	Result         string `json:"result" binding:"required"`
	Observations   string `json:"observations"`
	Recommendation string `json:"recommendation"`
	TestedProduct  string `json:"tested_product"`
}

func (h *StrandTestHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleProfessional {
		httperr.Forbidden(c, "forbidden", "Apenas profissionais.")
		return
	}

	var req CreateStrandTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	test := models.StrandTest{
		ClientID:       req.ClientID,
		ProfessionalID: professionalID,
		Result:         req.Result,
		Observations:   req.Observations,
		Recommendation: req.Recommendation,
		TestedProduct:  req.TestedProduct,
	}

	if err := h.db.Create(&test).Error; err != nil {
		httperr.Internal(c, "failed_to_create_strand_test", "Erro ao registrar teste de mecha.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &professionalID,
		Action:   "strand_test_created",
		Entity:   "strand_test",
		EntityID: &test.ID,
	})

	httpresp.Created(c, test)
}

func (h *StrandTestHandler) ListByClient(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)
	clientID := c.Param("clientID")

	if role != models.RoleProfessional && role != models.RoleAdmin && userID != clientID {
		httperr.Forbidden(c, "forbidden", "Sem permissão.")
		return
	}

	var tests []models.StrandTest
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&tests).Error; err != nil {
		httperr.Internal(c, "failed_to_list_strand_tests", "Erro ao listar testes de mecha.")
		return
	}

	httpresp.List(c, tests)
}
