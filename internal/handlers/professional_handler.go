package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/httpresp"
	"github.com/joannaarruda/salao-ia-api/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// GET /api/professionals — listagem pública dos profissionais ativos.
// Aceita ?service_area= para filtrar por área (cabelo, unhas...).
func (h *ProfessionalHandler) List(c *gin.Context) {
	query := h.db.Where("active = ?", true)

	if area := c.Query("service_area"); area != "" {
		query = query.Where("service_area = ?", area)
	}

	var professionals []models.Professional
	if err := query.Order("name ASC").Find(&professionals).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, professionals)
}
