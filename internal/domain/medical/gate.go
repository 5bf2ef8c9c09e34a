package medical

import (
	"time"

	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/models"
)

// Validade da ficha médica: mais de 180 dias sem atualização bloqueia
// serviços químicos.
const DefaultMaxHistoryAgeDays = 180

// CheckEligibility decide se os serviços pedidos podem ser agendados
// para o cliente. Serviços químicos exigem histórico médico existente e
// atualizado; sem serviço químico o gate passa incondicionalmente.
//
// Roda antes da checagem de conflito: falha de regra de negócio deve
// aparecer antes de falha de disponibilidade.
func CheckEligibility(
	services models.ServiceList,
	history *models.MedicalHistory,
	now time.Time,
	maxAgeDays int,
) error {

	chemical := services.ChemicalTypes()
	if len(chemical) == 0 {
		return nil
	}

	if history == nil {
		return httperr.ErrBusinessDetails(httperr.CodePreconditionRequired, map[string]any{
			"reason":            "missing_medical_history",
			"affected_services": chemical,
		})
	}

	if maxAgeDays <= 0 {
		maxAgeDays = DefaultMaxHistoryAgeDays
	}

	maxAge := time.Duration(maxAgeDays) * 24 * time.Hour
	if now.Sub(history.UpdatedAt) > maxAge {
		return httperr.ErrBusinessDetails(httperr.CodePreconditionRequired, map[string]any{
			"reason":            "stale_medical_history",
			"last_updated":      history.UpdatedAt,
			"affected_services": chemical,
		})
	}

	return nil
}
