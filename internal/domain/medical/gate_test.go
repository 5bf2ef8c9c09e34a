package medical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/models"
)

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func historyUpdatedDaysAgo(days int) *models.MedicalHistory {
	return &models.MedicalHistory{
		ClientID:  "client-1",
		UpdatedAt: now.Add(-time.Duration(days) * 24 * time.Hour),
	}
}

func TestCheckEligibility_NonChemicalNeverChecksHistory(t *testing.T) {
	services := models.ServiceList{
		{Type: models.ServiceManicure},
		{Type: models.ServiceHaircut},
	}

	// Sem ficha nenhuma
	assert.NoError(t, CheckEligibility(services, nil, now, DefaultMaxHistoryAgeDays))
}

func TestCheckEligibility_ChemicalWithoutHistory(t *testing.T) {
	services := models.ServiceList{
		{Type: models.ServiceHaircut},
		{Type: models.ServiceColoring},
		{Type: models.ServiceBleaching},
	}

	err := CheckEligibility(services, nil, now, DefaultMaxHistoryAgeDays)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePreconditionRequired))

	details := httperr.BusinessDetails(err)
	assert.Equal(t, "missing_medical_history", details["reason"])
	assert.Equal(t,
		[]models.ServiceType{models.ServiceColoring, models.ServiceBleaching},
		details["affected_services"],
	)
}

func TestCheckEligibility_StalenessBoundary(t *testing.T) {
	services := models.ServiceList{{Type: models.ServicePerm}}

	// 179 dias: fresca
	assert.NoError(t, CheckEligibility(services, historyUpdatedDaysAgo(179), now, DefaultMaxHistoryAgeDays))

	// 180 dias exatos: ainda válida (o limite é estritamente maior)
	assert.NoError(t, CheckEligibility(services, historyUpdatedDaysAgo(180), now, DefaultMaxHistoryAgeDays))

	// 181 dias: vencida
	err := CheckEligibility(services, historyUpdatedDaysAgo(181), now, DefaultMaxHistoryAgeDays)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePreconditionRequired))

	details := httperr.BusinessDetails(err)
	assert.Equal(t, "stale_medical_history", details["reason"])
	assert.Equal(t, historyUpdatedDaysAgo(181).UpdatedAt, details["last_updated"])
}

func TestCheckEligibility_ZeroMaxAgeFallsBackToDefault(t *testing.T) {
	services := models.ServiceList{{Type: models.ServiceStraightening}}

	assert.NoError(t, CheckEligibility(services, historyUpdatedDaysAgo(100), now, 0))

	err := CheckEligibility(services, historyUpdatedDaysAgo(200), now, 0)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePreconditionRequired))
}

func TestCheckEligibility_AllChemicalTypesGated(t *testing.T) {
	chemical := []models.ServiceType{
		models.ServiceColoring,
		models.ServiceBleaching,
		models.ServiceStraightening,
		models.ServicePerm,
		models.ServiceChemicalHydration,
	}

	for _, st := range chemical {
		err := CheckEligibility(models.ServiceList{{Type: st}}, nil, now, DefaultMaxHistoryAgeDays)
		assert.True(t, httperr.IsBusiness(err, httperr.CodePreconditionRequired), "tipo %s", st)
	}

	// hydration simples não é químico
	assert.NoError(t, CheckEligibility(
		models.ServiceList{{Type: models.ServiceHydration}},
		nil, now, DefaultMaxHistoryAgeDays,
	))
}
