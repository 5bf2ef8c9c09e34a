package appointment

import (
	"context"

	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/models"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	clientID string,
	status string,
) ([]models.Appointment, error) {

	if status != "" && !domain.Status(status).Valid() {
		return nil, httperr.ErrBusinessDetails(httperr.CodeInvalidSchedule, map[string]any{
			"reason": "invalid_status_filter",
		})
	}

	return uc.repo.ListAppointmentsForClient(ctx, clientID, status)
}
