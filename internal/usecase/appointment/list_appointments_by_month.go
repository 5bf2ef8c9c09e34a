package appointment

import (
	"context"
	"time"

	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/dto"
	"github.com/joannaarruda/salao-ia-api/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
	tz   string
}

func NewListAppointmentsByMonth(repo domain.Repository, tz string) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo, tz: tz}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	professionalID string,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}
