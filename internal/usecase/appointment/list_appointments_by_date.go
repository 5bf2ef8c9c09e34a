package appointment

import (
	"context"
	"time"

	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/dto"
	"github.com/joannaarruda/salao-ia-api/internal/models"
	"github.com/joannaarruda/salao-ia-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	tz   string
}

func NewListAppointmentsByDate(repo domain.Repository, tz string) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo, tz: tz}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	professionalID string,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

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

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		services := make([]string, 0, len(ap.Services))
		for _, s := range ap.Services {
			services = append(services, string(s.Type))
		}

		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime(),
			Status:     ap.Status,
			ClientName: ap.Client.Name,
			Services:   services,
		})
	}
	return out
}
