package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/dto"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/models"
	"github.com/joannaarruda/salao-ia-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
	grid  domain.Grid
	tz    string
}

func NewGetAvailability(
	repo domain.Repository,
	cache AvailabilityCache,
	grid domain.Grid,
	tz string,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
		grid:  grid,
		tz:    tz,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	professionalID string,
	dateStr string,
	durationMin int,
) (*dto.AvailabilityResponse, error) {

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(uc.tz))
	if err != nil {
		return nil, httperr.ErrBusinessDetails(httperr.CodeInvalidSchedule, map[string]any{
			"reason": "invalid_date",
		})
	}

	if durationMin <= 0 {
		durationMin = models.DefaultServiceDurationMin
	}
	if durationMin < models.MinServiceDurationMin || durationMin > models.MaxServiceDurationMin {
		return nil, httperr.ErrBusinessDetails(httperr.CodeInvalidSchedule, map[string]any{
			"reason": "invalid_duration",
		})
	}

	if _, err := uc.repo.GetProfessionalByID(ctx, professionalID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusinessDetails(httperr.CodeNotFound, map[string]any{
				"entity": "professional",
			})
		}
		return nil, err
	}

	if cached, ok := uc.cache.Get(ctx, professionalID, dateStr, durationMin); ok {
		return cached, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListAppointmentsForDay(ctx, professionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.PlanSlots(uc.grid, date, durationMin, existing)

	resp := &dto.AvailabilityResponse{
		Date:           dateStr,
		ProfessionalID: professionalID,
		Slots:          make([]dto.TimeSlotDTO, 0, len(slots)),
	}

	for _, s := range slots {
		resp.Slots = append(resp.Slots, dto.TimeSlotDTO{
			Time:                 s.Start.Format(time.RFC3339),
			Available:            s.Available,
			AvailableDurationMin: s.AvailableDurationMin,
		})
	}

	uc.cache.Set(ctx, professionalID, dateStr, durationMin, resp)

	return resp, nil
}
