package appointment

import (
	"context"

	"gorm.io/gorm"

	"github.com/joannaarruda/salao-ia-api/internal/audit"
	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/models"
	"github.com/joannaarruda/salao-ia-api/internal/timezone"
)

type UpdateStatusInput struct {
	AppointmentID string
	NewStatus     domain.Status
	ActorID       string
	ActorRole     string
	CancelReason  string
}

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
	tz    string
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	cache AvailabilityCache,
	tz string,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: auditD,
		cache: cache,
		tz:    tz,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusinessDetails(httperr.CodeNotFound, map[string]any{
				"entity": "appointment",
			})
		}
		return nil, err
	}

	now := timezone.NowIn(uc.tz)

	if in.NewStatus == domain.StatusCancelled {
		err = domain.Cancel(ap, in.ActorID, in.ActorRole, in.CancelReason, now)
	} else {
		err = domain.Transition(ap, in.NewStatus, in.ActorID, in.ActorRole, now)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.StartTime.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}
