package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/models"
)

func newUpdateStatusUC(repo *MockRepository) *UpdateAppointmentStatus {
	return NewUpdateAppointmentStatus(repo, nil, noopCache{}, testTZ)
}

func storedAppointment(status domain.Status) *models.Appointment {
	return &models.Appointment{
		ID:             "ap-1",
		ClientID:       "client-1",
		ProfessionalID: "prof-1",
		StartTime:      time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		Services:       models.ServiceList{{Type: models.ServiceHaircut, DurationMin: 60}},
		Status:         string(status),
	}
}

func TestUpdateStatus_ProfessionalConfirms(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").
		Return(storedAppointment(domain.StatusPending), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := newUpdateStatusUC(repo)

	ap, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: "ap-1",
		NewStatus:     domain.StatusConfirmed,
		ActorID:       "prof-1",
		ActorRole:     models.RoleProfessional,
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, "prof-1", *ap.ConfirmedBy)

	repo.AssertExpectations(t)
}

func TestUpdateStatus_ClientCancelsWithReason(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").
		Return(storedAppointment(domain.StatusConfirmed), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := newUpdateStatusUC(repo)

	ap, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: "ap-1",
		NewStatus:     domain.StatusCancelled,
		ActorID:       "client-1",
		ActorRole:     models.RoleClient,
		CancelReason:  "viagem de última hora",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.Equal(t, "viagem de última hora", ap.CancelReason)
	assert.NotNil(t, ap.CancelledAt)
}

func TestUpdateStatus_ClientCannotConfirm(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").
		Return(storedAppointment(domain.StatusPending), nil)

	uc := newUpdateStatusUC(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: "ap-1",
		NewStatus:     domain.StatusConfirmed,
		ActorID:       "client-1",
		ActorRole:     models.RoleClient,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestUpdateStatus_OtherProfessionalForbidden(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").
		Return(storedAppointment(domain.StatusPending), nil)

	uc := newUpdateStatusUC(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: "ap-1",
		NewStatus:     domain.StatusConfirmed,
		ActorID:       "prof-2",
		ActorRole:     models.RoleProfessional,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestUpdateStatus_CompletedIsTerminal(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").
		Return(storedAppointment(domain.StatusCompleted), nil)

	uc := newUpdateStatusUC(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: "ap-1",
		NewStatus:     domain.StatusCancelled,
		ActorID:       "prof-1",
		ActorRole:     models.RoleProfessional,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	assert.Equal(t, "completed", httperr.BusinessDetails(err)["current_status"])
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestUpdateStatus_AppointmentNotFound(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetAppointmentByID", mock.Anything, "ghost").
		Return(nil, gorm.ErrRecordNotFound)

	uc := newUpdateStatusUC(repo)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: "ghost",
		NewStatus:     domain.StatusConfirmed,
		ActorID:       "admin-1",
		ActorRole:     models.RoleAdmin,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	assert.Equal(t, "appointment", httperr.BusinessDetails(err)["entity"])
}

func TestUpdateStatus_AdminOnAnyAppointment(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").
		Return(storedAppointment(domain.StatusInProgress), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := newUpdateStatusUC(repo)

	ap, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: "ap-1",
		NewStatus:     domain.StatusCompleted,
		ActorID:       "admin-1",
		ActorRole:     models.RoleAdmin,
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)
}
