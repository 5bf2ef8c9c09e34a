package appointment

import (
	"context"
	"time"

	"github.com/joannaarruda/salao-ia-api/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id string,
	) (*models.Professional, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment insere o agendamento dentro de uma transação que
	// serializa os bookings do par profissional+dia e reverifica o
	// conflito de horário: é a garantia exigida pelo fluxo de booking.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		professionalID string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listagens --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID string,
		status string,
	) ([]models.Appointment, error)

	// -------- Medical / Consultation --------

	// GetMedicalHistoryByClient devolve (nil, nil) quando não há ficha.
	GetMedicalHistoryByClient(
		ctx context.Context,
		clientID string,
	) (*models.MedicalHistory, error)

	CreateConsultation(
		ctx context.Context,
		consultation *models.Consultation,
	) error
}
