package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/joannaarruda/salao-ia-api/internal/domain/appointment"
	"github.com/joannaarruda/salao-ia-api/internal/httperr"
	"github.com/joannaarruda/salao-ia-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessionalByID(
	ctx context.Context,
	id string,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// dayRange devolve [meia-noite, meia-noite+24h) da data do início,
// no timezone do próprio instante.
func dayRange(start time.Time) (time.Time, time.Time) {
	dayStart := time.Date(
		start.Year(), start.Month(), start.Day(),
		0, 0, 0, 0,
		start.Location(),
	)
	return dayStart, dayStart.Add(24 * time.Hour)
}

// bookingLockKey é a chave do lock consultivo que serializa os bookings
// de um profissional num dia. Todo início no mesmo dia civil colapsa na
// mesma chave.
func bookingLockKey(start time.Time) string {
	return start.Format("2006-01-02")
}

// CreateAppointment serializa bookings concorrentes do mesmo
// profissional+dia com um advisory lock transacional e só então lê a
// agenda e reverifica o conflito. Lock de linha não serve aqui: num dia
// vazio não há linha para travar e duas transações inseririam juntas.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	dayStart, dayEnd := dayRange(ap.StartTime)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// liberado automaticamente no commit/rollback
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?), hashtext(?))",
			ap.ProfessionalID, bookingLockKey(ap.StartTime),
		).Error; err != nil {
			return err
		}

		var sameDay []models.Appointment
		if err := tx.
			Where(
				"professional_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
				ap.ProfessionalID, string(domain.StatusCancelled), dayStart, dayEnd,
			).
			Order("start_time ASC").
			Find(&sameDay).Error; err != nil {
			return err
		}

		if w := domain.FindConflict(sameDay, ap.StartTime, ap.DurationMin()); w != nil {
			return httperr.ErrBusinessDetails(httperr.CodeTimeConflict, map[string]any{
				"window": w.String(),
			})
		}

		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			professionalID, string(domain.StatusCancelled), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", appointmentID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	professionalID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"professional_id = ? AND start_time >= ? AND start_time < ?",
			professionalID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID string,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Professional").
		Where("client_id = ?", clientID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Medical / Consultation
// --------------------------------------------------

func (r *AppointmentGormRepository) GetMedicalHistoryByClient(
	ctx context.Context,
	clientID string,
) (*models.MedicalHistory, error) {

	var history models.MedicalHistory
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&history).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// ficha ausente não é erro: o gate decide o que fazer
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &history, nil
}

func (r *AppointmentGormRepository) CreateConsultation(
	ctx context.Context,
	consultation *models.Consultation,
) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
