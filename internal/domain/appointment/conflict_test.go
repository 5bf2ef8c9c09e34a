package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joannaarruda/salao-ia-api/internal/models"
)

func makeAppointment(start time.Time, durationMin int, status Status) models.Appointment {
	return models.Appointment{
		StartTime: start,
		Services: models.ServiceList{
			{Type: models.ServiceHaircut, DurationMin: durationMin},
		},
		Status: string(status),
	}
}

func TestFindConflict_EmptyDay(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	w := FindConflict(nil, start, 60)
	assert.Nil(t, w)
}

func TestFindConflict_Overlap(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(day.Add(10*time.Hour), 60, StatusConfirmed), // 10:00–11:00
	}

	// 10:30 por 30 min cai dentro de 10:00–11:00
	w := FindConflict(existing, day.Add(10*time.Hour+30*time.Minute), 30)
	assert.NotNil(t, w)
	assert.Equal(t, "10:00 - 11:00", w.String())
}

func TestFindConflict_BoundaryTouchIsNotConflict(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(day.Add(10*time.Hour), 60, StatusConfirmed), // 10:00–11:00
	}

	// Termina exatamente às 10:00
	assert.Nil(t, FindConflict(existing, day.Add(9*time.Hour+30*time.Minute), 30))

	// Começa exatamente às 11:00
	assert.Nil(t, FindConflict(existing, day.Add(11*time.Hour), 30))
}

func TestFindConflict_FullContainment(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(day.Add(10*time.Hour), 30, StatusPending), // 10:00–10:30
	}

	// 09:00–12:00 engole o agendamento existente
	w := FindConflict(existing, day.Add(9*time.Hour), 180)
	assert.NotNil(t, w)
	assert.Equal(t, "10:00 - 10:30", w.String())
}

func TestFindConflict_CancelledIsIgnored(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(day.Add(10*time.Hour), 60, StatusCancelled),
	}

	assert.Nil(t, FindConflict(existing, day.Add(10*time.Hour), 60))
}

func TestFindConflict_DefaultDuration(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Sem duração informada o serviço vale 60 min: 10:00–11:00
	existing := []models.Appointment{
		{
			StartTime: day.Add(10 * time.Hour),
			Services:  models.ServiceList{{Type: models.ServiceHaircut}},
			Status:    string(StatusPending),
		},
	}

	w := FindConflict(existing, day.Add(10*time.Hour+45*time.Minute), 30)
	assert.NotNil(t, w)
	assert.Equal(t, "10:00 - 11:00", w.String())
}

func TestFindConflict_ReturnsFirstWindowInOrder(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(day.Add(9*time.Hour), 60, StatusConfirmed),  // 09:00–10:00
		makeAppointment(day.Add(10*time.Hour), 60, StatusConfirmed), // 10:00–11:00
	}

	// 09:30–10:30 colide com os dois; a primeira janela ganha
	w := FindConflict(existing, day.Add(9*time.Hour+30*time.Minute), 60)
	assert.NotNil(t, w)
	assert.Equal(t, "09:00 - 10:00", w.String())
}
