package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joannaarruda/salao-ia-api/internal/models"
)

func TestPlanSlots_DefaultGridHas20Slots(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	slots := PlanSlots(DefaultGrid(), date, 30, nil)

	// 09:00 até 18:30 inclusive, de 30 em 30
	assert.Len(t, slots, 20)
	assert.Equal(t, date.Add(9*time.Hour), slots[0].Start)
	assert.Equal(t, date.Add(18*time.Hour+30*time.Minute), slots[len(slots)-1].Start)

	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, 30, s.AvailableDurationMin)
	}
}

func TestPlanSlots_BusyWindowBlocksOverlappingSlots(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(date.Add(10*time.Hour), 60, StatusConfirmed), // 10:00–11:00
	}

	slots := PlanSlots(DefaultGrid(), date, 30, existing)

	byStart := make(map[string]Slot)
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s
	}

	assert.True(t, byStart["09:30"].Available)
	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["10:30"].Available)
	assert.True(t, byStart["11:00"].Available)
}

func TestPlanSlots_LongDurationBlocksEarlierSlots(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(date.Add(10*time.Hour), 60, StatusConfirmed), // 10:00–11:00
	}

	// Pedido de 90 min: o slot das 09:00 terminaria às 10:30
	slots := PlanSlots(DefaultGrid(), date, 90, existing)

	byStart := make(map[string]Slot)
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s
	}

	assert.False(t, byStart["09:00"].Available)
	assert.False(t, byStart["09:30"].Available)
	assert.True(t, byStart["11:00"].Available)
}

func TestPlanSlots_ConsistentWithFindConflict(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(date.Add(9*time.Hour+30*time.Minute), 45, StatusPending),
		makeAppointment(date.Add(14*time.Hour), 120, StatusConfirmed),
		makeAppointment(date.Add(16*time.Hour), 60, StatusCancelled),
	}

	for _, duration := range []int{30, 60, 90} {
		slots := PlanSlots(DefaultGrid(), date, duration, existing)
		for _, s := range slots {
			expected := FindConflict(existing, s.Start, duration) == nil
			assert.Equal(t, expected, s.Available, "slot %s / %d min", s.Start.Format("15:04"), duration)
		}
	}
}

func TestPlanSlots_CustomGrid(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	grid := Grid{DayStart: "08:00", DayEnd: "09:00", SlotMinutes: 15}

	slots := PlanSlots(grid, date, 15, nil)

	assert.Len(t, slots, 5) // 08:00, 08:15, 08:30, 08:45, 09:00
	assert.Equal(t, date.Add(8*time.Hour), slots[0].Start)
}

func TestGridValidate(t *testing.T) {
	assert.NoError(t, DefaultGrid().Validate())
	assert.NoError(t, Grid{DayStart: "08:00", DayEnd: "20:00", SlotMinutes: 15}.Validate())

	cases := []struct {
		name string
		grid Grid
	}{
		{"início ilegível", Grid{DayStart: "9h", DayEnd: "18:30", SlotMinutes: 30}},
		{"fim ilegível", Grid{DayStart: "09:00", DayEnd: "", SlotMinutes: 30}},
		{"fim antes do início", Grid{DayStart: "18:30", DayEnd: "09:00", SlotMinutes: 30}},
		{"passo zero", Grid{DayStart: "09:00", DayEnd: "18:30", SlotMinutes: 0}},
		{"passo negativo", Grid{DayStart: "09:00", DayEnd: "18:30", SlotMinutes: -30}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.grid.Validate())
		})
	}
}

func TestPlanSlots_UnavailableSlotHasZeroDuration(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing := []models.Appointment{
		makeAppointment(date.Add(9*time.Hour), 600, StatusConfirmed), // dia inteiro
	}

	slots := PlanSlots(DefaultGrid(), date, 30, existing)

	for _, s := range slots {
		if !s.Available {
			assert.Equal(t, 0, s.AvailableDurationMin)
		}
	}
}
