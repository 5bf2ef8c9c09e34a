package appointment

import (
	"fmt"
	"time"

	"github.com/joannaarruda/salao-ia-api/internal/models"
)

// ===============================
// Grade de horários do salão
// ===============================

// Grid descreve a grade de atendimento: primeiro e último horário de
// início (inclusive) e o passo entre slots. Os limites vêm da
// configuração; o padrão é 09:00–18:30 com slots de 30 min (20 slots).
type Grid struct {
	DayStart    string // "15:04"
	DayEnd      string // último início permitido, inclusive
	SlotMinutes int
}

func DefaultGrid() Grid {
	return Grid{
		DayStart:    "09:00",
		DayEnd:      "18:30",
		SlotMinutes: 30,
	}
}

// Validate confere os limites da grade vindos da configuração. Roda na
// subida do processo; PlanSlots assume uma grade já validada.
func (g Grid) Validate() error {
	start, err := time.Parse("15:04", g.DayStart)
	if err != nil {
		return fmt.Errorf("invalid day start %q: %w", g.DayStart, err)
	}

	end, err := time.Parse("15:04", g.DayEnd)
	if err != nil {
		return fmt.Errorf("invalid day end %q: %w", g.DayEnd, err)
	}

	if end.Before(start) {
		return fmt.Errorf("day end %q before day start %q", g.DayEnd, g.DayStart)
	}

	if g.SlotMinutes <= 0 {
		return fmt.Errorf("invalid slot minutes %d", g.SlotMinutes)
	}

	return nil
}

type Slot struct {
	Start                time.Time
	Available            bool
	AvailableDurationMin int
}

// PlanSlots enumera a grade de um dia e classifica cada slot usando
// FindConflict com a duração pedida. Recalcula tudo a cada chamada;
// não há estado guardado.
func PlanSlots(
	grid Grid,
	date time.Time,
	requestedDurationMin int,
	existing []models.Appointment,
) []Slot {

	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	first := parseHM(grid.DayStart)
	last := parseHM(grid.DayEnd)
	step := time.Duration(grid.SlotMinutes) * time.Minute

	var slots []Slot

	for cur := first; !cur.After(last); cur = cur.Add(step) {
		conflict := FindConflict(existing, cur, requestedDurationMin)

		slot := Slot{Start: cur, Available: conflict == nil}
		if slot.Available {
			slot.AvailableDurationMin = requestedDurationMin
		}

		slots = append(slots, slot)
	}

	return slots
}
