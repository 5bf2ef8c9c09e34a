package appointment

import (
	"fmt"
	"time"

	"github.com/joannaarruda/salao-ia-api/internal/models"
)

// ===============================
// Detecção de conflito de horário
// ===============================

type ConflictWindow struct {
	Start time.Time
	End   time.Time
}

// String no formato exibido ao cliente: "10:00 - 11:00".
func (w ConflictWindow) String() string {
	return fmt.Sprintf("%s - %s", w.Start.Format("15:04"), w.End.Format("15:04"))
}

// FindConflict verifica se o intervalo proposto colide com algum
// agendamento não-cancelado do mesmo dia. Os intervalos são meio-abertos
// [início, fim): agendamentos encostados não conflitam.
//
// `existing` deve conter os agendamentos do profissional na data proposta
// (o recorte por dia é responsabilidade do repositório). Função pura:
// devolve a primeira janela em conflito na ordem recebida, ou nil.
func FindConflict(
	existing []models.Appointment,
	proposedStart time.Time,
	proposedDurationMin int,
) *ConflictWindow {

	proposedEnd := proposedStart.Add(time.Duration(proposedDurationMin) * time.Minute)

	for _, ap := range existing {
		if Status(ap.Status) == StatusCancelled {
			continue
		}

		apStart := ap.StartTime
		apEnd := ap.EndTime()

		if proposedEnd.After(apStart) && proposedStart.Before(apEnd) {
			return &ConflictWindow{Start: apStart, End: apEnd}
		}
	}

	return nil
}
