package appointment

import (
	"time"

	"github.com/joannaarruda/salao-ia-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica uma mudança de status ao agendamento, validando a
// máquina de estados e a autoridade do ator, e carimbando os instantes
// de confirmação/conclusão/cancelamento. Só mexe no registro em memória;
// a persistência é responsabilidade do chamador.
func Transition(
	ap *models.Appointment,
	next Status,
	actorID string,
	actorRole string,
	now time.Time,
) error {

	if err := AuthorizeTransition(actorID, actorRole, ap.ClientID, ap.ProfessionalID, next); err != nil {
		return err
	}

	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)

	switch next {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
		if actorRole == models.RoleProfessional || actorRole == models.RoleAdmin {
			confirmedBy := actorID
			ap.ConfirmedBy = &confirmedBy
		}

	case StatusCompleted:
		ap.CompletedAt = &now

	case StatusCancelled:
		ap.CancelledAt = &now
	}

	return nil
}

// Cancel é o atalho usado pelo fluxo do cliente.
func Cancel(ap *models.Appointment, actorID, actorRole, reason string, now time.Time) error {
	if err := Transition(ap, StatusCancelled, actorID, actorRole, now); err != nil {
		return err
	}
	ap.CancelReason = reason
	return nil
}
