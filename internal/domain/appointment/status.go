package appointment

import "github.com/joannaarruda/salao-ia-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal: concluído e cancelado não admitem nenhuma transição.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validações de transição
// ===============================

// CanTransition valida a forma da máquina de estados, sem olhar o ator:
// pending → confirmed → in_progress → completed, e qualquer estado
// não-terminal → cancelled. Voltar para pending nunca é permitido.
func CanTransition(current, next Status) error {
	if !next.Valid() || next == StatusPending || next == current {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	if current.IsTerminal() {
		return httperr.ErrBusinessDetails(httperr.CodeInvalidTransition, map[string]any{
			"current_status": string(current),
		})
	}

	return nil
}

// ===============================
// Autoridade por papel
// ===============================

// AuthorizeTransition aplica a regra de quem pode fazer o quê:
//   - cliente: apenas cancelar o próprio agendamento;
//   - profissional: qualquer transição num agendamento seu;
//   - admin: qualquer transição em qualquer agendamento.
func AuthorizeTransition(
	actorID string,
	actorRole string,
	clientID string,
	professionalID string,
	next Status,
) error {

	switch actorRole {
	case "admin":
		return nil

	case "professional":
		if actorID != professionalID {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}
		return nil

	case "client":
		if actorID != clientID || next != StatusCancelled {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}
		return nil
	}

	return httperr.ErrBusiness(httperr.CodeForbidden)
}
