package booking

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Transitions
// ===============================

var transitions = map[scheduling.Status][]scheduling.Status{
	scheduling.StatusPending: {
		scheduling.StatusConfirmed,
		scheduling.StatusCancelled,
		scheduling.StatusNoShow,
	},
	scheduling.StatusConfirmed: {
		scheduling.StatusCancelled,
		scheduling.StatusNoShow,
	},
}

// CanTransition define se um agendamento pode ir de current para next.
// cancelled e no_show são finais.
func CanTransition(current, next scheduling.Status) error {
	if !next.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	for _, allowed := range transitions[current] {
		if allowed == next {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// CanReschedule: só agendamentos ainda ativos podem mudar de horário.
func CanReschedule(current scheduling.Status) error {
	if !current.Busy() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus: o fluxo público nasce pendente, o painel já confirma.
func InitialStatus(fromAdmin bool) scheduling.Status {
	if fromAdmin {
		return scheduling.StatusConfirmed
	}
	return scheduling.StatusPending
}
