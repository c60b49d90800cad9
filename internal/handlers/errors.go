package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type businessMapping struct {
	status  int
	message string
}

// Códigos de negócio → status HTTP + mensagem para o cliente.
var businessErrors = map[string]businessMapping{
	// entrada
	"invalid_date":          {http.StatusBadRequest, "Data inválida."},
	"invalid_date_or_time":  {http.StatusBadRequest, "Data ou hora inválida."},
	"invalid_status":        {http.StatusBadRequest, "Status inválido."},
	"missing_customer_name": {http.StatusBadRequest, "Nome do cliente obrigatório."},
	"invalid_day_of_week":   {http.StatusBadRequest, "Dia da semana inválido."},
	"invalid_time_format":   {http.StatusBadRequest, "Horário em formato inválido (HH:MM)."},
	"invalid_hours_range":   {http.StatusBadRequest, "Horário de início deve ser antes do fim."},
	"incomplete_break":      {http.StatusBadRequest, "Informe início e fim da pausa."},
	"invalid_break_range":   {http.StatusBadRequest, "Início da pausa deve ser antes do fim."},

	// não encontrado
	"salon_not_found":   {http.StatusNotFound, "Salão não encontrado."},
	"service_not_found": {http.StatusNotFound, "Serviço não encontrado."},
	"staff_not_found":   {http.StatusNotFound, "Profissional não encontrado."},
	"booking_not_found": {http.StatusNotFound, "Agendamento não encontrado."},

	// conflito
	"invalid_state":       {http.StatusConflict, "Agendamento não pode mudar para esse estado."},
	"schedule_busy":       {http.StatusConflict, "Agenda ocupada, tente novamente."},
	"slug_already_exists": {http.StatusConflict, "Esse endereço já está em uso."},

	// regras de agenda
	"too_soon": {http.StatusUnprocessableEntity, "Horário muito próximo, escolha outro."},

	string(scheduling.ReasonNoEmployeeSelected):      {http.StatusUnprocessableEntity, "Selecione um profissional."},
	string(scheduling.ReasonInvalidRange):            {http.StatusUnprocessableEntity, "O fim deve ser depois do início."},
	string(scheduling.ReasonClosedDay):               {http.StatusUnprocessableEntity, "Não há atendimento nesse dia."},
	string(scheduling.ReasonOutsideWorkingHours):     {http.StatusUnprocessableEntity, "Fora do horário de atendimento."},
	string(scheduling.ReasonInsideBreak):             {http.StatusUnprocessableEntity, "Horário dentro da pausa do profissional."},
	string(scheduling.ReasonStaffUnavailable):        {http.StatusUnprocessableEntity, "Profissional indisponível nesse período."},
	string(scheduling.ReasonOverlapsExistingBooking): {http.StatusConflict, "Conflito com outro agendamento."},
}

// writeError traduz o erro de um use case; o que não é negócio vira 500 com fallback.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	if code, ok := httperr.Code(err); ok {
		if m, known := businessErrors[code]; known {
			httperr.Write(c, m.status, code, m.message)
			return
		}
		httperr.BadRequest(c, code, "Requisição inválida.")
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, fallbackCode, fallbackMessage)
}
