package domain

import "errors"

// Sentinel errors carry the user-facing messages verbatim; handlers only
// decide the HTTP status, never rewrite the text.
var (
	ErrUserNotFound       = errors.New("Usuário não encontrado.")
	ErrUserFieldsRequired = errors.New("Nome, email e data de nascimento são campos obrigatórios.")
	ErrEmailTaken         = errors.New("Email já cadastrado.")
	ErrNameDoubleSpaces   = errors.New("Nome não pode conter espaços duplos entre as palavras.")
	ErrNameInvalid        = errors.New("Nome deve conter apenas letras. Não é permitido utilizar acentos gráficos ou espaços duplos entre as palavras.")
	ErrEmailInvalid       = errors.New("Formato de email inválido e/ou contém espaços. Utilize o formato 'exemplo@exemplo.com'.")
	ErrBirthDateFormat    = errors.New("Formato inválido para a data de nascimento. Use o formato 'yyyy-MM-dd'.")

	ErrSchedulingUserNotFound    = errors.New("Usuário não encontrado. Certifique-se de que o ID do usuário está correto.")
	ErrNoUserAppointments        = errors.New("Nenhum agendamento encontrado para este usuário.")
	ErrAppointmentNotFound       = errors.New("Agendamento não encontrado.")
	ErrAppointmentFieldsRequired = errors.New("Id do usuário, serviço e dataHora são campos obrigatórios.")
	ErrServiceInvalid            = errors.New("Serviço inválido. Escolha um serviço válido.")
	ErrDateTimeFormat            = errors.New("Formato inválido para a dataHora. Use o formato 'yyyy-MM-dd'T'HH:mm'.")
	ErrDateRequired              = errors.New("A data é obrigatória.")
	ErrPastDateTime              = errors.New("O agendamento só pode ser feito para horários futuros.")
	ErrOutsideBusinessHours      = errors.New("Os agendamentos só podem ocorrer em horário comercial, das 9h às 17h.")
	ErrNotOnTheHour              = errors.New("Cada atendimento tem duração de uma hora. Selecione um bloco de horário completo.")
	ErrSlotUnavailable           = errors.New("O horário está indisponível. Selecione outro horário.")
	ErrCancelNotScheduled        = errors.New("Só é possível cancelar um agendamento ativo.")
	ErrCancelPastAppointment     = errors.New("Só é possível cancelar agendamentos futuros.")
)
