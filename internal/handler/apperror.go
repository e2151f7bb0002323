package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"agendamentos-api/internal/domain"
)

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Corpo da requisição inválido."}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "Ocorreu um erro inesperado."}
	ErrTooManyRequests  = &AppError{http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Muitas requisições. Tente novamente em instantes."}
	ErrNoAvailableSlots = &AppError{http.StatusNotFound, "NO_AVAILABLE_SLOTS", "Não há horários disponíveis para a data especificada."}
)

// Domain sentinels keep the user-facing message; this table only decides the
// HTTP status and a machine-readable code.
var domainErrors = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrSchedulingUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrNoUserAppointments, http.StatusNotFound, "NO_APPOINTMENTS_FOR_USER"},
	{domain.ErrAppointmentNotFound, http.StatusNotFound, "APPOINTMENT_NOT_FOUND"},

	{domain.ErrUserFieldsRequired, http.StatusBadRequest, "MISSING_FIELDS"},
	{domain.ErrEmailTaken, http.StatusBadRequest, "EMAIL_TAKEN"},
	{domain.ErrNameDoubleSpaces, http.StatusBadRequest, "INVALID_NAME"},
	{domain.ErrNameInvalid, http.StatusBadRequest, "INVALID_NAME"},
	{domain.ErrEmailInvalid, http.StatusBadRequest, "INVALID_EMAIL"},
	{domain.ErrBirthDateFormat, http.StatusBadRequest, "INVALID_BIRTH_DATE"},

	{domain.ErrAppointmentFieldsRequired, http.StatusBadRequest, "MISSING_FIELDS"},
	{domain.ErrServiceInvalid, http.StatusBadRequest, "INVALID_SERVICE"},
	{domain.ErrDateTimeFormat, http.StatusBadRequest, "INVALID_DATETIME"},
	{domain.ErrDateRequired, http.StatusBadRequest, "MISSING_DATE"},
	{domain.ErrPastDateTime, http.StatusBadRequest, "PAST_DATETIME"},
	{domain.ErrOutsideBusinessHours, http.StatusBadRequest, "OUTSIDE_BUSINESS_HOURS"},
	{domain.ErrNotOnTheHour, http.StatusBadRequest, "PARTIAL_HOUR_SLOT"},
	{domain.ErrSlotUnavailable, http.StatusBadRequest, "SLOT_UNAVAILABLE"},
	{domain.ErrCancelNotScheduled, http.StatusBadRequest, "APPOINTMENT_NOT_ACTIVE"},
	{domain.ErrCancelPastAppointment, http.StatusBadRequest, "APPOINTMENT_IN_PAST"},
}

func RespondDomainError(w http.ResponseWriter, err error) {
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			RespondAppError(w, &AppError{Status: m.status, Code: m.code, Message: m.err.Error()})
			return
		}
	}
	slog.Error("unhandled domain error", "error", err)
	RespondAppError(w, ErrInternalError)
}
