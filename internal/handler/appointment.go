package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"agendamentos-api/internal/domain"
	"agendamentos-api/internal/logging"
)

type appointmentService interface {
	List(ctx context.Context) []domain.Appointment
	ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error)
	AvailableSlots(ctx context.Context, date time.Time) ([]string, error)
	Create(ctx context.Context, userID string, service domain.ServiceType, dateTime string) (*domain.Appointment, error)
	Cancel(ctx context.Context, id string) error
}

type AppointmentHandler struct {
	appointments appointmentService
}

func NewAppointmentHandler(appointments appointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type createAppointmentRequest struct {
	IDUsuario string `json:"idUsuario"`
	Servico   string `json:"servico"`
	DataHora  string `json:"dataHora"`
}

type appointmentDTO struct {
	IDAgendamento string `json:"idAgendamento"`
	IDUsuario     string `json:"idUsuario"`
	Servico       string `json:"servico"`
	DataHora      string `json:"dataHora"`
	Status        string `json:"status"`
}

func toAppointmentDTO(a *domain.Appointment) appointmentDTO {
	return appointmentDTO{
		IDAgendamento: a.ID,
		IDUsuario:     a.UserID,
		Servico:       string(a.Service),
		DataHora:      a.DateTime,
		Status:        string(a.Status),
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments := h.appointments.List(r.Context())

	dtos := make([]appointmentDTO, len(appointments))
	for i := range appointments {
		dtos[i] = toAppointmentDTO(&appointments[i])
	}
	RespondSuccess(w, http.StatusOK, dtos)
}

func (h *AppointmentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointments.ListByUser(r.Context(), r.PathValue("userId"))
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	dtos := make([]appointmentDTO, len(appointments))
	for i := range appointments {
		dtos[i] = toAppointmentDTO(&appointments[i])
	}
	RespondSuccess(w, http.StatusOK, dtos)
}

// AvailableSlots answers GET /appointments/disponiveis?data=YYYY-MM-DD. An
// empty grid is a 404 at this boundary even though the service treats it as a
// valid outcome.
func (h *AppointmentHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if raw := r.URL.Query().Get("data"); raw != "" {
		parsed, err := time.ParseInLocation(domain.BirthDateLayout, raw, time.Local)
		if err == nil {
			date = parsed
		}
	}

	slots, err := h.appointments.AvailableSlots(r.Context(), date)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	if len(slots) == 0 {
		RespondAppError(w, ErrNoAvailableSlots)
		return
	}
	RespondSuccess(w, http.StatusOK, slots)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	// Service type is accepted case-insensitively and normalized here, so the
	// domain only ever sees the canonical form.
	appointment, err := h.appointments.Create(r.Context(), req.IDUsuario, domain.NormalizeService(req.Servico), req.DataHora)
	if err != nil {
		logging.FromContext(r.Context()).Warn("appointment rejected", "error", err)
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, toAppointmentDTO(appointment))
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.appointments.Cancel(r.Context(), r.PathValue("id")); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]string{
		"message": "Agendamento cancelado com sucesso.",
	})
}
