package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DateTimeLayout is the minute-precision format used on the wire and in storage
// for appointment slots, e.g. "2024-01-20T09:00".
const DateTimeLayout = "2006-01-02T15:04"

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "AGENDADO"
	StatusCancelled AppointmentStatus = "CANCELADO"
)

type ServiceType string

const (
	Servico1 ServiceType = "SERVICO1"
	Servico2 ServiceType = "SERVICO2"
	Servico3 ServiceType = "SERVICO3"
	Servico4 ServiceType = "SERVICO4"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case Servico1, Servico2, Servico3, Servico4:
		return true
	}
	return false
}

// NormalizeService upper-cases client input so the stored value is always canonical.
func NormalizeService(raw string) ServiceType {
	return ServiceType(strings.ToUpper(strings.TrimSpace(raw)))
}

type Appointment struct {
	ID       string            `json:"idAgendamento"`
	UserID   string            `json:"idUsuario"`
	Service  ServiceType       `json:"servico"`
	DateTime string            `json:"dataHora"`
	Status   AppointmentStatus `json:"status"`
}

// NewAppointment assigns a fresh identifier and starts the appointment as scheduled.
func NewAppointment(userID string, service ServiceType, dateTime string) *Appointment {
	return &Appointment{
		ID:       uuid.NewString(),
		UserID:   userID,
		Service:  service,
		DateTime: dateTime,
		Status:   StatusScheduled,
	}
}
