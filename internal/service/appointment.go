package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agendamentos-api/internal/domain"
	"agendamentos-api/internal/logging"
)

// Business hours: bookable slots run hourly from 09:00 through 17:00 inclusive.
const (
	openingHour = 9
	closingHour = 17
)

type appointmentStore interface {
	LoadAll() []domain.Appointment
	Mutate(fn func(appointments []domain.Appointment) ([]domain.Appointment, error)) error
}

type userChecker interface {
	Exists(ctx context.Context, id string) bool
}

// AppointmentService validates booking requests, generates the available-slot
// grid and enforces the cancellation rules.
type AppointmentService struct {
	appointments appointmentStore
	users        userChecker
}

func NewAppointmentService(appointments appointmentStore, users userChecker) *AppointmentService {
	return &AppointmentService{appointments: appointments, users: users}
}

func (s *AppointmentService) List(ctx context.Context) []domain.Appointment {
	return s.appointments.LoadAll()
}

func (s *AppointmentService) ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	if !s.users.Exists(ctx, userID) {
		return nil, fmt.Errorf("ListByUser: %w", domain.ErrSchedulingUserNotFound)
	}

	var out []domain.Appointment
	for _, a := range s.appointments.LoadAll() {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ListByUser: %w", domain.ErrNoUserAppointments)
	}
	return out, nil
}

// AvailableSlots returns the free slot times for a date, formatted in the wire
// layout and in chronological order. An empty result is not an error here; the
// handler decides how to present it.
func (s *AppointmentService) AvailableSlots(ctx context.Context, date time.Time) ([]string, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("AvailableSlots: %w", domain.ErrDateRequired)
	}

	appointments := s.appointments.LoadAll()
	now := time.Now()
	// Slots at the date's midnight pass the filter unconditionally. The grid
	// starts at 09:00 so the condition never fires, but it is kept from the
	// legacy behavior until the business rule is clarified.
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var available []string
	for _, slot := range daySlots(date) {
		if !slot.Equal(midnight) && !slot.After(now) {
			continue
		}
		key := slot.Format(domain.DateTimeLayout)
		if slotTaken(appointments, key) {
			continue
		}
		available = append(available, key)
	}
	return available, nil
}

func (s *AppointmentService) Create(ctx context.Context, userID string, service domain.ServiceType, dateTime string) (*domain.Appointment, error) {
	if !s.users.Exists(ctx, userID) {
		return nil, fmt.Errorf("CreateAppointment: %w", domain.ErrSchedulingUserNotFound)
	}
	if strings.TrimSpace(userID) == "" || service == "" || strings.TrimSpace(dateTime) == "" {
		return nil, fmt.Errorf("CreateAppointment: %w", domain.ErrAppointmentFieldsRequired)
	}
	if !service.IsValid() {
		return nil, fmt.Errorf("CreateAppointment: %w", domain.ErrServiceInvalid)
	}

	when, err := parseDateTime(dateTime)
	if err != nil {
		return nil, fmt.Errorf("CreateAppointment: %w", err)
	}
	if !when.After(time.Now()) {
		return nil, fmt.Errorf("CreateAppointment: %w", domain.ErrPastDateTime)
	}
	if err := validateBusinessHours(when); err != nil {
		return nil, fmt.Errorf("CreateAppointment: %w", err)
	}

	var created *domain.Appointment
	err = s.appointments.Mutate(func(appointments []domain.Appointment) ([]domain.Appointment, error) {
		if err := checkSlotFree(appointments, when); err != nil {
			return nil, err
		}
		created = domain.NewAppointment(strings.TrimSpace(userID), service, when.Format(domain.DateTimeLayout))
		return append(appointments, *created), nil
	})
	if err != nil {
		return nil, fmt.Errorf("CreateAppointment: %w", err)
	}

	logging.FromContext(ctx).Info("appointment created",
		"appointment_id", created.ID,
		"user_id", created.UserID,
		"slot", created.DateTime,
	)
	return created, nil
}

func (s *AppointmentService) Cancel(ctx context.Context, id string) error {
	err := s.appointments.Mutate(func(appointments []domain.Appointment) ([]domain.Appointment, error) {
		for i := range appointments {
			if appointments[i].ID != id {
				continue
			}
			when, err := parseDateTime(appointments[i].DateTime)
			if err != nil {
				return nil, err
			}
			if !when.After(time.Now()) {
				return nil, domain.ErrCancelPastAppointment
			}
			if appointments[i].Status != domain.StatusScheduled {
				return nil, domain.ErrCancelNotScheduled
			}
			appointments[i].Status = domain.StatusCancelled
			return appointments, nil
		}
		return nil, domain.ErrAppointmentNotFound
	})
	if err != nil {
		return fmt.Errorf("CancelAppointment: %w", err)
	}

	logging.FromContext(ctx).Info("appointment cancelled", "appointment_id", id)
	return nil
}

// daySlots generates the hourly business-day grid for a date: 09:00..17:00,
// nine slots.
func daySlots(date time.Time) []time.Time {
	first := time.Date(date.Year(), date.Month(), date.Day(), openingHour, 0, 0, 0, date.Location())
	last := time.Date(date.Year(), date.Month(), date.Day(), closingHour, 0, 0, 0, date.Location())

	var slots []time.Time
	for t := first; !t.After(last); t = t.Add(time.Hour) {
		slots = append(slots, t)
	}
	return slots
}

func parseDateTime(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateTimeLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, domain.ErrDateTimeFormat
	}
	return t, nil
}

func validateBusinessHours(when time.Time) error {
	minuteOfDay := when.Hour()*60 + when.Minute()
	if minuteOfDay < openingHour*60 || minuteOfDay > closingHour*60 {
		return domain.ErrOutsideBusinessHours
	}
	if when.Minute() != 0 || when.Second() != 0 {
		return domain.ErrNotOnTheHour
	}
	return nil
}

// checkSlotFree scans in reverse creation order. A scheduled appointment at
// the same minute blocks the slot; a cancelled one frees it and ends the scan.
func checkSlotFree(appointments []domain.Appointment, when time.Time) error {
	target := when.Truncate(time.Minute)
	for i := len(appointments) - 1; i >= 0; i-- {
		existing, err := parseDateTime(appointments[i].DateTime)
		if err != nil {
			return err
		}
		if !existing.Truncate(time.Minute).Equal(target) {
			continue
		}
		if appointments[i].Status == domain.StatusScheduled {
			return domain.ErrSlotUnavailable
		}
		return nil
	}
	return nil
}

func slotTaken(appointments []domain.Appointment, key string) bool {
	for _, a := range appointments {
		if a.DateTime == key && a.Status == domain.StatusScheduled {
			return true
		}
	}
	return false
}
