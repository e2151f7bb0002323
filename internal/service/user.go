package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"agendamentos-api/internal/domain"
	"agendamentos-api/internal/logging"
)

var (
	doubleSpaceRe = regexp.MustCompile(`\s{2,}`)
	nameRe        = regexp.MustCompile(`^[ A-Za-z]+$`)
	emailRe       = regexp.MustCompile(`^\s*[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\s*$`)
)

type userStore interface {
	LoadAll() []domain.User
	Mutate(fn func(users []domain.User) ([]domain.User, error)) error
}

// UserService is the user directory: listing, lookup, registration and updates
// over the stored user records.
type UserService struct {
	users userStore
}

func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) []domain.User {
	return s.users.LoadAll()
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range s.users.LoadAll() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("GetByID: %w", domain.ErrUserNotFound)
}

// Exists reports whether a user with the given id is registered. The scheduler
// relies on this before accepting bookings.
func (s *UserService) Exists(ctx context.Context, id string) bool {
	for _, u := range s.users.LoadAll() {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (s *UserService) Create(ctx context.Context, name, email, birthDate string) (*domain.User, error) {
	var created *domain.User

	err := s.users.Mutate(func(users []domain.User) ([]domain.User, error) {
		if err := requireUserFields(name, email, birthDate); err != nil {
			return nil, err
		}
		if emailRegistered(users, email, "") {
			return nil, domain.ErrEmailTaken
		}
		if err := validateNameEmail(name, email); err != nil {
			return nil, err
		}
		birth, err := parseBirthDate(birthDate)
		if err != nil {
			return nil, err
		}

		created = domain.NewUser(strings.TrimSpace(name), strings.TrimSpace(email), birth)
		return append(users, *created), nil
	})
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}

	logging.FromContext(ctx).Info("user created", "user_id", created.ID)
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id, name, email, birthDate string) (*domain.User, error) {
	var updated *domain.User

	err := s.users.Mutate(func(users []domain.User) ([]domain.User, error) {
		idx := -1
		for i := range users {
			if users[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.ErrUserNotFound
		}

		if err := requireUserFields(name, email, birthDate); err != nil {
			return nil, err
		}
		if err := validateNameEmail(name, email); err != nil {
			return nil, err
		}
		if emailRegistered(users, email, id) {
			return nil, domain.ErrEmailTaken
		}
		birth, err := parseBirthDate(birthDate)
		if err != nil {
			return nil, err
		}

		users[idx].Name = strings.TrimSpace(name)
		users[idx].Email = strings.TrimSpace(email)
		users[idx].BirthDate = birth
		updated = &users[idx]
		return users, nil
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}

	logging.FromContext(ctx).Info("user updated", "user_id", updated.ID)
	return updated, nil
}

func requireUserFields(name, email, birthDate string) error {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(birthDate) == "" {
		return domain.ErrUserFieldsRequired
	}
	return nil
}

func validateNameEmail(name, email string) error {
	if doubleSpaceRe.MatchString(strings.TrimSpace(name)) {
		return domain.ErrNameDoubleSpaces
	}
	// ASCII letters only: accented names are rejected on purpose, matching the
	// documented registration rule.
	if !nameRe.MatchString(strings.TrimSpace(name)) {
		return domain.ErrNameInvalid
	}
	if !emailRe.MatchString(email) {
		return domain.ErrEmailInvalid
	}
	return nil
}

func parseBirthDate(birthDate string) (string, error) {
	t, err := time.Parse(domain.BirthDateLayout, strings.TrimSpace(birthDate))
	if err != nil {
		return "", domain.ErrBirthDateFormat
	}
	return t.Format(domain.BirthDateLayout), nil
}

// emailRegistered reports whether the email belongs to a user other than
// excludeID. Comparison is case-insensitive.
func emailRegistered(users []domain.User, email, excludeID string) bool {
	email = strings.TrimSpace(email)
	for _, u := range users {
		if u.ID != excludeID && strings.EqualFold(strings.TrimSpace(u.Email), email) {
			return true
		}
	}
	return false
}
