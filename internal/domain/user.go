package domain

import (
	"time"

	"github.com/google/uuid"
)

// BirthDateLayout is the calendar-date format accepted on the wire and kept in storage.
const BirthDateLayout = "2006-01-02"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	BirthDate string    `json:"dataNascimento"`
	CreatedAt time.Time `json:"dataCriacao"`
}

// NewUser assigns a fresh identifier and creation timestamp. The caller is
// responsible for validating and trimming the fields first.
func NewUser(name, email, birthDate string) *User {
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		BirthDate: birthDate,
		CreatedAt: time.Now(),
	}
}
