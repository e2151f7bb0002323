package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"agendamentos-api/internal/domain"
	"agendamentos-api/internal/logging"
)

type userService interface {
	List(ctx context.Context) []domain.User
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, name, email, birthDate string) (*domain.User, error)
	Update(ctx context.Context, id, name, email, birthDate string) (*domain.User, error)
}

type UserHandler struct {
	users userService
}

func NewUserHandler(users userService) *UserHandler {
	return &UserHandler{users: users}
}

type userRequest struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
}

type userDTO struct {
	ID             string    `json:"id"`
	Nome           string    `json:"nome"`
	Email          string    `json:"email"`
	DataNascimento string    `json:"dataNascimento"`
	DataCriacao    time.Time `json:"dataCriacao"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:             u.ID,
		Nome:           u.Name,
		Email:          u.Email,
		DataNascimento: u.BirthDate,
		DataCriacao:    u.CreatedAt,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.users.List(r.Context())

	dtos := make([]userDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	RespondSuccess(w, http.StatusOK, dtos)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toUserDTO(user))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	user, err := h.users.Create(r.Context(), req.Nome, req.Email, req.DataNascimento)
	if err != nil {
		logging.FromContext(r.Context()).Warn("user creation rejected", "error", err)
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, toUserDTO(user))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	user, err := h.users.Update(r.Context(), r.PathValue("id"), req.Nome, req.Email, req.DataNascimento)
	if err != nil {
		logging.FromContext(r.Context()).Warn("user update rejected", "error", err)
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toUserDTO(user))
}
