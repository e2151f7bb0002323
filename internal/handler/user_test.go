package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendamentos-api/internal/domain"
)

type mockUserService struct {
	users   []domain.User
	user    *domain.User
	err     error
	gotName string
}

func (m *mockUserService) List(_ context.Context) []domain.User { return m.users }

func (m *mockUserService) GetByID(_ context.Context, id string) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) Create(_ context.Context, name, email, birthDate string) (*domain.User, error) {
	m.gotName = name
	return m.user, m.err
}

func (m *mockUserService) Update(_ context.Context, id, name, email, birthDate string) (*domain.User, error) {
	m.gotName = name
	return m.user, m.err
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateUserHandler(t *testing.T) {
	user := domain.NewUser("Maria Souza", "maria@exemplo.com", "1990-05-01")
	svc := &mockUserService{user: user}
	h := NewUserHandler(svc)

	body := `{"nome":"Maria Souza","email":"maria@exemplo.com","dataNascimento":"1990-05-01"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "Maria Souza", svc.gotName)

	data := resp.Data.(map[string]any)
	assert.Equal(t, user.ID, data["id"])
	assert.Equal(t, "maria@exemplo.com", data["email"])
}

func TestCreateUserHandlerBadBody(t *testing.T) {
	h := NewUserHandler(&mockUserService{})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestCreateUserHandlerValidationError(t *testing.T) {
	svc := &mockUserService{err: fmt.Errorf("CreateUser: %w", domain.ErrEmailTaken)}
	h := NewUserHandler(svc)

	body := `{"nome":"Maria Souza","email":"maria@exemplo.com","dataNascimento":"1990-05-01"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "EMAIL_TAKEN", resp.Error.Code)
	assert.Equal(t, "Email já cadastrado.", resp.Error.Message)
}

func TestGetUserHandlerNotFound(t *testing.T) {
	svc := &mockUserService{err: fmt.Errorf("GetByID: %w", domain.ErrUserNotFound)}
	h := NewUserHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Usuário não encontrado.", resp.Error.Message)
}

func TestListUsersHandlerEmpty(t *testing.T) {
	h := NewUserHandler(&mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"error":null}`, rec.Body.String())
}
