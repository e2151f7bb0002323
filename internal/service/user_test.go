package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"agendamentos-api/internal/domain"
)

// memStore is an in-memory stand-in for the file-backed store.
type memStore[T any] struct {
	items   []T
	saveErr error
}

func (m *memStore[T]) LoadAll() []T { return m.items }

func (m *memStore[T]) Mutate(fn func(items []T) ([]T, error)) error {
	items, err := fn(m.items)
	if err != nil {
		return err
	}
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = items
	return nil
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		nome      string
		email     string
		birthDate string
		wantErr   error
	}{
		{
			name:      "valid user",
			nome:      "Maria Souza",
			email:     "maria@exemplo.com",
			birthDate: "1990-05-01",
		},
		{
			name:      "blank name",
			nome:      "   ",
			email:     "maria@exemplo.com",
			birthDate: "1990-05-01",
			wantErr:   domain.ErrUserFieldsRequired,
		},
		{
			name:      "blank email",
			nome:      "Maria Souza",
			email:     "",
			birthDate: "1990-05-01",
			wantErr:   domain.ErrUserFieldsRequired,
		},
		{
			name:      "blank birth date",
			nome:      "Maria Souza",
			email:     "maria@exemplo.com",
			birthDate: "",
			wantErr:   domain.ErrUserFieldsRequired,
		},
		{
			name:      "double spaces in name",
			nome:      "Nome  Com  Espacos",
			email:     "nome@exemplo.com",
			birthDate: "1990-05-01",
			wantErr:   domain.ErrNameDoubleSpaces,
		},
		{
			// Diacritics are rejected by the ASCII-only registration rule.
			name:      "accented name",
			nome:      "João",
			email:     "joao@exemplo.com",
			birthDate: "1990-05-01",
			wantErr:   domain.ErrNameInvalid,
		},
		{
			name:      "digits in name",
			nome:      "Maria 2",
			email:     "maria@exemplo.com",
			birthDate: "1990-05-01",
			wantErr:   domain.ErrNameInvalid,
		},
		{
			name:      "email without domain",
			nome:      "Maria Souza",
			email:     "maria@exemplo",
			birthDate: "1990-05-01",
			wantErr:   domain.ErrEmailInvalid,
		},
		{
			name:      "email with inner spaces",
			nome:      "Maria Souza",
			email:     "maria souza@exemplo.com",
			birthDate: "1990-05-01",
			wantErr:   domain.ErrEmailInvalid,
		},
		{
			name:      "unparseable birth date",
			nome:      "Maria Souza",
			email:     "maria@exemplo.com",
			birthDate: "01/05/1990",
			wantErr:   domain.ErrBirthDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(&memStore[domain.User]{})

			user, err := svc.Create(ctx, tt.nome, tt.email, tt.birthDate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, user.ID)
			require.False(t, user.CreatedAt.IsZero())
			require.Equal(t, tt.nome, user.Name)
		})
	}
}

func TestCreateUserDuplicateEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(&memStore[domain.User]{})

	_, err := svc.Create(ctx, "Maria Souza", "maria@exemplo.com", "1990-05-01")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Outra Maria", "MARIA@Exemplo.COM", "1991-06-02")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.ErrorContains(t, err, "Email já cadastrado.")
}

func TestCreateUserTrimsFields(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(&memStore[domain.User]{})

	user, err := svc.Create(ctx, "  Maria Souza ", " maria@exemplo.com ", " 1990-05-01 ")
	require.NoError(t, err)
	require.Equal(t, "Maria Souza", user.Name)
	require.Equal(t, "maria@exemplo.com", user.Email)
	require.Equal(t, "1990-05-01", user.BirthDate)
}

func TestListUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(&memStore[domain.User]{})

	for i := range 5 {
		_, err := svc.Create(ctx, "Maria Souza", fmt.Sprintf("maria%d@exemplo.com", i), "1990-05-01")
		require.NoError(t, err)
	}

	users := svc.List(ctx)
	require.Len(t, users, 5)
	for i, u := range users {
		require.NotEmpty(t, u.ID)
		require.Equal(t, "Maria Souza", u.Name)
		require.Equal(t, fmt.Sprintf("maria%d@exemplo.com", i), u.Email)
		require.Equal(t, "1990-05-01", u.BirthDate)
		require.False(t, u.CreatedAt.IsZero())
	}
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(&memStore[domain.User]{})

	created, err := svc.Create(ctx, "Maria Souza", "maria@exemplo.com", "1990-05-01")
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, got.Email)

	_, err = svc.GetByID(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(&memStore[domain.User]{})

	created, err := svc.Create(ctx, "Maria Souza", "maria@exemplo.com", "1990-05-01")
	require.NoError(t, err)

	require.True(t, svc.Exists(ctx, created.ID))
	require.False(t, svc.Exists(ctx, "nope"))
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(&memStore[domain.User]{})

	maria, err := svc.Create(ctx, "Maria Souza", "maria@exemplo.com", "1990-05-01")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Joana Lima", "joana@exemplo.com", "1985-12-24")
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "nope", "Maria Souza", "maria@exemplo.com", "1990-05-01")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("email collides with another user", func(t *testing.T) {
		_, err := svc.Update(ctx, maria.ID, "Maria Souza", "JOANA@exemplo.com", "1990-05-01")
		require.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("keeping own email is not a collision", func(t *testing.T) {
		updated, err := svc.Update(ctx, maria.ID, "Maria de Souza", "MARIA@exemplo.com", "1990-05-01")
		require.NoError(t, err)
		require.Equal(t, "Maria de Souza", updated.Name)
		require.Equal(t, "MARIA@exemplo.com", updated.Email)
	})

	t.Run("validations re-run on update", func(t *testing.T) {
		_, err := svc.Update(ctx, maria.ID, "Nome  Duplo", "maria@exemplo.com", "1990-05-01")
		require.ErrorIs(t, err, domain.ErrNameDoubleSpaces)
	})

	t.Run("update persists", func(t *testing.T) {
		got, err := svc.GetByID(ctx, maria.ID)
		require.NoError(t, err)
		require.Equal(t, "Maria de Souza", got.Name)
	})
}
