package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crickmart/backend/internal/hash"
	"github.com/crickmart/backend/internal/teams"
	"github.com/crickmart/backend/internal/tokens"
)

func TestRegister(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, "virat", "virat@example.com", "password")
	require.NoError(t, err)
	require.NotZero(t, res.User.ID)
	require.Equal(t, "virat", res.User.Name)
	require.True(t, teams.IsValid(res.User.AssignedTeam))

	// Password is stored hashed, never verbatim.
	require.NotEqual(t, "password", res.User.PasswordHash)
	require.True(t, hash.CheckPassword(res.User.PasswordHash, "password"))

	claims, err := tokens.SessionClaimsFromToken(res.Token, testSecret)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, res.User.ID, id)
	require.Equal(t, "virat@example.com", claims.Email)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	for _, tc := range []struct{ name, email, password string }{
		{"", "a@example.com", "pw"},
		{"a", "", "pw"},
		{"a", "a@example.com", ""},
	} {
		_, err := svc.Register(ctx, tc.name, tc.email, tc.password)
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, "virat", "virat@example.com", "password")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "impostor", "virat@example.com", "other")
	require.ErrorIs(t, err, ErrEmailTaken)

	// The original account is untouched.
	got, err := svc.Repo.UserByEmail(ctx, "virat@example.com")
	require.NoError(t, err)
	require.Equal(t, first.User.ID, got.ID)
	require.Equal(t, "virat", got.Name)
	require.True(t, hash.CheckPassword(got.PasswordHash, "password"))
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "rohit", "rohit@example.com", "password")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "rohit@example.com", "password")
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, res.User.ID)
	require.NotEmpty(t, res.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "rohit", "rohit@example.com", "password")
	require.NoError(t, err)

	// Wrong password and unknown email are indistinguishable.
	_, err = svc.Login(ctx, "rohit@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), "", "pw")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(context.Background(), "a@example.com", "")
	require.ErrorIs(t, err, ErrValidation)
}
