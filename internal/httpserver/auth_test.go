package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crickmart/backend/internal/teams"
	"github.com/crickmart/backend/internal/transport"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/v1/register", map[string]string{
		"name": "virat", "email": "virat@example.com", "password": "password",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.User.ID)
	require.Equal(t, "virat", resp.User.Name)
	require.True(t, teams.IsValid(resp.User.AssignedTeam))
	require.NotEmpty(t, resp.Token)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "virat", "virat@example.com")

	rec := env.doJSON(t, http.MethodPost, "/api/v1/register", map[string]string{
		"name": "impostor", "email": "virat@example.com", "password": "other",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "already registered")
}

func TestRegisterEndpointMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/v1/register", map[string]string{
		"name": "virat", "email": "virat@example.com",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "rohit", "rohit@example.com")

	rec := env.doJSON(t, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "rohit@example.com", "password": "password",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "rohit", resp.User.Name)
	require.NotEmpty(t, resp.Token)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "rohit", "rohit@example.com")

	rec := env.doJSON(t, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "rohit@example.com", "password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown email gets the exact same answer.
	rec2 := env.doJSON(t, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "nobody@example.com", "password": "password",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec2.Code)
	require.JSONEq(t, rec.Body.String(), rec2.Body.String())
}
