package controllers

import (
	"context"
	"testing"

	"fluidos/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAna(t *testing.T, env *testEnv) {
	t.Helper()
	status, body := env.postJSON(t, "/registro", map[string]string{
		"nombre":   "Ana",
		"correo":   "ana@example.com",
		"password": "secreto123",
	})
	require.Equal(t, fiber.StatusOK, status, string(body))
}

func TestRegister(t *testing.T) {
	env := setupTestEnv(t)

	status, body := env.postJSON(t, "/registro", map[string]string{
		"nombre":   "Ana",
		"correo":   "ana@example.com",
		"password": "secreto123",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, msgRegistered, decodeMap(t, body)["mensaje"])

	user, err := env.store.Users().FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.NotEqual(t, "secreto123", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "secreto123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	registerAna(t, env)

	status, body := env.postJSON(t, "/registro", map[string]string{
		"nombre":   "Impostora",
		"correo":   "ana@example.com",
		"password": "otra",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, msgEmailTaken, decodeMap(t, body)["detail"])

	user, err := env.store.Users().FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "secreto123"))
}

func TestRegisterMissingField(t *testing.T) {
	env := setupTestEnv(t)

	status, body := env.postJSON(t, "/registro", map[string]string{
		"nombre": "Ana",
		"correo": "ana@example.com",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	details := decodeMap(t, body)["details"].(map[string]interface{})
	assert.Equal(t, "required", details["password"])
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	registerAna(t, env)

	status, body := env.postJSON(t, "/login", map[string]string{
		"correo":   "ana@example.com",
		"password": "secreto123",
	})
	require.Equal(t, fiber.StatusOK, status, string(body))

	result := decodeMap(t, body)
	assert.Equal(t, msgLoggedIn, result["mensaje"])
	assert.Equal(t, map[string]interface{}{
		"nombre": "Ana",
		"correo": "ana@example.com",
	}, result["usuario"])

	claims, err := utils.ParseJWTToken(result["token"].(string), env.cfg)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotZero(t, claims.UserID)

	user, err := env.store.Users().FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NotContains(t, string(body), user.PasswordHash)
	assert.NotContains(t, string(body), "$2a$")
}

func TestLoginFailures(t *testing.T) {
	env := setupTestEnv(t)
	registerAna(t, env)

	tests := []struct {
		name   string
		input  map[string]string
		status int
		detail string
	}{
		{
			name:   "Wrong Password",
			input:  map[string]string{"correo": "ana@example.com", "password": "incorrecta"},
			status: fiber.StatusBadRequest,
			detail: msgWrongPassword,
		},
		{
			name:   "Unknown Email",
			input:  map[string]string{"correo": "nadie@example.com", "password": "secreto123"},
			status: fiber.StatusBadRequest,
			detail: msgEmailNotFound,
		},
		{
			name:   "Missing Password",
			input:  map[string]string{"correo": "ana@example.com"},
			status: fiber.StatusUnprocessableEntity,
			detail: "Datos inválidos.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.postJSON(t, "/login", tt.input)
			assert.Equal(t, tt.status, status)
			result := decodeMap(t, body)
			assert.Equal(t, tt.detail, result["detail"])
			assert.NotContains(t, result, "usuario")
			assert.NotContains(t, result, "token")
		})
	}
}
