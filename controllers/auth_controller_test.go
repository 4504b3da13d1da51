package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldreach/config"
	"coldreach/repository"
	"coldreach/utils"
)

func newAuthTestApp(t *testing.T) (*fiber.App, *repository.MemoryUserRepository) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	users := repository.NewMemoryUserRepository()
	ac := NewAuthController(users, log.New(io.Discard, "", 0))

	app := fiber.New()
	app.Post("/auth/register", ac.Register)
	app.Post("/auth/login", ac.Login)
	return app, users
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRegisterCreatesUserAndIssuesToken(t *testing.T) {
	app, users := newAuthTestApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"firstName": "Sara",
		"lastName":  "Lin",
		"email":     "sara@acme.io",
		"password":  "correct-horse",
		"company":   "Acme",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "User created successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user, err := users.FindByEmail("sara@acme.io")
	require.NoError(t, err)
	assert.Equal(t, "Sara", user.FirstName)
	assert.Equal(t, "user", user.Role)
	assert.True(t, user.IsActive)
	// The stored hash must not be the plaintext password
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	// Token parses back to the registered user
	claims, err := utils.ParseJWTToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "sara@acme.io", claims.Email)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	app, _ := newAuthTestApp(t)

	first := postJSON(t, app, "/auth/register", fiber.Map{
		"firstName": "Sara",
		"lastName":  "Lin",
		"email":     "sara@acme.io",
		"password":  "correct-horse",
	})
	require.Equal(t, fiber.StatusCreated, first.StatusCode)

	second := postJSON(t, app, "/auth/register", fiber.Map{
		"firstName": "Other",
		"lastName":  "Person",
		"email":     "sara@acme.io",
		"password":  "different-pass",
	})

	assert.Equal(t, fiber.StatusConflict, second.StatusCode)
	body := decodeBody(t, second)
	assert.Equal(t, "User already exists with this email", body["error"])
}

func TestRegisterValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload fiber.Map
	}{
		{"missing password", fiber.Map{
			"firstName": "Sara", "lastName": "Lin", "email": "sara@acme.io",
		}},
		{"short password", fiber.Map{
			"firstName": "Sara", "lastName": "Lin", "email": "sara@acme.io", "password": "short",
		}},
		{"bad email", fiber.Map{
			"firstName": "Sara", "lastName": "Lin", "email": "not-an-email", "password": "correct-horse",
		}},
		{"missing first name", fiber.Map{
			"lastName": "Lin", "email": "sara@acme.io", "password": "correct-horse",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, users := newAuthTestApp(t)

			resp := postJSON(t, app, "/auth/register", tt.payload)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			// A rejected registration must not create the user
			exists, err := users.ExistsByEmail("sara@acme.io")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestLoginRoundTrip(t *testing.T) {
	app, _ := newAuthTestApp(t)
	postJSON(t, app, "/auth/register", fiber.Map{
		"firstName": "Sara",
		"lastName":  "Lin",
		"email":     "sara@acme.io",
		"password":  "correct-horse",
	})

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "sara@acme.io",
		"password": "correct-horse",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newAuthTestApp(t)
	postJSON(t, app, "/auth/register", fiber.Map{
		"firstName": "Sara",
		"lastName":  "Lin",
		"email":     "sara@acme.io",
		"password":  "correct-horse",
	})

	wrongPass := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "sara@acme.io",
		"password": "wrong-pass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, wrongPass.StatusCode)

	unknownUser := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "nobody@acme.io",
		"password": "correct-horse",
	})
	assert.Equal(t, fiber.StatusUnauthorized, unknownUser.StatusCode)
}
