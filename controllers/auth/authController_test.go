package authController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"opora/config"
	"opora/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthApp(t *testing.T, adminPassword string) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		SessionSecret: "testsecret",
		AdminEmail:    "admin@example.org",
		AdminPassword: adminPassword,
	}

	app := fiber.New()
	app.Post("/auth/login", Login)
	app.Get("/guarded", middleware.AdminMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonOk(c, fiber.StatusOK)
	})
	return app
}

func login(t *testing.T, app *fiber.App, email, password string) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(fiber.Map{"email": email, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp, parsed
}

func TestLoginPlaintextPassword(t *testing.T) {
	app := buildAuthApp(t, "adminpass")

	resp, body := login(t, app, "admin@example.org", "adminpass")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	token, ok := body["token"].(string)
	require.True(t, ok)

	// The issued token opens admin routes
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	guarded, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, guarded.StatusCode)
}

func TestLoginBcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.MinCost)
	require.NoError(t, err)
	app := buildAuthApp(t, string(hash))

	resp, body := login(t, app, "admin@example.org", "adminpass")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	// The stored hash itself is not accepted as the password
	resp, _ = login(t, app, "admin@example.org", string(hash))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := buildAuthApp(t, "adminpass")

	resp, body := login(t, app, "admin@example.org", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["error"])

	resp, _ = login(t, app, "someone@else.org", "adminpass")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = login(t, app, "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginDisabledWithoutAdminEmail(t *testing.T) {
	app := buildAuthApp(t, "adminpass")
	config.AppConfig.AdminEmail = ""

	resp, _ := login(t, app, "admin@example.org", "adminpass")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
