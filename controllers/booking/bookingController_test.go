package bookingController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"opora/config"
	"opora/database"
	"opora/middleware"
	"opora/models"
	bookingValidator "opora/validators/booking"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func buildBookingApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{SessionSecret: "testsecret"}

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BookingRequest{}))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/api/booking", bookingValidator.Booking(), SubmitBooking)

	adminGroup := app.Group("/api/admin/bookings", middleware.AdminMiddleware)
	adminGroup.Get("/", GetBookings)
	adminGroup.Delete("/:id", DeleteBooking)
	return app
}

func post(t *testing.T, app *fiber.App, body fiber.Map) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/booking", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSubmitBooking(t *testing.T) {
	app := buildBookingApp(t)

	resp := post(t, app, fiber.Map{
		"name":    "  Elena  ",
		"phone":   "+7 900 000-00-00",
		"email":   "elena@example.org",
		"message": "Please call after 18:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking models.BookingRequest
	require.NoError(t, database.Database.Db.First(&booking).Error)
	assert.Equal(t, "Elena", booking.Name, "name is trimmed before persisting")
	assert.Equal(t, "+7 900 000-00-00", booking.Phone)
}

func TestSubmitBookingValidation(t *testing.T) {
	app := buildBookingApp(t)

	// Missing phone
	resp := post(t, app, fiber.Map{"name": "Elena"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Malformed email
	resp = post(t, app, fiber.Map{"name": "Elena", "phone": "123", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.BookingRequest{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestBookingAdminListAndDelete(t *testing.T) {
	app := buildBookingApp(t)
	token, err := middleware.GenerateAdminJWT("admin@example.org")
	require.NoError(t, err)

	require.Equal(t, http.StatusCreated, post(t, app, fiber.Map{"name": "Elena", "phone": "123"}).StatusCode)

	// Listing is admin-only
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/bookings/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var items []models.BookingRequest
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 1)

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/bookings/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.BookingRequest{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
