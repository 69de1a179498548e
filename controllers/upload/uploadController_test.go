package uploadController

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"opora/config"
	"opora/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUploadApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		SessionSecret: "testsecret",
		UploadMaxMB:   8,
		UploadDir:     t.TempDir(),
	}

	app := fiber.New()
	app.Post("/api/upload", middleware.AdminMiddleware, UploadImage)
	return app
}

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func upload(t *testing.T, app *fiber.App, token, filename, contentType string, data []byte) (*http.Response, map[string]interface{}) {
	t.Helper()

	body, formContentType := multipartBody(t, filename, contentType, data)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", formContentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestUploadRequiresAdmin(t *testing.T) {
	app := buildUploadApp(t)

	resp, body := upload(t, app, "", "photo.png", "image/png", []byte("png-bytes"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["error"])
}

func TestUploadStoresImage(t *testing.T) {
	app := buildUploadApp(t)
	token, err := middleware.GenerateAdminJWT("admin@example.org")
	require.NoError(t, err)

	resp, body := upload(t, app, token, "photo.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	url, ok := body["url"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(url, "/uploads/"), "url %q", url)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The generated name is random, not the client-supplied one
	assert.NotContains(t, url, "photo")

	stored := filepath.Join(config.AppConfig.UploadDir, strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestUploadRejectsNonImage(t *testing.T) {
	app := buildUploadApp(t)
	token, err := middleware.GenerateAdminJWT("admin@example.org")
	require.NoError(t, err)

	resp, body := upload(t, app, token, "notes.txt", "text/plain", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_FILE_TYPE", body["error"])
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	app := buildUploadApp(t)
	config.AppConfig.UploadMaxMB = 0 // every non-empty file is too large
	token, err := middleware.GenerateAdminJWT("admin@example.org")
	require.NoError(t, err)

	resp, body := upload(t, app, token, "photo.png", "image/png", []byte("png-bytes"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "FILE_TOO_LARGE", body["error"])
}

func TestUploadUnknownExtensionFallsBackToPng(t *testing.T) {
	app := buildUploadApp(t)
	token, err := middleware.GenerateAdminJWT("admin@example.org")
	require.NoError(t, err)

	resp, body := upload(t, app, token, "photo.tiff", "image/unknown", []byte("bytes"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	url := body["url"].(string)
	assert.True(t, strings.HasSuffix(url, ".png"), "url %q", url)
}
