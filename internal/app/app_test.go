package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailsmith/mailsmith/config"
	"github.com/mailsmith/mailsmith/pkg/logger"
	"github.com/mailsmith/mailsmith/pkg/mailer"
)

func testApp(t *testing.T) *App {
	cfg, err := config.LoadWithOptions(config.LoadOptions{})
	require.NoError(t, err)

	a := NewApp(cfg,
		WithLogger(logger.NewTestLogger(t)),
		WithMailer(mailer.NewConsoleMailer()),
	)
	require.NoError(t, a.Initialize())
	return a
}

func TestAppInitialize(t *testing.T) {
	a := testApp(t)
	require.NotNil(t, a.Mux())

	t.Run("health endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		a.Mux().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("template routes are wired", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/template.starter", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		a.Mux().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"components"`)
	})

	t.Run("upload route enforces the configured size cap", func(t *testing.T) {
		cfg, err := config.LoadWithOptions(config.LoadOptions{})
		require.NoError(t, err)
		cfg.Upload.MaxImageBytes = 4

		capped := NewApp(cfg,
			WithLogger(logger.NewTestLogger(t)),
			WithMailer(mailer.NewConsoleMailer()),
		)
		require.NoError(t, capped.Initialize())

		png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
		body, err := json.Marshal(map[string]string{
			"filename": "logo.png",
			"data":     base64.StdEncoding.EncodeToString(png),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/template.upload-image", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		capped.Mux().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "exceeds limit")
	})

	t.Run("email route is wired", func(t *testing.T) {
		body := `{"recipients":"user@example.com","subject":"Hi","message":"Hello"}`
		req := httptest.NewRequest(http.MethodPost, "/api/email.send", strings.NewReader(body))
		rec := httptest.NewRecorder()
		a.Mux().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sent":1`)
	})
}

func TestAppShutdownBeforeStart(t *testing.T) {
	a := testApp(t)
	assert.NoError(t, a.Shutdown(context.Background()))
}
