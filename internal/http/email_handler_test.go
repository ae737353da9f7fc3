package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailsmith/mailsmith/internal/domain"
	"github.com/mailsmith/mailsmith/pkg/logger"
)

// stubEmailService implements EmailServiceInterface for handler tests
type stubEmailService struct {
	lastReq *domain.SendEmailRequest
	resp    *domain.SendEmailResponse
	err     error
}

func (s *stubEmailService) Send(req *domain.SendEmailRequest) (*domain.SendEmailResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func newEmailMux(stub *stubEmailService, t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	NewEmailHandler(stub, logger.NewTestLogger(t)).RegisterRoutes(mux)
	return mux
}

func TestEmailSendEndpoint(t *testing.T) {
	t.Run("forwards the request and returns stats", func(t *testing.T) {
		stub := &stubEmailService{resp: &domain.SendEmailResponse{Success: true, Sent: 2}}
		mux := newEmailMux(stub, t)

		rec := postJSON(t, mux, "/api/email.send", domain.SendEmailRequest{
			Recipients: "a@example.com,b@example.com",
			Subject:    "Hello",
			Message:    "<p>Hi</p>",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp domain.SendEmailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Sent)
		require.NotNil(t, stub.lastReq)
		assert.Equal(t, "Hello", stub.lastReq.Subject)
	})

	t.Run("service error becomes 400", func(t *testing.T) {
		stub := &stubEmailService{err: fmt.Errorf("invalid recipient email: nope")}
		mux := newEmailMux(stub, t)

		rec := postJSON(t, mux, "/api/email.send", domain.SendEmailRequest{Subject: "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid recipient email")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mux := newEmailMux(&stubEmailService{}, t)
		req := httptest.NewRequest(http.MethodPost, "/api/email.send", bytes.NewReader([]byte("nope")))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GET is rejected", func(t *testing.T) {
		mux := newEmailMux(&stubEmailService{}, t)
		req := httptest.NewRequest(http.MethodGet, "/api/email.send", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
