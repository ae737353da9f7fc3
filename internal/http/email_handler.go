package http

import (
	"net/http"

	"github.com/mailsmith/mailsmith/internal/domain"
	"github.com/mailsmith/mailsmith/pkg/logger"
)

// EmailServiceInterface is the email operations the handler depends on
type EmailServiceInterface interface {
	Send(req *domain.SendEmailRequest) (*domain.SendEmailResponse, error)
}

// EmailHandler handles HTTP requests for email operations
type EmailHandler struct {
	emailService EmailServiceInterface
	logger       logger.Logger
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService EmailServiceInterface, logger logger.Logger) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
		logger:       logger,
	}
}

// RegisterRoutes registers the RPC-style email endpoints
func (h *EmailHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/email.send", h.handleSend)
}

func (h *EmailHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.SendEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.emailService.Send(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
