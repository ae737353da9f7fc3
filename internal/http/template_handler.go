package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mailsmith/mailsmith/internal/domain"
	"github.com/mailsmith/mailsmith/pkg/emailbuilder"
	"github.com/mailsmith/mailsmith/pkg/logger"
)

// TemplateServiceInterface is the template operations the handler depends on
type TemplateServiceInterface interface {
	Import(req *domain.ImportTemplateRequest) (*domain.ImportTemplateResponse, error)
	Export(req *domain.ExportTemplateRequest) (string, error)
	Starter() *domain.StarterTemplateResponse
	UploadImage(req *domain.UploadImageRequest) (*domain.UploadImageResponse, error)
}

// TemplateHandler handles HTTP requests for template conversion
type TemplateHandler struct {
	templateService TemplateServiceInterface
	logger          logger.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService TemplateServiceInterface, logger logger.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// RegisterRoutes registers the RPC-style template endpoints
func (h *TemplateHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/template.import", h.handleImport)
	mux.HandleFunc("/api/template.export", h.handleExport)
	mux.HandleFunc("/api/template.starter", h.handleStarter)
	mux.HandleFunc("/api/template.upload-image", h.handleUploadImage)
}

func (h *TemplateHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.ImportTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.templateService.Import(&req)
	if err != nil {
		if errors.Is(err, domain.ErrParseFailed) {
			writeError(w, http.StatusBadRequest, "The HTML document could not be parsed as an email template")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleExport returns the rendered document as a file download rather than
// a JSON envelope.
func (h *TemplateHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.ExportTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	html, err := h.templateService.Export(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", emailbuilder.ExportFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (h *TemplateHandler) handleStarter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.templateService.Starter())
}

func (h *TemplateHandler) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.UploadImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.templateService.UploadImage(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
