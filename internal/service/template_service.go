package service

import (
	"encoding/base64"
	"fmt"

	"github.com/mailsmith/mailsmith/internal/domain"
	"github.com/mailsmith/mailsmith/pkg/emailbuilder"
	"github.com/mailsmith/mailsmith/pkg/logger"
)

// TemplateService converts templates between the editable model and
// standalone HTML documents, and validates image uploads for them.
type TemplateService struct {
	logger        logger.Logger
	maxImageBytes int64
}

// NewTemplateService creates the service. maxImageBytes <= 0 uses the
// builder's default upload cap.
func NewTemplateService(log logger.Logger, maxImageBytes int64) *TemplateService {
	return &TemplateService{logger: log, maxImageBytes: maxImageBytes}
}

// Import parses an HTML document into the template model. A parse failure
// returns ErrParseFailed and no template.
func (s *TemplateService) Import(req *domain.ImportTemplateRequest) (*domain.ImportTemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := emailbuilder.Parse(req.HTML)
	if err != nil {
		s.logger.WithField("error", err.Error()).Warn("Template import failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailed, err)
	}

	s.logger.WithField("components", len(t.Flatten())).Info("Template imported")
	return &domain.ImportTemplateResponse{Template: t}, nil
}

// Export renders a template as a standalone email HTML document
func (s *TemplateService) Export(req *domain.ExportTemplateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return emailbuilder.Export(req.Template), nil
}

// Starter returns the pre-built welcome template
func (s *TemplateService) Starter() *domain.StarterTemplateResponse {
	return &domain.StarterTemplateResponse{Template: emailbuilder.StarterTemplate()}
}

// UploadImage validates an uploaded image and returns it as a data URI.
// Rejected uploads return ErrInvalidUpload.
func (s *TemplateService) UploadImage(req *domain.UploadImageRequest) (*domain.UploadImageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: data is not valid base64", domain.ErrInvalidUpload)
	}

	uri, err := emailbuilder.ImageDataURI(req.Filename, data, s.maxImageBytes)
	if err != nil {
		s.logger.WithField("filename", req.Filename).WithField("error", err.Error()).Warn("Image upload rejected")
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidUpload, err)
	}

	s.logger.WithField("filename", req.Filename).WithField("bytes", len(data)).Info("Image uploaded")
	return &domain.UploadImageResponse{DataURI: uri}, nil
}
