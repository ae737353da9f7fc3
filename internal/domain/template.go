package domain

import (
	"fmt"
	"strings"

	"github.com/mailsmith/mailsmith/pkg/emailbuilder"
)

// ImportTemplateRequest carries an HTML document to convert into the
// editable template model.
type ImportTemplateRequest struct {
	HTML string `json:"html"`
}

func (r *ImportTemplateRequest) Validate() error {
	if strings.TrimSpace(r.HTML) == "" {
		return fmt.Errorf("html is required")
	}
	return nil
}

// ImportTemplateResponse returns the parsed template
type ImportTemplateResponse struct {
	Template *emailbuilder.Template `json:"template"`
}

// ExportTemplateRequest carries a template to render as a standalone HTML
// email document.
type ExportTemplateRequest struct {
	Template *emailbuilder.Template `json:"template"`
}

func (r *ExportTemplateRequest) Validate() error {
	if r.Template == nil {
		return fmt.Errorf("template is required")
	}
	return nil
}

// StarterTemplateResponse returns a pre-built template to begin editing from
type StarterTemplateResponse struct {
	Template *emailbuilder.Template `json:"template"`
}

// UploadImageRequest carries an image file, base64-encoded, to validate
// and convert into a data URI for an image component.
type UploadImageRequest struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

func (r *UploadImageRequest) Validate() error {
	if strings.TrimSpace(r.Data) == "" {
		return fmt.Errorf("data is required")
	}
	return nil
}

// UploadImageResponse returns the validated image as a data URI
type UploadImageResponse struct {
	DataURI string `json:"dataUri"`
}
