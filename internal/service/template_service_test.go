package service

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailsmith/mailsmith/internal/domain"
	"github.com/mailsmith/mailsmith/pkg/emailbuilder"
	"github.com/mailsmith/mailsmith/pkg/logger"
)

func newTemplateServiceTest(t *testing.T) *TemplateService {
	return NewTemplateService(logger.NewTestLogger(t), 0)
}

func TestTemplateServiceImport(t *testing.T) {
	svc := newTemplateServiceTest(t)

	t.Run("round-trips an exported document", func(t *testing.T) {
		html := emailbuilder.Export(emailbuilder.StarterTemplate())

		resp, err := svc.Import(&domain.ImportTemplateRequest{HTML: html})
		require.NoError(t, err)
		require.NotNil(t, resp.Template)
		assert.Len(t, resp.Template.Flatten(), 6)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := svc.Import(&domain.ImportTemplateRequest{HTML: "  "})
		assert.Error(t, err)
	})
}

func TestTemplateServiceExport(t *testing.T) {
	svc := newTemplateServiceTest(t)

	t.Run("renders a document", func(t *testing.T) {
		html, err := svc.Export(&domain.ExportTemplateRequest{Template: emailbuilder.StarterTemplate()})
		require.NoError(t, err)
		assert.Contains(t, html, "<!DOCTYPE html>")
	})

	t.Run("missing template is rejected", func(t *testing.T) {
		_, err := svc.Export(&domain.ExportTemplateRequest{})
		assert.Error(t, err)
	})
}

func TestTemplateServiceUploadImage(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

	t.Run("valid image becomes a data URI", func(t *testing.T) {
		svc := newTemplateServiceTest(t)
		resp, err := svc.UploadImage(&domain.UploadImageRequest{
			Filename: "logo.png",
			Data:     base64.StdEncoding.EncodeToString(png),
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.DataURI, "data:image/png;base64,"))
	})

	t.Run("non-image payload is rejected", func(t *testing.T) {
		svc := newTemplateServiceTest(t)
		_, err := svc.UploadImage(&domain.UploadImageRequest{
			Filename: "notes.txt",
			Data:     base64.StdEncoding.EncodeToString([]byte("plain text, not pixels")),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidUpload)
	})

	t.Run("configured size cap is enforced", func(t *testing.T) {
		svc := NewTemplateService(logger.NewTestLogger(t), 4)
		_, err := svc.UploadImage(&domain.UploadImageRequest{
			Filename: "logo.png",
			Data:     base64.StdEncoding.EncodeToString(png),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidUpload)
	})

	t.Run("invalid base64 is rejected", func(t *testing.T) {
		svc := newTemplateServiceTest(t)
		_, err := svc.UploadImage(&domain.UploadImageRequest{Filename: "logo.png", Data: "%%%"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidUpload)
	})

	t.Run("empty data is rejected", func(t *testing.T) {
		svc := newTemplateServiceTest(t)
		_, err := svc.UploadImage(&domain.UploadImageRequest{Filename: "logo.png"})
		assert.Error(t, err)
	})
}

func TestTemplateServiceStarter(t *testing.T) {
	svc := newTemplateServiceTest(t)

	resp := svc.Starter()
	require.NotNil(t, resp.Template)

	types := make([]emailbuilder.ComponentType, 0)
	for _, c := range resp.Template.Flatten() {
		types = append(types, c.Type)
	}
	assert.Equal(t, []emailbuilder.ComponentType{
		emailbuilder.ComponentHeader,
		emailbuilder.ComponentHeading,
		emailbuilder.ComponentText,
		emailbuilder.ComponentButton,
		emailbuilder.ComponentSocial,
		emailbuilder.ComponentFooter,
	}, types)
}
