package service

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/mailsmith/mailsmith/internal/domain"
	"github.com/mailsmith/mailsmith/pkg/logger"
	"github.com/mailsmith/mailsmith/pkg/mailer"
)

// EmailService delivers composed messages through the configured mailer
type EmailService struct {
	mailer mailer.Mailer
	logger logger.Logger
}

func NewEmailService(m mailer.Mailer, log logger.Logger) *EmailService {
	return &EmailService{
		mailer: m,
		logger: log,
	}
}

var (
	htmlTagPattern = regexp.MustCompile(`<[a-zA-Z][^>]*>`)
	dataURIPattern = regexp.MustCompile(`src="data:(image/[a-zA-Z0-9.+-]+);base64,([A-Za-z0-9+/=\s]+?)"`)
	stripPattern   = regexp.MustCompile(`<[^>]*>`)
)

// Send validates the request and delivers the message to each recipient in
// turn. A failure for one recipient does not stop the rest; the response
// carries per-recipient counts.
func (s *EmailService) Send(req *domain.SendEmailRequest) (*domain.SendEmailResponse, error) {
	recipients, err := req.Validate()
	if err != nil {
		return nil, err
	}

	htmlBody, plainBody, inline := s.prepareBodies(req.Message)

	senderName := req.SenderName
	if req.ShowSenderEmail && req.SenderEmail != "" {
		senderName = fmt.Sprintf("%s (%s)", req.SenderName, req.SenderEmail)
	}

	resp := &domain.SendEmailResponse{}
	for _, to := range recipients {
		msg := &mailer.Message{
			To:          to,
			SenderName:  senderName,
			SenderEmail: req.SenderEmail,
			Subject:     req.Subject,
			HTMLBody:    htmlBody,
			PlainBody:   plainBody,
			Inline:      inline,
		}
		if err := s.mailer.Send(msg); err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", to, err))
			s.logger.WithFields(map[string]interface{}{
				"recipient": to,
				"error":     err.Error(),
			}).Error("Failed to send email")
			continue
		}
		resp.Sent++
		s.logger.WithField("recipient", to).Info("Email sent")
	}

	resp.Success = resp.Failed == 0
	return resp, nil
}

// prepareBodies decides whether the message is HTML, derives the plain-text
// alternative and converts embedded data-URI images into cid-referenced
// inline attachments.
func (s *EmailService) prepareBodies(message string) (html, plain string, inline []mailer.InlinePart) {
	if !htmlTagPattern.MatchString(message) {
		return "", message, nil
	}

	html, inline = extractInlineImages(message)
	plain = plainTextAlternative(html)
	return html, plain, inline
}

// extractInlineImages rewrites data-URI image sources into cid: references.
// The cid is derived from the image content, so the same image embedded
// twice yields one attachment.
func extractInlineImages(html string) (string, []mailer.InlinePart) {
	var parts []mailer.InlinePart
	seen := map[string]bool{}

	rewritten := dataURIPattern.ReplaceAllStringFunc(html, func(match string) string {
		groups := dataURIPattern.FindStringSubmatch(match)
		contentType := groups[1]
		payload := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
				return -1
			}
			return r
		}, groups[2])

		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Leave undecodable data URIs alone rather than drop the image.
			return match
		}

		cid := contentID(data)
		if !seen[cid] {
			seen[cid] = true
			parts = append(parts, mailer.InlinePart{
				CID:         cid,
				Filename:    fmt.Sprintf("%s.%s", cid, fileExtension(contentType)),
				ContentType: contentType,
				Data:        data,
			})
		}
		return fmt.Sprintf(`src="cid:%s"`, cid)
	})

	return rewritten, parts
}

// contentID derives a stable content id from the attachment bytes
func contentID(data []byte) string {
	sum := sha256.Sum256(data)
	return "img-" + hex.EncodeToString(sum[:])[:16]
}

func fileExtension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/svg+xml":
		return "svg"
	default:
		if idx := strings.LastIndex(contentType, "/"); idx >= 0 {
			return contentType[idx+1:]
		}
		return "bin"
	}
}

// plainTextAlternative produces a rough text rendition of an HTML body
func plainTextAlternative(html string) string {
	text := html
	for _, tag := range []string{"</p>", "</h1>", "</h2>", "</h3>", "</tr>", "<br>", "<br/>", "<br />"} {
		text = strings.ReplaceAll(text, tag, tag+"\n")
	}
	text = stripPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
