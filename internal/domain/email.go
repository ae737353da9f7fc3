package domain

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
)

// SendEmailRequest is the payload of the email.send endpoint. Recipients is
// a comma-separated address list as typed in the send form.
type SendEmailRequest struct {
	Recipients      string `json:"recipients"`
	SenderName      string `json:"senderName"`
	SenderEmail     string `json:"senderEmail"`
	ShowSenderEmail bool   `json:"showSenderEmail"`
	Subject         string `json:"subject"`
	Message         string `json:"message"`
}

// Validate checks the request and returns the cleaned recipient list
func (r *SendEmailRequest) Validate() ([]string, error) {
	if strings.TrimSpace(r.Subject) == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return nil, fmt.Errorf("message is required")
	}
	if r.SenderEmail != "" && !govalidator.IsEmail(r.SenderEmail) {
		return nil, fmt.Errorf("invalid sender email: %s", r.SenderEmail)
	}

	var recipients []string
	for _, raw := range strings.Split(r.Recipients, ",") {
		addr := strings.TrimSpace(raw)
		if addr == "" {
			continue
		}
		if !govalidator.IsEmail(addr) {
			return nil, fmt.Errorf("invalid recipient email: %s", addr)
		}
		recipients = append(recipients, addr)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}
	return recipients, nil
}

// SendEmailResponse reports per-recipient delivery results
type SendEmailResponse struct {
	Success bool     `json:"success"`
	Sent    int      `json:"sent"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
