package mailer

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/mailsmith/mailsmith/pkg/mailer Mailer

// Mailer is the interface for sending emails
type Mailer interface {
	// Send delivers a single message to one recipient
	Send(msg *Message) error
}

// Message is one outbound email. HTMLBody may be empty for plain-text
// sends; Inline parts are referenced from HTMLBody by cid: URLs.
type Message struct {
	To          string
	SenderName  string
	SenderEmail string
	Subject     string
	HTMLBody    string
	PlainBody   string
	Inline      []InlinePart
}

// InlinePart is an inline attachment, typically an embedded image
type InlinePart struct {
	CID         string
	Filename    string
	ContentType string
	Data        []byte
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// Send delivers msg over SMTP. The message sender overrides the configured
// from address when set.
func (m *SMTPMailer) Send(message *Message) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	fromName := message.SenderName
	if fromName == "" {
		fromName = m.config.FromName
	}
	fromEmail := message.SenderEmail
	if fromEmail == "" {
		fromEmail = m.config.FromEmail
	}

	if err := msg.FromFormat(fromName, fromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(message.To); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(message.Subject)

	if message.HTMLBody != "" {
		msg.SetBodyString(mail.TypeTextHTML, message.HTMLBody)
		if message.PlainBody != "" {
			msg.AddAlternativeString(mail.TypeTextPlain, message.PlainBody)
		}
	} else {
		msg.SetBodyString(mail.TypeTextPlain, message.PlainBody)
	}

	for _, part := range message.Inline {
		opts := []mail.FileOption{mail.WithFileContentID(part.CID)}
		if part.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(part.ContentType)))
		}
		if err := msg.EmbedReader(part.Filename, bytes.NewReader(part.Data), opts...); err != nil {
			return fmt.Errorf("failed to embed inline part %s: %w", part.CID, err)
		}
	}

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// For testing - log information if client is nil
	if client == nil {
		log.Printf("Sending email to: %s", message.To)
		log.Printf("From: %s <%s>", fromName, fromEmail)
		log.Printf("Subject: %s", message.Subject)
		log.Printf("Inline parts: %d", len(message.Inline))
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Only add authentication if username and password are provided
	// This allows for unauthenticated SMTP servers (e.g., local relays, port 25)
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just logs emails
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// Send logs the message details to console instead of delivering it
func (m *ConsoleMailer) Send(message *Message) error {
	fmt.Println("==============================================================")
	fmt.Println("                       OUTBOUND EMAIL                         ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", message.To)
	fmt.Printf("From: %s <%s>\n", message.SenderName, message.SenderEmail)
	fmt.Printf("Subject: %s\n", message.Subject)
	fmt.Printf("Inline parts: %d\n\n", len(message.Inline))
	if message.HTMLBody != "" {
		fmt.Println(message.HTMLBody)
	} else {
		fmt.Println(message.PlainBody)
	}
	fmt.Println("==============================================================")

	return nil
}
