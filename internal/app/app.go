package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mailsmith/mailsmith/config"
	httphandlers "github.com/mailsmith/mailsmith/internal/http"
	"github.com/mailsmith/mailsmith/internal/service"
	"github.com/mailsmith/mailsmith/pkg/logger"
	"github.com/mailsmith/mailsmith/pkg/mailer"
)

// AppInterface is the application lifecycle contract
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error
	Logger() logger.Logger
}

// App wires the services and HTTP surface together
type App struct {
	config *config.Config
	logger logger.Logger
	mailer mailer.Mailer

	emailService    *service.EmailService
	templateService *service.TemplateService

	mux    *http.ServeMux
	server *http.Server
}

// AppOption customizes App construction
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// WithMailer sets a custom mailer, e.g. a console mailer in development
func WithMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{config: cfg}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.NewLoggerWithLevel(cfg.LogLevel)
	}
	return a
}

// Initialize builds the mailer, services and HTTP routes
func (a *App) Initialize() error {
	if a.mailer == nil {
		smtpConfig := &mailer.Config{
			SMTPHost:     a.config.SMTP.Host,
			SMTPPort:     a.config.SMTP.Port,
			SMTPUsername: a.config.SMTP.Username,
			SMTPPassword: a.config.SMTP.Password,
			FromEmail:    a.config.SMTP.FromEmail,
			FromName:     a.config.SMTP.FromName,
		}
		if a.config.IsDevelopment() && a.config.SMTP.Host == "" {
			a.mailer = mailer.NewConsoleMailer()
		} else {
			a.mailer = mailer.NewSMTPMailer(smtpConfig)
		}
	}

	a.emailService = service.NewEmailService(a.mailer, a.logger)
	a.templateService = service.NewTemplateService(a.logger, a.config.Upload.MaxImageBytes)

	a.mux = http.NewServeMux()
	httphandlers.NewEmailHandler(a.emailService, a.logger).RegisterRoutes(a.mux)
	httphandlers.NewTemplateHandler(a.templateService, a.logger).RegisterRoutes(a.mux)

	a.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, a.config.Version)
	})

	a.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler:      a.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	a.logger.WithField("addr", a.server.Addr).Info("Application initialized")
	return nil
}

// Start runs the HTTP server and blocks until it stops
func (a *App) Start() error {
	if a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.config.Server.SSL.Enabled {
		return a.server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully
func (a *App) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	a.logger.Info("Shutting down HTTP server")
	return a.server.Shutdown(ctx)
}

// Logger returns the application logger
func (a *App) Logger() logger.Logger {
	return a.logger
}

// Mux exposes the route table, used by HTTP tests
func (a *App) Mux() *http.ServeMux {
	return a.mux
}
