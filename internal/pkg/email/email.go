package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendWelcomeEmail(toEmail, toName string) error
	SendPasswordResetEmail(toEmail, toName, token string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	BaseURL   string // application base URL used in email links
}

type emailService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &emailService{
		config: config,
		logger: logger,
	}
}

// SendWelcomeEmail greets a freshly registered user.
func (s *emailService) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to LMS Portal"
	body := fmt.Sprintf("Hello %s,\r\n\r\nYour account has been created. You can now sign in and start learning.\r\n", toName)
	return s.send(toEmail, subject, body)
}

// SendPasswordResetEmail sends the password reset link for the given token.
func (s *emailService) SendPasswordResetEmail(toEmail, toName, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.BaseURL, token)

	// Without SMTP credentials we only log the link; useful in development.
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("resetURL", resetURL).
			Msg("SMTP credentials not configured - password reset email not sent. Use the URL above for testing.")
		return nil
	}

	subject := "Reset Your Password - LMS Portal"
	body := fmt.Sprintf("Hello %s,\r\n\r\nA password reset was requested for your account. Follow the link below to choose a new password:\r\n\r\n%s\r\n\r\nIf you did not request this, you can ignore this email.\r\n", toName, resetURL)
	return s.send(toEmail, subject, body)
}

func (s *emailService) send(toEmail, subject, body string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().Str("toEmail", toEmail).Str("subject", subject).Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	msg := []byte(fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.config.FromName, s.config.FromEmail, toEmail, subject, body))

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, msg); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
