package services

import (
	"fmt"
	"log"

	"canteen-api/config"

	"gopkg.in/gomail.v2"
)

// Mailer is the single delivery capability the verification workflow
// needs. It is injected at construction so tests and unconfigured
// deployments can swap it out.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NoopMailer reports ErrMailerNotConfigured on every send, which flips
// the verification workflow into degraded mode.
type NoopMailer struct{}

func (NoopMailer) Send(to, subject, body string) error {
	return ErrMailerNotConfigured
}

// NewMailer returns an SMTP mailer when the transport is configured and
// a NoopMailer otherwise.
func NewMailer() Mailer {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Println("Warning: SMTP not configured, PINs will be returned in responses")
		return NoopMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (s *SMTPMailer) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func pinEmailBody(name, pin string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .pin-box { background-color: #f0fdfa; border: 2px dashed #14b8a6; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px; }
        .pin-code { font-size: 36px; font-weight: bold; color: #14b8a6; letter-spacing: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h2>Cans &amp; Teens - Verification PIN</h2>
        <p>Hi %s,</p>
        <p>Your verification PIN is:</p>
        <div class="pin-box">
            <div class="pin-code">%s</div>
        </div>
        <p><strong>This PIN will expire in 15 minutes.</strong></p>
        <p>Use this PIN to complete your verification and start ordering!</p>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, name, pin)
}
