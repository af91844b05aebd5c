package alert

import (
	"gopkg.in/gomail.v2"

	"ativos.GO/config"
)

// Mailer sends a multipart alert message.
type Mailer interface {
	Send(to []string, subject, htmlBody, textBody string) error
}

// SMTPMailer delivers through the configured SMTP server.
type SMTPMailer struct {
	cfg *config.MailConfig
}

func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to []string, subject, htmlBody, textBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return d.DialAndSend(msg)
}
