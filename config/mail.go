package config

import (
	"os"
	"strings"
)

// MailConfig carries SMTP and alert settings. It is loaded once from the
// environment and handed to the alert service at construction time;
// nothing reads SMTP settings ad hoc.
type MailConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	Enabled    bool
	Recipients []string
}

func LoadMailConfig() *MailConfig {
	cfg := &MailConfig{
		Host:     envOr("SMTP_HOST", "smtp.gmail.com"),
		Port:     envIntOr("SMTP_PORT", 587),
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("EMAIL_FROM"),
		Enabled:  strings.EqualFold(os.Getenv("ALERTS_EMAIL"), "true"),
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	for _, r := range strings.Split(os.Getenv("ALERT_RECIPIENTS"), ",") {
		if r = strings.TrimSpace(r); r != "" {
			cfg.Recipients = append(cfg.Recipients, r)
		}
	}
	return cfg
}

// Ready reports whether alert mail can actually be sent.
func (c *MailConfig) Ready() bool {
	return c.Enabled && c.User != "" && c.Password != ""
}
