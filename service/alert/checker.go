package alert

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"ativos.GO/config"
	"ativos.GO/core/errs"
)

// Default look-ahead windows, matching the daily check.
const (
	WarrantyWindowDays    = 30
	MaintenanceWindowDays = 7
)

// Checker scans for assets and maintenance nearing key dates and sends
// email alerts. All SMTP settings come from the injected MailConfig.
type Checker struct {
	db     *gorm.DB
	cfg    *config.MailConfig
	mailer Mailer
}

// NewChecker builds a Checker. A nil mailer defaults to SMTP delivery
// with the given config.
func NewChecker(db *gorm.DB, cfg *config.MailConfig, mailer Mailer) *Checker {
	if mailer == nil {
		mailer = NewSMTPMailer(cfg)
	}
	return &Checker{db: db, cfg: cfg, mailer: mailer}
}

// ExpiringWarranty is one asset whose warranty ends inside the window.
type ExpiringWarranty struct {
	AssetID       uint      `json:"asset_id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Serial        string    `json:"serial"`
	Custodian     string    `json:"custodian"`
	WarrantyUntil time.Time `json:"warranty_until"`
	DaysLeft      int       `json:"days_left"`
}

// ExpiringWarranties lists assets whose warranty ends within the next
// `days` days (still valid today), soonest first.
func (c *Checker) ExpiringWarranties(days int) ([]ExpiringWarranty, error) {
	now := time.Now()
	until := now.AddDate(0, 0, days)

	var rows []ExpiringWarranty
	err := c.db.Table("assets").
		Select("id AS asset_id, code, name, serial, custodian, warranty_until").
		Where("warranty_until IS NOT NULL AND warranty_until > ? AND warranty_until <= ?", now, until).
		Order("warranty_until").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DaysLeft = int(time.Until(rows[i].WarrantyUntil).Hours() / 24)
	}
	return rows, nil
}

// UpcomingMaintenance is one maintenance entry scheduled inside the
// window.
type UpcomingMaintenance struct {
	EntryID     uint      `json:"entry_id"`
	AssetID     uint      `json:"asset_id"`
	Code        string    `json:"code"`
	AssetName   string    `json:"asset_name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Custodian   string    `json:"custodian"`
	ScheduledAt time.Time `json:"scheduled_at"`
	DaysLeft    int       `json:"days_left"`
}

// UpcomingMaintenance lists maintenance scheduled within the next
// `days` days (today included), soonest first.
func (c *Checker) UpcomingMaintenance(days int) ([]UpcomingMaintenance, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -1) // include entries scheduled for today
	until := now.AddDate(0, 0, days)

	var rows []UpcomingMaintenance
	err := c.db.Table("maintenance_entries m").
		Select(`m.id AS entry_id, m.asset_id, a.code, a.name AS asset_name,
			m.type, m.description, m.custodian, m.next_scheduled AS scheduled_at`).
		Joins("JOIN assets a ON m.asset_id = a.id").
		Where("m.next_scheduled IS NOT NULL AND m.next_scheduled > ? AND m.next_scheduled <= ?", from, until).
		Order("m.next_scheduled").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DaysLeft = int(time.Until(rows[i].ScheduledAt).Hours() / 24)
		if rows[i].DaysLeft < 0 {
			rows[i].DaysLeft = 0
		}
	}
	return rows, nil
}

// SendWarrantyAlert emails the expiring-warranty list to the configured
// recipients. Returns the number of matching assets; zero means nothing
// was sent.
func (c *Checker) SendWarrantyAlert() (int, error) {
	rows, err := c.ExpiringWarranties(WarrantyWindowDays)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if !c.cfg.Ready() || len(c.cfg.Recipients) == 0 {
		return len(rows), errs.Validationf("email alerts disabled or SMTP not configured")
	}

	html, text, err := renderWarrantyAlert(rows)
	if err != nil {
		return len(rows), err
	}
	subject := fmt.Sprintf("Alert: %d warranty(ies) expiring within %d days", len(rows), WarrantyWindowDays)
	return len(rows), c.mailer.Send(c.cfg.Recipients, subject, html, text)
}

// SendMaintenanceAlert emails the upcoming-maintenance list to the
// configured recipients.
func (c *Checker) SendMaintenanceAlert() (int, error) {
	rows, err := c.UpcomingMaintenance(MaintenanceWindowDays)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if !c.cfg.Ready() || len(c.cfg.Recipients) == 0 {
		return len(rows), errs.Validationf("email alerts disabled or SMTP not configured")
	}

	html, text, err := renderMaintenanceAlert(rows)
	if err != nil {
		return len(rows), err
	}
	subject := fmt.Sprintf("Reminder: %d maintenance job(s) scheduled within %d days", len(rows), MaintenanceWindowDays)
	return len(rows), c.mailer.Send(c.cfg.Recipients, subject, html, text)
}

// SendTest sends a configuration test message to one recipient.
func (c *Checker) SendTest(to string) error {
	if !c.cfg.Ready() {
		return errs.Validationf("email alerts disabled or SMTP not configured")
	}
	html, text := renderTestMail(c.cfg)
	return c.mailer.Send([]string{to}, "Test email - asset tracking", html, text)
}

// RunDailyCheck runs both scans and sends any due alerts. Called by the
// cron scheduler; failures are logged, never fatal.
func (c *Checker) RunDailyCheck() {
	if !c.cfg.Enabled {
		log.Println("alert check skipped: email alerts disabled")
		return
	}
	if n, err := c.SendWarrantyAlert(); err != nil {
		log.Printf("warranty alert (%d found): %v", n, err)
	} else {
		log.Printf("warranty alert: %d asset(s)", n)
	}
	if n, err := c.SendMaintenanceAlert(); err != nil {
		log.Printf("maintenance alert (%d found): %v", n, err)
	} else {
		log.Printf("maintenance alert: %d entry(ies)", n)
	}
}
