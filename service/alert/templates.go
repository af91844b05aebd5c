package alert

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"ativos.GO/config"
)

var warrantyHTML = template.Must(template.New("warranty").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
<div style="background-color: #f39c12; color: white; padding: 20px; text-align: center;">
<h2>Alert: warranties expiring</h2>
</div>
<div style="padding: 20px;">
<p>The following assets have warranties expiring within the next {{.Days}} days:</p>
{{range .Rows}}<div style="background-color: #f8f9fa; padding: 15px; margin: 10px 0; border-left: 4px solid #f39c12;">
<strong>{{.Code}} - {{.Name}}</strong><br>
<strong>Serial:</strong> {{.Serial}}<br>
<strong>Warranty until:</strong> {{.WarrantyUntil.Format "2006-01-02"}} <span style="color: #e74c3c;">(expires in {{.DaysLeft}} days)</span><br>
<strong>Custodian:</strong> {{.Custodian}}
</div>{{end}}
<p><strong>Recommended action:</strong> check whether warranties need renewal.</p>
</div>
<div style="background-color: #34495e; color: white; padding: 15px; text-align: center; font-size: 12px;">
Asset tracking | generated {{.Now.Format "2006-01-02 15:04"}}
</div>
</body>
</html>`))

var maintenanceHTML = template.Must(template.New("maintenance").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
<div style="background-color: #3498db; color: white; padding: 20px; text-align: center;">
<h2>Reminder: scheduled maintenance</h2>
</div>
<div style="padding: 20px;">
<p>The following maintenance jobs are scheduled within the next {{.Days}} days:</p>
{{range .Rows}}<div style="background-color: #e8f4f8; padding: 15px; margin: 10px 0; border-left: 4px solid #3498db;">
<strong>{{.Code}} - {{.AssetName}}</strong> ({{.Type}})<br>
<strong>Scheduled for:</strong> {{.ScheduledAt.Format "2006-01-02"}} (in {{.DaysLeft}} days)<br>
<strong>Description:</strong> {{if .Description}}{{.Description}}{{else}}N/A{{end}}<br>
<strong>Custodian:</strong> {{if .Custodian}}{{.Custodian}}{{else}}unassigned{{end}}
</div>{{end}}
<p><strong>Recommended action:</strong> prepare resources and contact the custodians.</p>
</div>
<div style="background-color: #34495e; color: white; padding: 15px; text-align: center; font-size: 12px;">
Asset tracking | generated {{.Now.Format "2006-01-02 15:04"}}
</div>
</body>
</html>`))

func renderWarrantyAlert(rows []ExpiringWarranty) (string, string, error) {
	var html bytes.Buffer
	err := warrantyHTML.Execute(&html, map[string]interface{}{
		"Rows": rows, "Days": WarrantyWindowDays, "Now": time.Now(),
	})
	if err != nil {
		return "", "", err
	}

	var text strings.Builder
	text.WriteString("ALERT: WARRANTIES EXPIRING\n\n")
	for _, r := range rows {
		fmt.Fprintf(&text, "- %s - %s | SN: %s | warranty until: %s (in %d days)\n",
			r.Code, r.Name, r.Serial, r.WarrantyUntil.Format("2006-01-02"), r.DaysLeft)
	}
	return html.String(), text.String(), nil
}

func renderMaintenanceAlert(rows []UpcomingMaintenance) (string, string, error) {
	var html bytes.Buffer
	err := maintenanceHTML.Execute(&html, map[string]interface{}{
		"Rows": rows, "Days": MaintenanceWindowDays, "Now": time.Now(),
	})
	if err != nil {
		return "", "", err
	}

	var text strings.Builder
	text.WriteString("REMINDER: SCHEDULED MAINTENANCE\n\n")
	for _, r := range rows {
		fmt.Fprintf(&text, "- %s - %s | type: %s | date: %s (in %d days)\n",
			r.Code, r.AssetName, r.Type, r.ScheduledAt.Format("2006-01-02"), r.DaysLeft)
	}
	return html.String(), text.String(), nil
}

func renderTestMail(cfg *config.MailConfig) (string, string) {
	html := fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif;">
<h2>Test email - asset tracking</h2>
<p>If you received this message the SMTP configuration works.</p>
<ul><li>Server: %s:%d</li><li>From: %s</li></ul>
<p>You will receive alerts for expiring warranties, scheduled maintenance and new assets.</p>
</body></html>`, cfg.Host, cfg.Port, cfg.From)

	text := fmt.Sprintf("TEST EMAIL - asset tracking\n\nSMTP configuration works.\nServer: %s:%d\nFrom: %s\n",
		cfg.Host, cfg.Port, cfg.From)
	return html, text
}
