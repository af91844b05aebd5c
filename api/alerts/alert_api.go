package alerts

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ativos.GO/api"
	"ativos.GO/config"
	"ativos.GO/core/errs"
	"ativos.GO/service/alert"
)

func RegisterAlertRoutes(apiGroup *echo.Group, db *gorm.DB, cfg *config.MailConfig) {
	g := apiGroup.Group("/alerts")

	checker := alert.NewChecker(db, cfg, nil)

	// GET /api/alerts – current configuration and pending counts
	g.GET("", func(c echo.Context) error {
		warranties, err := checker.ExpiringWarranties(alert.WarrantyWindowDays)
		if err != nil {
			return api.Error(c, err)
		}
		upcoming, err := checker.UpcomingMaintenance(alert.MaintenanceWindowDays)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"enabled":              cfg.Enabled,
			"smtp_configured":      cfg.Ready(),
			"recipients":           cfg.Recipients,
			"warranty_window":      alert.WarrantyWindowDays,
			"maintenance_window":   alert.MaintenanceWindowDays,
			"expiring_warranties":  warranties,
			"upcoming_maintenance": upcoming,
		})
	})

	// POST /api/alerts/test – send a configuration test email
	g.POST("/test", func(c echo.Context) error {
		var body struct {
			To string `json:"to"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.To == "" {
			return api.Error(c, errs.Validationf("recipient address is required"))
		}
		if err := checker.SendTest(body.To); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"sent": body.To})
	})

	// POST /api/alerts/check-warranties – run the warranty scan now
	g.POST("/check-warranties", func(c echo.Context) error {
		n, err := checker.SendWarrantyAlert()
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"found": n, "sent": n > 0})
	})

	// POST /api/alerts/check-maintenance – run the maintenance scan now
	g.POST("/check-maintenance", func(c echo.Context) error {
		n, err := checker.SendMaintenanceAlert()
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"found": n, "sent": n > 0})
	})
}
