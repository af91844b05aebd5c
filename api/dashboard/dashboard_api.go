package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ativos.GO/api"
	"ativos.GO/config"
	assetRepo "ativos.GO/model/repository/asset"
	categoryRepo "ativos.GO/model/repository/category"
	"ativos.GO/service/alert"
)

func RegisterDashboardRoutes(apiGroup *echo.Group, db *gorm.DB, mail *config.MailConfig) {
	g := apiGroup.Group("/dashboard")

	assets := assetRepo.NewAssetRepository(db)
	categories := categoryRepo.NewCategoryRepository(db)
	checker := alert.NewChecker(db, mail, nil)

	// GET /api/dashboard – headline numbers for the landing view
	g.GET("", func(c echo.Context) error {
		total, err := assets.Count()
		if err != nil {
			return api.Error(c, err)
		}
		byState, err := assets.CountByState()
		if err != nil {
			return api.Error(c, err)
		}
		byCategory, err := categories.Stats()
		if err != nil {
			return api.Error(c, err)
		}
		topLocations, err := assets.TopLocations(5)
		if err != nil {
			return api.Error(c, err)
		}
		latest, err := assets.Latest(5)
		if err != nil {
			return api.Error(c, err)
		}
		warranties, err := checker.ExpiringWarranties(alert.WarrantyWindowDays)
		if err != nil {
			return api.Error(c, err)
		}
		upcoming, err := checker.UpcomingMaintenance(alert.MaintenanceWindowDays)
		if err != nil {
			return api.Error(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"total_assets":  total,
			"by_state":      byState,
			"by_category":   byCategory,
			"top_locations": topLocations,
			"latest_assets": latest,
			"alerts": echo.Map{
				"expiring_warranties":  len(warranties),
				"upcoming_maintenance": len(upcoming),
			},
		})
	})
}
