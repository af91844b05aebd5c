package reports

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ativos.GO/api"
	"ativos.GO/config"
	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
	assetRepo "ativos.GO/model/repository/asset"
	categoryRepo "ativos.GO/model/repository/category"
	"ativos.GO/service/export"
)

func RegisterReportRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/reports")

	assets := assetRepo.NewAssetRepository(db)
	categories := categoryRepo.NewCategoryRepository(db)
	exporter := export.NewWriter(config.AppConfig.ExportDir)

	// GET /api/reports/filters – distinct values for the report form
	g.GET("/filters", func(c echo.Context) error {
		states, err := assets.Distinct("state")
		if err != nil {
			return api.Error(c, err)
		}
		locations, err := assets.Distinct("location")
		if err != nil {
			return api.Error(c, err)
		}
		custodians, err := assets.Distinct("custodian")
		if err != nil {
			return api.Error(c, err)
		}
		cats, err := categories.All()
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"states":     states,
			"locations":  locations,
			"custodians": custodians,
			"categories": cats,
		})
	})

	// GET /api/reports/assets?by=&value= – assets along one dimension
	g.GET("/assets", func(c echo.Context) error {
		by := c.QueryParam("by")
		value := c.QueryParam("value")
		if by == "" || value == "" {
			return api.Error(c, errs.Validationf("by and value query parameters are required"))
		}
		list, err := assets.FindByField(by, value)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"assets": list, "count": len(list)})
	})

	// GET /api/reports/export?by=&value= – filtered list as .xlsx
	g.GET("/export", func(c echo.Context) error {
		by := c.QueryParam("by")
		value := c.QueryParam("value")

		var list []entity.Asset
		var err error
		switch {
		case by == "" && value == "":
			list, err = assets.All()
		case by == "" || value == "":
			return api.Error(c, errs.Validationf("by and value query parameters are required"))
		default:
			list, err = assets.FindByField(by, value)
		}
		if err != nil {
			return api.Error(c, err)
		}
		names, err := categories.NamesByID()
		if err != nil {
			return api.Error(c, err)
		}
		path, err := exporter.WriteAssets(list, names)
		if err != nil {
			return api.Error(c, err)
		}
		return c.Attachment(path, "report.xlsx")
	})
}
