package categories

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ativos.GO/api"
	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
	assetRepo "ativos.GO/model/repository/asset"
	categoryRepo "ativos.GO/model/repository/category"
)

func RegisterCategoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/categories")

	categories := categoryRepo.NewCategoryRepository(db)
	assets := assetRepo.NewAssetRepository(db)

	// GET /api/categories – all categories, alphabetical
	g.GET("", func(c echo.Context) error {
		list, err := categories.All()
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"categories": list, "count": len(list)})
	})

	// POST /api/categories – create
	g.POST("", func(c echo.Context) error {
		var in entity.Category
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if in.Name == "" {
			return api.Error(c, errs.Validationf("name is required"))
		}
		in.ID = 0
		if err := categories.Create(&in); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, in)
	})

	// GET /api/categories/stats – asset counts per category
	g.GET("/stats", func(c echo.Context) error {
		rows, err := categories.Stats()
		if err != nil {
			return api.Error(c, err)
		}
		uncategorized, err := assets.CountWithoutCategory()
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"categories": rows, "uncategorized": uncategorized})
	})

	// GET /api/categories/:id/assets – the category's assets only
	g.GET("/:id/assets", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		if _, err := categories.FindByID(id); err != nil {
			return api.Error(c, err)
		}
		list, err := assets.FindByCategory(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"assets": list, "count": len(list)})
	})

	// GET /api/categories/:id – one category plus its assets
	g.GET("/:id", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		cat, err := categories.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}
		list, err := assets.FindByCategory(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"category": cat, "assets": list, "count": len(list)})
	})
}
