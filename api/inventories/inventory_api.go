package inventories

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ativos.GO/api"
	"ativos.GO/config"
	coreAuth "ativos.GO/core/auth"
	assetRepo "ativos.GO/model/repository/asset"
	inventoryRepo "ativos.GO/model/repository/inventory"
	"ativos.GO/service/export"
	"ativos.GO/service/inventory"
)

func RegisterInventoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/inventories")

	assets := assetRepo.NewAssetRepository(db)
	inventories := inventoryRepo.NewInventoryRepository(db)
	workflow := inventory.NewWorkflow(db, assets)
	exporter := export.NewWriter(config.AppConfig.ExportDir)

	// GET /api/inventories – campaigns, most recent first
	g.GET("", func(c echo.Context) error {
		list, err := inventories.All()
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"inventories": list, "count": len(list)})
	})

	// POST /api/inventories – start a campaign over a scoped snapshot
	g.POST("", func(c echo.Context) error {
		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ScopeType   string `json:"scope_type"`
			FilterValue string `json:"filter_value"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		inv, err := workflow.Create(inventory.CreateInput{
			Title:       body.Title,
			Description: body.Description,
			ScopeType:   body.ScopeType,
			FilterValue: body.FilterValue,
			StartedBy:   coreAuth.ActorName(c),
		})
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, inv)
	})

	// GET /api/inventories/:id – campaign header plus checklist
	g.GET("/:id", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		inv, err := inventories.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}
		items, err := inventories.ItemsWithAssets(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"inventory": inv, "items": items})
	})

	// POST /api/inventories/:id/items/:assetID – confirm one item
	g.POST("/:id/items/:assetID", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		assetID, err := api.IDParam(c, "assetID")
		if err != nil {
			return api.Error(c, err)
		}
		var body struct {
			Status string `json:"status"`
			Note   string `json:"note"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		item, err := workflow.ConfirmItem(id, assetID, body.Status, body.Note, coreAuth.ActorName(c))
		if err != nil {
			return api.Error(c, err)
		}
		inv, err := inventories.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"item": item,
			"progress": echo.Map{
				"total":     inv.TotalAssets,
				"confirmed": inv.TotalConfirmed,
				"not_found": inv.TotalNotFound,
				"pending":   inv.TotalAssets - inv.TotalConfirmed - inv.TotalNotFound,
			},
		})
	})

	// POST /api/inventories/:id/finalize – close the campaign
	g.POST("/:id/finalize", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		inv, err := workflow.Finalize(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, inv)
	})

	// GET /api/inventories/:id/report – items partitioned by outcome
	g.GET("/:id/report", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		rep, err := workflow.Report(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, rep)
	})

	// GET /api/inventories/:id/export – report as .xlsx
	g.GET("/:id/export", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		rep, err := workflow.Report(id)
		if err != nil {
			return api.Error(c, err)
		}
		path, err := exporter.WriteInventoryReport(rep)
		if err != nil {
			return api.Error(c, err)
		}
		return c.Attachment(path, "inventory_report.xlsx")
	})
}
