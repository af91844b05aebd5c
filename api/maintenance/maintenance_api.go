package maintenance

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ativos.GO/api"
	"ativos.GO/config"
	coreAuth "ativos.GO/core/auth"
	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
	assetRepo "ativos.GO/model/repository/asset"
	maintenanceRepo "ativos.GO/model/repository/maintenance"
	"ativos.GO/service/alert"
	"ativos.GO/service/audit"
)

// MaintenanceInput is the JSON body for recording a maintenance event.
type MaintenanceInput struct {
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	PerformedAt   string   `json:"performed_at"`
	NextScheduled string   `json:"next_scheduled"`
	Custodian     string   `json:"custodian"`
	Cost          *float64 `json:"cost"`
	Status        string   `json:"status"`
	Notes         string   `json:"notes"`
}

func RegisterMaintenanceRoutes(apiGroup *echo.Group, db *gorm.DB, mail *config.MailConfig) {
	assets := assetRepo.NewAssetRepository(db)
	entries := maintenanceRepo.NewMaintenanceRepository(db)
	recorder := audit.NewRecorder(db)
	checker := alert.NewChecker(db, mail, nil)

	assetGroup := apiGroup.Group("/assets/:id/maintenance")
	entryGroup := apiGroup.Group("/maintenance")

	// GET /api/assets/:id/maintenance – entries for one asset
	assetGroup.GET("", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		if _, err := assets.FindByID(id); err != nil {
			return api.Error(c, err)
		}
		list, err := entries.ListByAsset(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"maintenance": list, "count": len(list)})
	})

	// POST /api/assets/:id/maintenance – record an event
	assetGroup.POST("", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		a, err := assets.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}

		var in MaintenanceInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if in.Type == "" || in.Description == "" {
			return api.Error(c, errs.Validationf("type and description are required"))
		}

		performed := time.Now()
		if in.PerformedAt != "" {
			performed, err = time.Parse("2006-01-02", in.PerformedAt)
			if err != nil {
				return api.Error(c, errs.Validationf("performed_at %q is not in YYYY-MM-DD form", in.PerformedAt))
			}
		}
		m := &entity.MaintenanceEntry{
			AssetID:     id,
			Type:        in.Type,
			Description: in.Description,
			PerformedAt: datatypes.Date(performed),
			Custodian:   in.Custodian,
			Cost:        in.Cost,
			Status:      in.Status,
			Notes:       in.Notes,
		}
		if in.NextScheduled != "" {
			next, err := time.Parse("2006-01-02", in.NextScheduled)
			if err != nil {
				return api.Error(c, errs.Validationf("next_scheduled %q is not in YYYY-MM-DD form", in.NextScheduled))
			}
			d := datatypes.Date(next)
			m.NextScheduled = &d
		}
		if err := entries.Create(m); err != nil {
			return api.Error(c, err)
		}

		if err := recorder.Record(audit.Entry{
			AssetID: id, Action: "maintenance_added", NewValue: in.Type,
			Actor: coreAuth.ActorName(c), SourceIP: c.RealIP(),
		}); err != nil {
			log.Printf("history for asset %d: %v", id, err)
		}
		if err := checker.NotifyMaintenanceAdded(a.Name, m); err != nil {
			log.Printf("notify maintenance added: %v", err)
		}
		return c.JSON(http.StatusCreated, m)
	})

	// DELETE /api/maintenance/:id
	entryGroup.DELETE("/:id", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		m, err := entries.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}
		if err := entries.Delete(id); err != nil {
			return api.Error(c, err)
		}
		if err := recorder.Record(audit.Entry{
			AssetID: m.AssetID, Action: "maintenance_removed", OldValue: m.Type,
			Actor: coreAuth.ActorName(c), SourceIP: c.RealIP(),
		}); err != nil {
			log.Printf("history for asset %d: %v", m.AssetID, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"deleted": id})
	})
}
