package assets

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
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
	attachmentRepo "ativos.GO/model/repository/attachment"
	categoryRepo "ativos.GO/model/repository/category"
	maintenanceRepo "ativos.GO/model/repository/maintenance"
	"ativos.GO/service/alert"
	"ativos.GO/service/audit"
	"ativos.GO/service/export"
	"ativos.GO/service/qr"
)

// AssetInput is the JSON body for create and update. Dates use the
// YYYY-MM-DD form.
type AssetInput struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Serial           string   `json:"serial"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	Custodian        string   `json:"custodian"`
	State            string   `json:"state"`
	CategoryID       *uint    `json:"category_id"`
	Subcategory      *string  `json:"subcategory"`
	PropertyNumber   *string  `json:"property_number"`
	AcquiredAt       string   `json:"acquired_at"`
	AcquisitionValue *float64 `json:"acquisition_value"`
	Supplier         *string  `json:"supplier"`
	WarrantyUntil    string   `json:"warranty_until"`
	Notes            *string  `json:"notes"`
}

func parseDate(s string) (*datatypes.Date, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, errs.Validationf("date %q is not in YYYY-MM-DD form", s)
	}
	d := datatypes.Date(t)
	return &d, nil
}

func (in *AssetInput) apply(a *entity.Asset) error {
	if in.Code == "" || in.Name == "" {
		return errs.Validationf("code and name are required")
	}
	acquired, err := parseDate(in.AcquiredAt)
	if err != nil {
		return err
	}
	warranty, err := parseDate(in.WarrantyUntil)
	if err != nil {
		return err
	}

	a.Code = in.Code
	a.Name = in.Name
	a.Serial = in.Serial
	a.Description = in.Description
	a.Location = in.Location
	a.Custodian = in.Custodian
	a.State = in.State
	if a.State == "" {
		a.State = "active"
	}
	a.CategoryID = in.CategoryID
	a.Subcategory = in.Subcategory
	a.PropertyNumber = in.PropertyNumber
	a.AcquiredAt = acquired
	a.AcquisitionValue = in.AcquisitionValue
	a.Supplier = in.Supplier
	a.WarrantyUntil = warranty
	a.Notes = in.Notes
	return nil
}

func RegisterAssetRoutes(apiGroup *echo.Group, db *gorm.DB, mail *config.MailConfig) {
	g := apiGroup.Group("/assets")

	assets := assetRepo.NewAssetRepository(db)
	categories := categoryRepo.NewCategoryRepository(db)
	attachments := attachmentRepo.NewAttachmentRepository(db)
	maintenance := maintenanceRepo.NewMaintenanceRepository(db)
	recorder := audit.NewRecorder(db)
	labels := qr.NewGenerator(config.AppConfig.BaseURL, config.AppConfig.QRDir)
	checker := alert.NewChecker(db, mail, nil)
	exporter := export.NewWriter(config.AppConfig.ExportDir)

	// GET /api/assets – list, optionally filtered by ?q=
	g.GET("", func(c echo.Context) error {
		list, err := assets.Search(c.QueryParam("q"))
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"assets": list, "count": len(list)})
	})

	// POST /api/assets – create, generate QR label, record history
	g.POST("", func(c echo.Context) error {
		var in AssetInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		a := &entity.Asset{}
		if err := in.apply(a); err != nil {
			return api.Error(c, err)
		}
		if err := assets.Create(a); err != nil {
			return api.Error(c, err)
		}

		if err := labels.Generate(a.ID); err != nil {
			log.Printf("qr label for asset %d: %v", a.ID, err)
		}
		if err := recorder.Record(audit.Entry{
			AssetID: a.ID, Action: "created",
			Actor: coreAuth.ActorName(c), SourceIP: c.RealIP(),
		}); err != nil {
			log.Printf("history for asset %d: %v", a.ID, err)
		}
		if err := checker.NotifyAssetCreated(a); err != nil {
			log.Printf("notify asset created: %v", err)
		}
		return c.JSON(http.StatusCreated, a)
	})

	// GET /api/assets/export – full list as .xlsx
	g.GET("/export", func(c echo.Context) error {
		list, err := assets.All()
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
		return c.Attachment(path, "assets.xlsx")
	})

	// GET /api/assets/:id – full detail with related records
	g.GET("/:id", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		a, err := assets.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}

		resp := echo.Map{"asset": a, "qr_url": labels.URL(a.ID)}
		if a.CategoryID != nil {
			if cat, err := categories.FindByID(*a.CategoryID); err == nil {
				resp["category"] = cat
			}
		}
		if files, err := attachments.ListByAsset(id); err == nil {
			resp["attachments"] = files
		}
		if entries, err := maintenance.ListByAsset(id); err == nil {
			resp["maintenance"] = entries
		}
		if history, err := recorder.History(id, 20); err == nil {
			resp["history"] = history
		}
		return c.JSON(http.StatusOK, resp)
	})

	// PUT /api/assets/:id – update, recording per-field history
	g.PUT("/:id", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		a, err := assets.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}

		var in AssetInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		before := *a
		if err := in.apply(a); err != nil {
			return api.Error(c, err)
		}
		if err := assets.Save(a); err != nil {
			return api.Error(c, err)
		}

		actor := coreAuth.ActorName(c)
		ip := c.RealIP()
		for _, d := range diffAssets(&before, a) {
			if err := recorder.Record(audit.Entry{
				AssetID: a.ID, Action: "updated", Field: d.field,
				OldValue: d.old, NewValue: d.new, Actor: actor, SourceIP: ip,
			}); err != nil {
				log.Printf("history for asset %d: %v", a.ID, err)
			}
		}
		if err := checker.NotifyAssetUpdated(a); err != nil {
			log.Printf("notify asset updated: %v", err)
		}
		return c.JSON(http.StatusOK, a)
	})

	// DELETE /api/assets/:id – cascading delete plus QR label cleanup
	g.DELETE("/:id", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		a, err := assets.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}

		// Notify while the record still exists.
		if err := checker.NotifyAssetDeleted(a); err != nil {
			log.Printf("notify asset deleted: %v", err)
		}
		if err := assets.Delete(id); err != nil {
			return api.Error(c, err)
		}
		if err := labels.Remove(id); err != nil {
			log.Printf("qr label cleanup for asset %d: %v", id, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"deleted": id})
	})

	// GET /api/assets/:id/history – audit trail, newest first
	g.GET("/:id/history", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		if _, err := assets.FindByID(id); err != nil {
			return api.Error(c, err)
		}
		limit := 50
		if raw := c.QueryParam("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return api.Error(c, errs.Validationf("limit %q is not a positive number", raw))
			}
			limit = n
		}
		entries, err := recorder.History(id, limit)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"history": entries, "count": len(entries)})
	})

	// POST /api/assets/:id/qrcode – rewrite the QR label
	g.POST("/:id/qrcode", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		if _, err := assets.FindByID(id); err != nil {
			return api.Error(c, err)
		}
		if err := labels.Generate(id); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"qr_url": labels.URL(id), "file": labels.Path(id)})
	})

	// POST /api/admin/qrcodes/regenerate – rewrite every label (admin)
	apiGroup.POST("/admin/qrcodes/regenerate", func(c echo.Context) error {
		if err := coreAuth.RequireAdmin(c); err != nil {
			return err
		}
		ids, err := assets.AllIDs()
		if err != nil {
			return api.Error(c, err)
		}
		n, err := labels.RegenerateAll(ids)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"regenerated": n})
	})
}

type fieldDiff struct {
	field, old, new string
}

// diffAssets lists the tracked fields that changed between two versions.
func diffAssets(before, after *entity.Asset) []fieldDiff {
	var diffs []fieldDiff
	add := func(field, old, new string) {
		if old != new {
			diffs = append(diffs, fieldDiff{field, old, new})
		}
	}
	add("code", before.Code, after.Code)
	add("name", before.Name, after.Name)
	add("serial", before.Serial, after.Serial)
	add("location", before.Location, after.Location)
	add("custodian", before.Custodian, after.Custodian)
	add("state", before.State, after.State)
	add("category_id", uintPtrStr(before.CategoryID), uintPtrStr(after.CategoryID))
	add("warranty_until", dateStr(before.WarrantyUntil), dateStr(after.WarrantyUntil))
	return diffs
}

func uintPtrStr(v *uint) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(*v)
}

func dateStr(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format("2006-01-02")
}
