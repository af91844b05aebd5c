package assets_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	assetsApi "ativos.GO/api/assets"
	"ativos.GO/config"
	"ativos.GO/model"
	entity "ativos.GO/model/entity"
	"ativos.GO/service/audit"
)

func assetTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	config.LoadAppConfig()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	e := echo.New()
	assetsApi.RegisterAssetRoutes(e.Group("/api"), db, &config.MailConfig{})
	return e, db
}

func TestAssetAPI_HistoryLimit(t *testing.T) {
	e, db := assetTestServer(t)

	a := &entity.Asset{Code: "A-001", Name: "Laptop", State: "active"}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed asset: %v", err)
	}
	recorder := audit.NewRecorder(db)
	for i := 0; i < 3; i++ {
		if err := recorder.Record(audit.Entry{
			AssetID: a.ID, Action: "updated", Field: "location",
			NewValue: fmt.Sprintf("room %d", i),
		}); err != nil {
			t.Fatalf("seed history: %v", err)
		}
	}

	get := func(limit string) *httptest.ResponseRecorder {
		path := fmt.Sprintf("/api/assets/%d/history", a.ID)
		if limit != "" {
			path += "?limit=" + limit
		}
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	// Default limit returns everything.
	rec := get("")
	if rec.Code != http.StatusOK {
		t.Fatalf("default: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 3 {
		t.Errorf("count = %d, want 3", resp.Count)
	}

	// An explicit limit caps the result.
	rec = get("2")
	if rec.Code != http.StatusOK {
		t.Fatalf("limit=2: %d %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Count)
	}

	// Garbage and non-positive limits are rejected.
	for _, bad := range []string{"abc", "-5", "0"} {
		if rec := get(bad); rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: %d, want 400", bad, rec.Code)
		}
	}
}
