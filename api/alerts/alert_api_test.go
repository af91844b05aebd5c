package alerts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	alertsApi "ativos.GO/api/alerts"
	"ativos.GO/config"
	"ativos.GO/model"
	entity "ativos.GO/model/entity"
)

func alertTestServer(t *testing.T, cfg *config.MailConfig) (*echo.Echo, *gorm.DB) {
	config.LoadAppConfig()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	e := echo.New()
	alertsApi.RegisterAlertRoutes(e.Group("/api"), db, cfg)
	return e, db
}

// The routes report whatever configuration they were handed at
// registration time; nothing re-reads the environment per request.
func TestAlertAPI_StatusReflectsInjectedConfig(t *testing.T) {
	cfg := &config.MailConfig{
		Enabled:    true,
		User:       "alerts@example.com",
		Password:   "secret",
		Recipients: []string{"ops@example.com"},
	}
	e, _ := alertTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Enabled        bool     `json:"enabled"`
		SMTPConfigured bool     `json:"smtp_configured"`
		Recipients     []string `json:"recipients"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Enabled || !resp.SMTPConfigured {
		t.Errorf("enabled = %v, smtp_configured = %v, want both true", resp.Enabled, resp.SMTPConfigured)
	}
	if len(resp.Recipients) != 1 || resp.Recipients[0] != "ops@example.com" {
		t.Errorf("recipients = %v", resp.Recipients)
	}
}

func TestAlertAPI_DispatchUnconfigured(t *testing.T) {
	e, db := alertTestServer(t, &config.MailConfig{})

	due := datatypes.Date(time.Now().AddDate(0, 0, 10))
	a := &entity.Asset{Code: "A-001", Name: "Laptop", State: "active", WarrantyUntil: &due}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed asset: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/alerts/check-warranties", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("check-warranties without smtp: %d, want 400", rec.Code)
	}
}
