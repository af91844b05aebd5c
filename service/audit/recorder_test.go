package audit_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"ativos.GO/model"
	entity "ativos.GO/model/entity"
	"ativos.GO/service/audit"
)

func auditTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRecorder_RecordAndHistory(t *testing.T) {
	db := auditTestDB(t)
	rec := audit.NewRecorder(db)

	entries := []audit.Entry{
		{AssetID: 1, Action: "created", Actor: "alice", SourceIP: "10.0.0.1"},
		{AssetID: 1, Action: "updated", Field: "location", OldValue: "HQ", NewValue: "Branch", Actor: "bob"},
		{AssetID: 2, Action: "created", Actor: "alice"},
	}
	for _, e := range entries {
		if err := rec.Record(e); err != nil {
			t.Fatalf("record %+v: %v", e, err)
		}
	}

	history, err := rec.History(1, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d entries, want 2", len(history))
	}
	// Newest first.
	if history[0].Action != "updated" {
		t.Errorf("history[0].Action = %q, want updated", history[0].Action)
	}
	if history[0].Field == nil || *history[0].Field != "location" {
		t.Errorf("field = %v", history[0].Field)
	}
	if history[0].OldValue == nil || *history[0].OldValue != "HQ" {
		t.Errorf("old value = %v", history[0].OldValue)
	}
}

func TestRecorder_DefaultsActorToSystem(t *testing.T) {
	db := auditTestDB(t)
	rec := audit.NewRecorder(db)

	if err := rec.Record(audit.Entry{AssetID: 1, Action: "created"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	var h entity.HistoryEntry
	if err := db.First(&h).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if h.Actor != "system" {
		t.Errorf("actor = %q, want system", h.Actor)
	}
	if h.Field != nil || h.OldValue != nil || h.NewValue != nil {
		t.Errorf("optional columns should be NULL: %+v", h)
	}
}

func TestRecorder_HistoryLimit(t *testing.T) {
	db := auditTestDB(t)
	rec := audit.NewRecorder(db)

	for i := 0; i < 5; i++ {
		if err := rec.Record(audit.Entry{AssetID: 1, Action: "updated", Actor: "alice"}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	history, err := rec.History(1, 3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Errorf("history = %d entries, want 3", len(history))
	}
}
