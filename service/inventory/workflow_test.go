package inventory_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"ativos.GO/core/errs"
	"ativos.GO/model"
	entity "ativos.GO/model/entity"
	inventoryEntity "ativos.GO/model/entity/inventory"
	assetRepo "ativos.GO/model/repository/asset"
	"ativos.GO/service/inventory"
)

func workflowTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAsset(t *testing.T, db *gorm.DB, code, location string, categoryID *uint) uint {
	a := &entity.Asset{Code: code, Name: "Asset " + code, Location: location, State: "active", CategoryID: categoryID}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed asset %s: %v", code, err)
	}
	return a.ID
}

func newWorkflow(db *gorm.DB) *inventory.Workflow {
	return inventory.NewWorkflow(db, assetRepo.NewAssetRepository(db))
}

func fetchInventory(t *testing.T, db *gorm.DB, id uint) *inventoryEntity.Inventory {
	var inv inventoryEntity.Inventory
	if err := db.First(&inv, id).Error; err != nil {
		t.Fatalf("fetch inventory %d: %v", id, err)
	}
	return &inv
}

func TestWorkflow_CreateSnapshotsCategoryScope(t *testing.T) {
	db := workflowTestDB(t)
	catA := uint(2)
	catB := uint(3)
	seedAsset(t, db, "A-001", "HQ", &catA)
	seedAsset(t, db, "A-002", "HQ", &catA)
	seedAsset(t, db, "A-003", "HQ", &catA)
	seedAsset(t, db, "B-001", "HQ", &catB)

	inv, err := newWorkflow(db).Create(inventory.CreateInput{
		Title: "Q1 Audit", ScopeType: inventoryEntity.ScopeCategory, FilterValue: "2", StartedBy: "carol",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inv.TotalAssets != 3 {
		t.Errorf("total_assets = %d, want 3", inv.TotalAssets)
	}
	if inv.Status != inventoryEntity.StatusInProgress {
		t.Errorf("status = %q, want in_progress", inv.Status)
	}
	if inv.FilterCategoryID == nil || *inv.FilterCategoryID != 2 {
		t.Errorf("filter_category_id = %v, want 2", inv.FilterCategoryID)
	}

	var items []inventoryEntity.InventoryItem
	if err := db.Where("inventory_id = ?", inv.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != inv.TotalAssets {
		t.Errorf("item count = %d, want %d", len(items), inv.TotalAssets)
	}
	for _, it := range items {
		if it.Status != inventoryEntity.ItemPending {
			t.Errorf("item %d status = %q, want pending", it.AssetID, it.Status)
		}
	}
}

func TestWorkflow_CreateExcludesLaterAssets(t *testing.T) {
	db := workflowTestDB(t)
	seedAsset(t, db, "A-001", "HQ", nil)

	inv, err := newWorkflow(db).Create(inventory.CreateInput{
		Title: "Full count", ScopeType: inventoryEntity.ScopeAll,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Assets registered after creation stay out of the snapshot.
	seedAsset(t, db, "A-002", "HQ", nil)

	var n int64
	db.Model(&inventoryEntity.InventoryItem{}).Where("inventory_id = ?", inv.ID).Count(&n)
	if n != 1 {
		t.Errorf("item count after late asset = %d, want 1", n)
	}
}

func TestWorkflow_ConfirmItemMovesCounters(t *testing.T) {
	db := workflowTestDB(t)
	cat := uint(2)
	id1 := seedAsset(t, db, "A-001", "HQ", &cat)
	seedAsset(t, db, "A-002", "HQ", &cat)
	seedAsset(t, db, "A-003", "HQ", &cat)

	w := newWorkflow(db)
	inv, err := w.Create(inventory.CreateInput{
		Title: "Q1 Audit", ScopeType: inventoryEntity.ScopeCategory, FilterValue: "2",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	item, err := w.ConfirmItem(inv.ID, id1, inventoryEntity.ItemNotFound, "missing from desk", "carol")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if item.Status != inventoryEntity.ItemNotFound {
		t.Errorf("item status = %q, want not_found", item.Status)
	}
	if item.ConfirmedAt == nil || item.ConfirmedBy != "carol" {
		t.Errorf("item confirmation metadata not set: %+v", item)
	}

	got := fetchInventory(t, db, inv.ID)
	if got.TotalConfirmed != 0 || got.TotalNotFound != 1 {
		t.Errorf("counters = confirmed %d / not_found %d, want 0 / 1", got.TotalConfirmed, got.TotalNotFound)
	}
	pending := got.TotalAssets - got.TotalConfirmed - got.TotalNotFound
	if pending != 2 {
		t.Errorf("pending = %d, want 2", pending)
	}
}

func TestWorkflow_ConfirmItemIdempotent(t *testing.T) {
	db := workflowTestDB(t)
	id1 := seedAsset(t, db, "A-001", "HQ", nil)
	seedAsset(t, db, "A-002", "HQ", nil)

	w := newWorkflow(db)
	inv, _ := w.Create(inventory.CreateInput{Title: "Count", ScopeType: inventoryEntity.ScopeAll})

	for i := 0; i < 2; i++ {
		if _, err := w.ConfirmItem(inv.ID, id1, inventoryEntity.ItemConfirmed, "", "bob"); err != nil {
			t.Fatalf("confirm #%d: %v", i+1, err)
		}
	}
	got := fetchInventory(t, db, inv.ID)
	if got.TotalConfirmed != 1 || got.TotalNotFound != 0 {
		t.Errorf("counters = confirmed %d / not_found %d, want 1 / 0", got.TotalConfirmed, got.TotalNotFound)
	}
}

func TestWorkflow_ConfirmItemReassignment(t *testing.T) {
	db := workflowTestDB(t)
	id1 := seedAsset(t, db, "A-001", "HQ", nil)

	w := newWorkflow(db)
	inv, _ := w.Create(inventory.CreateInput{Title: "Count", ScopeType: inventoryEntity.ScopeAll})

	if _, err := w.ConfirmItem(inv.ID, id1, inventoryEntity.ItemNotFound, "", "bob"); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if _, err := w.ConfirmItem(inv.ID, id1, inventoryEntity.ItemConfirmed, "found later", "bob"); err != nil {
		t.Fatalf("second confirm: %v", err)
	}

	got := fetchInventory(t, db, inv.ID)
	if got.TotalConfirmed != 1 || got.TotalNotFound != 0 {
		t.Errorf("counters = confirmed %d / not_found %d, want 1 / 0", got.TotalConfirmed, got.TotalNotFound)
	}
}

func TestWorkflow_ConfirmItemCounterConservation(t *testing.T) {
	db := workflowTestDB(t)
	var ids []uint
	for _, code := range []string{"A-001", "A-002", "A-003", "A-004"} {
		ids = append(ids, seedAsset(t, db, code, "HQ", nil))
	}

	w := newWorkflow(db)
	inv, _ := w.Create(inventory.CreateInput{Title: "Count", ScopeType: inventoryEntity.ScopeAll})

	statuses := []string{
		inventoryEntity.ItemConfirmed,
		inventoryEntity.ItemNotFound,
		inventoryEntity.ItemConfirmed,
	}
	for i, status := range statuses {
		if _, err := w.ConfirmItem(inv.ID, ids[i], status, "", "bob"); err != nil {
			t.Fatalf("confirm %d: %v", i, err)
		}
		got := fetchInventory(t, db, inv.ID)
		if got.TotalConfirmed+got.TotalNotFound > got.TotalAssets {
			t.Fatalf("counters exceed total after confirm %d: %+v", i, got)
		}
		pending := got.TotalAssets - got.TotalConfirmed - got.TotalNotFound
		if pending < 0 {
			t.Fatalf("negative pending after confirm %d: %+v", i, got)
		}
	}
	got := fetchInventory(t, db, inv.ID)
	if got.TotalConfirmed != 2 || got.TotalNotFound != 1 {
		t.Errorf("counters = confirmed %d / not_found %d, want 2 / 1", got.TotalConfirmed, got.TotalNotFound)
	}
}

func TestWorkflow_ConfirmItemUnknownAsset(t *testing.T) {
	db := workflowTestDB(t)
	seedAsset(t, db, "A-001", "HQ", nil)
	outsider := seedAsset(t, db, "Z-999", "Warehouse", nil)

	w := newWorkflow(db)
	inv, _ := w.Create(inventory.CreateInput{
		Title: "HQ only", ScopeType: inventoryEntity.ScopeLocation, FilterValue: "HQ",
	})

	_, err := w.ConfirmItem(inv.ID, outsider, inventoryEntity.ItemConfirmed, "", "bob")
	if !errs.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}

	got := fetchInventory(t, db, inv.ID)
	if got.TotalConfirmed != 0 || got.TotalNotFound != 0 {
		t.Errorf("counters changed on failed confirm: %+v", got)
	}
}

func TestWorkflow_ConfirmItemBadStatus(t *testing.T) {
	db := workflowTestDB(t)
	id1 := seedAsset(t, db, "A-001", "HQ", nil)

	w := newWorkflow(db)
	inv, _ := w.Create(inventory.CreateInput{Title: "Count", ScopeType: inventoryEntity.ScopeAll})

	for _, status := range []string{"pending", "checked", ""} {
		if _, err := w.ConfirmItem(inv.ID, id1, status, "", "bob"); !errs.IsValidation(err) {
			t.Errorf("status %q: err = %v, want validation", status, err)
		}
	}
}

func TestWorkflow_CreateValidation(t *testing.T) {
	db := workflowTestDB(t)
	w := newWorkflow(db)

	if _, err := w.Create(inventory.CreateInput{ScopeType: inventoryEntity.ScopeAll}); !errs.IsValidation(err) {
		t.Errorf("empty title: err = %v, want validation", err)
	}
	if _, err := w.Create(inventory.CreateInput{Title: "x", ScopeType: "building"}); !errs.IsValidation(err) {
		t.Errorf("bad scope: err = %v, want validation", err)
	}
}

func TestWorkflow_CreateEmptyFilterValue(t *testing.T) {
	db := workflowTestDB(t)
	seedAsset(t, db, "A-001", "HQ", nil)

	inv, err := newWorkflow(db).Create(inventory.CreateInput{
		Title: "Nowhere", ScopeType: inventoryEntity.ScopeLocation, FilterValue: "",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inv.TotalAssets != 0 {
		t.Errorf("total_assets = %d, want 0", inv.TotalAssets)
	}
}

func TestWorkflow_FinalizeWithPendingItems(t *testing.T) {
	db := workflowTestDB(t)
	id1 := seedAsset(t, db, "A-001", "HQ", nil)
	seedAsset(t, db, "A-002", "HQ", nil)
	seedAsset(t, db, "A-003", "HQ", nil)

	w := newWorkflow(db)
	inv, _ := w.Create(inventory.CreateInput{Title: "Count", ScopeType: inventoryEntity.ScopeAll})
	if _, err := w.ConfirmItem(inv.ID, id1, inventoryEntity.ItemConfirmed, "", "bob"); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	done, err := w.Finalize(inv.ID)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if done.Status != inventoryEntity.StatusCompleted {
		t.Errorf("status = %q, want completed", done.Status)
	}
	if done.CompletedAt == nil {
		t.Error("completed_at not set")
	}

	rep, err := w.Report(inv.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(rep.Confirmed) != 1 || len(rep.NotFound) != 0 || len(rep.Pending) != 2 {
		t.Errorf("report partitions = %d/%d/%d, want 1/0/2",
			len(rep.Confirmed), len(rep.NotFound), len(rep.Pending))
	}
}

func TestWorkflow_FinalizeUnknownInventory(t *testing.T) {
	db := workflowTestDB(t)
	if _, err := newWorkflow(db).Finalize(99); !errs.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestWorkflow_ReportOrderedByCode(t *testing.T) {
	db := workflowTestDB(t)
	seedAsset(t, db, "C-003", "HQ", nil)
	seedAsset(t, db, "A-001", "HQ", nil)
	seedAsset(t, db, "B-002", "HQ", nil)

	w := newWorkflow(db)
	inv, _ := w.Create(inventory.CreateInput{Title: "Count", ScopeType: inventoryEntity.ScopeAll})

	rep, err := w.Report(inv.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	want := []string{"A-001", "B-002", "C-003"}
	if len(rep.Pending) != len(want) {
		t.Fatalf("pending count = %d, want %d", len(rep.Pending), len(want))
	}
	for i, row := range rep.Pending {
		if row.Code != want[i] {
			t.Errorf("pending[%d].Code = %q, want %q", i, row.Code, want[i])
		}
	}
}
