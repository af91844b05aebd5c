package inventory

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"ativos.GO/core/errs"
	inventoryEntity "ativos.GO/model/entity/inventory"
)

// AssetSource is the read-only view of the asset store the workflow
// needs; the workflow does not own asset lifecycle.
type AssetSource interface {
	FindIDsByScope(scopeType, filterValue string) ([]uint, error)
}

// Workflow implements the inventory reconciliation campaign: create a
// snapshot over a filtered set of assets, confirm items one by one,
// finalize, report. Every mutating operation runs in one transaction;
// counters are recomputed from item statuses, never incremented, so
// concurrent confirmations on different items cannot lose updates.
type Workflow struct {
	db     *gorm.DB
	assets AssetSource
}

func NewWorkflow(db *gorm.DB, assets AssetSource) *Workflow {
	return &Workflow{db: db, assets: assets}
}

// CreateInput carries the fields of a new inventory campaign.
type CreateInput struct {
	Title       string
	Description string
	ScopeType   string
	FilterValue string
	StartedBy   string
}

// Create snapshots the assets matching the scope into a new in-progress
// inventory with one pending item per asset. Assets added to the system
// later are never retroactively included.
func (w *Workflow) Create(in CreateInput) (*inventoryEntity.Inventory, error) {
	if in.Title == "" {
		return nil, errs.Validationf("title is required")
	}
	switch in.ScopeType {
	case inventoryEntity.ScopeAll, inventoryEntity.ScopeCategory,
		inventoryEntity.ScopeLocation, inventoryEntity.ScopeCustodian:
	default:
		return nil, errs.Validationf("unknown scope type %q", in.ScopeType)
	}

	assetIDs, err := w.assets.FindIDsByScope(in.ScopeType, in.FilterValue)
	if err != nil {
		return nil, err
	}

	inv := &inventoryEntity.Inventory{
		Title:       in.Title,
		Description: in.Description,
		ScopeType:   in.ScopeType,
		Status:      inventoryEntity.StatusInProgress,
		TotalAssets: len(assetIDs),
		StartedBy:   in.StartedBy,
	}
	if in.FilterValue != "" {
		switch in.ScopeType {
		case inventoryEntity.ScopeCategory:
			if catID, err := strconv.ParseUint(in.FilterValue, 10, 32); err == nil {
				id := uint(catID)
				inv.FilterCategoryID = &id
			}
		case inventoryEntity.ScopeLocation:
			v := in.FilterValue
			inv.FilterLocation = &v
		case inventoryEntity.ScopeCustodian:
			v := in.FilterValue
			inv.FilterCustodian = &v
		}
	}

	err = w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inv).Error; err != nil {
			return err
		}
		if len(assetIDs) == 0 {
			return nil
		}
		items := make([]inventoryEntity.InventoryItem, 0, len(assetIDs))
		for _, id := range assetIDs {
			items = append(items, inventoryEntity.InventoryItem{
				InventoryID: inv.ID,
				AssetID:     id,
				Status:      inventoryEntity.ItemPending,
			})
		}
		return tx.CreateInBatches(items, 200).Error
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// ConfirmItem marks one item confirmed or not_found. Idempotent for a
// repeated status; a different status moves the counter bucket. Items
// never return to pending.
func (w *Workflow) ConfirmItem(inventoryID, assetID uint, status, note, actor string) (*inventoryEntity.InventoryItem, error) {
	if status != inventoryEntity.ItemConfirmed && status != inventoryEntity.ItemNotFound {
		return nil, errs.Validationf("status must be %q or %q", inventoryEntity.ItemConfirmed, inventoryEntity.ItemNotFound)
	}

	var item inventoryEntity.InventoryItem
	err := w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("inventory_id = ? AND asset_id = ?", inventoryID, assetID).
			First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errs.NotFoundf("no item for asset %d in inventory %d", assetID, inventoryID)
			}
			return err
		}
		now := time.Now()
		item.Status = status
		item.Note = note
		item.ConfirmedBy = actor
		item.ConfirmedAt = &now
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return w.recountTotals(tx, inventoryID)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// recountTotals re-aggregates item statuses into the inventory counters.
// A full count query, not an increment: correct under concurrent or
// repeated confirmations.
func (w *Workflow) recountTotals(tx *gorm.DB, inventoryID uint) error {
	var confirmed, notFound int64
	row := tx.Raw(`SELECT
		COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM inventory_items WHERE inventory_id = ?`,
		inventoryEntity.ItemConfirmed, inventoryEntity.ItemNotFound, inventoryID).Row()
	if err := row.Scan(&confirmed, &notFound); err != nil {
		return err
	}
	return tx.Model(&inventoryEntity.Inventory{}).Where("id = ?", inventoryID).
		Updates(map[string]interface{}{
			"total_confirmed": confirmed,
			"total_not_found": notFound,
		}).Error
}

// Finalize completes the inventory. Pending items stay pending in the
// permanent record; re-finalizing only overwrites the completion
// timestamp.
func (w *Workflow) Finalize(inventoryID uint) (*inventoryEntity.Inventory, error) {
	var inv inventoryEntity.Inventory
	err := w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inv, inventoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errs.NotFoundf("inventory %d", inventoryID)
			}
			return err
		}
		now := time.Now()
		inv.Status = inventoryEntity.StatusCompleted
		inv.CompletedAt = &now
		return tx.Save(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ReportRow is one line of the reconciliation report: an item joined
// with its asset's descriptive fields.
type ReportRow struct {
	AssetID     uint       `json:"asset_id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Custodian   string     `json:"custodian"`
	Status      string     `json:"status"`
	Note        string     `json:"note"`
	ConfirmedBy string     `json:"confirmed_by"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

// Report holds the inventory's items partitioned by status.
type Report struct {
	Inventory *inventoryEntity.Inventory `json:"inventory"`
	Confirmed []ReportRow                `json:"confirmed"`
	NotFound  []ReportRow                `json:"not_found"`
	Pending   []ReportRow                `json:"pending"`
}

// Report partitions the inventory's items by status, each joined with
// asset fields and ordered by asset code. Read-only.
func (w *Workflow) Report(inventoryID uint) (*Report, error) {
	var inv inventoryEntity.Inventory
	if err := w.db.First(&inv, inventoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFoundf("inventory %d", inventoryID)
		}
		return nil, err
	}

	rep := &Report{Inventory: &inv}
	for _, part := range []struct {
		status string
		dest   *[]ReportRow
	}{
		{inventoryEntity.ItemConfirmed, &rep.Confirmed},
		{inventoryEntity.ItemNotFound, &rep.NotFound},
		{inventoryEntity.ItemPending, &rep.Pending},
	} {
		if err := w.db.Table("inventory_items ii").
			Select(`a.id AS asset_id, a.code, a.name, a.location, a.custodian,
				COALESCE(c.name, '') AS category,
				ii.status, ii.note, ii.confirmed_by, ii.confirmed_at`).
			Joins("JOIN assets a ON ii.asset_id = a.id").
			Joins("LEFT JOIN categories c ON a.category_id = c.id").
			Where("ii.inventory_id = ? AND ii.status = ?", inventoryID, part.status).
			Order("a.code").
			Scan(part.dest).Error; err != nil {
			return nil, err
		}
	}
	return rep, nil
}
