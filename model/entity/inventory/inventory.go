package inventory

import "time"

// Inventory scope types: which filter dimension selected the assets.
const (
	ScopeAll       = "all"
	ScopeCategory  = "category"
	ScopeLocation  = "location"
	ScopeCustodian = "custodian"
)

// Inventory statuses. The transition is one-way: an inventory is never
// reopened after completion.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// InventoryItem statuses. Pending items may become confirmed or
// not_found; confirmed and not_found are mutually re-assignable but an
// item never returns to pending.
const (
	ItemPending   = "pending"
	ItemConfirmed = "confirmed"
	ItemNotFound  = "not_found"
)

// Inventory is a reconciliation campaign over a snapshot of assets
// selected by scope at creation time. The counters always mirror the
// live per-status item counts: total = confirmed + not_found + pending.
type Inventory struct {
	ID               uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title            string     `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description      string     `gorm:"column:description;type:text" json:"description"`
	ScopeType        string     `gorm:"column:scope_type;type:varchar(32);not null" json:"scope_type"`
	FilterCategoryID *uint      `gorm:"column:filter_category_id" json:"filter_category_id,omitempty"`
	FilterLocation   *string    `gorm:"column:filter_location;type:varchar(128)" json:"filter_location,omitempty"`
	FilterCustodian  *string    `gorm:"column:filter_custodian;type:varchar(128)" json:"filter_custodian,omitempty"`
	Status           string     `gorm:"column:status;type:varchar(32);not null;default:in_progress" json:"status"`
	TotalAssets      int        `gorm:"column:total_assets;not null;default:0" json:"total_assets"`
	TotalConfirmed   int        `gorm:"column:total_confirmed;not null;default:0" json:"total_confirmed"`
	TotalNotFound    int        `gorm:"column:total_not_found;not null;default:0" json:"total_not_found"`
	StartedBy        string     `gorm:"column:started_by;type:varchar(128)" json:"started_by"`
	StartedAt        time.Time  `gorm:"column:started_at;autoCreateTime" json:"started_at"`
	CompletedAt      *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	Notes            string     `gorm:"column:notes;type:text" json:"notes"`
}

func (Inventory) TableName() string {
	return "inventories"
}

// InventoryItem is one asset's confirmation record within an inventory.
// The item set is fixed at inventory creation.
type InventoryItem struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InventoryID uint       `gorm:"column:inventory_id;not null;index" json:"inventory_id"`
	AssetID     uint       `gorm:"column:asset_id;not null;index" json:"asset_id"`
	Status      string     `gorm:"column:status;type:varchar(32);not null;default:pending" json:"status"`
	Note        string     `gorm:"column:note;type:varchar(255)" json:"note"`
	ConfirmedBy string     `gorm:"column:confirmed_by;type:varchar(128)" json:"confirmed_by"`
	ConfirmedAt *time.Time `gorm:"column:confirmed_at" json:"confirmed_at,omitempty"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
