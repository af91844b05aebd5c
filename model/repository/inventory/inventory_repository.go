package inventory

import (
	"time"

	"gorm.io/gorm"

	"ativos.GO/core/errs"
	inventoryEntity "ativos.GO/model/entity/inventory"
)

// InventoryRepository serves the read paths of the inventory feature
// (listing campaigns, the checklist view). The transactional workflow
// operations live in service/inventory.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) FindByID(id uint) (*inventoryEntity.Inventory, error) {
	var inv inventoryEntity.Inventory
	if err := r.db.First(&inv, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFoundf("inventory %d", id)
		}
		return nil, err
	}
	return &inv, nil
}

// All lists inventories, most recently started first.
func (r *InventoryRepository) All() ([]inventoryEntity.Inventory, error) {
	var list []inventoryEntity.Inventory
	err := r.db.Order("started_at DESC, id DESC").Find(&list).Error
	return list, err
}

// ItemRow is one checklist line: the item joined with its asset and the
// asset's category.
type ItemRow struct {
	ItemID       uint       `json:"item_id"`
	Status       string     `json:"status"`
	Note         string     `json:"note"`
	ConfirmedBy  string     `json:"confirmed_by"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	AssetID      uint       `json:"asset_id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Serial       string     `json:"serial"`
	Location     string     `json:"location"`
	Custodian    string     `json:"custodian"`
	State        string     `json:"state"`
	CategoryName string     `json:"category_name"`
	CategoryIcon string     `json:"category_icon"`
}

// ItemsWithAssets returns the inventory checklist ordered by status then
// asset code.
func (r *InventoryRepository) ItemsWithAssets(inventoryID uint) ([]ItemRow, error) {
	var rows []ItemRow
	err := r.db.Table("inventory_items ii").
		Select(`ii.id AS item_id, ii.status, ii.note, ii.confirmed_by, ii.confirmed_at,
			a.id AS asset_id, a.code, a.name, a.serial, a.location, a.custodian, a.state,
			c.name AS category_name, c.icon AS category_icon`).
		Joins("JOIN assets a ON ii.asset_id = a.id").
		Joins("LEFT JOIN categories c ON a.category_id = c.id").
		Where("ii.inventory_id = ?", inventoryID).
		Order("ii.status, a.code").
		Scan(&rows).Error
	return rows, err
}
