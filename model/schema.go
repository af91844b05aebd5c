package model

import (
	"gorm.io/gorm"

	entity "ativos.GO/model/entity"
	inventoryEntity "ativos.GO/model/entity/inventory"
)

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{},
		&entity.Asset{},
		&entity.Attachment{},
		&entity.MaintenanceEntry{},
		&entity.HistoryEntry{},
		&entity.User{},
		&inventoryEntity.Inventory{},
		&inventoryEntity.InventoryItem{},
	)
}
