package entity

import (
	"time"

	"gorm.io/datatypes"
)

// MaintenanceEntry records one maintenance event for an asset. A set
// NextScheduled date feeds the upcoming-maintenance alert scan.
type MaintenanceEntry struct {
	ID            uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AssetID       uint            `gorm:"column:asset_id;not null;index" json:"asset_id"`
	Type          string          `gorm:"column:type;type:varchar(64);not null" json:"type"`
	Description   string          `gorm:"column:description;type:text;not null" json:"description"`
	PerformedAt   datatypes.Date  `gorm:"column:performed_at;not null" json:"performed_at"`
	NextScheduled *datatypes.Date `gorm:"column:next_scheduled" json:"next_scheduled,omitempty"`
	Custodian     string          `gorm:"column:custodian;type:varchar(128)" json:"custodian"`
	Cost          *float64        `gorm:"column:cost;type:decimal(12,2)" json:"cost,omitempty"`
	Status        string          `gorm:"column:status;type:varchar(32);default:completed" json:"status"`
	Notes         string          `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MaintenanceEntry) TableName() string {
	return "maintenance_entries"
}
