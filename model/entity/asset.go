package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Asset represents one tracked physical item.
type Asset struct {
	ID               uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code             string          `gorm:"column:code;type:varchar(64);index" json:"code"`
	Name             string          `gorm:"column:name;type:varchar(255)" json:"name"`
	Serial           string          `gorm:"column:serial;type:varchar(128)" json:"serial"`
	Description      string          `gorm:"column:description;type:text" json:"description"`
	Location         string          `gorm:"column:location;type:varchar(128);index" json:"location"`
	Custodian        string          `gorm:"column:custodian;type:varchar(128);index" json:"custodian"`
	State            string          `gorm:"column:state;type:varchar(32)" json:"state"`
	CategoryID       *uint           `gorm:"column:category_id;index" json:"category_id,omitempty"`
	Subcategory      *string         `gorm:"column:subcategory;type:varchar(128)" json:"subcategory,omitempty"`
	PropertyNumber   *string         `gorm:"column:property_number;type:varchar(64)" json:"property_number,omitempty"`
	AcquiredAt       *datatypes.Date `gorm:"column:acquired_at" json:"acquired_at,omitempty"`
	AcquisitionValue *float64        `gorm:"column:acquisition_value;type:decimal(12,2)" json:"acquisition_value,omitempty"`
	Supplier         *string         `gorm:"column:supplier;type:varchar(128)" json:"supplier,omitempty"`
	WarrantyUntil    *datatypes.Date `gorm:"column:warranty_until" json:"warranty_until,omitempty"`
	Notes            *string         `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}
