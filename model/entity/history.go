package entity

import "time"

// HistoryEntry is one append-only audit record for an asset. Entries are
// never updated or deleted except through cascading asset deletion.
type HistoryEntry struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AssetID   uint      `gorm:"column:asset_id;not null;index" json:"asset_id"`
	Action    string    `gorm:"column:action;type:varchar(128);not null" json:"action"`
	Field     *string   `gorm:"column:field;type:varchar(64)" json:"field,omitempty"`
	OldValue  *string   `gorm:"column:old_value;type:text" json:"old_value,omitempty"`
	NewValue  *string   `gorm:"column:new_value;type:text" json:"new_value,omitempty"`
	Actor     string    `gorm:"column:actor;type:varchar(128);default:system" json:"actor"`
	SourceIP  string    `gorm:"column:source_ip;type:varchar(64)" json:"source_ip"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (HistoryEntry) TableName() string {
	return "history_entries"
}
