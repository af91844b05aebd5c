package entity

import "time"

// Attachment kinds.
const (
	AttachmentPhoto    = "photo"
	AttachmentDocument = "document"
)

// Attachment is a file (photo or document) stored for one asset.
// Primary is maintained at write time: setting a photo primary clears
// any prior primary for the asset. There is no uniqueness constraint.
type Attachment struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AssetID     uint      `gorm:"column:asset_id;not null;index" json:"asset_id"`
	Kind        string    `gorm:"column:kind;type:varchar(16);not null" json:"kind"`
	FileName    string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	Path        string    `gorm:"column:path;type:varchar(512);not null" json:"path"`
	Size        int64     `gorm:"column:size" json:"size"`
	MimeType    string    `gorm:"column:mime_type;type:varchar(128)" json:"mime_type"`
	Description string    `gorm:"column:description;type:varchar(255)" json:"description"`
	Primary     bool      `gorm:"column:is_primary;default:false" json:"primary"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
