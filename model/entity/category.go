package entity

import "time"

// Category groups assets; seeded with defaults at initialization.
type Category struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(128);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;type:varchar(255)" json:"description"`
	Icon        string    `gorm:"column:icon;type:varchar(64)" json:"icon"`
	Color       string    `gorm:"column:color;type:varchar(16)" json:"color"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
