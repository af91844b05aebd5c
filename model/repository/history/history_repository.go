package history

import (
	"gorm.io/gorm"

	entity "ativos.GO/model/entity"
)

// HistoryRepository appends and reads audit records. Entries are never
// updated or deleted here.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(e *entity.HistoryEntry) error {
	return r.db.Create(e).Error
}

// ListByAsset returns up to limit entries for an asset, newest first.
// limit <= 0 means no limit.
func (r *HistoryRepository) ListByAsset(assetID uint, limit int) ([]entity.HistoryEntry, error) {
	var list []entity.HistoryEntry
	tx := r.db.Where("asset_id = ?", assetID).Order("created_at DESC, id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&list).Error
	return list, err
}
