package maintenance

import (
	"gorm.io/gorm"

	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(m *entity.MaintenanceEntry) error {
	return r.db.Create(m).Error
}

func (r *MaintenanceRepository) FindByID(id uint) (*entity.MaintenanceEntry, error) {
	var m entity.MaintenanceEntry
	if err := r.db.First(&m, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFoundf("maintenance entry %d", id)
		}
		return nil, err
	}
	return &m, nil
}

// ListByAsset returns maintenance entries for an asset, newest first.
func (r *MaintenanceRepository) ListByAsset(assetID uint) ([]entity.MaintenanceEntry, error) {
	var list []entity.MaintenanceEntry
	err := r.db.Where("asset_id = ?", assetID).
		Order("performed_at DESC").Find(&list).Error
	return list, err
}

func (r *MaintenanceRepository) Delete(id uint) error {
	res := r.db.Delete(&entity.MaintenanceEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFoundf("maintenance entry %d", id)
	}
	return nil
}
