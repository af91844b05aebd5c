package asset

import (
	"strconv"

	"gorm.io/gorm"

	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
	inventoryEntity "ativos.GO/model/entity/inventory"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(a *entity.Asset) error {
	return r.db.Create(a).Error
}

func (r *AssetRepository) FindByID(id uint) (*entity.Asset, error) {
	var a entity.Asset
	if err := r.db.First(&a, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFoundf("asset %d", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssetRepository) Save(a *entity.Asset) error {
	return r.db.Save(a).Error
}

// Delete removes the asset and all dependent records in one transaction
// (attachments, maintenance, history, inventory items).
func (r *AssetRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.Asset{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFoundf("asset %d", id)
		}
		if err := tx.Where("asset_id = ?", id).Delete(&entity.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", id).Delete(&entity.MaintenanceEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", id).Delete(&entity.HistoryEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("asset_id = ?", id).Delete(&inventoryEntity.InventoryItem{}).Error
	})
}

// Search lists assets matching q across the descriptive columns, or all
// assets when q is empty.
func (r *AssetRepository) Search(q string) ([]entity.Asset, error) {
	var assets []entity.Asset
	tx := r.db.Order("code")
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where(
			"code LIKE ? OR name LIKE ? OR serial LIKE ? OR description LIKE ? OR location LIKE ? OR custodian LIKE ?",
			like, like, like, like, like, like,
		)
	}
	err := tx.Find(&assets).Error
	return assets, err
}

func (r *AssetRepository) All() ([]entity.Asset, error) {
	var assets []entity.Asset
	err := r.db.Order("code").Find(&assets).Error
	return assets, err
}

func (r *AssetRepository) AllIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entity.Asset{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

// FindIDsByScope selects asset IDs for an inventory snapshot. An empty
// filter value with a non-"all" scope yields an empty selection.
func (r *AssetRepository) FindIDsByScope(scopeType, filterValue string) ([]uint, error) {
	tx := r.db.Model(&entity.Asset{})
	switch scopeType {
	case inventoryEntity.ScopeAll:
	case inventoryEntity.ScopeCategory:
		if filterValue == "" {
			return nil, nil
		}
		catID, err := strconv.ParseUint(filterValue, 10, 32)
		if err != nil {
			return nil, errs.Validationf("category filter %q is not a valid id", filterValue)
		}
		tx = tx.Where("category_id = ?", uint(catID))
	case inventoryEntity.ScopeLocation:
		if filterValue == "" {
			return nil, nil
		}
		tx = tx.Where("location = ?", filterValue)
	case inventoryEntity.ScopeCustodian:
		if filterValue == "" {
			return nil, nil
		}
		tx = tx.Where("custodian = ?", filterValue)
	default:
		return nil, errs.Validationf("unknown scope type %q", scopeType)
	}
	var ids []uint
	err := tx.Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *AssetRepository) FindByCategory(categoryID uint) ([]entity.Asset, error) {
	var assets []entity.Asset
	err := r.db.Where("category_id = ?", categoryID).Order("name").Find(&assets).Error
	return assets, err
}

// FindByField lists assets filtered by one report dimension.
func (r *AssetRepository) FindByField(by, value string) ([]entity.Asset, error) {
	column := map[string]string{
		"state":     "state",
		"location":  "location",
		"custodian": "custodian",
	}[by]
	if column == "" {
		return nil, errs.Validationf("unknown report dimension %q", by)
	}
	var assets []entity.Asset
	err := r.db.Where(column+" = ?", value).Order("code").Find(&assets).Error
	return assets, err
}

func (r *AssetRepository) Distinct(column string) ([]string, error) {
	var values []string
	err := r.db.Model(&entity.Asset{}).
		Where(column + " IS NOT NULL AND " + column + " <> ''").
		Distinct().Order(column).Pluck(column, &values).Error
	return values, err
}

func (r *AssetRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Asset{}).Count(&n).Error
	return n, err
}

func (r *AssetRepository) CountWithoutCategory() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Asset{}).Where("category_id IS NULL").Count(&n).Error
	return n, err
}

type GroupCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// CountByState groups assets by state.
func (r *AssetRepository) CountByState() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.Model(&entity.Asset{}).
		Select("state AS value, COUNT(*) AS count").
		Group("state").Scan(&rows).Error
	return rows, err
}

// TopLocations returns the n locations holding the most assets.
func (r *AssetRepository) TopLocations(n int) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.Model(&entity.Asset{}).
		Select("location AS value, COUNT(*) AS count").
		Group("location").Order("count DESC").Limit(n).Scan(&rows).Error
	return rows, err
}

// Latest returns the n most recently created assets.
func (r *AssetRepository) Latest(n int) ([]entity.Asset, error) {
	var assets []entity.Asset
	err := r.db.Order("id DESC").Limit(n).Find(&assets).Error
	return assets, err
}
