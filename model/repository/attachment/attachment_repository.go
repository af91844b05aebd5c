package attachment

import (
	"gorm.io/gorm"

	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(a *entity.Attachment) error {
	return r.db.Create(a).Error
}

func (r *AttachmentRepository) FindByID(id uint) (*entity.Attachment, error) {
	var a entity.Attachment
	if err := r.db.First(&a, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFoundf("attachment %d", id)
		}
		return nil, err
	}
	return &a, nil
}

// ListByAsset returns all attachments for an asset, primary photo first,
// newest first after that.
func (r *AttachmentRepository) ListByAsset(assetID uint) ([]entity.Attachment, error) {
	var list []entity.Attachment
	err := r.db.Where("asset_id = ?", assetID).
		Order("is_primary DESC, created_at DESC").Find(&list).Error
	return list, err
}

func (r *AttachmentRepository) Delete(id uint) error {
	res := r.db.Delete(&entity.Attachment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFoundf("attachment %d", id)
	}
	return nil
}

// SetPrimary marks one photo as the asset's primary, clearing any prior
// primary photo in the same transaction. Only photos can be primary.
func (r *AttachmentRepository) SetPrimary(assetID, attachmentID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var a entity.Attachment
		if err := tx.Where("id = ? AND asset_id = ?", attachmentID, assetID).First(&a).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errs.NotFoundf("attachment %d for asset %d", attachmentID, assetID)
			}
			return err
		}
		if a.Kind != entity.AttachmentPhoto {
			return errs.Validationf("only photos can be primary")
		}
		if err := tx.Model(&entity.Attachment{}).
			Where("asset_id = ? AND kind = ?", assetID, entity.AttachmentPhoto).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Attachment{}).
			Where("id = ?", attachmentID).
			Update("is_primary", true).Error
	})
}
