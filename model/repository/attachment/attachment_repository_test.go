package attachment_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"ativos.GO/core/errs"
	"ativos.GO/model"
	entity "ativos.GO/model/entity"
	attachmentRepo "ativos.GO/model/repository/attachment"
)

func attachmentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAttachment(t *testing.T, repo *attachmentRepo.AttachmentRepository, assetID uint, kind, name string) *entity.Attachment {
	a := &entity.Attachment{AssetID: assetID, Kind: kind, FileName: name, Path: "/tmp/" + name}
	if err := repo.Create(a); err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
	return a
}

func TestAttachmentRepository_SetPrimaryClearsPrior(t *testing.T) {
	db := attachmentTestDB(t)
	repo := attachmentRepo.NewAttachmentRepository(db)

	p1 := seedAttachment(t, repo, 1, entity.AttachmentPhoto, "front.png")
	p2 := seedAttachment(t, repo, 1, entity.AttachmentPhoto, "back.png")

	if err := repo.SetPrimary(1, p1.ID); err != nil {
		t.Fatalf("set primary #1: %v", err)
	}
	if err := repo.SetPrimary(1, p2.ID); err != nil {
		t.Fatalf("set primary #2: %v", err)
	}

	var primaries []entity.Attachment
	db.Where("asset_id = ? AND is_primary = ?", 1, true).Find(&primaries)
	if len(primaries) != 1 || primaries[0].ID != p2.ID {
		t.Errorf("primaries = %+v, want only %d", primaries, p2.ID)
	}
}

func TestAttachmentRepository_SetPrimaryRejectsDocuments(t *testing.T) {
	db := attachmentTestDB(t)
	repo := attachmentRepo.NewAttachmentRepository(db)

	doc := seedAttachment(t, repo, 1, entity.AttachmentDocument, "manual.pdf")
	if err := repo.SetPrimary(1, doc.ID); !errs.IsValidation(err) {
		t.Errorf("err = %v, want validation", err)
	}
}

func TestAttachmentRepository_SetPrimaryScopedToAsset(t *testing.T) {
	db := attachmentTestDB(t)
	repo := attachmentRepo.NewAttachmentRepository(db)

	other := seedAttachment(t, repo, 2, entity.AttachmentPhoto, "other.png")
	if err := repo.SetPrimary(1, other.ID); !errs.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestAttachmentRepository_ListOrdersPrimaryFirst(t *testing.T) {
	db := attachmentTestDB(t)
	repo := attachmentRepo.NewAttachmentRepository(db)

	seedAttachment(t, repo, 1, entity.AttachmentDocument, "manual.pdf")
	p := seedAttachment(t, repo, 1, entity.AttachmentPhoto, "front.png")
	if err := repo.SetPrimary(1, p.ID); err != nil {
		t.Fatalf("set primary: %v", err)
	}

	list, err := repo.ListByAsset(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != p.ID {
		t.Errorf("list = %+v, want primary first", list)
	}
}

func TestAttachmentRepository_Delete(t *testing.T) {
	db := attachmentTestDB(t)
	repo := attachmentRepo.NewAttachmentRepository(db)

	a := seedAttachment(t, repo, 1, entity.AttachmentPhoto, "front.png")
	if err := repo.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(a.ID); !errs.IsNotFound(err) {
		t.Errorf("second delete: err = %v, want not-found", err)
	}
}
