package category_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"ativos.GO/model"
	entity "ativos.GO/model/entity"
	categoryRepo "ativos.GO/model/repository/category"
)

func categoryTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCategoryRepository_SeedDefaultsIdempotent(t *testing.T) {
	db := categoryTestDB(t)
	repo := categoryRepo.NewCategoryRepository(db)

	if err := repo.SeedDefaults(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var first int64
	db.Model(&entity.Category{}).Count(&first)
	if first != 8 {
		t.Errorf("seeded = %d categories, want 8", first)
	}

	if err := repo.SeedDefaults(); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var second int64
	db.Model(&entity.Category{}).Count(&second)
	if second != first {
		t.Errorf("second seed changed count: %d -> %d", first, second)
	}
}

func TestCategoryRepository_Stats(t *testing.T) {
	db := categoryTestDB(t)
	repo := categoryRepo.NewCategoryRepository(db)

	hw := &entity.Category{Name: "Hardware"}
	fur := &entity.Category{Name: "Furniture"}
	for _, c := range []*entity.Category{hw, fur} {
		if err := repo.Create(c); err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		db.Create(&entity.Asset{Code: "HW", CategoryID: &hw.ID})
	}
	db.Create(&entity.Asset{Code: "F", CategoryID: &fur.ID})

	rows, err := repo.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "Hardware" || rows[0].Total != 3 {
		t.Errorf("rows[0] = %+v, want Hardware/3", rows[0])
	}
}

func TestCategoryRepository_NamesByID(t *testing.T) {
	db := categoryTestDB(t)
	repo := categoryRepo.NewCategoryRepository(db)

	c := &entity.Category{Name: "Network"}
	if err := repo.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	names, err := repo.NamesByID()
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if names[c.ID] != "Network" {
		t.Errorf("names = %v", names)
	}
}
