package user_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"ativos.GO/core/errs"
	"ativos.GO/model"
	entity "ativos.GO/model/entity"
	userRepo "ativos.GO/model/repository/user"
)

func userTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := userTestDB(t)
	repo := userRepo.NewUserRepository(db)

	u := &entity.User{Username: "alice", Email: "alice@example.com", Role: entity.RoleManager, PasswordHash: "x", Active: true}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByUsername("alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != u.ID || !got.IsManager() {
		t.Errorf("got %+v", got)
	}
	if _, err := repo.FindByUsername("nobody"); !errs.IsNotFound(err) {
		t.Errorf("missing user: err = %v, want not-found", err)
	}
}

func TestUserRepository_CreateDisabledStaysDisabled(t *testing.T) {
	db := userTestDB(t)
	repo := userRepo.NewUserRepository(db)

	u := &entity.User{Username: "dave", Email: "dave@example.com", PasswordHash: "x", Active: false}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Active {
		t.Error("account created disabled came back active")
	}
}

func TestUserRepository_Toggle(t *testing.T) {
	db := userTestDB(t)
	repo := userRepo.NewUserRepository(db)

	u := &entity.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x", Active: true}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}

	active, err := repo.Toggle(u.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if active {
		t.Error("first toggle should deactivate")
	}
	active, err = repo.Toggle(u.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !active {
		t.Error("second toggle should reactivate")
	}

	if _, err := repo.Toggle(999); !errs.IsNotFound(err) {
		t.Errorf("missing user: err = %v, want not-found", err)
	}
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	db := userTestDB(t)
	repo := userRepo.NewUserRepository(db)

	u := &entity.User{Username: "carol", Email: "carol@example.com", PasswordHash: "x", Active: true}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.TouchLastLogin(u.ID); err != nil {
		t.Fatalf("touch: %v", err)
	}
	got, err := repo.FindByID(u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.LastLoginAt == nil {
		t.Error("last_login_at still NULL")
	}
}
