package user

import (
	"time"

	"gorm.io/gorm"

	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.First(&u, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFoundf("user %d", id)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFoundf("user %q", username)
		}
		return nil, err
	}
	return &u, nil
}

// All lists users, newest first.
func (r *UserRepository) All() ([]entity.User, error) {
	var list []entity.User
	err := r.db.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// Toggle flips a user's active flag and returns the new state.
func (r *UserRepository) Toggle(id uint) (bool, error) {
	u, err := r.FindByID(id)
	if err != nil {
		return false, err
	}
	u.Active = !u.Active
	if err := r.db.Model(u).Update("active", u.Active).Error; err != nil {
		return false, err
	}
	return u.Active, nil
}

func (r *UserRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *UserRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.db.Model(&entity.User{}).Where("id = ?", id).
		Update("last_login_at", now).Error
}
