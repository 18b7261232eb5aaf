// Package repo is the persistence layer: every query the handlers need,
// returning apperr-kinded errors so the boundary can pick status codes.
package repo

import (
	"errors"

	"gorm.io/gorm"

	"storefront/internal/apperr"
	"storefront/internal/models"
)

type Repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// ---------- users ----------

func (r *Repo) CreateUser(username, password string) (models.User, error) {
	var u models.User

	var cnt int64
	r.db.Model(&models.User{}).Where("username = ?", username).Count(&cnt)
	if cnt > 0 {
		return u, apperr.NewValidation("username taken")
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return u, apperr.Wrap("hash password", err)
	}
	u = models.User{Username: username, PasswordHash: hash}
	if err := r.db.Create(&u).Error; err != nil {
		return u, apperr.Wrap("create user", err)
	}
	return u, nil
}

func (r *Repo) UserByID(id uint) (models.User, error) {
	var u models.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return u, notFoundOr("user not found", err)
	}
	return u, nil
}

func (r *Repo) UserByUsername(username string) (models.User, error) {
	var u models.User
	if err := r.db.First(&u, "username = ?", username).Error; err != nil {
		return u, notFoundOr("user not found", err)
	}
	return u, nil
}

func (r *Repo) UpdateUser(u *models.User) error {
	if err := r.db.Save(u).Error; err != nil {
		return apperr.Wrap("update user", err)
	}
	return nil
}

// DeleteUser removes the account; stores and their products go with it.
func (r *Repo) DeleteUser(id uint) error {
	if err := r.db.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return apperr.Wrap("delete user", err)
	}
	return nil
}

// ---------- stores ----------

func (r *Repo) AllStores() ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.Order("id desc").Find(&stores).Error; err != nil {
		return nil, apperr.Wrap("list stores", err)
	}
	return stores, nil
}

func (r *Repo) StoreByID(id uint) (models.Store, error) {
	var st models.Store
	if err := r.db.First(&st, "id = ?", id).Error; err != nil {
		return st, notFoundOr("store not found", err)
	}
	return st, nil
}

// StoreOwnedBy loads the store, then compares the owner. Absent and
// not-yours are distinct results.
func (r *Repo) StoreOwnedBy(storeID, userID uint) (models.Store, error) {
	st, err := r.StoreByID(storeID)
	if err != nil {
		return st, err
	}
	if st.UserID != userID {
		return st, apperr.NewForbidden("store not owned by user")
	}
	return st, nil
}

func (r *Repo) CreateStore(title string, userID uint) (models.Store, error) {
	st := models.Store{Title: title, UserID: userID}
	if err := r.db.Create(&st).Error; err != nil {
		return st, apperr.Wrap("create store", err)
	}
	return st, nil
}

// ---------- categories ----------

func (r *Repo) AllCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := r.db.Order("name").Find(&cats).Error; err != nil {
		return nil, apperr.Wrap("list categories", err)
	}
	return cats, nil
}

func (r *Repo) CreateCategory(name, description string) (models.Category, error) {
	cat := models.Category{Name: name, Description: description}
	if err := r.db.Create(&cat).Error; err != nil {
		return cat, apperr.Wrap("create category", err)
	}
	return cat, nil
}

func notFoundOr(msg string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NewNotFound(msg)
	}
	return apperr.Wrap(msg, err)
}
