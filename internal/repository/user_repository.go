package repository

import (
	"ielts_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

// FindByLogin 邮箱或用户名登录
func (r *UserRepository) FindByLogin(login string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ? OR username = ?", login, login).First(&user).Error
	return &user, err
}

func (r *UserRepository) UpdateProfile(user *model.User) error {
	return r.DB.Model(user).Select("name", "email", "target_score", "test_date").Updates(user).Error
}

func (r *UserRepository) UpdatePassword(id uint, hashed string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("password", hashed).Error
}

func (r *UserRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("last_login", at).Error
}
