package repository

import (
	"context"

	"go-sales-rest/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindOneByName(ctx context.Context, name string) (*model.User, error)
	FindByAgeGreaterThan(ctx context.Context, age int) ([]model.User, error)
	FindByNameAndAgeGreaterThan(ctx context.Context, name string, age int) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) FindOneByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id ASC").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByAgeGreaterThan(ctx context.Context, age int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Where("age > ?", age).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) FindByNameAndAgeGreaterThan(ctx context.Context, name string, age int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Where("name = ? AND age > ?", name, age).Order("id ASC").Find(&users).Error
	return users, err
}
