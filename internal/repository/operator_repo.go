package repository

import (
	"context"
	"time"

	"go-sales-rest/internal/model"

	"gorm.io/gorm"
)

type OperatorRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Operator, error)
	FindByID(ctx context.Context, id uint) (*model.Operator, error)
	Create(ctx context.Context, operator *model.Operator) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	StartSession(ctx context.Context, id uint, tokenVersion string, at time.Time) error
	RotateTokenVersion(ctx context.Context, id uint, tokenVersion string) error
}

type operatorRepo struct {
	db *gorm.DB
}

func NewOperatorRepo(db *gorm.DB) OperatorRepository {
	return &operatorRepo{db}
}

func (r *operatorRepo) FindByEmail(ctx context.Context, email string) (*model.Operator, error) {
	var operator model.Operator
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&operator).Error; err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *operatorRepo) FindByID(ctx context.Context, id uint) (*model.Operator, error) {
	var operator model.Operator
	if err := r.db.WithContext(ctx).First(&operator, id).Error; err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *operatorRepo) Create(ctx context.Context, operator *model.Operator) error {
	return r.db.WithContext(ctx).Create(operator).Error
}

func (r *operatorRepo) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	return r.db.WithContext(ctx).Model(&model.Operator{}).Where("id = ?", id).Update("password", hashedPassword).Error
}

// StartSession stores the token version of the newest login, invalidating older tokens.
func (r *operatorRepo) StartSession(ctx context.Context, id uint, tokenVersion string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Operator{}).Where("id = ?", id).Updates(map[string]interface{}{
		"token_version": tokenVersion,
		"last_login_at": at,
	}).Error
}

// RotateTokenVersion ends every session of the operator without recording a login.
func (r *operatorRepo) RotateTokenVersion(ctx context.Context, id uint, tokenVersion string) error {
	return r.db.WithContext(ctx).Model(&model.Operator{}).Where("id = ?", id).Update("token_version", tokenVersion).Error
}
