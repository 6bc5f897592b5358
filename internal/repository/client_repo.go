package repository

import (
	"context"

	"go-sales-rest/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, client *model.Client) error
	DeleteAll(ctx context.Context) error

	FindByIDTx(tx *gorm.DB, id uint) (*model.Client, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	return r.FindByIDTx(r.db.WithContext(ctx), id)
}

func (r *clientRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Client, error) {
	var client model.Client
	if err := tx.Preload("PayMethods", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update replaces the client row and its whole payment method list.
func (r *clientRepo) Update(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", client.ID).Delete(&model.ClientPayMethod{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("PayMethods").Save(client).Error; err != nil {
			return err
		}
		if len(client.PayMethods) == 0 {
			return nil
		}
		for i := range client.PayMethods {
			client.PayMethods[i].ID = 0
			client.PayMethods[i].ClientID = client.ID
		}
		return tx.Create(&client.PayMethods).Error
	})
}

// DeleteAll empties the table. Only test setup and fixtures use it.
func (r *clientRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&model.ClientPayMethod{}).Error; err != nil {
			return err
		}
		return global.Delete(&model.Client{}).Error
	})
}
