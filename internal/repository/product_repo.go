package repository

import (
	"context"

	"go-sales-rest/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, product *model.Product) error
	IncreaseStockByName(ctx context.Context, name string, amount int) (int64, error)
	DecreaseStockByName(ctx context.Context, name string, amount int) (int64, error)
	DeleteAll(ctx context.Context) error

	// Transactional variants take the *gorm.DB of an open transaction.
	FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Product, error)
	DecrementStock(tx *gorm.DB, id uint, quantity int) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// IncreaseStockByName returns the number of rows matched by name.
func (r *productRepo) IncreaseStockByName(ctx context.Context, name string, amount int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("name = ?", name).
		Update("stock", gorm.Expr("stock + ?", amount))
	return res.RowsAffected, res.Error
}

// DecreaseStockByName only touches rows that still hold at least amount units.
func (r *productRepo) DecreaseStockByName(ctx context.Context, name string, amount int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("name = ? AND stock >= ?", name, amount).
		Update("stock", gorm.Expr("stock - ?", amount))
	return res.RowsAffected, res.Error
}

// DeleteAll empties the table. Only test setup and fixtures use it.
func (r *productRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Product{}).Error
}

// FindByIDForUpdate reads the product with a row lock held until the transaction ends.
func (r *productRepo) FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Product, error) {
	var product model.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DecrementStock subtracts quantity only if enough stock remains. It reports
// false when no row qualified, leaving the product untouched.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uint, quantity int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
