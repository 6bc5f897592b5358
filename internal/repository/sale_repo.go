package repository

import (
	"context"

	"go-sales-rest/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindByID(ctx context.Context, id uint) (*model.Sale, error)
	FindAll(ctx context.Context) ([]model.Sale, error)
	FindByProductID(ctx context.Context, productID uint) ([]model.Sale, error)
	FindByClientID(ctx context.Context, clientID uint) ([]model.Sale, error)
	GetDashboardStats(ctx context.Context, lowStockThreshold int) (*DashboardStats, error)
	DeleteAll(ctx context.Context) error
}

// DashboardStats summarizes stock and sales for the dashboard.
type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
	TotalSales     int64           `json:"total_sales"`
	TotalUnitsSold int64           `json:"total_units_sold"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create inserts only the sale row; product and client are existing records.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Omit(clause.Associations).Create(sale).Error
}

func (r *saleRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Product").
		Preload("Client").
		Preload("Client.PayMethods", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
}

func (r *saleRepo) FindByID(ctx context.Context, id uint) (*model.Sale, error) {
	var sale model.Sale
	if err := r.preloaded(ctx).First(&sale, id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.preloaded(ctx).Order("id ASC").Find(&sales).Error
	return sales, err
}

// FindByProductID returns sales in insertion order.
func (r *saleRepo) FindByProductID(ctx context.Context, productID uint) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.preloaded(ctx).Where("product_id = ?", productID).Order("id ASC").Find(&sales).Error
	return sales, err
}

// FindByClientID returns sales in insertion order.
func (r *saleRepo) FindByClientID(ctx context.Context, clientID uint) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.preloaded(ctx).Where("client_id = ?", clientID).Order("id ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) GetDashboardStats(ctx context.Context, lowStockThreshold int) (*DashboardStats, error) {
	var stats DashboardStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Product{}).Where("stock < ?", lowStockThreshold).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Sale{}).Count(&stats.TotalSales).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.Product{}).Select("COALESCE(SUM(stock * price), 0)").Row().Scan(&stats.TotalValuation); err != nil {
		return nil, err
	}
	if err := db.Model(&model.Sale{}).Select("COALESCE(SUM(quantity), 0)").Row().Scan(&stats.TotalUnitsSold); err != nil {
		return nil, err
	}
	if err := db.Model(&model.Sale{}).Select("COALESCE(SUM(price), 0)").Row().Scan(&stats.TotalRevenue); err != nil {
		return nil, err
	}

	return &stats, nil
}

// DeleteAll empties the table. Only test setup and fixtures use it.
func (r *saleRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Sale{}).Error
}
