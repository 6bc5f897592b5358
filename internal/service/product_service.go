package service

import (
	"context"
	"errors"
	"log"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"
	"go-sales-rest/pkg/validator"

	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *model.ProductRequest, creatorID string) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *model.ProductRequest, updaterID string) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	SearchByName(ctx context.Context, name string) (*model.Product, error)
	IncreaseStock(ctx context.Context, name string, amount int) error
	DecreaseStock(ctx context.Context, name string, amount int) error
}

type productService struct {
	productRepo repository.ProductRepository
	notifier    Notifier
}

func NewProductService(productRepo repository.ProductRepository, notifier Notifier) ProductService {
	return &productService{
		productRepo: productRepo,
		notifier:    notifierOrNoop(notifier),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *model.ProductRequest, creatorID string) (*model.Product, error) {
	if field, reason := validator.FirstError(req); field != "" {
		return nil, validationError(field, reason)
	}
	if err := s.ensureNameFree(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	product := &model.Product{}
	req.Apply(product)
	product.CreatedBy = creatorID
	product.UpdatedBy = creatorID

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uint, req *model.ProductRequest, updaterID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	if field, reason := validator.FirstError(req); field != "" {
		return nil, validationError(field, reason)
	}
	if req.Name != product.Name {
		if err := s.ensureNameFree(ctx, req.Name, product.ID); err != nil {
			return nil, err
		}
	}

	req.Apply(product)
	product.UpdatedBy = updaterID
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.publishStock(product)
	return product, nil
}

func (s *productService) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.productRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return &ConflictError{Field: "name", Value: name}
	}
	return nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	return product, nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *productService) SearchByName(ctx context.Context, name string) (*model.Product, error) {
	if name == "" {
		return nil, validationError("name", "is required")
	}
	product, err := s.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	return product, nil
}

func (s *productService) IncreaseStock(ctx context.Context, name string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	rows, err := s.productRepo.IncreaseStockByName(ctx, name, amount)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}

	log.Printf("Stock of %q increased by %d", name, amount)
	s.publishStockByName(ctx, name)
	return nil
}

// DecreaseStock never takes stock below zero: a shortfall is reported as
// ErrInsufficientStock and nothing changes.
func (s *productService) DecreaseStock(ctx context.Context, name string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	rows, err := s.productRepo.DecreaseStockByName(ctx, name, amount)
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, err := s.productRepo.FindByName(ctx, name); err != nil {
			return notFound(err, ErrProductNotFound)
		}
		return ErrInsufficientStock
	}

	log.Printf("Stock of %q decreased by %d", name, amount)
	s.publishStockByName(ctx, name)
	return nil
}

func (s *productService) publishStockByName(ctx context.Context, name string) {
	product, err := s.productRepo.FindByName(ctx, name)
	if err != nil {
		return
	}
	s.publishStock(product)
}

func (s *productService) publishStock(product *model.Product) {
	s.notifier.Publish("stock_update", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"new_stock":  product.Stock,
	})
}
