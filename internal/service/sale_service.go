package service

import (
	"context"
	"errors"
	"log"
	"time"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type SaleService interface {
	CreateSale(ctx context.Context, productID, clientID uint, quantity int) (*model.Sale, error)
	GetSale(ctx context.Context, id uint) (*model.Sale, error)
	GetSalesByProduct(ctx context.Context, productID uint) ([]model.Sale, error)
	GetSalesByClient(ctx context.Context, clientID uint) ([]model.Sale, error)
	GetAllSales(ctx context.Context) ([]model.Sale, error)
}

type saleService struct {
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	saleRepo    repository.SaleRepository
	db          *gorm.DB
	notifier    Notifier
	now         func() time.Time
}

func NewSaleService(pRepo repository.ProductRepository, cRepo repository.ClientRepository, sRepo repository.SaleRepository, db *gorm.DB, notifier Notifier) SaleService {
	return &saleService{
		productRepo: pRepo,
		clientRepo:  cRepo,
		saleRepo:    sRepo,
		db:          db,
		notifier:    notifierOrNoop(notifier),
		now:         time.Now,
	}
}

// CreateSale checks, in order: product exists, client exists, quantity > 0,
// stock >= quantity. The stock decrement and the sale insert commit together.
func (s *saleService) CreateSale(ctx context.Context, productID, clientID uint, quantity int) (*model.Sale, error) {
	ctx, span := tracer.Start(ctx, "SaleService.CreateSale", trace.WithAttributes(
		attribute.Int64("sale.product_id", int64(productID)),
		attribute.Int64("sale.client_id", int64(clientID)),
		attribute.Int("sale.quantity", quantity),
	))
	defer span.End()

	var sale *model.Sale
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Ids start at 1, so 0 stands for any id that cannot exist.
		if productID == 0 {
			return ErrProductNotFound
		}
		// The row lock makes a concurrent sale of the same product wait for this one.
		product, err := s.productRepo.FindByIDForUpdate(tx, productID)
		if err != nil {
			return notFound(err, ErrProductNotFound)
		}

		if clientID == 0 {
			return ErrClientNotFound
		}
		client, err := s.clientRepo.FindByIDTx(tx, clientID)
		if err != nil {
			return notFound(err, ErrClientNotFound)
		}

		if quantity <= 0 {
			return ErrInvalidQuantity
		}
		if product.Stock < quantity {
			return ErrInsufficientStock
		}

		ok, err := s.productRepo.DecrementStock(tx, product.ID, quantity)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientStock
		}
		product.Stock -= quantity

		sale = &model.Sale{
			ProductID: product.ID,
			Product:   *product,
			ClientID:  client.ID,
			Client:    *client,
			Quantity:  quantity,
			Price:     product.Price.Mul(decimal.NewFromInt(int64(quantity))),
			SaleDate:  s.now(),
		}
		return s.saleRepo.Create(tx, sale)
	})
	if err != nil {
		reason := rejectionReason(err)
		salesRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
		span.SetStatus(codes.Error, reason)
		if reason == "error" {
			span.RecordError(err)
			log.Printf("Sale failed: product=%d client=%d quantity=%d: %v", productID, clientID, quantity, err)
		} else {
			log.Printf("Sale rejected (%s): product=%d client=%d quantity=%d", reason, productID, clientID, quantity)
		}
		return nil, err
	}

	salesCreated.Add(ctx, 1)
	unitsSold.Add(ctx, int64(quantity))
	span.SetAttributes(attribute.Int64("sale.id", int64(sale.ID)))
	log.Printf("Sale %d recorded: product=%d client=%d quantity=%d price=%s", sale.ID, productID, clientID, quantity, sale.Price)

	s.notifier.Publish("sale_created", map[string]interface{}{
		"sale_id":    sale.ID,
		"product_id": sale.ProductID,
		"client_id":  sale.ClientID,
		"quantity":   sale.Quantity,
		"price":      sale.Price,
		"new_stock":  sale.Product.Stock,
	})

	return sale, nil
}

func rejectionReason(err error) string {
	var nf *NotFoundError
	var ia *InvalidArgumentError
	switch {
	case errors.As(err, &nf):
		return nf.Entity + "_not_found"
	case errors.As(err, &ia):
		return "invalid_" + ia.Field
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "error"
	}
}

func (s *saleService) GetSale(ctx context.Context, id uint) (*model.Sale, error) {
	ctx, span := tracer.Start(ctx, "SaleService.GetSale")
	defer span.End()

	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrSaleNotFound)
	}
	return sale, nil
}

func (s *saleService) GetSalesByProduct(ctx context.Context, productID uint) ([]model.Sale, error) {
	ctx, span := tracer.Start(ctx, "SaleService.GetSalesByProduct")
	defer span.End()

	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}
	return s.saleRepo.FindByProductID(ctx, productID)
}

func (s *saleService) GetSalesByClient(ctx context.Context, clientID uint) ([]model.Sale, error) {
	ctx, span := tracer.Start(ctx, "SaleService.GetSalesByClient")
	defer span.End()

	exists, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}
	return s.saleRepo.FindByClientID(ctx, clientID)
}

func (s *saleService) GetAllSales(ctx context.Context) ([]model.Sale, error) {
	return s.saleRepo.FindAll(ctx)
}
