package service

import (
	"context"

	"go-sales-rest/internal/repository"
)

// LowStockThreshold is the stock level below which a product counts as low.
const LowStockThreshold = 10

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error)
}

type dashboardService struct {
	saleRepo repository.SaleRepository
}

func NewDashboardService(saleRepo repository.SaleRepository) DashboardService {
	return &dashboardService{saleRepo: saleRepo}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	ctx, span := tracer.Start(ctx, "DashboardService.GetDashboardStats")
	defer span.End()

	return s.saleRepo.GetDashboardStats(ctx, LowStockThreshold)
}
