package service

import (
	"context"
	"fmt"
	"io"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const salesSheet = "Sales"

var salesHeader = []interface{}{"ID", "Date", "Product", "Client", "Email", "Quantity", "Unit price", "Total"}

type ReportService interface {
	ExportSales(ctx context.Context, w io.Writer) error
}

type reportService struct {
	saleRepo repository.SaleRepository
}

func NewReportService(saleRepo repository.SaleRepository) ReportService {
	return &reportService{saleRepo: saleRepo}
}

// ExportSales writes every sale, oldest first, as an xlsx workbook.
func (s *reportService) ExportSales(ctx context.Context, w io.Writer) error {
	ctx, span := tracer.Start(ctx, "ReportService.ExportSales")
	defer span.End()

	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(salesSheet, "A1", &salesHeader); err != nil {
		return err
	}
	for i := range sales {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := saleRow(&sales[i])
		if err := f.SetSheetRow(salesSheet, cell, &row); err != nil {
			return fmt.Errorf("write sale %d: %w", sales[i].ID, err)
		}
	}
	if err := f.SetColWidth(salesSheet, "B", "E", 22); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func saleRow(sale *model.Sale) []interface{} {
	unit := decimal.Zero
	if sale.Quantity > 0 {
		unit = sale.Price.Div(decimal.NewFromInt(int64(sale.Quantity)))
	}
	return []interface{}{
		sale.ID,
		sale.SaleDate.Format(model.LocalDateTimeLayout),
		sale.Product.Name,
		sale.Client.Name + " " + sale.Client.Surname,
		sale.Client.Email,
		sale.Quantity,
		unit.InexactFloat64(),
		sale.Price.InexactFloat64(),
	}
}
