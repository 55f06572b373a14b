package service

import (
	"fmt"
	"io"
	"sort"
	"time"

	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const topCategoryCount = 5

type ReportService interface {
	GetSummary() (*model.ReportSummary, error)
	ExportSales(w io.Writer) error
}

type reportService struct {
	medicineRepo repository.MedicineRepository
	saleRepo     repository.SaleRepository
	now          func() time.Time
	loc          *time.Location
}

func NewReportService(mRepo repository.MedicineRepository, sRepo repository.SaleRepository, now func() time.Time, loc *time.Location) ReportService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &reportService{medicineRepo: mRepo, saleRepo: sRepo, now: now, loc: loc}
}

func (s *reportService) GetSummary() (*model.ReportSummary, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	medicines, err := s.medicineRepo.FindAll()
	if err != nil {
		return nil, err
	}

	summary := model.ReportSummary{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		MonthlyRevenue:    decimal.Zero,
		InventoryValue:    decimal.Zero,
		TotalSales:        len(sales),
	}

	monthStart, monthEnd := monthBounds(s.now(), s.loc)
	for _, sale := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.Total)
		if !sale.CreatedAt.Before(monthStart) && sale.CreatedAt.Before(monthEnd) {
			summary.MonthlyRevenue = summary.MonthlyRevenue.Add(sale.Total)
			summary.SalesThisMonth++
		}
	}
	if len(sales) > 0 {
		summary.AverageOrderValue = summary.TotalRevenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}

	byCategory := make(map[string]*model.CategoryStock)
	for i := range medicines {
		m := &medicines[i]
		value := m.StockValue()
		summary.InventoryValue = summary.InventoryValue.Add(value)
		if m.IsLowStock() {
			summary.LowStockCount++
		}

		cat, ok := byCategory[m.Category]
		if !ok {
			cat = &model.CategoryStock{Category: m.Category, Value: decimal.Zero}
			byCategory[m.Category] = cat
		}
		cat.Count++
		cat.Value = cat.Value.Add(value)
	}
	summary.TopCategories = topCategories(byCategory, topCategoryCount)

	return &summary, nil
}

// topCategories sorts by value descending, then name, and keeps n.
func topCategories(byCategory map[string]*model.CategoryStock, n int) []model.CategoryStock {
	out := make([]model.CategoryStock, 0, len(byCategory))
	for _, c := range byCategory {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Value.Cmp(out[j].Value); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// ExportSales writes every sale and line item to an xlsx workbook with a
// "Sales" sheet and an "Items" sheet.
func (s *reportService) ExportSales(w io.Writer) error {
	sales, err := s.saleRepo.FindAllWithItems()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), "Sales"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet("Items"); err != nil {
		return fmt.Errorf("create items sheet: %w", err)
	}

	salesHeader := []interface{}{
		"sale_id", "created_at", "customer_id", "customer_name",
		"payment_method", "subtotal", "tax", "total",
	}
	itemsHeader := []interface{}{
		"sale_id", "item_id", "medicine_id", "medicine_name",
		"quantity", "price", "total",
	}
	if err := f.SetSheetRow("Sales", "A1", &salesHeader); err != nil {
		return fmt.Errorf("write sales header: %w", err)
	}
	if err := f.SetSheetRow("Items", "A1", &itemsHeader); err != nil {
		return fmt.Errorf("write items header: %w", err)
	}

	saleRow, itemRow := 2, 2
	for _, sale := range sales {
		var customerID interface{}
		if sale.CustomerID != nil {
			customerID = *sale.CustomerID
		}
		row := []interface{}{
			sale.ID,
			sale.CreatedAt.In(s.loc).Format(time.RFC3339),
			customerID,
			sale.CustomerName,
			string(sale.PaymentMethod),
			sale.Subtotal.InexactFloat64(),
			sale.Tax.InexactFloat64(),
			sale.Total.InexactFloat64(),
		}
		if err := setRow(f, "Sales", saleRow, row); err != nil {
			return err
		}
		saleRow++

		for _, item := range sale.Items {
			row := []interface{}{
				sale.ID,
				item.ID,
				item.MedicineID,
				item.MedicineName,
				item.Quantity,
				item.Price.InexactFloat64(),
				item.Total.InexactFloat64(),
			}
			if err := setRow(f, "Items", itemRow, row); err != nil {
				return err
			}
			itemRow++
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
