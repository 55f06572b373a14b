package service

import (
	"bytes"
	"testing"
	"time"

	"go-pharmacy-pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGetSummary(t *testing.T) {
	f := newFixture(t)
	para := f.addMedicine(t, "Paracetamol", 10, 50, "2.00") // Pain Relief
	_, err := f.medicines.CreateMedicine(&CreateMedicineRequest{
		Name:          "Amoxicillin",
		Category:      "Antibiotic",
		Manufacturer:  "x",
		BatchNumber:   "x",
		ExpiryDate:    "2027-01-01",
		Quantity:      intPtr(4),
		PurchasePrice: dec("1"),
		SellingPrice:  dec("10.00"),
		MinimumStock:  intPtr(1),
	})
	require.NoError(t, err)

	// last month
	f.clock.Advance(-31 * 24 * time.Hour)
	_, err = f.sales.CreateSale(&CreateSaleRequest{
		CustomerName:  "a",
		PaymentMethod: model.PaymentCash,
		Items:         []CreateSaleItemRequest{{MedicineID: para.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	f.clock.Advance(31 * 24 * time.Hour)

	_, err = f.sales.CreateSale(&CreateSaleRequest{
		CustomerName:  "b",
		PaymentMethod: model.PaymentCard,
		Items:         []CreateSaleItemRequest{{MedicineID: para.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	summary, err := f.reports.GetSummary()
	require.NoError(t, err)

	// 4.00 + 0.20 and 8.00 + 0.40
	requireDecimal(t, "12.60", summary.TotalRevenue)
	assert.Equal(t, 2, summary.TotalSales)
	requireDecimal(t, "6.30", summary.AverageOrderValue)
	requireDecimal(t, "8.40", summary.MonthlyRevenue)
	assert.Equal(t, 1, summary.SalesThisMonth)

	// Paracetamol 4 x 2.00, Amoxicillin 4 x 10.00
	requireDecimal(t, "48.00", summary.InventoryValue)
	assert.Equal(t, 1, summary.LowStockCount)

	require.Len(t, summary.TopCategories, 2)
	assert.Equal(t, "Antibiotic", summary.TopCategories[0].Category)
	requireDecimal(t, "40.00", summary.TopCategories[0].Value)
	assert.Equal(t, "Pain Relief", summary.TopCategories[1].Category)
	assert.Equal(t, 1, summary.TopCategories[1].Count)
}

func TestGetSummary_Empty(t *testing.T) {
	f := newFixture(t)

	summary, err := f.reports.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalSales)
	assert.True(t, summary.AverageOrderValue.IsZero())
	assert.Empty(t, summary.TopCategories)
}

func TestExportSales(t *testing.T) {
	f := newFixture(t)
	a := f.addMedicine(t, "A", 10, 0, "1.50")
	b := f.addMedicine(t, "B", 10, 0, "2.00")

	_, err := f.sales.CreateSale(&CreateSaleRequest{
		CustomerName:  "Jane",
		PaymentMethod: model.PaymentCash,
		Items: []CreateSaleItemRequest{
			{MedicineID: a.ID, Quantity: 2},
			{MedicineID: b.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.reports.ExportSales(&buf))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	sales, err := wb.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "sale_id", sales[0][0])
	assert.Equal(t, "1", sales[1][0])
	assert.Equal(t, "Jane", sales[1][3])
	assert.Equal(t, "cash", sales[1][4])

	items, err := wb.GetRows("Items")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[1][3])
	assert.Equal(t, "2", items[1][4])
	assert.Equal(t, "B", items[2][3])
}
