package model

import "github.com/shopspring/decimal"

// DashboardStats is the point-in-time snapshot served to the dashboard.
type DashboardStats struct {
	TotalMedicines  int             `json:"totalMedicines"`
	LowStockItems   int             `json:"lowStockItems"`
	TodaySales      decimal.Decimal `json:"todaySales"`
	ActiveCustomers int             `json:"activeCustomers"`
}

type CategoryStock struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Value    decimal.Decimal `json:"value"`
}

// ReportSummary backs the reports page.
type ReportSummary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalSales        int             `json:"totalSales"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	MonthlyRevenue    decimal.Decimal `json:"monthlyRevenue"`
	SalesThisMonth    int             `json:"salesThisMonth"`
	InventoryValue    decimal.Decimal `json:"inventoryValue"`
	LowStockCount     int             `json:"lowStockCount"`
	TopCategories     []CategoryStock `json:"topCategories"`
}
