package service

import (
	"time"

	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/repository"
)

type DashboardService interface {
	GetDashboardStats() (*model.DashboardStats, error)
}

type dashboardService struct {
	medicineRepo repository.MedicineRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	now          func() time.Time
	loc          *time.Location
}

// NewDashboardService computes "today" in loc using now. Nil values fall
// back to time.Now and time.Local.
func NewDashboardService(mRepo repository.MedicineRepository, cRepo repository.CustomerRepository, sRepo repository.SaleRepository, now func() time.Time, loc *time.Location) DashboardService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &dashboardService{
		medicineRepo: mRepo,
		customerRepo: cRepo,
		saleRepo:     sRepo,
		now:          now,
		loc:          loc,
	}
}

// GetDashboardStats scans the store on every call; nothing is cached.
func (s *dashboardService) GetDashboardStats() (*model.DashboardStats, error) {
	var stats model.DashboardStats
	var err error

	if stats.TotalMedicines, err = s.medicineRepo.Count(); err != nil {
		return nil, err
	}

	lowStock, err := s.medicineRepo.FindLowStock()
	if err != nil {
		return nil, err
	}
	stats.LowStockItems = len(lowStock)

	start, end := dayBounds(s.now(), s.loc)
	if stats.TodaySales, err = s.saleRepo.SumTotalBetween(start, end); err != nil {
		return nil, err
	}

	// Every customer counts as active; there is no activity tracking.
	if stats.ActiveCustomers, err = s.customerRepo.Count(); err != nil {
		return nil, err
	}

	return &stats, nil
}

// dayBounds returns local midnight of t's day and the following midnight.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// monthBounds returns the first instant of t's month and of the next month.
func monthBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
