package service

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recordedEvent struct {
	Type    string
	Payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(eventType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{eventType, payload})
}

func (p *recordingPublisher) ofType(eventType string) []recordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []recordedEvent
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	clock     *clock
	store     *repository.Store
	publisher *recordingPublisher

	medicineRepo repository.MedicineRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	saleRepo     repository.SaleRepository

	medicines MedicineService
	customers CustomerService
	suppliers SupplierService
	sales     SaleService
	dashboard DashboardService
	reports   ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		clock:     &clock{now: testNow},
		publisher: &recordingPublisher{},
	}
	f.store = repository.NewStore(repository.WithClock(f.clock.Now))
	f.medicineRepo = repository.NewMedicineRepo(f.store)
	f.customerRepo = repository.NewCustomerRepo(f.store)
	f.supplierRepo = repository.NewSupplierRepo(f.store)
	f.saleRepo = repository.NewSaleRepo(f.store)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.medicines = NewMedicineService(f.medicineRepo, f.publisher, log)
	f.customers = NewCustomerService(f.customerRepo, log)
	f.suppliers = NewSupplierService(f.supplierRepo, f.medicineRepo, log)
	f.sales = NewSaleService(f.store, f.saleRepo, SaleServiceConfig{TaxRate: DefaultTaxRate}, f.publisher, nil, log)
	f.dashboard = NewDashboardService(f.medicineRepo, f.customerRepo, f.saleRepo, f.clock.Now, time.UTC)
	f.reports = NewReportService(f.medicineRepo, f.saleRepo, f.clock.Now, time.UTC)
	return f
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func (f *fixture) addMedicine(t *testing.T, name string, quantity, minimum int, price string) *model.Medicine {
	t.Helper()
	m, err := f.medicines.CreateMedicine(&CreateMedicineRequest{
		Name:          name,
		Category:      "Pain Relief",
		Manufacturer:  "Generic Pharma",
		BatchNumber:   "B-" + name,
		ExpiryDate:    "2027-12-31",
		Quantity:      intPtr(quantity),
		PurchasePrice: dec("1.00"),
		SellingPrice:  dec(price),
		MinimumStock:  intPtr(minimum),
	})
	require.NoError(t, err)
	return m
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}
