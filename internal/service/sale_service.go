package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go-pharmacy-pos/internal/metrics"
	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/repository"

	"github.com/shopspring/decimal"
)

// DefaultRecentSalesLimit is used when the caller gives no usable limit.
const DefaultRecentSalesLimit = 10

type SaleService interface {
	CreateSale(req *CreateSaleRequest) (*model.SaleWithItems, error)
	GetAllSales() ([]model.Sale, error)
	GetSale(id int) (*model.SaleWithItems, error)
	GetRecentSales(limit int) ([]model.Sale, error)
}

// CreateSaleRequest is the body of POST /sales. Subtotal, tax and total are
// optional; when present they must equal the server-computed values.
type CreateSaleRequest struct {
	CustomerID    *int                    `json:"customerId" validate:"omitempty,gt=0"`
	CustomerName  string                  `json:"customerName"`
	Subtotal      *decimal.Decimal        `json:"subtotal" validate:"omitempty,gte=0"`
	Tax           *decimal.Decimal        `json:"tax" validate:"omitempty,gte=0"`
	Total         *decimal.Decimal        `json:"total" validate:"omitempty,gte=0"`
	DiscountType  DiscountType            `json:"discountType" validate:"omitempty,oneof=fixed percentage"`
	DiscountValue *decimal.Decimal        `json:"discountValue" validate:"omitempty,gte=0"`
	PaymentMethod model.PaymentMethod     `json:"paymentMethod" validate:"required,oneof=cash card insurance"`
	Items         []CreateSaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateSaleItemRequest is one line. A missing price defaults to the
// medicine's current selling price, a missing name to its current name.
type CreateSaleItemRequest struct {
	MedicineID   int              `json:"medicineId" validate:"required,gt=0"`
	MedicineName string           `json:"medicineName"`
	Quantity     int              `json:"quantity" validate:"required,gt=0"`
	Price        *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Total        *decimal.Decimal `json:"total" validate:"omitempty,gte=0"`
}

type saleService struct {
	store       *repository.Store
	saleRepo    repository.SaleRepository
	pricing     Pricing
	recentLimit int
	publisher   Publisher
	metrics     *metrics.Metrics
	log         *slog.Logger
}

type SaleServiceConfig struct {
	TaxRate     decimal.Decimal
	RecentLimit int
}

func NewSaleService(store *repository.Store, sRepo repository.SaleRepository, cfg SaleServiceConfig, pub Publisher, m *metrics.Metrics, log *slog.Logger) SaleService {
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = DefaultRecentSalesLimit
	}
	return &saleService{
		store:       store,
		saleRepo:    sRepo,
		pricing:     Pricing{TaxRate: cfg.TaxRate},
		recentLimit: cfg.RecentLimit,
		publisher:   publisherOrNop(pub),
		metrics:     m,
		log:         log,
	}
}

// CreateSale validates the whole sale against current stock, then writes the
// sale, its items and the stock decrements in one store transaction. On any
// error nothing is written.
func (s *saleService) CreateSale(req *CreateSaleRequest) (*model.SaleWithItems, error) {
	if err := validateRequest(req); err != nil {
		s.metrics.ObserveRejectedSale(rejectReason(err))
		return nil, err
	}

	var (
		created  model.SaleWithItems
		lowStock []model.Medicine
	)

	err := s.store.Transaction(func(tx *repository.Tx) error {
		// 1. Resolve customer
		customerName := strings.TrimSpace(req.CustomerName)
		if req.CustomerID != nil {
			customer, ok := tx.Customer(*req.CustomerID)
			if !ok {
				return fmt.Errorf("%w: id %d", ErrUnknownCustomer, *req.CustomerID)
			}
			if customerName == "" {
				customerName = customer.Name
			}
		}
		if customerName == "" {
			return ErrCustomerNameMissing
		}

		// 2. Resolve medicines and check stock per medicine across all lines
		medicines := make(map[int]model.Medicine, len(req.Items))
		requested := make(map[int]int, len(req.Items))
		for i, item := range req.Items {
			m, ok := tx.Medicine(item.MedicineID)
			if !ok {
				return fmt.Errorf("%w: id %d (items[%d])", ErrUnknownMedicine, item.MedicineID, i)
			}
			medicines[m.ID] = m
			// bound each line by what is left so the running sum cannot overflow
			if item.Quantity > m.Quantity-requested[m.ID] {
				return fmt.Errorf("%w: %s has %d, requested more (items[%d])", ErrInsufficientStock, m.Name, m.Quantity, i)
			}
			requested[m.ID] += item.Quantity
		}

		// 3. Recompute totals
		lines := make([]model.SaleItem, len(req.Items))
		lineTotals := make([]decimal.Decimal, len(req.Items))
		for i, item := range req.Items {
			m := medicines[item.MedicineID]

			price := m.SellingPrice
			if item.Price != nil {
				price = item.Price.Round(2)
			}
			lineTotal := LineTotal(price, item.Quantity)
			if !sameAmount(item.Total, lineTotal) {
				return fmt.Errorf("%w: items[%d].total expected %s", ErrTotalsMismatch, i, lineTotal.StringFixed(2))
			}

			name := strings.TrimSpace(item.MedicineName)
			if name == "" {
				name = m.Name
			}
			lines[i] = model.SaleItem{
				MedicineID:   m.ID,
				MedicineName: name,
				Quantity:     item.Quantity,
				Price:        price,
				Total:        lineTotal,
			}
			lineTotals[i] = lineTotal
		}

		discountValue := decimal.Zero
		if req.DiscountValue != nil {
			discountValue = *req.DiscountValue
		}
		totals := s.pricing.Compute(lineTotals, req.DiscountType, discountValue)
		switch {
		case !sameAmount(req.Subtotal, totals.Subtotal):
			return fmt.Errorf("%w: subtotal expected %s", ErrTotalsMismatch, totals.Subtotal.StringFixed(2))
		case !sameAmount(req.Tax, totals.Tax):
			return fmt.Errorf("%w: tax expected %s", ErrTotalsMismatch, totals.Tax.StringFixed(2))
		case !sameAmount(req.Total, totals.Total):
			return fmt.Errorf("%w: total expected %s", ErrTotalsMismatch, totals.Total.StringFixed(2))
		}

		// 4. Commit sale, items and stock
		sale := model.Sale{
			CustomerID:    req.CustomerID,
			CustomerName:  customerName,
			Subtotal:      totals.Subtotal,
			Tax:           totals.Tax,
			Total:         totals.Total,
			PaymentMethod: req.PaymentMethod,
		}
		tx.CreateSale(&sale)

		for i := range lines {
			lines[i].SaleID = sale.ID
			tx.CreateSaleItem(&lines[i])
		}

		for _, item := range req.Items {
			m := medicines[item.MedicineID]
			qty, pending := requested[m.ID]
			if !pending {
				continue
			}
			delete(requested, m.ID)

			m.Quantity -= qty
			if err := tx.SetMedicineQuantity(m.ID, m.Quantity); err != nil {
				return err
			}
			if m.IsLowStock() {
				lowStock = append(lowStock, m)
			}
		}

		created = model.SaleWithItems{Sale: sale, Items: lines}
		return nil
	})
	if err != nil {
		s.metrics.ObserveRejectedSale(rejectReason(err))
		s.log.Warn("sale rejected", "err", err)
		return nil, err
	}

	s.log.Info("sale recorded",
		"id", created.ID,
		"items", len(created.Items),
		"total", created.Total.StringFixed(2),
		"payment_method", created.PaymentMethod,
	)
	s.metrics.ObserveSale(&created)
	s.publisher.Publish(EventSaleCreated, created)
	for _, m := range lowStock {
		s.publisher.Publish(EventLowStock, m)
	}

	return &created, nil
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetSale(id int) (*model.SaleWithItems, error) {
	sale, err := s.saleRepo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSaleNotFound
	}
	return sale, err
}

// GetRecentSales falls back to the configured default for limit <= 0.
func (s *saleService) GetRecentSales(limit int) ([]model.Sale, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}
	return s.saleRepo.FindRecent(limit)
}

func rejectReason(err error) string {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.Is(err, ErrUnknownMedicine):
		return "unknown_medicine"
	case errors.Is(err, ErrUnknownCustomer):
		return "unknown_customer"
	case errors.Is(err, ErrCustomerNameMissing):
		return "customer_name_missing"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrTotalsMismatch):
		return "totals_mismatch"
	default:
		return "internal"
	}
}
