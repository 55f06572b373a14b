package repository

import (
	"sort"
	"time"

	"go-pharmacy-pos/internal/model"

	"github.com/shopspring/decimal"
)

// SaleRepository is read-only: sales are written through Store.Transaction
// and never updated or deleted.
type SaleRepository interface {
	FindAll() ([]model.Sale, error)
	FindByID(id int) (*model.SaleWithItems, error)
	FindRecent(limit int) ([]model.Sale, error)
	FindAllWithItems() ([]model.SaleWithItems, error)
	SumTotalBetween(start, end time.Time) (decimal.Decimal, error)
}

type saleRepo struct {
	store *Store
}

func NewSaleRepo(store *Store) SaleRepository {
	return &saleRepo{store}
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.sales.list(), nil
}

func (r *saleRepo) FindByID(id int) (*model.SaleWithItems, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sale, ok := r.store.sales.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &model.SaleWithItems{Sale: sale, Items: r.itemsOf(id)}, nil
}

// FindRecent orders by CreatedAt descending, then ID descending.
func (r *saleRepo) FindRecent(limit int) ([]model.Sale, error) {
	r.store.mu.RLock()
	sales := r.store.sales.list()
	r.store.mu.RUnlock()

	sort.SliceStable(sales, func(i, j int) bool {
		if !sales[i].CreatedAt.Equal(sales[j].CreatedAt) {
			return sales[i].CreatedAt.After(sales[j].CreatedAt)
		}
		return sales[i].ID > sales[j].ID
	})
	if limit >= 0 && len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

func (r *saleRepo) FindAllWithItems() ([]model.SaleWithItems, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bySale := make(map[int][]model.SaleItem)
	for _, item := range r.store.saleItems.list() {
		bySale[item.SaleID] = append(bySale[item.SaleID], item)
	}

	sales := r.store.sales.list()
	out := make([]model.SaleWithItems, 0, len(sales))
	for _, sale := range sales {
		items := bySale[sale.ID]
		if items == nil {
			items = []model.SaleItem{}
		}
		out = append(out, model.SaleWithItems{Sale: sale, Items: items})
	}
	return out, nil
}

// SumTotalBetween sums Sale.Total for sales created in [start, end).
func (r *saleRepo) SumTotalBetween(start, end time.Time) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sum := decimal.Zero
	for _, sale := range r.store.sales.list() {
		if !sale.CreatedAt.Before(start) && sale.CreatedAt.Before(end) {
			sum = sum.Add(sale.Total)
		}
	}
	return sum, nil
}

// itemsOf must be called with the read lock held.
func (r *saleRepo) itemsOf(saleID int) []model.SaleItem {
	return r.store.saleItems.filter(func(item model.SaleItem) bool {
		return item.SaleID == saleID
	})
}
