package repository

import (
	"errors"
	"sync"
	"time"

	"go-pharmacy-pos/internal/model"
)

var ErrNotFound = errors.New("record not found")

// Store owns every entity collection and is the only place identifiers are
// assigned. A single RWMutex guards all collections so a multi-entity write
// (see Transaction) is never observed half-applied.
type Store struct {
	mu sync.RWMutex

	medicines *table[model.Medicine]
	customers *table[model.Customer]
	suppliers *table[model.Supplier]
	sales     *table[model.Sale]
	saleItems *table[model.SaleItem]

	now func() time.Time
}

type Option func(*Store)

// WithClock overrides the source of createdAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		medicines: newTable(model.Medicine.Clone),
		customers: newTable(model.Customer.Clone),
		suppliers: newTable(model.Supplier.Clone),
		sales:     newTable(model.Sale.Clone),
		saleItems: newTable[model.SaleItem](nil),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transaction runs fn under the store write lock. Writes staged on the Tx
// are applied only if fn returns nil; otherwise nothing changes, including
// the identifier counters.
func (s *Store) Transaction(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{
		store:      s,
		quantities: make(map[int]int),
		nextSaleID: s.sales.nextID,
		nextItemID: s.saleItems.nextID,
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Tx is a staging view over the store used by Transaction. Reads see the
// writes staged so far.
type Tx struct {
	store *Store

	quantities map[int]int
	sales      []model.Sale
	items      []model.SaleItem
	nextSaleID int
	nextItemID int
}

// Medicine returns the medicine with any staged quantity change applied.
func (tx *Tx) Medicine(id int) (model.Medicine, bool) {
	m, ok := tx.store.medicines.get(id)
	if !ok {
		return m, false
	}
	if q, staged := tx.quantities[id]; staged {
		m.Quantity = q
	}
	return m, true
}

func (tx *Tx) Customer(id int) (model.Customer, bool) {
	return tx.store.customers.get(id)
}

// SetMedicineQuantity stages a new on-hand quantity.
func (tx *Tx) SetMedicineQuantity(id, quantity int) error {
	if _, ok := tx.store.medicines.get(id); !ok {
		return ErrNotFound
	}
	tx.quantities[id] = quantity
	return nil
}

// CreateSale stages a sale, assigning its identifier and timestamp.
func (tx *Tx) CreateSale(sale *model.Sale) {
	sale.ID = tx.nextSaleID
	sale.CreatedAt = tx.store.now()
	tx.nextSaleID++
	tx.sales = append(tx.sales, *sale)
}

// CreateSaleItem stages a line item. SaleID must already be set.
func (tx *Tx) CreateSaleItem(item *model.SaleItem) {
	item.ID = tx.nextItemID
	tx.nextItemID++
	tx.items = append(tx.items, *item)
}

func (tx *Tx) commit() {
	s := tx.store
	for _, sale := range tx.sales {
		s.sales.insertAt(sale.ID, sale)
	}
	for _, item := range tx.items {
		s.saleItems.insertAt(item.ID, item)
	}
	for id, q := range tx.quantities {
		m, _ := s.medicines.get(id)
		m.Quantity = q
		s.medicines.put(id, m)
	}
}
