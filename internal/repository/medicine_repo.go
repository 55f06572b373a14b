package repository

import (
	"strings"

	"go-pharmacy-pos/internal/model"
)

type MedicineRepository interface {
	Create(medicine *model.Medicine) error
	FindAll() ([]model.Medicine, error)
	FindByID(id int) (*model.Medicine, error)
	Update(id int, patch *model.MedicinePatch) (*model.Medicine, error)
	Delete(id int) (bool, error)
	Search(query string) ([]model.Medicine, error)
	FindLowStock() ([]model.Medicine, error)
	FindBySupplier(supplierID int) ([]model.Medicine, error)
	Count() (int, error)
}

type medicineRepo struct {
	store *Store
}

func NewMedicineRepo(store *Store) MedicineRepository {
	return &medicineRepo{store}
}

// Create assigns ID and CreatedAt on the passed medicine and stores a copy.
func (r *medicineRepo) Create(medicine *model.Medicine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	*medicine = r.store.medicines.insert(func(id int) model.Medicine {
		m := *medicine
		m.ID = id
		m.CreatedAt = r.store.now()
		return m
	})
	return nil
}

func (r *medicineRepo) FindAll() ([]model.Medicine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.medicines.list(), nil
}

func (r *medicineRepo) FindByID(id int) (*model.Medicine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.medicines.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *medicineRepo) Update(id int, patch *model.MedicinePatch) (*model.Medicine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.medicines.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&m)
	r.store.medicines.put(id, m)
	return &m, nil
}

func (r *medicineRepo) Delete(id int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.medicines.remove(id), nil
}

// Search matches the query case-insensitively as a substring of name,
// generic name, category or manufacturer. Callers reject empty queries.
func (r *medicineRepo) Search(query string) ([]model.Medicine, error) {
	term := strings.ToLower(query)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.medicines.filter(func(m model.Medicine) bool {
		return containsFold(m.Name, term) ||
			(m.GenericName != nil && containsFold(*m.GenericName, term)) ||
			containsFold(m.Category, term) ||
			containsFold(m.Manufacturer, term)
	}), nil
}

func (r *medicineRepo) FindLowStock() ([]model.Medicine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.medicines.filter(func(m model.Medicine) bool {
		return m.IsLowStock()
	}), nil
}

func (r *medicineRepo) FindBySupplier(supplierID int) ([]model.Medicine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.medicines.filter(func(m model.Medicine) bool {
		return m.SupplierID != nil && *m.SupplierID == supplierID
	}), nil
}

func (r *medicineRepo) Count() (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.medicines.len(), nil
}

// containsFold expects term to be lower-cased already.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}
