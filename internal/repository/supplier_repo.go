package repository

import "go-pharmacy-pos/internal/model"

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll() ([]model.Supplier, error)
	FindByID(id int) (*model.Supplier, error)
	Update(id int, patch *model.SupplierPatch) (*model.Supplier, error)
	Delete(id int) (bool, error)
}

type supplierRepo struct {
	store *Store
}

func NewSupplierRepo(store *Store) SupplierRepository {
	return &supplierRepo{store}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	*supplier = r.store.suppliers.insert(func(id int) model.Supplier {
		s := *supplier
		s.ID = id
		s.CreatedAt = r.store.now()
		return s
	})
	return nil
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.suppliers.list(), nil
}

func (r *supplierRepo) FindByID(id int) (*model.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.suppliers.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *supplierRepo) Update(id int, patch *model.SupplierPatch) (*model.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.suppliers.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&s)
	r.store.suppliers.put(id, s)
	return &s, nil
}

// Delete does not touch medicines that reference the supplier.
func (r *supplierRepo) Delete(id int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.suppliers.remove(id), nil
}
