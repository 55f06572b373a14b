package repository

import (
	"strings"

	"go-pharmacy-pos/internal/model"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll() ([]model.Customer, error)
	FindByID(id int) (*model.Customer, error)
	Update(id int, patch *model.CustomerPatch) (*model.Customer, error)
	Delete(id int) (bool, error)
	Search(query string) ([]model.Customer, error)
	Count() (int, error)
}

type customerRepo struct {
	store *Store
}

func NewCustomerRepo(store *Store) CustomerRepository {
	return &customerRepo{store}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	*customer = r.store.customers.insert(func(id int) model.Customer {
		c := *customer
		c.ID = id
		c.CreatedAt = r.store.now()
		return c
	})
	return nil
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.customers.list(), nil
}

func (r *customerRepo) FindByID(id int) (*model.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.customers.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *customerRepo) Update(id int, patch *model.CustomerPatch) (*model.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.customers.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&c)
	r.store.customers.put(id, c)
	return &c, nil
}

func (r *customerRepo) Delete(id int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.customers.remove(id), nil
}

// Search matches name, email and phone, case-insensitively.
func (r *customerRepo) Search(query string) ([]model.Customer, error) {
	term := strings.ToLower(query)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.customers.filter(func(c model.Customer) bool {
		return containsFold(c.Name, term) ||
			(c.Email != nil && containsFold(*c.Email, term)) ||
			containsFold(c.Phone, term)
	}), nil
}

func (r *customerRepo) Count() (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.customers.len(), nil
}
