package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/repository"
)

type CustomerService interface {
	CreateCustomer(req *CreateCustomerRequest) (*model.Customer, error)
	GetCustomer(id int) (*model.Customer, error)
	GetAllCustomers() ([]model.Customer, error)
	SearchCustomers(query string) ([]model.Customer, error)
	UpdateCustomer(id int, patch *model.CustomerPatch) (*model.Customer, error)
	DeleteCustomer(id int) error
}

type CreateCustomerRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       string  `json:"phone" validate:"required"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,date"`
}

type customerService struct {
	customerRepo repository.CustomerRepository
	log          *slog.Logger
}

func NewCustomerService(cRepo repository.CustomerRepository, log *slog.Logger) CustomerService {
	return &customerService{customerRepo: cRepo, log: log}
}

func (s *customerService) CreateCustomer(req *CreateCustomerRequest) (*model.Customer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	customer := model.Customer{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
	}
	if err := s.customerRepo.Create(&customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("customer created", "id", customer.ID)
	return &customer, nil
}

func (s *customerService) GetCustomer(id int) (*model.Customer, error) {
	c, err := s.customerRepo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	return c, err
}

func (s *customerService) GetAllCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) SearchCustomers(query string) ([]model.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return s.customerRepo.Search(query)
}

func (s *customerService) UpdateCustomer(id int, patch *model.CustomerPatch) (*model.Customer, error) {
	if err := validateRequest(patch); err != nil {
		return nil, err
	}

	updated, err := s.customerRepo.Update(id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	return updated, err
}

// DeleteCustomer keeps past sales intact; their CustomerName snapshot stays.
func (s *customerService) DeleteCustomer(id int) error {
	deleted, err := s.customerRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	s.log.Info("customer deleted", "id", id)
	return nil
}
