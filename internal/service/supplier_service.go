package service

import (
	"errors"
	"fmt"
	"log/slog"

	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/repository"
)

type SupplierService interface {
	CreateSupplier(req *CreateSupplierRequest) (*model.Supplier, error)
	GetSupplier(id int) (*model.Supplier, error)
	GetAllSuppliers() ([]model.Supplier, error)
	GetSupplierMedicines(id int) ([]model.Medicine, error)
	UpdateSupplier(id int, patch *model.SupplierPatch) (*model.Supplier, error)
	DeleteSupplier(id int) error
}

type CreateSupplierRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         string  `json:"phone" validate:"required"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	medicineRepo repository.MedicineRepository
	log          *slog.Logger
}

func NewSupplierService(sRepo repository.SupplierRepository, mRepo repository.MedicineRepository, log *slog.Logger) SupplierService {
	return &supplierService{supplierRepo: sRepo, medicineRepo: mRepo, log: log}
}

func (s *supplierService) CreateSupplier(req *CreateSupplierRequest) (*model.Supplier, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	supplier := model.Supplier{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	}
	if err := s.supplierRepo.Create(&supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}

	s.log.Info("supplier created", "id", supplier.ID)
	return &supplier, nil
}

func (s *supplierService) GetSupplier(id int) (*model.Supplier, error) {
	sup, err := s.supplierRepo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSupplierNotFound
	}
	return sup, err
}

func (s *supplierService) GetAllSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

// GetSupplierMedicines lists medicines whose supplier reference is id. The
// supplier itself must still exist.
func (s *supplierService) GetSupplierMedicines(id int) ([]model.Medicine, error) {
	if _, err := s.GetSupplier(id); err != nil {
		return nil, err
	}
	return s.medicineRepo.FindBySupplier(id)
}

func (s *supplierService) UpdateSupplier(id int, patch *model.SupplierPatch) (*model.Supplier, error) {
	if err := validateRequest(patch); err != nil {
		return nil, err
	}

	updated, err := s.supplierRepo.Update(id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSupplierNotFound
	}
	return updated, err
}

// DeleteSupplier leaves medicines pointing at the removed supplier as they are.
func (s *supplierService) DeleteSupplier(id int) error {
	deleted, err := s.supplierRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	if !deleted {
		return ErrSupplierNotFound
	}
	s.log.Info("supplier deleted", "id", id)
	return nil
}
