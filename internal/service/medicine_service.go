package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/repository"

	"github.com/shopspring/decimal"
)

type MedicineService interface {
	CreateMedicine(req *CreateMedicineRequest) (*model.Medicine, error)
	GetMedicine(id int) (*model.Medicine, error)
	GetAllMedicines() ([]model.Medicine, error)
	SearchMedicines(query string) ([]model.Medicine, error)
	GetLowStockMedicines() ([]model.Medicine, error)
	UpdateMedicine(id int, patch *model.MedicinePatch) (*model.Medicine, error)
	DeleteMedicine(id int) error
}

// CreateMedicineRequest is the body of POST /medicines. Prices are pointers
// so a missing price is told apart from a zero price.
type CreateMedicineRequest struct {
	Name          string           `json:"name" validate:"required"`
	GenericName   *string          `json:"genericName"`
	Category      string           `json:"category" validate:"required"`
	Manufacturer  string           `json:"manufacturer" validate:"required"`
	BatchNumber   string           `json:"batchNumber" validate:"required"`
	ExpiryDate    string           `json:"expiryDate" validate:"required,date"`
	Quantity      *int             `json:"quantity" validate:"omitempty,gte=0"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" validate:"required,gte=0"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice" validate:"required,gte=0"`
	MinimumStock  *int             `json:"minimumStock" validate:"omitempty,gte=0"`
	SupplierID    *int             `json:"supplierId" validate:"omitempty,gt=0"`
	Description   *string          `json:"description"`
}

func (r *CreateMedicineRequest) toModel() model.Medicine {
	m := model.Medicine{
		Name:          r.Name,
		GenericName:   r.GenericName,
		Category:      r.Category,
		Manufacturer:  r.Manufacturer,
		BatchNumber:   r.BatchNumber,
		ExpiryDate:    r.ExpiryDate,
		PurchasePrice: *r.PurchasePrice,
		SellingPrice:  *r.SellingPrice,
		MinimumStock:  model.DefaultMinimumStock,
		SupplierID:    r.SupplierID,
		Description:   r.Description,
	}
	if r.Quantity != nil {
		m.Quantity = *r.Quantity
	}
	if r.MinimumStock != nil {
		m.MinimumStock = *r.MinimumStock
	}
	return m
}

type medicineService struct {
	medicineRepo repository.MedicineRepository
	publisher    Publisher
	log          *slog.Logger
}

func NewMedicineService(mRepo repository.MedicineRepository, pub Publisher, log *slog.Logger) MedicineService {
	return &medicineService{
		medicineRepo: mRepo,
		publisher:    publisherOrNop(pub),
		log:          log,
	}
}

func (s *medicineService) CreateMedicine(req *CreateMedicineRequest) (*model.Medicine, error) {
	if err := validateRequest(req); err != nil {
		s.log.Debug("medicine rejected", "err", err)
		return nil, err
	}

	medicine := req.toModel()
	if err := s.medicineRepo.Create(&medicine); err != nil {
		return nil, fmt.Errorf("create medicine: %w", err)
	}

	s.log.Info("medicine created", "id", medicine.ID, "name", medicine.Name)
	s.publisher.Publish(EventMedicineCreated, medicine)
	return &medicine, nil
}

func (s *medicineService) GetMedicine(id int) (*model.Medicine, error) {
	m, err := s.medicineRepo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMedicineNotFound
	}
	return m, err
}

func (s *medicineService) GetAllMedicines() ([]model.Medicine, error) {
	return s.medicineRepo.FindAll()
}

func (s *medicineService) SearchMedicines(query string) ([]model.Medicine, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return s.medicineRepo.Search(query)
}

func (s *medicineService) GetLowStockMedicines() ([]model.Medicine, error) {
	return s.medicineRepo.FindLowStock()
}

func (s *medicineService) UpdateMedicine(id int, patch *model.MedicinePatch) (*model.Medicine, error) {
	if err := validateRequest(patch); err != nil {
		return nil, err
	}

	updated, err := s.medicineRepo.Update(id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMedicineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update medicine %d: %w", id, err)
	}

	s.log.Info("medicine updated", "id", id)
	s.publisher.Publish(EventMedicineUpdated, updated)
	if patch.Quantity != nil && updated.IsLowStock() {
		s.publisher.Publish(EventLowStock, updated)
	}
	return updated, nil
}

func (s *medicineService) DeleteMedicine(id int) error {
	deleted, err := s.medicineRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("delete medicine %d: %w", id, err)
	}
	if !deleted {
		return ErrMedicineNotFound
	}

	s.log.Info("medicine deleted", "id", id)
	s.publisher.Publish(EventMedicineDeleted, map[string]int{"id": id})
	return nil
}
