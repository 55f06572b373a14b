// Package seed loads the sample catalog used for demos and local runs.
package seed

import (
	"fmt"
	"log/slog"

	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/repository"

	"github.com/shopspring/decimal"
)

type Repos struct {
	Medicines repository.MedicineRepository
	Customers repository.CustomerRepository
	Suppliers repository.SupplierRepository
}

func ptr[T any](v T) *T { return &v }

// Load inserts two suppliers, two medicines and one customer. It does nothing
// if any supplier already exists.
func Load(r Repos, log *slog.Logger) error {
	existing, err := r.Suppliers.FindAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Debug("seed: store not empty, skipping")
		return nil
	}

	suppliers := []*model.Supplier{
		{
			Name:          "PharmaCorp Ltd",
			Email:         ptr("info@pharmacorp.com"),
			Phone:         "+1-555-0101",
			Address:       ptr("123 Medical Drive, Health City, HC 12345"),
			ContactPerson: ptr("Dr. Sarah Wilson"),
		},
		{
			Name:          "MediSupply Inc",
			Email:         ptr("orders@medisupply.com"),
			Phone:         "+1-555-0102",
			Address:       ptr("456 Pharma Street, Medicine Town, MT 67890"),
			ContactPerson: ptr("James Chen"),
		},
	}
	for _, s := range suppliers {
		if err := r.Suppliers.Create(s); err != nil {
			return fmt.Errorf("seed supplier %s: %w", s.Name, err)
		}
	}

	medicines := []*model.Medicine{
		{
			Name:          "Paracetamol 500mg",
			GenericName:   ptr("Acetaminophen"),
			Category:      "Pain Relief",
			Manufacturer:  "Generic Pharma",
			BatchNumber:   "PC2024001",
			ExpiryDate:    "2025-12-31",
			Quantity:      8,
			PurchasePrice: decimal.RequireFromString("1.50"),
			SellingPrice:  decimal.RequireFromString("2.50"),
			MinimumStock:  50,
			SupplierID:    ptr(suppliers[0].ID),
			Description:   ptr("Pain relief and fever reducer"),
		},
		{
			Name:          "Ibuprofen 400mg",
			GenericName:   ptr("Ibuprofen"),
			Category:      "Pain Relief",
			Manufacturer:  "MediCorp",
			BatchNumber:   "IB2024002",
			ExpiryDate:    "2025-08-15",
			Quantity:      15,
			PurchasePrice: decimal.RequireFromString("2.00"),
			SellingPrice:  decimal.RequireFromString("3.25"),
			MinimumStock:  30,
			SupplierID:    ptr(suppliers[1].ID),
			Description:   ptr("Anti-inflammatory pain reliever"),
		},
	}
	for _, m := range medicines {
		if err := r.Medicines.Create(m); err != nil {
			return fmt.Errorf("seed medicine %s: %w", m.Name, err)
		}
	}

	customer := &model.Customer{
		Name:        "Sarah Johnson",
		Email:       ptr("sarah.johnson@email.com"),
		Phone:       "+1-555-0201",
		Address:     ptr("789 Oak Street, Anytown, AT 54321"),
		DateOfBirth: ptr("1985-03-15"),
	}
	if err := r.Customers.Create(customer); err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}

	log.Info("seed: sample data loaded",
		"suppliers", len(suppliers),
		"medicines", len(medicines),
		"customers", 1,
	)
	return nil
}
