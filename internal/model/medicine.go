package model

import "github.com/shopspring/decimal"

// DefaultMinimumStock is the reorder threshold used when none is supplied.
const DefaultMinimumStock = 10

type Medicine struct {
	BaseModel
	Name          string          `json:"name"`
	GenericName   *string         `json:"genericName"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer"`
	BatchNumber   string          `json:"batchNumber"`
	ExpiryDate    string          `json:"expiryDate"` // YYYY-MM-DD
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	MinimumStock  int             `json:"minimumStock"`
	SupplierID    *int            `json:"supplierId"` // advisory, not enforced
	Description   *string         `json:"description"`
}

// Clone copies m including the values behind its pointer fields.
func (m Medicine) Clone() Medicine {
	m.GenericName = clonePtr(m.GenericName)
	m.SupplierID = clonePtr(m.SupplierID)
	m.Description = clonePtr(m.Description)
	return m
}

// IsLowStock reports whether the medicine is at or below its reorder threshold.
func (m *Medicine) IsLowStock() bool {
	return m.Quantity <= m.MinimumStock
}

// StockValue is the selling value of the units on hand.
func (m *Medicine) StockValue() decimal.Decimal {
	return m.SellingPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// MedicinePatch is a partial update. Nil fields are left untouched.
type MedicinePatch struct {
	Name          *string          `json:"name" validate:"omitempty,min=1"`
	GenericName   *string          `json:"genericName"`
	Category      *string          `json:"category" validate:"omitempty,min=1"`
	Manufacturer  *string          `json:"manufacturer" validate:"omitempty,min=1"`
	BatchNumber   *string          `json:"batchNumber" validate:"omitempty,min=1"`
	ExpiryDate    *string          `json:"expiryDate" validate:"omitempty,date"`
	Quantity      *int             `json:"quantity" validate:"omitempty,gte=0"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" validate:"omitempty,gte=0"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice" validate:"omitempty,gte=0"`
	MinimumStock  *int             `json:"minimumStock" validate:"omitempty,gte=0"`
	SupplierID    *int             `json:"supplierId" validate:"omitempty,gt=0"`
	Description   *string          `json:"description"`
}

// Apply merges the non-nil fields of p into m.
func (p *MedicinePatch) Apply(m *Medicine) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.GenericName != nil {
		m.GenericName = p.GenericName
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Manufacturer != nil {
		m.Manufacturer = *p.Manufacturer
	}
	if p.BatchNumber != nil {
		m.BatchNumber = *p.BatchNumber
	}
	if p.ExpiryDate != nil {
		m.ExpiryDate = *p.ExpiryDate
	}
	if p.Quantity != nil {
		m.Quantity = *p.Quantity
	}
	if p.PurchasePrice != nil {
		m.PurchasePrice = *p.PurchasePrice
	}
	if p.SellingPrice != nil {
		m.SellingPrice = *p.SellingPrice
	}
	if p.MinimumStock != nil {
		m.MinimumStock = *p.MinimumStock
	}
	if p.SupplierID != nil {
		m.SupplierID = p.SupplierID
	}
	if p.Description != nil {
		m.Description = p.Description
	}
}
