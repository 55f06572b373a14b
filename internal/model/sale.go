package model

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCard      PaymentMethod = "card"
	PaymentInsurance PaymentMethod = "insurance"
)

// Sale is an immutable ledger entry. CustomerID is nil for walk-in customers,
// CustomerName is always populated.
type Sale struct {
	BaseModel
	CustomerID    *int            `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
}

func (s Sale) Clone() Sale {
	s.CustomerID = clonePtr(s.CustomerID)
	return s
}

// SaleItem is one line of a sale. MedicineName is a snapshot taken at sale
// time and does not follow later renames of the medicine.
type SaleItem struct {
	ID           int             `json:"id"`
	SaleID       int             `json:"saleId"`
	MedicineID   int             `json:"medicineId"`
	MedicineName string          `json:"medicineName"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
}

type SaleWithItems struct {
	Sale
	Items []SaleItem `json:"items"`
}
