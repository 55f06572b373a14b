package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Quantity int              `json:"quantity" validate:"required,gt=0"`
	Price    *decimal.Decimal `json:"price" validate:"required,gte=0"`
}

type sample struct {
	Name   string  `json:"name" validate:"required"`
	Expiry string  `json:"expiryDate" validate:"required,date"`
	Items  []line  `json:"items" validate:"required,min=1,dive"`
	Email  *string `json:"email" validate:"omitempty,email"`
}

func TestValidateStruct_OK(t *testing.T) {
	zero := decimal.Zero
	errs := ValidateStruct(&sample{
		Name:   "Paracetamol",
		Expiry: "2025-12-31",
		Items:  []line{{Quantity: 1, Price: &zero}},
	})
	assert.Empty(t, errs)
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	negative := decimal.NewFromFloat(-1.5)
	errs := ValidateStruct(&sample{
		Expiry: "31/12/2025",
		Items:  []line{{Quantity: 0, Price: &negative}},
	})
	require.NotEmpty(t, errs)

	got := map[string]string{}
	for _, e := range errs {
		got[e.Field] = e.Tag
	}
	assert.Equal(t, "required", got["name"])
	assert.Equal(t, "date", got["expiryDate"])
	assert.Equal(t, "required", got["items[0].quantity"])
	assert.Equal(t, "gte", got["items[0].price"])
}

func TestValidateStruct_MissingPointerIsRequired(t *testing.T) {
	errs := ValidateStruct(&sample{
		Name:   "x",
		Expiry: "2025-01-01",
		Items:  []line{{Quantity: 2}},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "items[0].price", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
}
