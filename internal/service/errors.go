package service

import (
	"errors"
	"fmt"
	"strings"

	"go-pharmacy-pos/pkg/validator"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSaleNotFound     = errors.New("sale not found")

	ErrEmptyQuery = errors.New("search query is required")

	ErrUnknownMedicine     = errors.New("sale references unknown medicine")
	ErrUnknownCustomer     = errors.New("sale references unknown customer")
	ErrCustomerNameMissing = errors.New("customer name is required for walk-in sales")
	ErrInsufficientStock   = errors.New("insufficient stock remaining")
	ErrTotalsMismatch      = errors.New("submitted totals do not match computed totals")
)

// ValidationError carries per-field violations; nothing was written.
type ValidationError struct {
	Details []*validator.ErrorResponse
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		fields = append(fields, fmt.Sprintf("%s(%s)", d.Field, d.Tag))
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

func validateRequest(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Details: errs}
	}
	return nil
}
