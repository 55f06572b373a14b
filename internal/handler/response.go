package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"go-pharmacy-pos/internal/service"
	"go-pharmacy-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to status codes. fallback is the message
// used for anything unexpected.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(400).JSON(fiber.Map{"error": "Invalid data", "details": verr.Details})

	case errors.Is(err, service.ErrMedicineNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrSaleNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, service.ErrEmptyQuery),
		errors.Is(err, service.ErrUnknownMedicine),
		errors.Is(err, service.ErrUnknownCustomer),
		errors.Is(err, service.ErrCustomerNameMissing),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrTotalsMismatch):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(500).JSON(fiber.Map{"error": fallback})
}

// badBody answers a body that could not be decoded. A mistyped field is
// reported in the same shape as a validation failure.
func badBody(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid data",
			"details": []*validator.ErrorResponse{{
				Field: typeErr.Field,
				Tag:   "type",
				Param: typeErr.Type.String(),
			}},
		})
	}
	return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
}

func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
