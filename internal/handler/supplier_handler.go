package handler

import (
	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch suppliers"})
	}
	return c.JSON(suppliers)
}

func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	supplier, err := h.service.GetSupplier(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch supplier")
	}
	return c.JSON(supplier)
}

// GetSupplierMedicines lists the medicines that reference the supplier.
func (h *SupplierHandler) GetSupplierMedicines(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	medicines, err := h.service.GetSupplierMedicines(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch supplier medicines")
	}
	return c.JSON(medicines)
}

func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var req service.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	supplier, err := h.service.CreateSupplier(&req)
	if err != nil {
		return respondError(c, err, "Failed to create supplier")
	}
	return c.Status(201).JSON(supplier)
}

func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var patch model.SupplierPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c, err)
	}

	updated, err := h.service.UpdateSupplier(id, &patch)
	if err != nil {
		return respondError(c, err, "Failed to update supplier")
	}
	return c.JSON(updated)
}

// DeleteSupplier does not touch medicines that reference the supplier.
func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	if err := h.service.DeleteSupplier(id); err != nil {
		return respondError(c, err, "Failed to delete supplier")
	}
	return c.SendStatus(204)
}
