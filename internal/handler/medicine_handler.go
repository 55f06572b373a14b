package handler

import (
	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MedicineHandler struct {
	service service.MedicineService
}

func NewMedicineHandler(s service.MedicineService) *MedicineHandler {
	return &MedicineHandler{service: s}
}

func (h *MedicineHandler) GetMedicines(c *fiber.Ctx) error {
	medicines, err := h.service.GetAllMedicines()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch medicines"})
	}
	return c.JSON(medicines)
}

// SearchMedicines matches q against name, generic name, category and manufacturer.
func (h *MedicineHandler) SearchMedicines(c *fiber.Ctx) error {
	medicines, err := h.service.SearchMedicines(c.Query("q"))
	if err != nil {
		return respondError(c, err, "Failed to search medicines")
	}
	return c.JSON(medicines)
}

func (h *MedicineHandler) GetLowStock(c *fiber.Ctx) error {
	medicines, err := h.service.GetLowStockMedicines()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch low stock medicines"})
	}
	return c.JSON(medicines)
}

func (h *MedicineHandler) GetMedicine(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid medicine ID"})
	}

	medicine, err := h.service.GetMedicine(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch medicine")
	}
	return c.JSON(medicine)
}

func (h *MedicineHandler) CreateMedicine(c *fiber.Ctx) error {
	var req service.CreateMedicineRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	medicine, err := h.service.CreateMedicine(&req)
	if err != nil {
		return respondError(c, err, "Failed to create medicine")
	}
	return c.Status(201).JSON(medicine)
}

func (h *MedicineHandler) UpdateMedicine(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid medicine ID"})
	}

	var patch model.MedicinePatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c, err)
	}

	updated, err := h.service.UpdateMedicine(id, &patch)
	if err != nil {
		return respondError(c, err, "Failed to update medicine")
	}
	return c.JSON(updated)
}

func (h *MedicineHandler) DeleteMedicine(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid medicine ID"})
	}

	if err := h.service.DeleteMedicine(id); err != nil {
		return respondError(c, err, "Failed to delete medicine")
	}
	return c.SendStatus(204)
}
