package handler

import (
	"go-pharmacy-pos/internal/model"
	"go-pharmacy-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customers"})
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) SearchCustomers(c *fiber.Ctx) error {
	customers, err := h.service.SearchCustomers(c.Query("q"))
	if err != nil {
		return respondError(c, err, "Failed to search customers")
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	customer, err := h.service.GetCustomer(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch customer")
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req service.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	customer, err := h.service.CreateCustomer(&req)
	if err != nil {
		return respondError(c, err, "Failed to create customer")
	}
	return c.Status(201).JSON(customer)
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var patch model.CustomerPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c, err)
	}

	updated, err := h.service.UpdateCustomer(id, &patch)
	if err != nil {
		return respondError(c, err, "Failed to update customer")
	}
	return c.JSON(updated)
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	if err := h.service.DeleteCustomer(id); err != nil {
		return respondError(c, err, "Failed to delete customer")
	}
	return c.SendStatus(204)
}
