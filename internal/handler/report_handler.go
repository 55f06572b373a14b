package handler

import (
	"bytes"

	"go-pharmacy-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}
	return c.JSON(summary)
}

// ExportSales streams every sale and its items as an xlsx workbook.
func (h *ReportHandler) ExportSales(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportSales(&buf); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export sales"})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment("sales.xlsx")
	return c.Send(buf.Bytes())
}
