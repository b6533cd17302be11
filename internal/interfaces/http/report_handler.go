package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/billing"
)

// ReportHandler maneja los reportes agregados (solo lectura).
type ReportHandler struct {
	uc *billing.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *billing.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PaidBills GET /api/reports/paid-bills
func (h *ReportHandler) PaidBills(c *fiber.Ctx) error {
	rows, err := h.uc.ListPaidBills()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// OwingBills GET /api/reports/owing-bills
func (h *ReportHandler) OwingBills(c *fiber.Ctx) error {
	rows, err := h.uc.ListOwingBills()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// ArchivedCustomers GET /api/reports/archived-customers
func (h *ReportHandler) ArchivedCustomers(c *fiber.Ctx) error {
	rows, err := h.uc.ListArchivedCustomers()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}
