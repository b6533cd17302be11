package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/billing"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
)

// BillingHandler maneja las peticiones HTTP de facturación y pagos.
type BillingHandler struct {
	bills     *billing.BillUseCase
	payments  *billing.PaymentUseCase
	surrender *billing.SurrenderUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(bills *billing.BillUseCase, payments *billing.PaymentUseCase, surrender *billing.SurrenderUseCase) *BillingHandler {
	return &BillingHandler{bills: bills, payments: payments, surrender: surrender}
}

// GenerateBill POST /api/bills
func (h *BillingHandler) GenerateBill(c *fiber.Ctx) error {
	var in dto.GenerateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	bill, err := h.bills.GenerateBill(in.CustomerNumber, in.PremisesNumber)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// LatestBill GET /api/customers/:number/bills/latest
func (h *BillingHandler) LatestBill(c *fiber.Ctx) error {
	bill, err := h.bills.LatestBill(c.Params("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(bill)
}

// PayBill POST /api/payments
func (h *BillingHandler) PayBill(c *fiber.Ctx) error {
	var in dto.PayBillRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	receipt, err := h.payments.PayBill(in.CustomerNumber, in.Amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// Surrender POST /api/premises/:number/surrender
func (h *BillingHandler) Surrender(c *fiber.Ctx) error {
	var in dto.SurrenderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.surrender.Surrender(in.CustomerNumber, c.Params("number")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AckResponse{Message: "medidor entregado"})
}
