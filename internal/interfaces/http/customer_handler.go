package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de ciclo de vida de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Details GET /api/customers/:number
func (h *CustomerHandler) Details(c *fiber.Ctx) error {
	details, err := h.uc.Details(c.Params("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(details)
}

// Update PUT /api/customers/:number
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Update(c.Params("number"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// Archive DELETE /api/customers/:number
func (h *CustomerHandler) Archive(c *fiber.Ctx) error {
	if err := h.uc.Archive(c.Params("number")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AckResponse{Message: "cliente archivado"})
}

// RegisterCard POST /api/customers/:number/payment-cards
func (h *CustomerHandler) RegisterCard(c *fiber.Ctx) error {
	var in dto.RegisterCardRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.RegisterCard(c.Params("number"), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AckResponse{Message: "tarjeta registrada"})
}
