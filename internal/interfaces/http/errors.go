// Package http expone el shell HTTP del motor: handlers delgados que
// recogen primitivas ya validadas en forma, invocan los casos de uso y
// traducen los errores centinela a estados HTTP. Ninguna regla de negocio
// vive aquí.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
)

// writeError traduce un error de caso de uso a la respuesta HTTP:
// 404 para entidades desconocidas o archivadas, 409 para duplicados,
// 422 para reglas de negocio, 400 para entrada inválida y 500 para fallas
// de almacenamiento.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrPremisesNotFound),
		errors.Is(err, domain.ErrBillNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateCustomer),
		errors.Is(err, domain.ErrDuplicatePremises),
		errors.Is(err, domain.ErrCardAlreadyRegistered):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrTooManyUnpaidBills),
		errors.Is(err, domain.ErrUnpaidBillsPending),
		errors.Is(err, domain.ErrNoPaymentCard),
		errors.Is(err, domain.ErrNoUnpaidBill),
		errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "BUSINESS_RULE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
