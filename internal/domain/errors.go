package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los rechazos de validación (entidad desconocida o inactiva) y los rechazos
// de regla de negocio son recuperables y no dejan cambios de estado; las
// fallas de almacenamiento llegan envueltas con %w desde los adaptadores.
var (
	// Rechazos de validación
	ErrCustomerNotFound  = errors.New("cliente no encontrado o archivado")
	ErrPremisesNotFound  = errors.New("predio no encontrado, no asociado al cliente o inactivo")
	ErrBillNotFound      = errors.New("factura no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")

	// Rechazos de regla de negocio
	ErrTooManyUnpaidBills    = errors.New("el cliente tiene dos o más facturas sin pagar")
	ErrUnpaidBillsPending    = errors.New("existen facturas sin pagar para este predio")
	ErrNoPaymentCard         = errors.New("el cliente no tiene tarjeta de pago registrada")
	ErrNoUnpaidBill          = errors.New("no hay facturas pendientes de pago")
	ErrInvalidAmount         = errors.New("el monto debe ser mayor que cero")
	ErrDuplicateCustomer     = errors.New("el número de cliente ya existe")
	ErrDuplicatePremises     = errors.New("el número de predio ya existe")
	ErrCardAlreadyRegistered = errors.New("el cliente ya tiene una tarjeta de pago registrada")
)
