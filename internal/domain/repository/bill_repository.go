package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para facturas.
// No hay caché en memoria: cada consulta recorre el almacén completo.
type BillRepository interface {
	Append(bill *entity.Bill) error
	// Update reemplaza la factura con el mismo ID preservando el resto de
	// registros byte a byte (parche en streaming con swap atómico).
	Update(bill *entity.Bill) error

	// CountUnpaid cuenta las facturas sin pagar del par cliente+predio.
	CountUnpaid(customerNumber, premisesNumber string) (int, error)
	// HasUnpaid indica si existe al menos una factura sin pagar del par.
	HasUnpaid(customerNumber, premisesNumber string) (bool, error)
	// LastMonthNumber devuelve el mayor número de mes facturado al par (0 si no hay facturas).
	LastMonthNumber(customerNumber, premisesNumber string) (int, error)
	// OverdueBalance suma (total adeudado - pagado) de las facturas sin pagar del par.
	OverdueBalance(customerNumber, premisesNumber string) (decimal.Decimal, error)
	// OutstandingBalance suma los saldos impagos de todas las facturas del cliente.
	OutstandingBalance(customerNumber string) (decimal.Decimal, error)

	// LatestByCustomer devuelve la factura de mayor mes del cliente, o nil si no tiene.
	// En empate de mes gana la primera encontrada en orden de almacenamiento.
	LatestByCustomer(customerNumber string) (*entity.Bill, error)
	// LatestUnpaidByCustomer igual que LatestByCustomer pero solo entre las no pagadas.
	LatestUnpaidByCustomer(customerNumber string) (*entity.Bill, error)

	// ListByCustomer historial de facturación del cliente en orden de almacenamiento.
	ListByCustomer(customerNumber string) ([]*entity.Bill, error)
	// ListPaid / ListUnpaid vistas agregadas para reportes.
	ListPaid() ([]*entity.Bill, error)
	ListUnpaid() ([]*entity.Bill, error)
}
