package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill representa una factura mensual de un predio.
//
// Invariante: TotalAmountDue = TotalCurrentCharges - EarlyPaymentAmount + OverdueAmount.
// Solo el procesador de pagos muta AmountPaid/IsPaid; una factura nunca se elimina.
type Bill struct {
	ID             string // Identificador único generado (prefijo BILL-)
	CustomerNumber string
	PremisesNumber string
	MonthNumber    int // Mes de facturación 1-12, cíclico
	Year           int

	PreviousReading int
	CurrentReading  int
	Consumption     int // Litros del ciclo (current - previous)

	WaterCharge         decimal.Decimal
	SewerageCharge      decimal.Decimal
	ServiceCharge       decimal.Decimal
	PAM                 decimal.Decimal // Price Adjustment Mechanism: 1.21% de los cargos base
	XFactor             decimal.Decimal // Rebaja de eficiencia: -5% de los cargos base
	KFactor             decimal.Decimal // Recargo de inversión: 20% de (base+PAM) - XFactor
	TotalCurrentCharges decimal.Decimal

	EarlyPaymentAmount decimal.Decimal // Descuento por pronto pago (0 si no es elegible)
	OverdueAmount      decimal.Decimal // Saldos impagos de facturas anteriores del par cliente+predio
	TotalAmountDue     decimal.Decimal
	AmountPaid         decimal.Decimal

	EarlyPaymentEligible bool
	IsPaid               bool

	BillDate time.Time
	DueDate  time.Time // BillDate + 30 días calendario
}

// Balance saldo pendiente de la factura.
func (b *Bill) Balance() decimal.Decimal {
	return b.TotalAmountDue.Sub(b.AmountPaid)
}

// ApplyPayment acumula un pago y marca la factura como pagada si el
// acumulado alcanza el total adeudado. Devuelve el excedente (crédito
// informativo) cuando el pago supera el saldo; cero en caso contrario.
// Pagada es un estado terminal: ninguna transición la revierte.
func (b *Bill) ApplyPayment(amount decimal.Decimal) decimal.Decimal {
	b.AmountPaid = b.AmountPaid.Add(amount)
	if b.AmountPaid.GreaterThanOrEqual(b.TotalAmountDue) {
		b.IsPaid = true
		return b.AmountPaid.Sub(b.TotalAmountDue)
	}
	return decimal.Zero
}
