package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment asiento inmutable del libro de pagos. Solo se agrega, nunca se edita.
type Payment struct {
	ID             string // Identificador único generado (prefijo PMT-)
	BillID         string
	CustomerNumber string
	PremisesNumber string
	Amount         decimal.Decimal // Siempre > 0
	Date           time.Time
}
