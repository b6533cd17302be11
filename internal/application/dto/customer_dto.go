package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers: alta de cliente junto
// con su primer predio. Los números llegan ya validados por el shell
// (7 dígitos); aquí solo se verifica existencia/duplicidad.
type CreateCustomerRequest struct {
	CustomerNumber string `json:"customer_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	IncomeClass    int    `json:"income_class"` // 1..5
	PremisesNumber string `json:"premises_number"`
	MeterSize      int    `json:"meter_size"` // 1=15mm, 2=30mm, 3=150mm
	InitialReading int    `json:"initial_reading"`
}

// UpdateCustomerRequest body para PUT /api/customers/:number.
// Campos nil se dejan sin cambio.
type UpdateCustomerRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	IncomeClass *int    `json:"income_class,omitempty"`
}

// RegisterCardRequest body para POST /api/customers/:number/payment-cards.
type RegisterCardRequest struct {
	CardIdentifier string `json:"card_identifier"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	CustomerNumber string `json:"customer_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	IncomeClass    int    `json:"income_class"`
	IsActive       bool   `json:"is_active"`
	HasPaymentCard bool   `json:"has_payment_card"`
}

// PremisesResponse predio en respuestas.
type PremisesResponse struct {
	PremisesNumber  string `json:"premises_number"`
	CustomerNumber  string `json:"customer_number"`
	MeterSize       string `json:"meter_size"`
	InitialReading  int    `json:"initial_reading"`
	PreviousReading int    `json:"previous_reading"`
	CurrentReading  int    `json:"current_reading"`
	IsActive        bool   `json:"is_active"`
}

// CustomerDetailsResponse cliente con sus predios e historial de facturación
// para GET /api/customers/:number.
type CustomerDetailsResponse struct {
	Customer CustomerResponse   `json:"customer"`
	Premises []PremisesResponse `json:"premises"`
	Bills    []BillResponse     `json:"bills"`
}

// ArchivedCustomerRow fila del reporte de clientes archivados con saldo.
type ArchivedCustomerRow struct {
	CustomerNumber     string          `json:"customer_number"`
	FullName           string          `json:"full_name"`
	PremisesNumbers    []string        `json:"premises_numbers"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}
