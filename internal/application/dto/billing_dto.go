package dto

import "github.com/shopspring/decimal"

// GenerateBillRequest body para POST /api/bills.
type GenerateBillRequest struct {
	CustomerNumber string `json:"customer_number"`
	PremisesNumber string `json:"premises_number"`
}

// BillResponse factura con desglose completo de cargos.
type BillResponse struct {
	ID             string `json:"id"`
	CustomerNumber string `json:"customer_number"`
	PremisesNumber string `json:"premises_number"`
	MonthNumber    int    `json:"month_number"`
	Year           int    `json:"year"`

	PreviousReading int `json:"previous_reading"`
	CurrentReading  int `json:"current_reading"`
	Consumption     int `json:"consumption"`

	WaterCharge         decimal.Decimal `json:"water_charge"`
	SewerageCharge      decimal.Decimal `json:"sewerage_charge"`
	ServiceCharge       decimal.Decimal `json:"service_charge"`
	PAM                 decimal.Decimal `json:"pam"`
	XFactor             decimal.Decimal `json:"x_factor"`
	KFactor             decimal.Decimal `json:"k_factor"`
	TotalCurrentCharges decimal.Decimal `json:"total_current_charges"`

	EarlyPaymentAmount decimal.Decimal `json:"early_payment_amount"`
	OverdueAmount      decimal.Decimal `json:"overdue_amount"`
	TotalAmountDue     decimal.Decimal `json:"total_amount_due"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`

	EarlyPaymentEligible bool `json:"early_payment_eligible"`
	IsPaid               bool `json:"is_paid"`

	BillDate string `json:"bill_date"`
	DueDate  string `json:"due_date"`
}

// PayBillRequest body para POST /api/payments.
type PayBillRequest struct {
	CustomerNumber string          `json:"customer_number"`
	Amount         decimal.Decimal `json:"amount"`
}

// ReceiptResponse recibo de pago. Credit es el excedente informativo cuando
// el pago supera el saldo de la factura; no se arrastra a ciclos futuros.
type ReceiptResponse struct {
	PaymentID      string          `json:"payment_id"`
	BillID         string          `json:"bill_id"`
	CustomerNumber string          `json:"customer_number"`
	PremisesNumber string          `json:"premises_number"`
	Amount         decimal.Decimal `json:"amount"`
	Balance        decimal.Decimal `json:"balance"`
	Credit         decimal.Decimal `json:"credit"`
	Status         string          `json:"status"` // PAGADA | PENDIENTE
	Date           string          `json:"date"`
}

// SurrenderRequest body para POST /api/premises/:number/surrender.
type SurrenderRequest struct {
	CustomerNumber string `json:"customer_number"`
}

// PaidBillRow fila del reporte de facturas pagadas.
type PaidBillRow struct {
	BillID         string          `json:"bill_id"`
	CustomerNumber string          `json:"customer_number"`
	CustomerName   string          `json:"customer_name"`
	PremisesNumber string          `json:"premises_number"`
	MonthNumber    int             `json:"month_number"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
}

// OwingBillRow fila del reporte de facturas adeudadas.
type OwingBillRow struct {
	BillID         string          `json:"bill_id"`
	CustomerNumber string          `json:"customer_number"`
	CustomerName   string          `json:"customer_name"`
	PremisesNumber string          `json:"premises_number"`
	MonthNumber    int             `json:"month_number"`
	AmountOwing    decimal.Decimal `json:"amount_owing"`
}
