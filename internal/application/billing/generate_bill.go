package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/metering"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/tariff"
)

// Descuento por pronto pago: si la moneda cae en elegible, el monto es un
// entero uniforme en [50, 250].
const (
	earlyPaymentMin  = 50
	earlyPaymentSpan = 201
)

// dueDateDays días calendario entre la fecha de factura y su vencimiento.
const dueDateDays = 30

// BillUseCase genera facturas mensuales y responde consultas sobre el libro
// de facturas de un cliente.
type BillUseCase struct {
	customers repository.CustomerRepository
	premises  repository.PremisesRepository
	bills     repository.BillRepository
	src       metering.Source
	year      int
	now       func() time.Time
}

// NewBillUseCase construye el caso de uso. year es el año de facturación de
// la instalación (config BILLING_YEAR); src la fuente de aleatoriedad.
func NewBillUseCase(
	customers repository.CustomerRepository,
	premises repository.PremisesRepository,
	bills repository.BillRepository,
	src metering.Source,
	year int,
) *BillUseCase {
	return &BillUseCase{
		customers: customers,
		premises:  premises,
		bills:     bills,
		src:       src,
		year:      year,
		now:       time.Now,
	}
}

// GenerateBill genera la factura del siguiente ciclo para el par
// cliente+predio: simula el consumo del mes, calcula los cargos tarifarios,
// sortea la elegibilidad de pronto pago, arrastra los saldos vencidos y
// avanza las lecturas del medidor.
//
// Precondiciones en orden, cada una un rechazo distinto: cliente activo,
// predio activo y del cliente, menos de dos facturas sin pagar del par. Con
// dos o más impagas se rechaza de plano, sin estado parcial.
func (uc *BillUseCase) GenerateBill(customerNumber, premisesNumber string) (*dto.BillResponse, error) {
	customer, err := uc.customers.GetByNumber(customerNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.IsActive {
		return nil, domain.ErrCustomerNotFound
	}
	prem, err := uc.premises.GetByNumber(premisesNumber)
	if err != nil {
		return nil, err
	}
	if prem == nil || !prem.IsActive || prem.CustomerNumber != customerNumber {
		return nil, domain.ErrPremisesNotFound
	}
	unpaid, err := uc.bills.CountUnpaid(customerNumber, premisesNumber)
	if err != nil {
		return nil, err
	}
	if unpaid >= 2 {
		return nil, domain.ErrTooManyUnpaidBills
	}

	consumption := metering.MonthlyConsumption(uc.src, customer.IncomeClass.DailyUsageLimit())

	lastMonth, err := uc.bills.LastMonthNumber(customerNumber, premisesNumber)
	if err != nil {
		return nil, err
	}
	month := lastMonth + 1
	if lastMonth == 0 || lastMonth == 12 {
		month = 1
	}

	charges := tariff.Calculate(consumption, prem.MeterSize)

	earlyPayment := decimal.Zero
	eligible := uc.src.IntN(2) == 1
	if eligible {
		earlyPayment = decimal.NewFromInt(int64(earlyPaymentMin + uc.src.IntN(earlyPaymentSpan)))
	}

	overdue, err := uc.bills.OverdueBalance(customerNumber, premisesNumber)
	if err != nil {
		return nil, err
	}

	billDate := uc.now()
	bill := &entity.Bill{
		ID:             newID("BILL-"),
		CustomerNumber: customerNumber,
		PremisesNumber: premisesNumber,
		MonthNumber:    month,
		Year:           uc.year,

		PreviousReading: prem.CurrentReading,
		CurrentReading:  prem.CurrentReading + consumption,
		Consumption:     consumption,

		WaterCharge:         charges.Water,
		SewerageCharge:      charges.Sewerage,
		ServiceCharge:       charges.Service,
		PAM:                 charges.PAM,
		XFactor:             charges.XFactor,
		KFactor:             charges.KFactor,
		TotalCurrentCharges: charges.Total,

		EarlyPaymentAmount: earlyPayment,
		OverdueAmount:      overdue,
		TotalAmountDue:     charges.Total.Sub(earlyPayment).Add(overdue),
		AmountPaid:         decimal.Zero,

		EarlyPaymentEligible: eligible,

		BillDate: billDate,
		DueDate:  billDate.AddDate(0, 0, dueDateDays),
	}

	// La factura se persiste antes que el predio: si la reescritura de
	// predios falla, queda una factura con lecturas adelantadas en lugar de
	// lecturas adelantadas sin factura que las respalde.
	if err := uc.bills.Append(bill); err != nil {
		return nil, err
	}
	prem.AdvanceReading(consumption)
	if err := uc.premises.Update(prem); err != nil {
		return nil, err
	}

	resp := dto.NewBillResponse(bill)
	return &resp, nil
}
