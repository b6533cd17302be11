package billing

import (
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

// ReportUseCase vistas agregadas sobre el libro de facturas. Los reportes
// solo leen: ningún reporte muta el estado de los almacenes.
type ReportUseCase struct {
	customers repository.CustomerRepository
	premises  repository.PremisesRepository
	bills     repository.BillRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	customers repository.CustomerRepository,
	premises repository.PremisesRepository,
	bills repository.BillRepository,
) *ReportUseCase {
	return &ReportUseCase{customers: customers, premises: premises, bills: bills}
}

// ListPaidBills facturas pagadas con el nombre del cliente, en orden de
// almacenamiento.
func (uc *ReportUseCase) ListPaidBills() ([]dto.PaidBillRow, error) {
	bills, err := uc.bills.ListPaid()
	if err != nil {
		return nil, err
	}
	rows := make([]dto.PaidBillRow, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, dto.PaidBillRow{
			BillID:         b.ID,
			CustomerNumber: b.CustomerNumber,
			CustomerName:   uc.customerName(b.CustomerNumber),
			PremisesNumber: b.PremisesNumber,
			MonthNumber:    b.MonthNumber,
			AmountPaid:     b.AmountPaid,
		})
	}
	return rows, nil
}

// ListOwingBills facturas sin pagar con el saldo adeudado.
func (uc *ReportUseCase) ListOwingBills() ([]dto.OwingBillRow, error) {
	bills, err := uc.bills.ListUnpaid()
	if err != nil {
		return nil, err
	}
	rows := make([]dto.OwingBillRow, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, dto.OwingBillRow{
			BillID:         b.ID,
			CustomerNumber: b.CustomerNumber,
			CustomerName:   uc.customerName(b.CustomerNumber),
			PremisesNumber: b.PremisesNumber,
			MonthNumber:    b.MonthNumber,
			AmountOwing:    b.Balance(),
		})
	}
	return rows, nil
}

// ListArchivedCustomers clientes archivados con sus predios y el saldo impago
// acumulado de todas sus facturas.
func (uc *ReportUseCase) ListArchivedCustomers() ([]dto.ArchivedCustomerRow, error) {
	archived, err := uc.customers.ListArchived()
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ArchivedCustomerRow, 0, len(archived))
	for _, c := range archived {
		premises, err := uc.premises.ListByCustomer(c.CustomerNumber)
		if err != nil {
			return nil, err
		}
		numbers := make([]string, 0, len(premises))
		for _, p := range premises {
			numbers = append(numbers, p.PremisesNumber)
		}
		balance, err := uc.bills.OutstandingBalance(c.CustomerNumber)
		if err != nil {
			return nil, err
		}
		rows = append(rows, dto.ArchivedCustomerRow{
			CustomerNumber:     c.CustomerNumber,
			FullName:           c.FullName(),
			PremisesNumbers:    numbers,
			OutstandingBalance: balance,
		})
	}
	return rows, nil
}

func (uc *ReportUseCase) customerName(number string) string {
	customer, err := uc.customers.GetByNumber(number)
	if err != nil || customer == nil {
		return ""
	}
	return customer.FullName()
}
