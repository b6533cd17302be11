package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

// PaymentUseCase aplica pagos sobre el libro de facturas.
type PaymentUseCase struct {
	customers repository.CustomerRepository
	bills     repository.BillRepository
	payments  repository.PaymentRepository
	activity  repository.ActivityRepository
	now       func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	customers repository.CustomerRepository,
	bills repository.BillRepository,
	payments repository.PaymentRepository,
	activity repository.ActivityRepository,
) *PaymentUseCase {
	return &PaymentUseCase{
		customers: customers,
		bills:     bills,
		payments:  payments,
		activity:  activity,
		now:       time.Now,
	}
}

// PayBill aplica un pago del cliente sobre su factura impaga más reciente
// (la de mayor mes; en empate gana la primera en orden de almacenamiento).
// Exige tarjeta de pago registrada y monto positivo. El pago se acumula; la
// factura queda pagada cuando el acumulado alcanza el total adeudado, estado
// terminal. El excedente se informa como crédito en el recibo y no se
// arrastra a ciclos futuros.
func (uc *PaymentUseCase) PayBill(customerNumber string, amount decimal.Decimal) (*dto.ReceiptResponse, error) {
	customer, err := uc.customers.GetByNumber(customerNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.IsActive {
		return nil, domain.ErrCustomerNotFound
	}
	if !customer.HasPaymentCard {
		return nil, domain.ErrNoPaymentCard
	}
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	bill, err := uc.bills.LatestUnpaidByCustomer(customerNumber)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNoUnpaidBill
	}

	credit := bill.ApplyPayment(amount)
	paidAt := uc.now()
	payment := &entity.Payment{
		ID:             newID("PMT-"),
		BillID:         bill.ID,
		CustomerNumber: customerNumber,
		PremisesNumber: bill.PremisesNumber,
		Amount:         amount,
		Date:           paidAt,
	}
	if err := uc.payments.Append(payment); err != nil {
		return nil, err
	}
	if err := uc.bills.Update(bill); err != nil {
		return nil, err
	}
	err = appendActivity(uc.activity, customerNumber, paidAt, func(e *entity.ActivityEntry) {
		e.PaymentsCount++
		e.LastPaymentAmount = amount
	})
	if err != nil {
		return nil, err
	}

	balance := bill.Balance()
	status := "PENDIENTE"
	if bill.IsPaid {
		balance = decimal.Zero
		status = "PAGADA"
	}
	return &dto.ReceiptResponse{
		PaymentID:      payment.ID,
		BillID:         bill.ID,
		CustomerNumber: customerNumber,
		PremisesNumber: bill.PremisesNumber,
		Amount:         amount,
		Balance:        balance,
		Credit:         credit,
		Status:         status,
		Date:           paidAt.Format("2006-01-02"),
	}, nil
}
