package billing

import (
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
)

// LatestBill devuelve la factura de mayor mes del cliente (pagada o no).
// En empate de mes gana la primera encontrada en orden de almacenamiento.
func (uc *BillUseCase) LatestBill(customerNumber string) (*dto.BillResponse, error) {
	customer, err := uc.customers.GetByNumber(customerNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.IsActive {
		return nil, domain.ErrCustomerNotFound
	}
	bill, err := uc.bills.LatestByCustomer(customerNumber)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrBillNotFound
	}
	resp := dto.NewBillResponse(bill)
	return &resp, nil
}
