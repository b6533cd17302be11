package billing

import (
	"time"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

// SurrenderUseCase da de baja el medidor de un predio.
type SurrenderUseCase struct {
	customers repository.CustomerRepository
	premises  repository.PremisesRepository
	bills     repository.BillRepository
	activity  repository.ActivityRepository
	now       func() time.Time
}

// NewSurrenderUseCase construye el caso de uso.
func NewSurrenderUseCase(
	customers repository.CustomerRepository,
	premises repository.PremisesRepository,
	bills repository.BillRepository,
	activity repository.ActivityRepository,
) *SurrenderUseCase {
	return &SurrenderUseCase{
		customers: customers,
		premises:  premises,
		bills:     bills,
		activity:  activity,
		now:       time.Now,
	}
}

// Surrender entrega el medidor del predio: lo desactiva y registra la entrega
// en el log de actividad. Se rechaza si el predio no es del cliente, ya está
// inactivo o el par tiene facturas sin pagar.
func (uc *SurrenderUseCase) Surrender(customerNumber, premisesNumber string) error {
	customer, err := uc.customers.GetByNumber(customerNumber)
	if err != nil {
		return err
	}
	if customer == nil || !customer.IsActive {
		return domain.ErrCustomerNotFound
	}
	prem, err := uc.premises.GetByNumber(premisesNumber)
	if err != nil {
		return err
	}
	if prem == nil || !prem.IsActive || prem.CustomerNumber != customerNumber {
		return domain.ErrPremisesNotFound
	}
	pending, err := uc.bills.HasUnpaid(customerNumber, premisesNumber)
	if err != nil {
		return err
	}
	if pending {
		return domain.ErrUnpaidBillsPending
	}

	prem.IsActive = false
	if err := uc.premises.Update(prem); err != nil {
		return err
	}
	return appendActivity(uc.activity, customerNumber, uc.now(), func(e *entity.ActivityEntry) {
		e.MetersSurrendered++
	})
}
