// Package usecase implementa los casos de uso de ciclo de vida de clientes y
// predios: alta, edición, archivo lógico, consulta de detalle y registro de
// tarjeta de pago.
package usecase

import (
	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

// CustomerUseCase casos de uso de ciclo de vida del cliente.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	premises  repository.PremisesRepository
	bills     repository.BillRepository
	cards     repository.PaymentCardRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	premises repository.PremisesRepository,
	bills repository.BillRepository,
	cards repository.PaymentCardRepository,
) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, premises: premises, bills: bills, cards: cards}
}

// Create da de alta un cliente junto con su primer predio. Los números llegan
// ya validados en forma por el shell; aquí se rechazan número de cliente
// existente y número de predio con un predio activo.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	incomeClass := entity.IncomeClass(in.IncomeClass)
	meterSize := entity.MeterSize(in.MeterSize)
	if !incomeClass.Valid() || !meterSize.Valid() || in.InitialReading < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.customers.GetByNumber(in.CustomerNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCustomer
	}
	taken, err := uc.premises.ExistsActive(in.PremisesNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicatePremises
	}

	customer := &entity.Customer{
		CustomerNumber: in.CustomerNumber,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		IncomeClass:    incomeClass,
		IsActive:       true,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	prem := &entity.Premises{
		PremisesNumber:  in.PremisesNumber,
		CustomerNumber:  in.CustomerNumber,
		MeterSize:       meterSize,
		InitialReading:  in.InitialReading,
		PreviousReading: in.InitialReading,
		CurrentReading:  in.InitialReading,
		IsActive:        true,
	}
	if err := uc.premises.Create(prem); err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// Update edita nombre y clase de ingresos del cliente. Campos nil del request
// quedan sin cambio.
func (uc *CustomerUseCase) Update(number string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.IsActive {
		return nil, domain.ErrCustomerNotFound
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.IncomeClass != nil {
		class := entity.IncomeClass(*in.IncomeClass)
		if !class.Valid() {
			return nil, domain.ErrInvalidInput
		}
		customer.IncomeClass = class
	}
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// Archive archiva el cliente y todos sus predios con borrado lógico: los
// registros nunca se eliminan del almacén, solo se marcan inactivos. Las
// facturas quedan intactas; el reporte de archivados agrega sus saldos.
func (uc *CustomerUseCase) Archive(number string) error {
	customer, err := uc.customers.GetByNumber(number)
	if err != nil {
		return err
	}
	if customer == nil || !customer.IsActive {
		return domain.ErrCustomerNotFound
	}
	premises, err := uc.premises.ListByCustomer(number)
	if err != nil {
		return err
	}
	for _, p := range premises {
		if !p.IsActive {
			continue
		}
		p.IsActive = false
		if err := uc.premises.Update(p); err != nil {
			return err
		}
	}
	customer.IsActive = false
	return uc.customers.Update(customer)
}

// Details devuelve el cliente con sus predios y su historial de facturación.
func (uc *CustomerUseCase) Details(number string) (*dto.CustomerDetailsResponse, error) {
	customer, err := uc.customers.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	premises, err := uc.premises.ListByCustomer(number)
	if err != nil {
		return nil, err
	}
	bills, err := uc.bills.ListByCustomer(number)
	if err != nil {
		return nil, err
	}

	details := &dto.CustomerDetailsResponse{
		Customer: dto.NewCustomerResponse(customer),
		Premises: make([]dto.PremisesResponse, 0, len(premises)),
		Bills:    make([]dto.BillResponse, 0, len(bills)),
	}
	for _, p := range premises {
		details.Premises = append(details.Premises, dto.NewPremisesResponse(p))
	}
	for _, b := range bills {
		details.Bills = append(details.Bills, dto.NewBillResponse(b))
	}
	return details, nil
}

// RegisterCard registra la tarjeta de pago del cliente. A lo más una tarjeta
// por cliente: un segundo registro se rechaza.
func (uc *CustomerUseCase) RegisterCard(number string, in dto.RegisterCardRequest) error {
	customer, err := uc.customers.GetByNumber(number)
	if err != nil {
		return err
	}
	if customer == nil || !customer.IsActive {
		return domain.ErrCustomerNotFound
	}
	if customer.HasPaymentCard {
		return domain.ErrCardAlreadyRegistered
	}
	if in.CardIdentifier == "" {
		return domain.ErrInvalidInput
	}
	card := &entity.PaymentCard{
		CustomerNumber: number,
		CardIdentifier: in.CardIdentifier,
		IsActive:       true,
	}
	if err := uc.cards.Append(card); err != nil {
		return err
	}
	customer.HasPaymentCard = true
	return uc.customers.Update(customer)
}
