package usecase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dimmsum/NWC-Simulation-System/internal/application/dto"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/infrastructure/recordfile"
)

func newUseCase(t *testing.T) *CustomerUseCase {
	t.Helper()
	dir := t.TempDir()
	customers, err := recordfile.NewCustomerRepository(filepath.Join(dir, "customers.dat"))
	require.NoError(t, err)
	premises, err := recordfile.NewPremisesRepository(filepath.Join(dir, "premises.dat"))
	require.NoError(t, err)
	bills := recordfile.NewBillRepository(filepath.Join(dir, "bills.dat"))
	cards := recordfile.NewPaymentCardRepository(filepath.Join(dir, "cards.dat"))
	return NewCustomerUseCase(customers, premises, bills, cards)
}

func validCreate() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		CustomerNumber: "1000001",
		FirstName:      "Luis",
		LastName:       "Brown",
		IncomeClass:    3,
		PremisesNumber: "2000001",
		MeterSize:      1,
		InitialReading: 250,
	}
}

func TestCustomerCreate(t *testing.T) {
	uc := newUseCase(t)

	created, err := uc.Create(validCreate())
	require.NoError(t, err)
	assert.Equal(t, "1000001", created.CustomerNumber)
	assert.True(t, created.IsActive)
	assert.False(t, created.HasPaymentCard)

	details, err := uc.Details("1000001")
	require.NoError(t, err)
	require.Len(t, details.Premises, 1)
	prem := details.Premises[0]
	assert.Equal(t, "2000001", prem.PremisesNumber)
	assert.Equal(t, "15mm", prem.MeterSize)
	assert.Equal(t, 250, prem.InitialReading)
	assert.Equal(t, 250, prem.PreviousReading, "las tres lecturas inician iguales")
	assert.Equal(t, 250, prem.CurrentReading)
	assert.Empty(t, details.Bills)
}

func TestCustomerCreate_Duplicados(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Create(validCreate())
	require.NoError(t, err)

	dup := validCreate()
	dup.PremisesNumber = "2000002"
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateCustomer)

	dup = validCreate()
	dup.CustomerNumber = "1000002"
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicatePremises)
}

func TestCustomerCreate_EntradaInvalida(t *testing.T) {
	uc := newUseCase(t)

	in := validCreate()
	in.IncomeClass = 9
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validCreate()
	in.MeterSize = 0
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validCreate()
	in.InitialReading = -1
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerUpdate(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Create(validCreate())
	require.NoError(t, err)

	name := "Carla"
	class := 5
	updated, err := uc.Update("1000001", dto.UpdateCustomerRequest{FirstName: &name, IncomeClass: &class})
	require.NoError(t, err)
	assert.Equal(t, "Carla", updated.FirstName)
	assert.Equal(t, "Brown", updated.LastName, "los campos nil quedan sin cambio")
	assert.Equal(t, 5, updated.IncomeClass)

	bad := 0
	_, err = uc.Update("1000001", dto.UpdateCustomerRequest{IncomeClass: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("9999999", dto.UpdateCustomerRequest{FirstName: &name})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerArchive(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Create(validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Archive("1000001"))

	// El registro sigue consultable como archivado; sus predios quedaron
	// inactivos.
	details, err := uc.Details("1000001")
	require.NoError(t, err)
	assert.False(t, details.Customer.IsActive)
	require.Len(t, details.Premises, 1)
	assert.False(t, details.Premises[0].IsActive)

	// Archivar dos veces se rechaza; el archivado no se edita.
	assert.ErrorIs(t, uc.Archive("1000001"), domain.ErrCustomerNotFound)
	name := "Otra"
	_, err = uc.Update("1000001", dto.UpdateCustomerRequest{FirstName: &name})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	// El número de predio liberado puede reutilizarse en un alta nueva.
	again := validCreate()
	again.CustomerNumber = "1000002"
	_, err = uc.Create(again)
	require.NoError(t, err)
}

func TestRegisterCard(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Create(validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.RegisterCard("1000001", dto.RegisterCardRequest{CardIdentifier: "4421"}))

	details, err := uc.Details("1000001")
	require.NoError(t, err)
	assert.True(t, details.Customer.HasPaymentCard)

	err = uc.RegisterCard("1000001", dto.RegisterCardRequest{CardIdentifier: "9001"})
	assert.ErrorIs(t, err, domain.ErrCardAlreadyRegistered)

	err = uc.RegisterCard("9999999", dto.RegisterCardRequest{CardIdentifier: "4421"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestRegisterCard_IdentificadorVacio(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Create(validCreate())
	require.NoError(t, err)

	err = uc.RegisterCard("1000001", dto.RegisterCardRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
