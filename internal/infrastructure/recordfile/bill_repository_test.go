package recordfile

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
)

func newBillRepo(t *testing.T) *BillRepo {
	t.Helper()
	return NewBillRepository(filepath.Join(t.TempDir(), "bills.dat"))
}

func sampleBill(id, customer, premises string, month int, due string, paid bool) *entity.Bill {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString(due)
	b := &entity.Bill{
		ID:                  id,
		CustomerNumber:      customer,
		PremisesNumber:      premises,
		MonthNumber:         month,
		Year:                2025,
		PreviousReading:     100,
		CurrentReading:      400,
		Consumption:         300,
		WaterCharge:         decimal.RequireFromString("44.87"),
		SewerageCharge:      decimal.RequireFromString("51.82"),
		ServiceCharge:       decimal.RequireFromString("1155.92"),
		PAM:                 decimal.RequireFromString("15.16"),
		XFactor:             decimal.RequireFromString("-62.63"),
		KFactor:             decimal.RequireFromString("316.18"),
		TotalCurrentCharges: amount,
		EarlyPaymentAmount:  decimal.Zero,
		OverdueAmount:       decimal.Zero,
		TotalAmountDue:      amount,
		AmountPaid:          decimal.Zero,
		IsPaid:              paid,
		BillDate:            date,
		DueDate:             date.AddDate(0, 0, 30),
	}
	if paid {
		b.AmountPaid = amount
	}
	return b
}

func TestBillRepo_RoundTrip(t *testing.T) {
	repo := newBillRepo(t)
	bill := sampleBill("BILL-1", "1000001", "2000001", 1, "1500.50", false)
	bill.EarlyPaymentEligible = true
	bill.EarlyPaymentAmount = decimal.RequireFromString("75")
	require.NoError(t, repo.Append(bill))

	got, err := repo.LatestByCustomer("1000001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, bill.ID, got.ID)
	assert.Equal(t, bill.Consumption, got.Consumption)
	assert.True(t, got.TotalAmountDue.Equal(bill.TotalAmountDue))
	assert.True(t, got.EarlyPaymentAmount.Equal(bill.EarlyPaymentAmount))
	assert.True(t, got.EarlyPaymentEligible)
	assert.Equal(t, bill.BillDate, got.BillDate)
	assert.Equal(t, bill.DueDate, got.DueDate)
}

func TestBillRepo_UpdatePersiste(t *testing.T) {
	repo := newBillRepo(t)
	require.NoError(t, repo.Append(sampleBill("BILL-1", "1000001", "2000001", 1, "1000", false)))
	require.NoError(t, repo.Append(sampleBill("BILL-2", "1000001", "2000001", 2, "2000", false)))

	bill, err := repo.LatestByCustomer("1000001")
	require.NoError(t, err)
	bill.AmountPaid = bill.TotalAmountDue
	bill.IsPaid = true
	require.NoError(t, repo.Update(bill))

	count, err := repo.CountUnpaid("1000001", "2000001")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "solo la factura parcheada cambió de estado")

	missing := sampleBill("BILL-9", "1000001", "2000001", 3, "10", false)
	assert.ErrorIs(t, repo.Update(missing), domain.ErrBillNotFound)
}

func TestBillRepo_LatestEmpateGanaLaPrimera(t *testing.T) {
	repo := newBillRepo(t)
	require.NoError(t, repo.Append(sampleBill("BILL-A", "1000001", "2000001", 4, "1000", false)))
	require.NoError(t, repo.Append(sampleBill("BILL-B", "1000001", "2000002", 4, "2000", false)))

	got, err := repo.LatestByCustomer("1000001")
	require.NoError(t, err)
	assert.Equal(t, "BILL-A", got.ID, "en empate de mes gana la primera en orden de almacenamiento")
}

func TestBillRepo_Saldos(t *testing.T) {
	repo := newBillRepo(t)
	require.NoError(t, repo.Append(sampleBill("BILL-1", "1000001", "2000001", 1, "1000", false)))
	require.NoError(t, repo.Append(sampleBill("BILL-2", "1000001", "2000001", 2, "500", true)))
	require.NoError(t, repo.Append(sampleBill("BILL-3", "1000001", "2000002", 1, "300", false)))

	overdue, err := repo.OverdueBalance("1000001", "2000001")
	require.NoError(t, err)
	assert.True(t, overdue.Equal(decimal.RequireFromString("1000")), "las pagadas no suman al vencido")

	outstanding, err := repo.OutstandingBalance("1000001")
	require.NoError(t, err)
	assert.True(t, outstanding.Equal(decimal.RequireFromString("1300")), "el saldo total cruza predios")

	last, err := repo.LastMonthNumber("1000001", "2000001")
	require.NoError(t, err)
	assert.Equal(t, 2, last)

	unpaid, err := repo.ListUnpaid()
	require.NoError(t, err)
	assert.Len(t, unpaid, 2)
	paid, err := repo.ListPaid()
	require.NoError(t, err)
	assert.Len(t, paid, 1)
}
