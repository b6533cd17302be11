package recordfile

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo adaptador de facturas. A diferencia de clientes y predios no hay
// caché: toda consulta recorre el almacén completo, y la actualización de una
// factura parchea su línea preservando el resto byte a byte.
type BillRepo struct {
	store *Store[entity.Bill]
}

// Orden de campos: id|cliente|predio|mes|año|lect.anterior|lect.actual|consumo|
// agua|alcantarillado|servicio|pam|xfactor|kfactor|total.corriente|
// pronto.pago|vencido|total.adeudado|pagado|elegible|pagada|fecha|vence
const billFields = 23

func encodeBill(b *entity.Bill) []string {
	return []string{
		b.ID,
		b.CustomerNumber,
		b.PremisesNumber,
		strconv.Itoa(b.MonthNumber),
		strconv.Itoa(b.Year),
		strconv.Itoa(b.PreviousReading),
		strconv.Itoa(b.CurrentReading),
		strconv.Itoa(b.Consumption),
		b.WaterCharge.String(),
		b.SewerageCharge.String(),
		b.ServiceCharge.String(),
		b.PAM.String(),
		b.XFactor.String(),
		b.KFactor.String(),
		b.TotalCurrentCharges.String(),
		b.EarlyPaymentAmount.String(),
		b.OverdueAmount.String(),
		b.TotalAmountDue.String(),
		b.AmountPaid.String(),
		encBool(b.EarlyPaymentEligible),
		encBool(b.IsPaid),
		encDate(b.BillDate),
		encDate(b.DueDate),
	}
}

func decodeBill(fields []string) (*entity.Bill, error) {
	if len(fields) != billFields {
		return nil, arityError("factura", billFields, len(fields))
	}

	var b entity.Bill
	b.ID = fields[0]
	b.CustomerNumber = fields[1]
	b.PremisesNumber = fields[2]

	ints := []struct {
		dst *int
		src string
	}{
		{&b.MonthNumber, fields[3]},
		{&b.Year, fields[4]},
		{&b.PreviousReading, fields[5]},
		{&b.CurrentReading, fields[6]},
		{&b.Consumption, fields[7]},
	}
	for _, f := range ints {
		n, err := decInt(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = n
	}

	amounts := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&b.WaterCharge, fields[8]},
		{&b.SewerageCharge, fields[9]},
		{&b.ServiceCharge, fields[10]},
		{&b.PAM, fields[11]},
		{&b.XFactor, fields[12]},
		{&b.KFactor, fields[13]},
		{&b.TotalCurrentCharges, fields[14]},
		{&b.EarlyPaymentAmount, fields[15]},
		{&b.OverdueAmount, fields[16]},
		{&b.TotalAmountDue, fields[17]},
		{&b.AmountPaid, fields[18]},
	}
	for _, f := range amounts {
		d, err := decDecimal(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = d
	}

	var err error
	if b.EarlyPaymentEligible, err = decBool(fields[19]); err != nil {
		return nil, err
	}
	if b.IsPaid, err = decBool(fields[20]); err != nil {
		return nil, err
	}
	if b.BillDate, err = decDate(fields[21]); err != nil {
		return nil, err
	}
	if b.DueDate, err = decDate(fields[22]); err != nil {
		return nil, err
	}
	return &b, nil
}

// NewBillRepository construye el adaptador.
func NewBillRepository(path string) *BillRepo {
	return &BillRepo{store: NewStore(path, encodeBill, decodeBill)}
}

// Append persiste una nueva factura al final del almacén.
func (r *BillRepo) Append(bill *entity.Bill) error {
	return r.store.Append(bill)
}

// Update parchea la factura con el mismo ID preservando el resto de registros
// byte a byte.
func (r *BillRepo) Update(bill *entity.Bill) error {
	err := r.store.Replace(func(b *entity.Bill) bool { return b.ID == bill.ID }, bill)
	if errors.Is(err, ErrNoMatch) {
		return domain.ErrBillNotFound
	}
	return err
}

// CountUnpaid cuenta las facturas sin pagar del par cliente+predio.
func (r *BillRepo) CountUnpaid(customerNumber, premisesNumber string) (int, error) {
	count := 0
	err := r.store.ForEach(func(b *entity.Bill) bool {
		if b.CustomerNumber == customerNumber && b.PremisesNumber == premisesNumber && !b.IsPaid {
			count++
		}
		return true
	})
	return count, err
}

// HasUnpaid indica si existe al menos una factura sin pagar del par.
func (r *BillRepo) HasUnpaid(customerNumber, premisesNumber string) (bool, error) {
	found := false
	err := r.store.ForEach(func(b *entity.Bill) bool {
		if b.CustomerNumber == customerNumber && b.PremisesNumber == premisesNumber && !b.IsPaid {
			found = true
			return false
		}
		return true
	})
	return found, err
}

// LastMonthNumber devuelve el mayor mes facturado al par, 0 si no hay facturas.
func (r *BillRepo) LastMonthNumber(customerNumber, premisesNumber string) (int, error) {
	last := 0
	err := r.store.ForEach(func(b *entity.Bill) bool {
		if b.CustomerNumber == customerNumber && b.PremisesNumber == premisesNumber && b.MonthNumber > last {
			last = b.MonthNumber
		}
		return true
	})
	return last, err
}

// OverdueBalance suma (total adeudado - pagado) de las facturas sin pagar del par.
func (r *BillRepo) OverdueBalance(customerNumber, premisesNumber string) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.store.ForEach(func(b *entity.Bill) bool {
		if b.CustomerNumber == customerNumber && b.PremisesNumber == premisesNumber && !b.IsPaid {
			total = total.Add(b.Balance())
		}
		return true
	})
	return total, err
}

// OutstandingBalance suma los saldos impagos de todas las facturas del cliente.
func (r *BillRepo) OutstandingBalance(customerNumber string) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.store.ForEach(func(b *entity.Bill) bool {
		if b.CustomerNumber == customerNumber && !b.IsPaid {
			total = total.Add(b.Balance())
		}
		return true
	})
	return total, err
}

// LatestByCustomer devuelve la factura de mayor mes del cliente; en empate
// gana la primera encontrada en orden de almacenamiento.
func (r *BillRepo) LatestByCustomer(customerNumber string) (*entity.Bill, error) {
	return r.latest(customerNumber, false)
}

// LatestUnpaidByCustomer igual que LatestByCustomer, solo entre las no pagadas.
func (r *BillRepo) LatestUnpaidByCustomer(customerNumber string) (*entity.Bill, error) {
	return r.latest(customerNumber, true)
}

func (r *BillRepo) latest(customerNumber string, onlyUnpaid bool) (*entity.Bill, error) {
	var latest *entity.Bill
	err := r.store.ForEach(func(b *entity.Bill) bool {
		if b.CustomerNumber != customerNumber {
			return true
		}
		if onlyUnpaid && b.IsPaid {
			return true
		}
		if latest == nil || b.MonthNumber > latest.MonthNumber {
			latest = b
		}
		return true
	})
	return latest, err
}

// ListByCustomer historial de facturación en orden de almacenamiento.
func (r *BillRepo) ListByCustomer(customerNumber string) ([]*entity.Bill, error) {
	var out []*entity.Bill
	err := r.store.ForEach(func(b *entity.Bill) bool {
		if b.CustomerNumber == customerNumber {
			out = append(out, b)
		}
		return true
	})
	return out, err
}

// ListPaid devuelve todas las facturas pagadas.
func (r *BillRepo) ListPaid() ([]*entity.Bill, error) {
	return r.listByStatus(true)
}

// ListUnpaid devuelve todas las facturas sin pagar.
func (r *BillRepo) ListUnpaid() ([]*entity.Bill, error) {
	return r.listByStatus(false)
}

func (r *BillRepo) listByStatus(paid bool) ([]*entity.Bill, error) {
	var out []*entity.Bill
	err := r.store.ForEach(func(b *entity.Bill) bool {
		if b.IsPaid == paid {
			out = append(out, b)
		}
		return true
	})
	return out, err
}
