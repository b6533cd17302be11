package recordfile

import (
	"strconv"

	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo log de actividad solo-agregar. El asiento vigente de un
// cliente es el último de su secuencia en orden de almacenamiento.
type ActivityRepo struct {
	store *Store[entity.ActivityEntry]
}

// Orden de campos: id|cliente|pagos|último.monto|medidores|fecha
const activityFields = 6

func encodeActivity(e *entity.ActivityEntry) []string {
	return []string{
		e.ID,
		e.CustomerNumber,
		strconv.Itoa(e.PaymentsCount),
		e.LastPaymentAmount.String(),
		strconv.Itoa(e.MetersSurrendered),
		encDate(e.Date),
	}
}

func decodeActivity(fields []string) (*entity.ActivityEntry, error) {
	if len(fields) != activityFields {
		return nil, arityError("actividad", activityFields, len(fields))
	}
	payments, err := decInt(fields[2])
	if err != nil {
		return nil, err
	}
	amount, err := decDecimal(fields[3])
	if err != nil {
		return nil, err
	}
	meters, err := decInt(fields[4])
	if err != nil {
		return nil, err
	}
	date, err := decDate(fields[5])
	if err != nil {
		return nil, err
	}
	return &entity.ActivityEntry{
		ID:                fields[0],
		CustomerNumber:    fields[1],
		PaymentsCount:     payments,
		LastPaymentAmount: amount,
		MetersSurrendered: meters,
		Date:              date,
	}, nil
}

// NewActivityRepository construye el adaptador.
func NewActivityRepository(path string) *ActivityRepo {
	return &ActivityRepo{store: NewStore(path, encodeActivity, decodeActivity)}
}

// Append agrega un asiento al log de actividad.
func (r *ActivityRepo) Append(entry *entity.ActivityEntry) error {
	return r.store.Append(entry)
}

// LatestByCustomer devuelve el asiento más reciente del cliente o nil.
func (r *ActivityRepo) LatestByCustomer(customerNumber string) (*entity.ActivityEntry, error) {
	var latest *entity.ActivityEntry
	err := r.store.ForEach(func(e *entity.ActivityEntry) bool {
		if e.CustomerNumber == customerNumber {
			latest = e
		}
		return true
	})
	return latest, err
}
