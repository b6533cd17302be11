package recordfile

import (
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/entity"
	"github.com/Dimmsum/NWC-Simulation-System/internal/domain/repository"
)

var (
	_ repository.PaymentRepository     = (*PaymentRepo)(nil)
	_ repository.PaymentCardRepository = (*PaymentCardRepo)(nil)
)

// PaymentRepo libro de pagos solo-agregar.
type PaymentRepo struct {
	store *Store[entity.Payment]
}

// Orden de campos: id|factura|cliente|predio|monto|fecha
const paymentFields = 6

func encodePayment(p *entity.Payment) []string {
	return []string{
		p.ID,
		p.BillID,
		p.CustomerNumber,
		p.PremisesNumber,
		p.Amount.String(),
		encDate(p.Date),
	}
}

func decodePayment(fields []string) (*entity.Payment, error) {
	if len(fields) != paymentFields {
		return nil, arityError("pago", paymentFields, len(fields))
	}
	amount, err := decDecimal(fields[4])
	if err != nil {
		return nil, err
	}
	date, err := decDate(fields[5])
	if err != nil {
		return nil, err
	}
	return &entity.Payment{
		ID:             fields[0],
		BillID:         fields[1],
		CustomerNumber: fields[2],
		PremisesNumber: fields[3],
		Amount:         amount,
		Date:           date,
	}, nil
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(path string) *PaymentRepo {
	return &PaymentRepo{store: NewStore(path, encodePayment, decodePayment)}
}

// Append agrega un asiento inmutable al libro de pagos.
func (r *PaymentRepo) Append(payment *entity.Payment) error {
	return r.store.Append(payment)
}

// PaymentCardRepo almacén de tarjetas de pago solo-agregar.
type PaymentCardRepo struct {
	store *Store[entity.PaymentCard]
}

// Orden de campos: cliente|identificador|activa
const cardFields = 3

func encodeCard(c *entity.PaymentCard) []string {
	return []string{c.CustomerNumber, c.CardIdentifier, encBool(c.IsActive)}
}

func decodeCard(fields []string) (*entity.PaymentCard, error) {
	if len(fields) != cardFields {
		return nil, arityError("tarjeta", cardFields, len(fields))
	}
	active, err := decBool(fields[2])
	if err != nil {
		return nil, err
	}
	return &entity.PaymentCard{
		CustomerNumber: fields[0],
		CardIdentifier: fields[1],
		IsActive:       active,
	}, nil
}

// NewPaymentCardRepository construye el adaptador.
func NewPaymentCardRepository(path string) *PaymentCardRepo {
	return &PaymentCardRepo{store: NewStore(path, encodeCard, decodeCard)}
}

// Append registra una tarjeta de pago.
func (r *PaymentCardRepo) Append(card *entity.PaymentCard) error {
	return r.store.Append(card)
}
